package links

import (
	"context"

	"google.golang.org/api/sheets/v4"
)

// FolderLister lists Drive folders and files. ListFiles is expected to follow
// the continuation tokens until the listing is exhausted.
type FolderLister interface {
	ListFiles(ctx context.Context, folder string) ([]RemoteFile, error)
	ListFolders(ctx context.Context) ([]Folder, error)
	ListSpreadsheets(ctx context.Context) ([]Spreadsheet, error)
}

// ValueService reads and writes worksheet values. BatchUpdateValues is all or
// nothing at the request level.
type ValueService interface {
	GetValues(ctx context.Context, spreadsheet string, area string) ([][]string, error)
	BatchUpdateValues(ctx context.Context, spreadsheet string, data []*sheets.ValueRange) error
}

type MetadataService interface {
	Tabs(ctx context.Context, spreadsheet string) ([]Tab, error)
}
