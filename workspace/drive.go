package workspace

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/uhppoted/uhppoted-app-links/links"
)

type Drive struct {
	google *drive.Service
}

func NewDrive(ctx context.Context, client *http.Client, opts ...option.ClientOption) (*Drive, error) {
	google, err := drive.NewService(ctx, append([]option.ClientOption{option.WithHTTPClient(client)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Drive client (%v)", err)
	}

	return &Drive{
		google: google,
	}, nil
}

// ListFiles retrieves all the (non-trashed) files in a folder, following the
// page tokens until the listing is exhausted.
func (d *Drive) ListFiles(ctx context.Context, folder string) ([]links.RemoteFile, error) {
	q := fmt.Sprintf("'%v' in parents and trashed = false", escape(folder))

	files, err := d.list(ctx, q)
	if err != nil {
		return nil, classify(err, "error listing folder %v", folder)
	}

	return files, nil
}

func (d *Drive) ListFolders(ctx context.Context) ([]links.Folder, error) {
	q := fmt.Sprintf("mimeType = '%v' and trashed = false", FOLDER)

	files, err := d.list(ctx, q)
	if err != nil {
		return nil, classify(err, "error listing folders")
	}

	folders := []links.Folder{}
	for _, f := range files {
		folders = append(folders, links.Folder{
			ID:   f.ID,
			Name: f.Name,
		})
	}

	return folders, nil
}

func (d *Drive) ListSpreadsheets(ctx context.Context) ([]links.Spreadsheet, error) {
	q := fmt.Sprintf("mimeType = '%v' and trashed = false", SPREADSHEET)

	files, err := d.list(ctx, q)
	if err != nil {
		return nil, classify(err, "error listing spreadsheets")
	}

	list := []links.Spreadsheet{}
	for _, f := range files {
		list = append(list, links.Spreadsheet{
			ID:   f.ID,
			Name: f.Name,
		})
	}

	return list, nil
}

func (d *Drive) list(ctx context.Context, q string) ([]links.RemoteFile, error) {
	files := []links.RemoteFile{}
	page := ""

	for {
		call := d.google.Files.List().
			Q(q).
			Fields("nextPageToken, files(id, name)").
			Context(ctx)

		if page != "" {
			call.PageToken(page)
		}

		response, err := call.Do()
		if err != nil {
			return nil, err
		}

		for _, f := range response.Files {
			files = append(files, links.RemoteFile{
				ID:   f.Id,
				Name: f.Name,
			})
		}

		if page = response.NextPageToken; page == "" {
			break
		}
	}

	return files, nil
}

func escape(v string) string {
	return strings.ReplaceAll(strings.ReplaceAll(v, `\`, `\\`), `'`, `\'`)
}
