package links

import (
	"context"
)

type valuesKey struct {
	spreadsheet string
	area        string
}

// Cache memoises folder listings and worksheet value grids for the lifetime of
// the Cache. Entries are never invalidated, so a listing that changes remotely
// stays stale until the process restarts. Failed fetches are not recorded.
type Cache struct {
	lister FolderLister
	values ValueService

	folders *[]Folder
	files   map[string][]RemoteFile
	grids   map[valuesKey][][]string
}

func NewCache(lister FolderLister, values ValueService) *Cache {
	return &Cache{
		lister: lister,
		values: values,
		files:  map[string][]RemoteFile{},
		grids:  map[valuesKey][][]string{},
	}
}

func (c *Cache) ListFiles(ctx context.Context, folder string) ([]RemoteFile, error) {
	if files, ok := c.files[folder]; ok {
		return append([]RemoteFile{}, files...), nil
	}

	files, err := c.lister.ListFiles(ctx, folder)
	if err != nil {
		return nil, remote(err, "unable to list files in folder %v", folder)
	}

	c.files[folder] = append([]RemoteFile{}, files...)

	return files, nil
}

func (c *Cache) GetValues(ctx context.Context, spreadsheet string, area string) ([][]string, error) {
	key := valuesKey{spreadsheet, area}
	if values, ok := c.grids[key]; ok {
		return clone(values), nil
	}

	values, err := c.values.GetValues(ctx, spreadsheet, area)
	if err != nil {
		return nil, remote(err, "unable to retrieve %v from spreadsheet %v", area, spreadsheet)
	}

	c.grids[key] = clone(values)

	return values, nil
}

// ListFolders returns the Drive folders along with the number of documents in
// each. The per-folder file listings are cached along the way so a subsequent
// search of any listed folder does not fetch it again.
func (c *Cache) ListFolders(ctx context.Context) ([]Folder, error) {
	if c.folders != nil {
		return append([]Folder{}, (*c.folders)...), nil
	}

	folders, err := c.lister.ListFolders(ctx)
	if err != nil {
		return nil, remote(err, "unable to list folders")
	}

	for i, folder := range folders {
		files, err := c.ListFiles(ctx, folder.ID)
		if err != nil {
			return nil, err
		}

		folders[i].Documents = len(files)
	}

	cached := append([]Folder{}, folders...)
	c.folders = &cached

	return folders, nil
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	n := len(c.files) + len(c.grids)
	if c.folders != nil {
		n++
	}

	return n
}

func clone(grid [][]string) [][]string {
	rows := make([][]string, 0, len(grid))
	for _, row := range grid {
		rows = append(rows, append([]string{}, row...))
	}

	return rows
}
