package links

import (
	"context"
	"fmt"
	"strings"
)

// Service owns the listing cache and the session hit log, and implements the
// search, link and clear operations for the presentation layer. A Service is
// not safe for concurrent use.
type Service struct {
	cache     *Cache
	session   *Session
	writer    *Writer
	lister    FolderLister
	values    ValueService
	metadata  MetadataService
	extractor Extractor
}

func NewService(lister FolderLister, values ValueService, metadata MetadataService, delimiter string) *Service {
	return &Service{
		cache:     NewCache(lister, values),
		session:   NewSession(),
		writer:    NewWriter(values),
		lister:    lister,
		values:    values,
		metadata:  metadata,
		extractor: NewExtractor(delimiter),
	}
}

func (s *Service) Cache() *Cache {
	return s.cache
}

func (s *Service) Session() *Session {
	return s.session
}

// Resolve validates the search parameters and returns the resolved
// configuration. The spreadsheet may be given as a URL or as a bare ID and the
// phone column is optional.
func (s *Service) Resolve(ctx context.Context, folder, spreadsheet, tab, primary, phone string) (Config, error) {
	config := Config{
		Folder: strings.TrimSpace(folder),
	}

	if config.Folder == "" {
		return Config{}, fmt.Errorf("%w: missing folder ID", ErrInvalidReference)
	}

	id, err := ParseSpreadsheet(spreadsheet)
	if err != nil {
		return Config{}, err
	}

	t, err := s.tab(ctx, id, tab)
	if err != nil {
		return Config{}, err
	}

	config.Spreadsheet = id
	config.Tab = t.Title

	if config.PrimaryColumn, err = ParseColumn(primary); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(phone) != "" {
		if config.PhoneColumn, err = ParseColumn(phone); err != nil {
			return Config{}, err
		}
	}

	return config, nil
}

// Search lists the folder and the identifier/phone columns (both cached), matches
// them and adds the hits to the session log. Returns the number of hits found by
// this search and the updated hit log.
func (s *Service) Search(ctx context.Context, config Config, mode Mode) (int, []Hit, error) {
	files, err := s.cache.ListFiles(ctx, config.Folder)
	if err != nil {
		return 0, nil, err
	}

	grid, err := s.cache.GetValues(ctx, config.Spreadsheet, columnRange(config.Tab, config.PrimaryColumn))
	if err != nil {
		return 0, nil, err
	}

	primary := flatten(grid)
	phone := []string{}

	if config.PhoneColumn != "" {
		grid, err := s.cache.GetValues(ctx, config.Spreadsheet, columnRange(config.Tab, config.PhoneColumn))
		if err != nil {
			return 0, nil, err
		}

		phone = flatten(grid)
	}

	hits := s.extractor.Match(files, primary, phone, Columns{
		Primary: config.PrimaryColumn,
		Phone:   config.PhoneColumn,
	})

	switch mode {
	case Replace:
		s.session.Replace(hits)
	default:
		s.session.Append(hits)
	}

	return len(hits), s.session.Hits(), nil
}

// Link writes the URLs of every hit in the session log into the target column
// and marks them linked. Nothing is marked if the write fails.
func (s *Service) Link(ctx context.Context, spreadsheet, tab, column string) (int, error) {
	id, err := ParseSpreadsheet(spreadsheet)
	if err != nil {
		return 0, err
	}

	t, err := s.tab(ctx, id, tab)
	if err != nil {
		return 0, err
	}

	col, err := ParseColumn(column)
	if err != nil {
		return 0, err
	}

	if t.Columns > 0 && int64(ColumnNumber(col)) > t.Columns {
		return 0, fmt.Errorf("%w: column %v is outside worksheet '%v' (%v columns)", ErrInvalidReference, col, t.Title, t.Columns)
	}

	N, err := s.writer.Write(ctx, id, t.Title, col, s.session.Hits())
	if err != nil {
		return 0, err
	}

	s.session.MarkLinked()

	return N, nil
}

// Clear empties the session hit log. The listing cache is retained.
func (s *Service) Clear() {
	s.session.Clear()
}

func (s *Service) Folders(ctx context.Context) ([]Folder, error) {
	return s.cache.ListFolders(ctx)
}

func (s *Service) Spreadsheets(ctx context.Context) ([]Spreadsheet, error) {
	list, err := s.lister.ListSpreadsheets(ctx)
	if err != nil {
		return nil, remote(err, "unable to list spreadsheets")
	}

	return list, nil
}

func (s *Service) Tabs(ctx context.Context, spreadsheet string) ([]Tab, error) {
	id, err := ParseSpreadsheet(spreadsheet)
	if err != nil {
		return nil, err
	}

	tabs, err := s.metadata.Tabs(ctx, id)
	if err != nil {
		return nil, remote(err, "unable to retrieve worksheets for spreadsheet %v", id)
	}

	return tabs, nil
}

// Columns returns every column in the worksheet grid along with its header row
// value.
func (s *Service) Columns(ctx context.Context, spreadsheet, tab string) ([]Column, error) {
	id, err := ParseSpreadsheet(spreadsheet)
	if err != nil {
		return nil, err
	}

	t, err := s.tab(ctx, id, tab)
	if err != nil {
		return nil, err
	}

	if t.Columns < 1 {
		return []Column{}, nil
	}

	area := A1(t.Title, fmt.Sprintf("A1:%v1", ColumnLetter(int(t.Columns))))
	grid, err := s.values.GetValues(ctx, id, area)
	if err != nil {
		return nil, remote(err, "unable to retrieve header row from %v", t.Title)
	}

	header := []string{}
	if len(grid) > 0 {
		header = grid[0]
	}

	columns := []Column{}
	for i := 0; i < int(t.Columns); i++ {
		column := Column{
			Letter: ColumnLetter(i + 1),
		}

		if i < len(header) {
			column.Header = strings.TrimSpace(header[i])
		}

		columns = append(columns, column)
	}

	return columns, nil
}

// NonEmptyColumns returns the letters of the columns with a header row value.
func (s *Service) NonEmptyColumns(ctx context.Context, spreadsheet, tab string) ([]string, error) {
	columns, err := s.Columns(ctx, spreadsheet, tab)
	if err != nil {
		return nil, err
	}

	list := []string{}
	for _, c := range columns {
		if c.Header != "" {
			list = append(list, c.Letter)
		}
	}

	return list, nil
}

func (s *Service) tab(ctx context.Context, spreadsheet, tab string) (*Tab, error) {
	name := strings.TrimSpace(tab)
	if name == "" {
		return nil, fmt.Errorf("%w: missing worksheet name", ErrInvalidReference)
	}

	tabs, err := s.metadata.Tabs(ctx, spreadsheet)
	if err != nil {
		return nil, remote(err, "unable to retrieve worksheets for spreadsheet %v", spreadsheet)
	}

	for _, t := range tabs {
		if strings.EqualFold(strings.TrimSpace(t.Title), name) {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("%w: no worksheet '%v' in spreadsheet %v", ErrInvalidReference, tab, spreadsheet)
}
