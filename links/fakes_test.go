package links

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"google.golang.org/api/sheets/v4"
)

type drive struct {
	folders map[string][]RemoteFile
	calls   map[string]int
	err     error
}

func (d *drive) ListFiles(ctx context.Context, folder string) ([]RemoteFile, error) {
	d.calls[folder]++

	if d.err != nil {
		return nil, d.err
	}

	if files, ok := d.folders[folder]; ok {
		return append([]RemoteFile{}, files...), nil
	}

	return []RemoteFile{}, nil
}

func (d *drive) ListFolders(ctx context.Context) ([]Folder, error) {
	d.calls["folders"]++

	if d.err != nil {
		return nil, d.err
	}

	folders := []Folder{}
	for _, id := range []string{"F1", "F2"} {
		if _, ok := d.folders[id]; ok {
			folders = append(folders, Folder{ID: id, Name: "folder " + id})
		}
	}

	return folders, nil
}

func (d *drive) ListSpreadsheets(ctx context.Context) ([]Spreadsheet, error) {
	return []Spreadsheet{{ID: "S1", Name: "Members"}}, nil
}

// workbook is an in-memory spreadsheet that understands just enough A1 notation
// for the ranges generated by this package.
type workbook struct {
	tabs    map[string][][]string
	columns int64
	gets    map[string]int
	updates [][]*sheets.ValueRange
	err     error
	fail    error
}

var a1 = regexp.MustCompile(`^'(.*)'!([A-Z]+)([0-9]*)(?::([A-Z]+)([0-9]*))?$`)

func newWorkbook(tab string, rows ...[]string) *workbook {
	return &workbook{
		tabs:    map[string][][]string{tab: rows},
		columns: 26,
		gets:    map[string]int{},
	}
}

func (w *workbook) parse(area string) (string, int, int, int, int, error) {
	match := a1.FindStringSubmatch(area)
	if match == nil {
		return "", 0, 0, 0, 0, fmt.Errorf("invalid range %v", area)
	}

	tab := strings.ReplaceAll(match[1], "''", "'")
	rows, ok := w.tabs[tab]
	if !ok {
		return "", 0, 0, 0, 0, fmt.Errorf("no such tab %v", tab)
	}

	left := ColumnNumber(match[2])
	right := left
	top := 1
	bottom := len(rows)

	if match[3] != "" {
		top, _ = strconv.Atoi(match[3])
		bottom = top
	}

	if match[4] != "" {
		right = ColumnNumber(match[4])
		bottom = len(rows)
		if match[5] != "" {
			bottom, _ = strconv.Atoi(match[5])
		}
	}

	return tab, left, right, top, bottom, nil
}

func (w *workbook) GetValues(ctx context.Context, spreadsheet string, area string) ([][]string, error) {
	w.gets[area]++

	if w.err != nil {
		return nil, w.err
	}

	tab, left, right, top, bottom, err := w.parse(area)
	if err != nil {
		return nil, err
	}

	rows := w.tabs[tab]
	grid := [][]string{}
	for r := top; r <= bottom && r <= len(rows); r++ {
		row := []string{}
		for c := left; c <= right; c++ {
			if c <= len(rows[r-1]) {
				row = append(row, rows[r-1][c-1])
			} else {
				row = append(row, "")
			}
		}

		grid = append(grid, row)
	}

	return grid, nil
}

func (w *workbook) BatchUpdateValues(ctx context.Context, spreadsheet string, data []*sheets.ValueRange) error {
	if w.fail != nil {
		return w.fail
	}

	w.updates = append(w.updates, data)

	for _, v := range data {
		tab, col, _, row, _, err := w.parse(v.Range)
		if err != nil {
			return err
		}

		rows := w.tabs[tab]
		for len(rows) < row {
			rows = append(rows, []string{})
		}

		for len(rows[row-1]) < col {
			rows[row-1] = append(rows[row-1], "")
		}

		rows[row-1][col-1] = fmt.Sprintf("%v", v.Values[0][0])
		w.tabs[tab] = rows
	}

	return nil
}

func (w *workbook) Tabs(ctx context.Context, spreadsheet string) ([]Tab, error) {
	tabs := []Tab{}
	for title := range w.tabs {
		tabs = append(tabs, Tab{Title: title, Columns: w.columns})
	}

	return tabs, nil
}

func (w *workbook) cell(tab string, column string, row int) string {
	rows := w.tabs[tab]
	col := ColumnNumber(column)

	if row <= len(rows) && col <= len(rows[row-1]) {
		return rows[row-1][col-1]
	}

	return ""
}
