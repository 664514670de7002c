package workspace

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/uhppoted-app-links/links"
)

type Sheets struct {
	google *sheets.Service
}

func NewSheets(ctx context.Context, client *http.Client, opts ...option.ClientOption) (*Sheets, error) {
	google, err := sheets.NewService(ctx, append([]option.ClientOption{option.WithHTTPClient(client)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	return &Sheets{
		google: google,
	}, nil
}

// GetValues retrieves the formatted cell values for a range. Non-string values
// are formatted with %v and missing trailing cells are simply absent.
func (s *Sheets) GetValues(ctx context.Context, spreadsheet string, area string) ([][]string, error) {
	response, err := s.google.Spreadsheets.Values.Get(spreadsheet, area).Context(ctx).Do()
	if err != nil {
		return nil, classify(err, "unable to retrieve data from sheet")
	}

	grid := make([][]string, len(response.Values))
	for i, row := range response.Values {
		grid[i] = make([]string, len(row))
		for j, v := range row {
			if str, ok := v.(string); ok {
				grid[i][j] = str
			} else if v != nil {
				grid[i][j] = fmt.Sprintf("%v", v)
			}
		}
	}

	return grid, nil
}

func (s *Sheets) BatchUpdateValues(ctx context.Context, spreadsheet string, data []*sheets.ValueRange) error {
	rq := sheets.BatchUpdateValuesRequest{
		ValueInputOption: "RAW",
		Data:             data,
	}

	if _, err := s.google.Spreadsheets.Values.BatchUpdate(spreadsheet, &rq).Context(ctx).Do(); err != nil {
		return classify(err, "error updating spreadsheet")
	}

	return nil
}

func (s *Sheets) Tabs(ctx context.Context, spreadsheet string) ([]links.Tab, error) {
	response, err := s.google.Spreadsheets.Get(spreadsheet).
		Fields("sheets.properties(title,gridProperties.columnCount)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify(err, "failed to fetch spreadsheet")
	}

	tabs := []links.Tab{}
	for _, sheet := range response.Sheets {
		if sheet.Properties == nil {
			continue
		}

		tab := links.Tab{
			Title: sheet.Properties.Title,
		}

		if sheet.Properties.GridProperties != nil {
			tab.Columns = sheet.Properties.GridProperties.ColumnCount
		}

		tabs = append(tabs, tab)
	}

	return tabs, nil
}
