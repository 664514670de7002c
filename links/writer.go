package links

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"
)

// Writer writes the Hit URLs into an empty worksheet column as a single batched
// update.
type Writer struct {
	values ValueService
}

func NewWriter(values ValueService) *Writer {
	return &Writer{
		values: values,
	}
}

// Plan returns one value range per Hit, addressing the Hit row in the target
// column. Hits that address the same row are all included and the last one wins.
func Plan(tab string, column string, hits []Hit) []*sheets.ValueRange {
	data := []*sheets.ValueRange{}

	for _, hit := range hits {
		data = append(data, &sheets.ValueRange{
			Range: cellRange(tab, column, hit.Row),
			Values: [][]interface{}{
				[]interface{}{hit.FileURL},
			},
		})
	}

	return data
}

// Write confirms that the target column is empty and then writes the Hit URLs
// into it as a single batched update. Returns the number of cells written.
func (w *Writer) Write(ctx context.Context, spreadsheet string, tab string, column string, hits []Hit) (int, error) {
	col, err := ParseColumn(column)
	if err != nil {
		return 0, err
	}

	for _, hit := range hits {
		if hit.Row < 1 {
			return 0, fmt.Errorf("%w: invalid row %v for %v", ErrInvalidReference, hit.Row, hit.FileName)
		}
	}

	if err := w.check(ctx, spreadsheet, tab, col); err != nil {
		return 0, err
	}

	if len(hits) == 0 {
		return 0, nil
	}

	data := Plan(tab, col, hits)

	if err := w.values.BatchUpdateValues(ctx, spreadsheet, data); err != nil {
		return 0, remote(err, "unable to write links to column %v", col)
	}

	return len(data), nil
}

func (w *Writer) check(ctx context.Context, spreadsheet, tab, col string) error {
	grid, err := w.values.GetValues(ctx, spreadsheet, columnRange(tab, col))
	if err != nil {
		return remote(err, "unable to retrieve column %v", col)
	}

	conflicts := []string{}
	for i, v := range flatten(grid) {
		if strings.TrimSpace(v) != "" {
			conflicts = append(conflicts, fmt.Sprintf("%v%v", col, i+1))
		}
	}

	if len(conflicts) > 0 {
		if len(conflicts) > 5 {
			conflicts = append(conflicts[:5], "...")
		}

		return fmt.Errorf("%w: column %v is not empty (%v)", ErrPrecondition, col, strings.Join(conflicts, ","))
	}

	return nil
}
