package links

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

var header = []string{"Linked", "Identifier", "File Name", "Cell", "URL"}

func record(hit Hit) []string {
	linked := "N"
	if hit.Linked {
		linked = "Y"
	}

	return []string{linked, hit.Identifier, hit.FileName, hit.Cell(), hit.FileURL}
}

// MakeTSV writes the hit log as a tab separated file with a header row.
func MakeTSV(f io.Writer, hits []Hit) error {
	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write(header); err != nil {
		return err
	}

	for _, hit := range hits {
		if err := w.Write(record(hit)); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

// MakeXLSX writes the hit log as an Excel workbook with a single 'Hits' sheet.
func MakeXLSX(f io.Writer, hits []Hit) error {
	const sheet = "Hits"

	xlsx := excelize.NewFile()
	defer xlsx.Close()

	if err := xlsx.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	rows := [][]string{header}
	for _, hit := range hits {
		rows = append(rows, record(hit))
	}

	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}

			if err := xlsx.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	for i, hit := range hits {
		cell := fmt.Sprintf("E%v", i+2)
		if err := xlsx.SetCellHyperLink(sheet, cell, hit.FileURL, "External"); err != nil {
			return err
		}
	}

	_, err := xlsx.WriteTo(f)

	return err
}
