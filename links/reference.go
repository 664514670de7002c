package links

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	spreadsheetURL = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/([a-zA-Z0-9_-]+)(?:[/?#].*)?$`)
	spreadsheetID  = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// ParseSpreadsheet returns the spreadsheet ID from either a Google Sheets URL or
// a bare spreadsheet ID.
func ParseSpreadsheet(v string) (string, error) {
	s := strings.TrimSpace(v)

	if match := spreadsheetURL.FindStringSubmatch(s); len(match) > 1 {
		return match[1], nil
	}

	if !strings.Contains(s, "/") && spreadsheetID.MatchString(s) {
		return s, nil
	}

	return "", fmt.Errorf("%w: invalid spreadsheet URL '%v' - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'", ErrInvalidReference, v)
}

func SpreadsheetURL(id string) string {
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%v", id)
}

// ParseColumn validates and upper-cases a column letter e.g. 'c' -> 'C'.
func ParseColumn(v string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(v))

	if _, err := excelize.ColumnNameToNumber(s); err != nil || s == "" {
		return "", fmt.Errorf("%w: invalid column '%v'", ErrInvalidReference, v)
	}

	return s, nil
}

// ColumnLetter converts a 1-based column number to the column letter i.e.
// 1 -> A, 26 -> Z, 27 -> AA.
func ColumnLetter(n int) string {
	if name, err := excelize.ColumnNumberToName(n); err == nil {
		return name
	}

	return ""
}

func ColumnNumber(letter string) int {
	if n, err := excelize.ColumnNameToNumber(letter); err == nil {
		return n
	}

	return 0
}

// A1 formats a range in A1 notation, quoting the worksheet title e.g.
// 'Class List'!A:A.
func A1(tab string, area string) string {
	return fmt.Sprintf("'%v'!%v", strings.ReplaceAll(tab, "'", "''"), area)
}

func columnRange(tab, column string) string {
	return A1(tab, fmt.Sprintf("%[1]v:%[1]v", column))
}

func cellRange(tab, column string, row int) string {
	return A1(tab, fmt.Sprintf("%v%v", column, row))
}
