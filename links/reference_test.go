package links

import (
	"errors"
	"testing"
)

func TestParseSpreadsheet(t *testing.T) {
	tests := map[string]string{
		"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms":            "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit#gid=0": "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		" https://docs.google.com/spreadsheets/d/1Bxi-MVs_0XRA5?usp=sharing ":                            "1Bxi-MVs_0XRA5",
		"1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms":                                                   "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
	}

	for url, expected := range tests {
		if id, err := ParseSpreadsheet(url); err != nil {
			t.Errorf("Unexpected error parsing '%v' (%v)", url, err)
		} else if id != expected {
			t.Errorf("Incorrect spreadsheet ID for '%v' - expected:%v, got:%v", url, expected, id)
		}
	}
}

func TestParseSpreadsheetWithInvalidURL(t *testing.T) {
	for _, url := range []string{"", "https://docs.google.com/document/d/1Bxi", "https://example.com/spreadsheets/d/1Bxi", "not a url"} {
		if _, err := ParseSpreadsheet(url); !errors.Is(err, ErrInvalidReference) {
			t.Errorf("Expected InvalidReference for '%v', got %v", url, err)
		}
	}
}

func TestColumnLetters(t *testing.T) {
	tests := map[int]string{1: "A", 26: "Z", 27: "AA", 52: "AZ", 53: "BA", 702: "ZZ", 703: "AAA"}

	for n, letter := range tests {
		if v := ColumnLetter(n); v != letter {
			t.Errorf("Incorrect column letter for %v - expected:%v, got:%v", n, letter, v)
		}

		if v := ColumnNumber(letter); v != n {
			t.Errorf("Incorrect column number for %v - expected:%v, got:%v", letter, n, v)
		}
	}
}

func TestParseColumn(t *testing.T) {
	if v, err := ParseColumn(" h "); err != nil || v != "H" {
		t.Errorf("Incorrect column - expected:H, got:%v (%v)", v, err)
	}

	for _, v := range []string{"", "H1", "1", "A-B"} {
		if _, err := ParseColumn(v); !errors.Is(err, ErrInvalidReference) {
			t.Errorf("Expected InvalidReference for '%v', got %v", v, err)
		}
	}
}

func TestA1(t *testing.T) {
	tests := map[string]string{
		A1("Members", "A:A"):         "'Members'!A:A",
		A1("Class List", "B2"):       "'Class List'!B2",
		A1("Bob's List", "A1:C1"):    "'Bob''s List'!A1:C1",
		columnRange("Sheet1", "D"):   "'Sheet1'!D:D",
		cellRange("Sheet1", "D", 23): "'Sheet1'!D23",
	}

	for v, expected := range tests {
		if v != expected {
			t.Errorf("Incorrect range - expected:%v, got:%v", expected, v)
		}
	}
}
