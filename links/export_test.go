package links

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestMakeTSV(t *testing.T) {
	expected := `Linked	Identifier	File Name	Cell	URL
Y	042	042#doc.pdf	A2	https://drive.google.com/file/d/f1/view
N	7	7#other.pdf	B3	https://drive.google.com/file/d/f2/view
`

	list := append([]Hit{}, hits...)
	list[0].Linked = true

	var f strings.Builder
	if err := MakeTSV(&f, list); err != nil {
		t.Fatalf("Unexpected error returned from MakeTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestMakeTSVWithEmptyHitList(t *testing.T) {
	var f strings.Builder
	if err := MakeTSV(&f, []Hit{}); err != nil {
		t.Fatalf("Unexpected error returned from MakeTSV (%v)", err)
	}

	if f.String() != "Linked\tIdentifier\tFile Name\tCell\tURL\n" {
		t.Errorf("Incorrect TSV for empty hit list: %q", f.String())
	}
}

func TestMakeXLSX(t *testing.T) {
	var b bytes.Buffer
	if err := MakeXLSX(&b, hits); err != nil {
		t.Fatalf("Unexpected error returned from MakeXLSX (%v)", err)
	}

	f, err := excelize.OpenReader(&b)
	if err != nil {
		t.Fatalf("Error reading generated workbook (%v)", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Hits")
	if err != nil {
		t.Fatalf("Error reading 'Hits' worksheet (%v)", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %v", len(rows))
	}

	if rows[2][2] != "7#other.pdf" || rows[2][4] != hits[1].FileURL {
		t.Errorf("Incorrect row 3: %v", rows[2])
	}
}
