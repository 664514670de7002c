package links

import (
	"reflect"
	"testing"
)

var columns = Columns{Primary: "A", Phone: "B"}

func TestMatch(t *testing.T) {
	files := []RemoteFile{
		{ID: "f1", Name: "042#doc.pdf"},
		{ID: "f2", Name: "7#other.pdf"},
	}

	primary := []string{"0042", "9"}
	phone := []string{"", "7"}

	expected := []Hit{
		{Identifier: "042", FileID: "f1", FileName: "042#doc.pdf", FileURL: "https://drive.google.com/file/d/f1/view", Column: "A", Row: 1},
		{Identifier: "7", FileID: "f2", FileName: "7#other.pdf", FileURL: "https://drive.google.com/file/d/f2/view", Column: "B", Row: 2},
	}

	hits := Match(files, primary, phone, columns)

	if !reflect.DeepEqual(hits, expected) {
		t.Errorf("Incorrect hits\n   expected: %+v\n   got:      %+v", expected, hits)
	}
}

func TestMatchPrefersPrimaryColumn(t *testing.T) {
	files := []RemoteFile{{ID: "f1", Name: "12#doc.pdf"}}
	primary := []string{"Member ID", "", "", "012"}
	phone := []string{"Phone", "12", "", ""}

	hits := Match(files, primary, phone, columns)

	if len(hits) != 1 {
		t.Fatalf("Expected 1 hit, got %v", len(hits))
	}

	if hits[0].Column != "A" || hits[0].Row != 4 {
		t.Errorf("Incorrect match - expected A4, got %v", hits[0].Cell())
	}
}

func TestMatchSelectsLowestRow(t *testing.T) {
	files := []RemoteFile{{ID: "f1", Name: "5#doc.pdf"}}
	primary := []string{"1", "05", "5", "005"}

	hits := Match(files, primary, nil, columns)

	if len(hits) != 1 || hits[0].Row != 2 {
		t.Errorf("Expected match on row 2, got %+v", hits)
	}
}

func TestMatchSkipsFilesWithoutIdentifierOrMatch(t *testing.T) {
	files := []RemoteFile{
		{ID: "f1", Name: "readme.txt"},
		{ID: "f2", Name: "99#unknown.pdf"},
		{ID: "f3", Name: "000#zeros.pdf"},
		{ID: "f4", Name: "3#known.pdf"},
	}

	primary := []string{"", "3", "0"}

	hits := Match(files, primary, []string{}, columns)

	if len(hits) != 1 || hits[0].FileID != "f4" || hits[0].Cell() != "A2" {
		t.Errorf("Incorrect hits - expected f4 in A2, got %+v", hits)
	}
}

func TestMatchWithEmptyColumns(t *testing.T) {
	files := []RemoteFile{{ID: "f1", Name: "1#doc.pdf"}}

	if hits := Match(files, nil, nil, columns); len(hits) != 0 {
		t.Errorf("Expected no hits, got %+v", hits)
	}

	if hits := Match(nil, []string{"1"}, nil, columns); len(hits) != 0 {
		t.Errorf("Expected no hits, got %+v", hits)
	}
}

func TestMatchAllowsMultipleFilesPerRow(t *testing.T) {
	files := []RemoteFile{
		{ID: "f1", Name: "8#page 1.pdf"},
		{ID: "f2", Name: "8#page 2.pdf"},
		{ID: "f3", Name: "0008#page 3.pdf"},
	}

	hits := Match(files, []string{"8"}, nil, columns)

	if len(hits) != 3 {
		t.Fatalf("Expected 3 hits, got %v", len(hits))
	}

	for i, hit := range hits {
		if hit.FileID != files[i].ID {
			t.Errorf("Hit %v out of listing order - expected %v, got %v", i, files[i].ID, hit.FileID)
		}

		if hit.Cell() != "A1" {
			t.Errorf("Incorrect cell for hit %v - expected A1, got %v", i, hit.Cell())
		}
	}
}
