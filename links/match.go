package links

// Columns names the worksheet columns that the match engine reports in a Hit.
type Columns struct {
	Primary string
	Phone   string
}

// Match cross-references the identifiers extracted from the file names against
// the primary and phone column values. Row numbers are 1-based, i.e. values[0]
// is row 1. The primary column is checked before the phone column and, where
// several rows share a value, the lowest row wins. Files without an identifier
// or without a matching row are skipped. Hits are returned in listing order.
func Match(files []RemoteFile, primary, phone []string, columns Columns) []Hit {
	return match(extractor, files, primary, phone, columns)
}

func (x Extractor) Match(files []RemoteFile, primary, phone []string, columns Columns) []Hit {
	return match(x, files, primary, phone, columns)
}

func match(x Extractor, files []RemoteFile, primary, phone []string, columns Columns) []Hit {
	hits := []Hit{}

	primaryIndex := index(primary)
	phoneIndex := index(phone)

	for _, file := range files {
		id, ok := x.Extract(file.Name)
		if !ok {
			continue
		}

		key := Normalise(id)
		if key == "" {
			continue
		}

		hit := Hit{
			Identifier: id,
			FileID:     file.ID,
			FileName:   file.Name,
			FileURL:    fileURL(file.ID),
		}

		if row, ok := primaryIndex[key]; ok {
			hit.Column = columns.Primary
			hit.Row = row
		} else if row, ok := phoneIndex[key]; ok {
			hit.Column = columns.Phone
			hit.Row = row
		} else {
			continue
		}

		hits = append(hits, hit)
	}

	return hits
}

// index maps each normalised value to the first (lowest) row it occurs in.
func index(values []string) map[string]int {
	m := map[string]int{}

	for i, v := range values {
		k := Normalise(v)
		if k == "" {
			continue
		}

		if _, ok := m[k]; !ok {
			m[k] = i + 1
		}
	}

	return m
}

// flatten flattens a single column value grid as returned for a range like
// 'Sheet1!A:A'. Empty rows are returned as "".
func flatten(grid [][]string) []string {
	values := make([]string, len(grid))

	for i, row := range grid {
		if len(row) > 0 {
			values[i] = row[0]
		}
	}

	return values
}
