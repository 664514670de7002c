package links

import (
	"fmt"
)

const DriveURL = "https://drive.google.com/file/d/%s/view"

// RemoteFile is a single Drive file as returned by the folder listing.
type RemoteFile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Folder struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Documents int    `json:"documents"`
}

type Spreadsheet struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Tab struct {
	Title   string `json:"title"`
	Columns int64  `json:"columns"`
}

type Column struct {
	Letter string `json:"letter"`
	Header string `json:"header"`
}

// Hit correlates a Drive file with the worksheet cell whose (normalised) value
// matched the identifier extracted from the file name.
type Hit struct {
	Identifier string `json:"identifier"`
	FileID     string `json:"file-id"`
	FileName   string `json:"file-name"`
	FileURL    string `json:"url"`
	Column     string `json:"column"`
	Row        int    `json:"row"`
	Linked     bool   `json:"linked"`
}

// Cell returns the A1 address of the matched cell e.g. D23.
func (h Hit) Cell() string {
	return fmt.Sprintf("%v%v", h.Column, h.Row)
}

// Config is the resolved search configuration.
type Config struct {
	Folder        string `json:"folder"`
	Spreadsheet   string `json:"spreadsheet"`
	Tab           string `json:"tab"`
	PrimaryColumn string `json:"id-column"`
	PhoneColumn   string `json:"phone-column,omitempty"`
}

type Mode int

const (
	Append Mode = iota
	Replace
)

func (m Mode) String() string {
	switch m {
	case Replace:
		return "replace"
	default:
		return "append"
	}
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "append":
		return Append, nil
	case "replace":
		return Replace, nil
	default:
		return Append, fmt.Errorf("invalid mode '%v' - expected 'append' or 'replace'", s)
	}
}

func fileURL(id string) string {
	return fmt.Sprintf(DriveURL, id)
}
