package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/uhppoted/uhppoted-app-links/links"
)

var SearchCmd = Search{
	command: command{
		workdir:     "",
		credentials: "",
		tokens:      "",
		debug:       false,
	},
}

type Search struct {
	command
	query
	file string
}

// query holds the search options shared by 'search' and 'link'.
type query struct {
	folder      string
	url         string
	tab         string
	idColumn    string
	phoneColumn string
	delimiter   string
}

func (q *query) flags(flagset *flag.FlagSet) {
	flagset.StringVar(&q.folder, "folder", q.folder, "Google Drive folder ID")
	flagset.StringVar(&q.url, "url", q.url, "Spreadsheet URL")
	flagset.StringVar(&q.tab, "tab", q.tab, "Worksheet name")
	flagset.StringVar(&q.idColumn, "id-column", q.idColumn, "Column letter for the document identifiers e.g. 'A'")
	flagset.StringVar(&q.phoneColumn, "phone-column", q.phoneColumn, "Column letter for the phone numbers (optional) e.g. 'D'")
	flagset.StringVar(&q.delimiter, "delimiter", q.delimiter, "Character following the identifier in the document file names. Defaults to '#'")
}

func (q *query) resolve(ctx context.Context, service *links.Service, conf *Config) (links.Config, error) {
	folder := fallback(q.folder, conf.Search.Folder)
	url := fallback(q.url, conf.Search.URL)
	tab := fallback(q.tab, conf.Search.Tab)
	primary := fallback(q.idColumn, conf.Search.IDColumn)
	phone := fallback(q.phoneColumn, conf.Search.PhoneColumn)

	if strings.TrimSpace(folder) == "" {
		return links.Config{}, fmt.Errorf("--folder is a required option")
	}

	if strings.TrimSpace(url) == "" {
		return links.Config{}, fmt.Errorf("--url is a required option")
	}

	if strings.TrimSpace(tab) == "" {
		return links.Config{}, fmt.Errorf("--tab is a required option")
	}

	if strings.TrimSpace(primary) == "" {
		return links.Config{}, fmt.Errorf("--id-column is a required option")
	}

	return service.Resolve(ctx, folder, url, tab, primary, phone)
}

func (q *query) search(ctx context.Context, c *command) (*links.Service, links.Config, []links.Hit, error) {
	service, err := c.service(ctx, fallback(q.delimiter, c.conf.Search.Delimiter))
	if err != nil {
		return nil, links.Config{}, nil, err
	}

	config, err := q.resolve(ctx, service, c.conf)
	if err != nil {
		return nil, links.Config{}, nil, err
	}

	if c.debug {
		debugf("folder:%v  spreadsheet:%v  tab:%v  id:%v  phone:%v", config.Folder, config.Spreadsheet, config.Tab, config.PrimaryColumn, config.PhoneColumn)
	}

	N, hits, err := service.Search(ctx, config, links.Append)
	if err != nil {
		return nil, links.Config{}, nil, err
	}

	infof("Total hits: %v", N)

	return service, config, hits, nil
}

func (cmd *Search) Name() string {
	return "search"
}

func (cmd *Search) Description() string {
	return "Matches the documents in a Google Drive folder against the rows of a Google Sheets worksheet"
}

func (cmd *Search) Usage() string {
	return "--folder <ID> --url <url> --tab <worksheet> --id-column <column> [--phone-column <column>] [--file <file>]"
}

func (cmd *Search) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] search [options] --folder <ID> --url <URL> --tab <worksheet> --id-column <column> [--phone-column <column>]\n", APP)
	fmt.Println()
	fmt.Println("  Extracts the identifier from each document name in the Google Drive folder (the digits preceding")
	fmt.Println("  the '#' delimiter e.g. 00042#invoice.pdf) and matches it against the identifier column of the")
	fmt.Println("  worksheet, falling back to the phone number column. Leading zeros are ignored.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    uhppoted-app-links search --folder 1dyUEebJaFnWa3Z4n0BFMVAXQ7mfUH11g \`)
	fmt.Println(`                              --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                              --tab Members --id-column A --phone-column D \`)
	fmt.Println(`                              --file hits.xlsx`)
	fmt.Println()
}

func (cmd *Search) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("search")

	cmd.query.flags(flagset)
	flagset.StringVar(&cmd.file, "file", cmd.file, "Optional file for the hit list. Exported as an Excel workbook if the file extension is .xlsx, otherwise as TSV")

	return flagset
}

func (cmd *Search) Execute(args ...any) error {
	if err := cmd.configure(args...); err != nil {
		return err
	}

	_, _, hits, err := cmd.query.search(context.Background(), &cmd.command)
	if err != nil {
		return err
	}

	display(hits)

	if cmd.file != "" {
		if err := export(cmd.file, hits); err != nil {
			return err
		}

		infof("Saved hit list to file %s", cmd.file)
	}

	return nil
}

func display(hits []links.Hit) {
	if len(hits) == 0 {
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

	fmt.Fprintln(w, "\tINDEX\tFILE NAME\tCELL\tURL")
	for _, hit := range hits {
		linked := ""
		if hit.Linked {
			linked = "✔"
		}

		fmt.Fprintf(w, "%v\t%v\t%v\t%v\t%v\n", linked, hit.Identifier, hit.FileName, hit.Cell(), hit.FileURL)
	}

	w.Flush()
}

// export writes the hit list to a temporary file in the target directory and
// then renames it, so a failed export never leaves a partial file behind.
func export(file string, hits []links.Hit) error {
	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".hits-*")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	switch strings.ToLower(filepath.Ext(file)) {
	case ".xlsx":
		err = links.MakeXLSX(tmp, hits)
	default:
		err = links.MakeTSV(tmp, hits)
	}

	if err != nil {
		return fmt.Errorf("error creating hit list file (%v)", err)
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), file)
}
