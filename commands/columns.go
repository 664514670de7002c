package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

var ColumnsCmd = Columns{
	command: command{
		workdir:     "",
		credentials: "",
		tokens:      "",
		debug:       false,
	},
}

type Columns struct {
	command
	url string
	tab string
}

func (cmd *Columns) Name() string {
	return "columns"
}

func (cmd *Columns) Description() string {
	return "Lists the worksheets in a spreadsheet, or the columns of a worksheet"
}

func (cmd *Columns) Usage() string {
	return "--url <url> [--tab <worksheet>]"
}

func (cmd *Columns) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] columns [options] --url <URL> [--tab <worksheet>]\n", APP)
	fmt.Println()
	fmt.Println("  Lists the worksheets in a Google Sheets spreadsheet or, if --tab is specified, the")
	fmt.Println("  columns of the worksheet along with the header row value. Columns with an empty header")
	fmt.Println("  are candidates for the 'link' command --column")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    uhppoted-app-links columns --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"`)
	fmt.Println(`    uhppoted-app-links columns --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" --tab Members`)
	fmt.Println()
}

func (cmd *Columns) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("columns")

	flagset.StringVar(&cmd.url, "url", cmd.url, "Spreadsheet URL")
	flagset.StringVar(&cmd.tab, "tab", cmd.tab, "Worksheet name")

	return flagset
}

func (cmd *Columns) Execute(args ...any) error {
	if err := cmd.configure(args...); err != nil {
		return err
	}

	url := fallback(cmd.url, cmd.conf.Search.URL)
	tab := fallback(cmd.tab, cmd.conf.Search.Tab)

	if strings.TrimSpace(url) == "" {
		return fmt.Errorf("--url is a required option")
	}

	ctx := context.Background()
	service, err := cmd.service(ctx, cmd.conf.Search.Delimiter)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

	if tab == "" {
		tabs, err := service.Tabs(ctx, url)
		if err != nil {
			return err
		}

		if len(tabs) == 0 {
			return fmt.Errorf("no worksheets found in the spreadsheet")
		}

		fmt.Fprintln(w, "WORKSHEET\tCOLUMNS")
		for _, t := range tabs {
			fmt.Fprintf(w, "%v\t%v\n", t.Title, t.Columns)
		}

		return w.Flush()
	}

	columns, err := service.Columns(ctx, url, tab)
	if err != nil {
		return err
	}

	if len(columns) == 0 {
		return fmt.Errorf("no columns found in worksheet '%v'", tab)
	}

	nonEmpty, err := service.NonEmptyColumns(ctx, url, tab)
	if err != nil {
		return err
	}

	used := map[string]bool{}
	for _, letter := range nonEmpty {
		used[letter] = true
	}

	fmt.Fprintln(w, "COLUMN\tHEADER\t")
	for _, c := range columns {
		if !used[c.Letter] {
			fmt.Fprintf(w, "%v\t\t(empty)\n", c.Letter)
		} else {
			fmt.Fprintf(w, "%v\t%v\t\n", c.Letter, c.Header)
		}
	}

	return w.Flush()
}
