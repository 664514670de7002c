package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/uhppoted/uhppoted-app-links/links"
)

var SpreadsheetsCmd = Spreadsheets{
	command: command{
		workdir:     "",
		credentials: "",
		tokens:      "",
		debug:       false,
	},
}

type Spreadsheets struct {
	command
}

func (cmd *Spreadsheets) Name() string {
	return "spreadsheets"
}

func (cmd *Spreadsheets) Description() string {
	return "Lists the Google Sheets spreadsheets in Google Drive"
}

func (cmd *Spreadsheets) Usage() string {
	return "[--credentials <file>]"
}

func (cmd *Spreadsheets) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] spreadsheets [options]\n", APP)
	fmt.Println()
	fmt.Println("  Lists the name and URL of the Google Sheets spreadsheets in Google Drive")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    uhppoted-app-links spreadsheets --credentials "credentials.json"`)
	fmt.Println()
}

func (cmd *Spreadsheets) FlagSet() *flag.FlagSet {
	return cmd.flagset("spreadsheets")
}

func (cmd *Spreadsheets) Execute(args ...any) error {
	if err := cmd.configure(args...); err != nil {
		return err
	}

	ctx := context.Background()
	service, err := cmd.service(ctx, cmd.conf.Search.Delimiter)
	if err != nil {
		return err
	}

	list, err := service.Spreadsheets(ctx)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		return fmt.Errorf("no Google Sheets found in Google Drive")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

	fmt.Fprintln(w, "NAME\tURL")
	for _, s := range list {
		fmt.Fprintf(w, "%v\t%v\n", s.Name, links.SpreadsheetURL(s.ID))
	}

	return w.Flush()
}
