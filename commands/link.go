package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"
)

var LinkCmd = Link{
	command: command{
		workdir:     "",
		credentials: "",
		tokens:      "",
		debug:       false,
	},
}

type Link struct {
	command
	query
	column string
	dryrun bool
}

func (cmd *Link) Name() string {
	return "link"
}

func (cmd *Link) Description() string {
	return "Writes the links to the matching Google Drive documents into an empty worksheet column"
}

func (cmd *Link) Usage() string {
	return "--folder <ID> --url <url> --tab <worksheet> --id-column <column> [--phone-column <column>] --column <column>"
}

func (cmd *Link) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] link [options] --folder <ID> --url <URL> --tab <worksheet> --id-column <column> --column <column>\n", APP)
	fmt.Println()
	fmt.Println("  Matches the documents in the Google Drive folder against the worksheet (as for 'search') and")
	fmt.Println("  writes the document URL into the --column cell of each matched row. The --column must be")
	fmt.Println("  completely empty, including the header row.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    uhppoted-app-links link --folder 1dyUEebJaFnWa3Z4n0BFMVAXQ7mfUH11g \`)
	fmt.Println(`                            --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                            --tab Members --id-column A --phone-column D --column H`)
	fmt.Println()
}

func (cmd *Link) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("link")

	cmd.query.flags(flagset)
	flagset.StringVar(&cmd.column, "column", cmd.column, "Empty column for the document links e.g. 'H'")
	flagset.BoolVar(&cmd.dryrun, "dryrun", cmd.dryrun, "Displays the matched documents without updating the worksheet")

	return flagset
}

func (cmd *Link) Execute(args ...any) error {
	if err := cmd.configure(args...); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.column) == "" {
		return fmt.Errorf("--column is a required option")
	}

	ctx := context.Background()
	service, config, hits, err := cmd.query.search(ctx, &cmd.command)
	if err != nil {
		return err
	}

	if len(hits) == 0 {
		infof("No matching documents - worksheet not updated")
		return nil
	}

	if cmd.dryrun {
		display(hits)
		infof("--dryrun: worksheet not updated")
		return nil
	}

	infof("Linking %v documents to column %v", len(hits), strings.ToUpper(cmd.column))

	N, err := service.Link(ctx, config.Spreadsheet, config.Tab, cmd.column)
	if err != nil {
		return err
	}

	display(service.Session().Hits())
	infof("Updated %v cells in worksheet '%v'", N, config.Tab)

	return nil
}
