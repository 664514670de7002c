package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
)

var FoldersCmd = Folders{
	command: command{
		workdir:     "",
		credentials: "",
		tokens:      "",
		debug:       false,
	},
}

type Folders struct {
	command
}

func (cmd *Folders) Name() string {
	return "folders"
}

func (cmd *Folders) Description() string {
	return "Lists the Google Drive folders and the number of documents in each"
}

func (cmd *Folders) Usage() string {
	return "[--credentials <file>]"
}

func (cmd *Folders) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] folders [options]\n", APP)
	fmt.Println()
	fmt.Println("  Lists the Google Drive folders (ID, name and number of documents)")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    uhppoted-app-links folders --credentials "credentials.json"`)
	fmt.Println()
}

func (cmd *Folders) FlagSet() *flag.FlagSet {
	return cmd.flagset("folders")
}

func (cmd *Folders) Execute(args ...any) error {
	if err := cmd.configure(args...); err != nil {
		return err
	}

	ctx := context.Background()
	service, err := cmd.service(ctx, cmd.conf.Search.Delimiter)
	if err != nil {
		return err
	}

	folders, err := service.Folders(ctx)
	if err != nil {
		return err
	}

	if len(folders) == 0 {
		return fmt.Errorf("no folders found in Google Drive")
	}

	total := 0
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tDOCUMENTS")
	for _, f := range folders {
		fmt.Fprintf(w, "%v\t%v\t%v\n", f.ID, f.Name, f.Documents)
		total += f.Documents
	}

	w.Flush()

	fmt.Println()
	fmt.Printf("Total documents: %v\n", total)

	return nil
}
