package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	lib "github.com/uhppoted/uhppoted-lib/command"

	"github.com/uhppoted/uhppoted-app-links/commands"
)

var cli = []lib.Command{
	&commands.VersionCmd,
	&commands.AuthoriseCmd,
	&commands.FoldersCmd,
	&commands.SpreadsheetsCmd,
	&commands.ColumnsCmd,
	&commands.SearchCmd,
	&commands.LinkCmd,
	&commands.ServeCmd,
}

var options = commands.Options{
	Config: commands.DEFAULT_CONFIG,
	Debug:  false,
}

var help = lib.NewHelp(commands.APP, cli, nil)

func main() {
	flag.StringVar(&options.Config, "config", options.Config, "Configuration file path")
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	cmd, err := lib.Parse(cli, nil, help)
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if cmd == nil {
		help.Execute()
		os.Exit(1)
	}

	if err = cmd.Execute(&options); err != nil {
		log.Fatalf("ERROR %v", err)
	}
}
