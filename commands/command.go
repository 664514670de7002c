package commands

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/uhppoted/uhppoted-app-links/links"
	"github.com/uhppoted/uhppoted-app-links/workspace"
)

const APP = "uhppoted-app-links"

const (
	DRIVE  = "https://www.googleapis.com/auth/drive.readonly"
	SHEETS = "https://www.googleapis.com/auth/spreadsheets"
)

type Options struct {
	Config string
	Debug  bool
}

// command holds the options common to all the commands that access Google Drive
// and Google Sheets.
type command struct {
	workdir     string
	credentials string
	tokens      string
	debug       bool
	conf        *Config
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.workdir, "workdir", c.workdir, "Directory for working files (tokens, etc)")
	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the 'credentials.json' file")
	flagset.StringVar(&c.tokens, "tokens", c.tokens, "Path for the authorisation tokens file. Defaults to <workdir>/.google/<credentials>.tokens")

	return flagset
}

// configure loads the configuration file and fills in any options not set on
// the command line.
func (c *command) configure(args ...any) error {
	options := Options{}
	if len(args) > 0 {
		if v, ok := args[0].(*Options); ok && v != nil {
			options = *v
		}
	}

	c.debug = options.Debug

	conf, err := LoadConfig(options.Config)
	if err != nil {
		return err
	}

	c.conf = conf
	c.workdir = fallback(c.workdir, conf.Google.Workdir)
	c.credentials = fallback(c.credentials, conf.Google.Credentials)
	c.tokens = fallback(c.tokens, conf.Google.Tokens)

	if strings.TrimSpace(c.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if c.tokens == "" {
		_, file := filepath.Split(c.credentials)
		name := strings.TrimSuffix(file, filepath.Ext(file))
		c.tokens = filepath.Join(c.workdir, ".google", fmt.Sprintf("%s.tokens", name))
	}

	return nil
}

func (c *command) service(ctx context.Context, delimiter string) (*links.Service, error) {
	client, err := authorize(c.credentials, c.tokens, DRIVE, SHEETS)
	if err != nil {
		return nil, err
	}

	drive, err := workspace.NewDrive(ctx, client)
	if err != nil {
		return nil, err
	}

	sheets, err := workspace.NewSheets(ctx, client)
	if err != nil {
		return nil, err
	}

	if c.debug {
		debugf("credentials:%v  tokens:%v", c.credentials, c.tokens)
	}

	return links.NewService(drive, sheets, sheets, delimiter), nil
}

func helpOptions(flagset *flag.FlagSet) {
	count := 0
	flag.VisitAll(func(f *flag.Flag) {
		count++
	})

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})

	if count > 0 {
		fmt.Println()
		fmt.Println("  Options:")
		flag.VisitAll(func(f *flag.Flag) {
			fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
		})
	}
}

func fallback(v string, defval string) string {
	if strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}

	return defval
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
