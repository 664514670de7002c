package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uhppoted/uhppoted-app-links/httpd"
)

var ServeCmd = Serve{
	command: command{
		workdir:     "",
		credentials: "",
		tokens:      "",
		debug:       false,
	},
}

type Serve struct {
	command
	bind      string
	delimiter string
}

func (cmd *Serve) Name() string {
	return "serve"
}

func (cmd *Serve) Description() string {
	return "Runs a local HTTP server for interactive search and link sessions"
}

func (cmd *Serve) Usage() string {
	return "[--bind <address:port>]"
}

func (cmd *Serve) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] serve [options] [--bind <address:port>]\n", APP)
	fmt.Println()
	fmt.Println("  Runs a local HTTP server that keeps the Google Drive listings and the hit list for the")
	fmt.Println("  lifetime of the server, so that repeated searches accumulate hits that can then be linked")
	fmt.Println("  in one operation:")
	fmt.Println()
	fmt.Println("    GET    /folders")
	fmt.Println("    GET    /spreadsheets")
	fmt.Println("    GET    /spreadsheets/:spreadsheet/tabs")
	fmt.Println("    GET    /spreadsheets/:spreadsheet/tabs/:tab/columns")
	fmt.Println("    POST   /search        {folder,spreadsheet,tab,id-column,phone-column,mode}")
	fmt.Println("    POST   /link          {spreadsheet,tab,column}")
	fmt.Println("    GET    /hits")
	fmt.Println("    DELETE /hits")
	fmt.Println("    GET    /hits/export?format=tsv|xlsx")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    uhppoted-app-links serve --credentials "credentials.json" --bind 127.0.0.1:8765`)
	fmt.Println()
}

func (cmd *Serve) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("serve")

	flagset.StringVar(&cmd.bind, "bind", cmd.bind, "HTTP server address. Defaults to 127.0.0.1:8765")
	flagset.StringVar(&cmd.delimiter, "delimiter", cmd.delimiter, "Character following the identifier in the document file names. Defaults to '#'")

	return flagset
}

func (cmd *Serve) Execute(args ...any) error {
	if err := cmd.configure(args...); err != nil {
		return err
	}

	bind := fallback(cmd.bind, cmd.conf.Server.Bind)
	delimiter := fallback(cmd.delimiter, cmd.conf.Search.Delimiter)

	service, err := cmd.service(context.Background(), delimiter)
	if err != nil {
		return err
	}

	if !cmd.debug {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:    bind,
		Handler: httpd.NewRouter(service, cmd.debug),
	}

	errs := make(chan error, 1)
	go func() {
		infof("Listening on %v", bind)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()

	interrupt := make(chan os.Signal, 1)

	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	select {
	case err := <-errs:
		return err

	case <-interrupt:
		infof("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(ctx)
}
