package commands

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

var AuthoriseCmd = Authorise{
	command: command{
		workdir:     "",
		credentials: "",
		tokens:      "",
		debug:       false,
	},
}

type Authorise struct {
	command
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises uhppoted-app-links to access Google Drive and Google Sheets"
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file>"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] authorise [options] --credentials <file>\n", APP)
	fmt.Println()
	fmt.Println("  Authorises read-only access to Google Drive and read/write access to Google Sheets,")
	fmt.Println("  saving the authorisation tokens for use by the other commands")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    uhppoted-app-links authorise --credentials "credentials.json"`)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	return cmd.flagset("authorise")
}

func (cmd *Authorise) Execute(args ...any) error {
	if err := cmd.configure(args...); err != nil {
		return err
	}

	config, err := oauthConfig(cmd.credentials, DRIVE, SHEETS)
	if err != nil {
		return err
	}

	token, err := authenticate(config)
	if err != nil {
		return fmt.Errorf("authorisation error (%v)", err)
	} else if token == nil {
		return nil
	}

	if err := saveToken(cmd.tokens, token); err != nil {
		return err
	}

	infof("Saved authorisation tokens to %v", cmd.tokens)

	return nil
}

// authenticate runs the OAuth2 'installed application' flow with a loopback
// redirect to a temporary HTTP server on localhost. Returns nil if cancelled
// with CTRL-C.
func authenticate(config *oauth2.Config) (*oauth2.Token, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}

	state := uuid.NewString()
	authorised := make(chan string, 1)

	config.RedirectURL = fmt.Sprintf("http://%v/", listener.Addr())

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, rq *http.Request) {
		code := rq.FormValue("code")

		if rq.FormValue("state") != state || code == "" {
			http.Error(w, "Invalid authorisation response", http.StatusBadRequest)
			return
		}

		fmt.Fprintln(w, "uhppoted-app-links authorised - you can close this window")

		select {
		case authorised <- code:
		default:
		}
	})

	srv := &http.Server{
		Handler: mux,
	}

	go func() {
		if err := srv.Serve(listener); err != http.ErrServerClosed {
			warnf("%v", err)
		}
	}()

	defer srv.Shutdown(context.Background())

	// ... CTRL-C handler
	interrupt := make(chan os.Signal, 1)

	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	// ... open OAuth2 URL in browser
	url := config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	if err := browse(url); err != nil {
		fmt.Println("Could not open authorisation page in your browser - please open the following link manually:")
		fmt.Println()
	}

	fmt.Printf("  %v\n\n", url)

	// ... wait for authorisation
	select {
	case <-interrupt:
		fmt.Printf("\n.. cancelled\n\n")
		return nil, nil

	case code := <-authorised:
		token, err := config.Exchange(context.Background(), code)
		if err != nil {
			return nil, fmt.Errorf("unable to retrieve token from web (%v)", err)
		}

		return token, nil
	}
}

func browse(url string) error {
	var command *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		command = exec.Command("open", url)
	case "windows":
		command = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		command = exec.Command("xdg-open", url)
	}

	return command.Start()
}
