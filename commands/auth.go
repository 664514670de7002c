package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/net/context"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/uhppoted/uhppoted-app-links/links"
)

// authorize returns an HTTP client using the tokens saved by the 'authorise'
// command. The oauth2 client refreshes the access token as required.
func authorize(credentials string, tokens string, scopes ...string) (*http.Client, error) {
	config, err := oauthConfig(credentials, scopes...)
	if err != nil {
		return nil, err
	}

	token, err := tokenFromFile(tokens)
	if err != nil {
		return nil, fmt.Errorf("%w: no valid tokens in %v - run '%v authorise' first (%v)", links.ErrAuth, tokens, APP, err)
	}

	return config.Client(context.Background(), token), nil
}

func oauthConfig(credentials string, scopes ...string) (*oauth2.Config, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read credentials file (%v)", links.ErrAuth, err)
	}

	config, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid credentials file (%v)", links.ErrAuth, err)
	}

	return config, nil
}

// Retrieves a token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, err
	}

	if token.AccessToken == "" && token.RefreshToken == "" {
		return nil, fmt.Errorf("empty token")
	}

	return token, nil
}

// Saves a token to a file path.
func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache oauth token (%v)", err)
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
