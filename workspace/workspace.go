// Package workspace implements the links collaborator interfaces over the Google
// Drive v3 and Google Sheets v4 APIs.
package workspace

import (
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"github.com/uhppoted/uhppoted-app-links/links"
)

const (
	FOLDER      = "application/vnd.google-apps.folder"
	SPREADSHEET = "application/vnd.google-apps.spreadsheet"
)

// classify distinguishes token failures (expired/revoked refresh token, invalid
// credentials) from ordinary API errors.
func classify(err error, format string, args ...any) error {
	var rerr *oauth2.RetrieveError
	if errors.As(err, &rerr) {
		return fmt.Errorf("%w: %v (%w)", links.ErrAuth, fmt.Sprintf(format, args...), err)
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusUnauthorized {
		return fmt.Errorf("%w: %v (%w)", links.ErrAuth, fmt.Sprintf(format, args...), err)
	}

	return fmt.Errorf("%w: %v (%w)", links.ErrRemoteCall, fmt.Sprintf(format, args...), err)
}
