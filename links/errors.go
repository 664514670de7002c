package links

import (
	"errors"
	"fmt"
)

var (
	ErrAuth             = errors.New("authentication/authorization error")
	ErrInvalidReference = errors.New("invalid reference")
	ErrRemoteCall       = errors.New("remote call failed")
	ErrPrecondition     = errors.New("precondition violation")
)

// remote tags an error returned by a collaborator as a RemoteCallError unless
// it has already been classified.
func remote(err error, format string, args ...any) error {
	if errors.Is(err, ErrAuth) || errors.Is(err, ErrRemoteCall) {
		return err
	}

	return fmt.Errorf("%w: %v (%w)", ErrRemoteCall, fmt.Sprintf(format, args...), err)
}
