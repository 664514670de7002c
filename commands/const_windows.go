package commands

import (
	"os"
	"path/filepath"
)

var (
	_dir = filepath.Join(os.Getenv("PROGRAMDATA"), "uhppoted")

	DEFAULT_WORKDIR     = filepath.Join(_dir, "links")
	DEFAULT_CONFIG      = filepath.Join(_dir, "uhppoted-app-links.toml")
	DEFAULT_CREDENTIALS = filepath.Join(_dir, "links", ".google", "credentials.json")
)
