package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/uhppoted/uhppoted-app-links/links"
)

// Config holds the defaults loaded from the TOML configuration file. Command
// line flags take precedence over the file.
type Config struct {
	Google GoogleConfig `toml:"google"`
	Search SearchConfig `toml:"search"`
	Server ServerConfig `toml:"server"`
}

type GoogleConfig struct {
	Workdir     string `toml:"workdir"`
	Credentials string `toml:"credentials"`
	Tokens      string `toml:"tokens"`
}

type SearchConfig struct {
	Folder      string `toml:"folder"`
	URL         string `toml:"url"`
	Tab         string `toml:"tab"`
	IDColumn    string `toml:"id-column"`
	PhoneColumn string `toml:"phone-column"`
	Delimiter   string `toml:"delimiter"`
}

type ServerConfig struct {
	Bind string `toml:"bind"`
}

func DefaultConfig() *Config {
	return &Config{
		Google: GoogleConfig{
			Workdir:     DEFAULT_WORKDIR,
			Credentials: DEFAULT_CREDENTIALS,
		},
		Search: SearchConfig{
			Delimiter: links.DefaultDelimiter,
		},
		Server: ServerConfig{
			Bind: "127.0.0.1:8765",
		},
	}
}

// LoadConfig reads the configuration file over the defaults. A missing file is
// not an error.
func LoadConfig(file string) (*Config, error) {
	conf := DefaultConfig()

	if file == "" {
		return conf, nil
	}

	b, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		return conf, nil
	} else if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(b, conf); err != nil {
		return nil, fmt.Errorf("invalid configuration file %v (%v)", file, err)
	}

	return conf, nil
}
