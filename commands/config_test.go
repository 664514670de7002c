package commands

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "links.toml")
	toml := `
[google]
credentials = "/etc/uhppoted/google/credentials.json"

[search]
folder = "1qH4kDn3WmD5"
url = "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"
tab = "Members"
id-column = "A"
phone-column = "D"

[server]
bind = "0.0.0.0:8080"
`

	if err := os.WriteFile(file, []byte(toml), 0600); err != nil {
		t.Fatalf("error creating test configuration file (%v)", err)
	}

	expected := Config{
		Google: GoogleConfig{
			Workdir:     DEFAULT_WORKDIR,
			Credentials: "/etc/uhppoted/google/credentials.json",
		},
		Search: SearchConfig{
			Folder:      "1qH4kDn3WmD5",
			URL:         "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
			Tab:         "Members",
			IDColumn:    "A",
			PhoneColumn: "D",
			Delimiter:   "#",
		},
		Server: ServerConfig{
			Bind: "0.0.0.0:8080",
		},
	}

	conf, err := LoadConfig(file)
	if err != nil {
		t.Fatalf("unexpected error loading configuration (%v)", err)
	}

	if !reflect.DeepEqual(*conf, expected) {
		t.Errorf("incorrect configuration\n   expected:%+v\n   got:     %+v", expected, *conf)
	}
}

func TestLoadConfigWithMissingFile(t *testing.T) {
	conf, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error loading missing configuration file (%v)", err)
	}

	if !reflect.DeepEqual(conf, DefaultConfig()) {
		t.Errorf("incorrect configuration\n   expected:%+v\n   got:     %+v", DefaultConfig(), conf)
	}
}

func TestLoadConfigWithInvalidFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "links.toml")

	if err := os.WriteFile(file, []byte("[search\nfolder = "), 0600); err != nil {
		t.Fatalf("error creating test configuration file (%v)", err)
	}

	if _, err := LoadConfig(file); err == nil {
		t.Errorf("expected error loading invalid configuration file, got %v", err)
	}
}

func TestConfigure(t *testing.T) {
	file := filepath.Join(t.TempDir(), "links.toml")
	toml := `
[google]
workdir = "/var/uhppoted"
credentials = "/etc/uhppoted/google/credentials.json"
`

	if err := os.WriteFile(file, []byte(toml), 0600); err != nil {
		t.Fatalf("error creating test configuration file (%v)", err)
	}

	c := command{
		credentials: "/tmp/links.json",
	}

	if err := c.configure(&Options{Config: file, Debug: true}); err != nil {
		t.Fatalf("unexpected error (%v)", err)
	}

	if c.workdir != "/var/uhppoted" {
		t.Errorf("incorrect workdir - expected:%v, got:%v", "/var/uhppoted", c.workdir)
	}

	if c.credentials != "/tmp/links.json" {
		t.Errorf("command line credentials overridden by configuration file - expected:%v, got:%v", "/tmp/links.json", c.credentials)
	}

	if expected := filepath.Join("/var/uhppoted", ".google", "links.tokens"); c.tokens != expected {
		t.Errorf("incorrect tokens file - expected:%v, got:%v", expected, c.tokens)
	}

	if !c.debug {
		t.Errorf("debug option not set")
	}
}

func TestFallback(t *testing.T) {
	tests := []struct {
		value    string
		defval   string
		expected string
	}{
		{"A", "B", "A"},
		{"  A ", "B", "A"},
		{"", "B", "B"},
		{"   ", "B", "B"},
		{"", "", ""},
	}

	for _, test := range tests {
		if v := fallback(test.value, test.defval); v != test.expected {
			t.Errorf("fallback(%q,%q) - expected:%q, got:%q", test.value, test.defval, test.expected, v)
		}
	}
}
