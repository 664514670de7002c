package commands

const (
	_etc = "/usr/local/etc/uhppoted"
	_var = "/usr/local/var/uhppoted"

	DEFAULT_WORKDIR     = _var + "/links"
	DEFAULT_CONFIG      = _etc + "/uhppoted-app-links.toml"
	DEFAULT_CREDENTIALS = _etc + "/links/.google/credentials.json"
)
