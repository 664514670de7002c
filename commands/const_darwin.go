package commands

const (
	_etc = "/usr/local/etc/com.github.uhppoted"
	_var = "/usr/local/var/com.github.uhppoted"

	DEFAULT_WORKDIR     = _var + "/links"
	DEFAULT_CONFIG      = _etc + "/uhppoted-app-links.toml"
	DEFAULT_CREDENTIALS = _etc + "/links/.google/credentials.json"
)
