package decimal

import (
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
)

// Config is the TOML configurable part of the package state.
//
//	rounding = "toward_zero"
//	debug = true
type Config struct {
	Rounding RoundingMode `toml:"rounding"`
	Debug    bool         `toml:"debug"`
}

// LoadConfig reads a Config from the TOML file at path.
func LoadConfig(path string) (cfg Config, err error) {
	defer Error.WrapP(&err)

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, err
	}

	return cfg, checkUndecoded(md)
}

// DecodeConfig parses a Config from TOML text.
func DecodeConfig(text string) (cfg Config, err error) {
	defer Error.WrapP(&err)

	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return cfg, err
	}

	return cfg, checkUndecoded(md)
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}

	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.String())
	}

	return Error.New("unknown config keys: %s", strings.Join(names, ", "))
}

// Context returns a Context using the configured rounding mode.
func (cfg Config) Context() Context {
	return Context{Mode: cfg.Rounding}
}

// Apply installs the configured rounding mode as the process default. With
// Debug set it also installs a development logger.
func (cfg Config) Apply() (err error) {
	defer Error.WrapP(&err)

	SetRoundingMode(cfg.Rounding)

	if !cfg.Debug {
		return nil
	}

	l, err := zap.NewDevelopment()
	if err != nil {
		return err
	}

	SetLogger(l)

	return nil
}
