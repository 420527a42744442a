package settings

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/caarlos0/env/v11"
	"github.com/deadloct/minus-one/data"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultEnv      = "development"
	DefaultLogLevel = "info"

	Title = "Minus One"

	TerminalMaxLineLength = 100

	DefaultSeparator = "_,.-'~'-.,__,.-'~'-.,_"
)

// Config is read from MINUS_ONE_* environment variables. A Seed of 0 draws
// from crypto/rand; anything else replays the same session.
type Config struct {
	Env      string `env:"ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Seed     int64  `env:"SEED" envDefault:"0"`
	Quoted   bool   `env:"QUOTED" envDefault:"true"`
}

type HelpValues struct {
	Title string
}

var Help string

func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix + "_"}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Level parses the configured log level, falling back to info.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.Warnf("unknown log level %q, using %v", c.LogLevel, DefaultLogLevel)
		return log.InfoLevel
	}

	return lvl
}

func ImportData() {
	importHelp()
}

func importHelp() {
	tmpl, err := template.New("help-template").Parse(data.HelpTemplate)
	if err != nil {
		log.Panicf("unable to parse help template: %v", err)
	}

	var result bytes.Buffer
	if err := tmpl.Execute(&result, HelpValues{Title: Title}); err != nil {
		log.Panicf("unable to execute help template: %v", err)
	}

	Help = result.String()
	log.Info("imported help template")
}
