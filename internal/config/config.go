package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Log     Log     `koanf:"log"`
	Absence Absence `koanf:"absence"`
	Stats   Stats   `koanf:"stats"`
}

type Log struct {
	Level string `koanf:"level"`
}

type Absence struct {
	// AllowStatusOverride lets an administrator re-transition an absence
	// that is already approved or rejected. Off by default: terminal
	// statuses are final.
	AllowStatusOverride bool `koanf:"allowstatusoverride"`
}

type Stats struct {
	// ProfitBasis selects how profit is derived: "invoiced" (revenue minus
	// expenses) or "cash" (collected payments minus expenses).
	ProfitBasis string `koanf:"profitbasis"`
}

func Default() Application {
	return Application{
		Log: Log{
			Level: "info",
		},
		Absence: Absence{
			AllowStatusOverride: false,
		},
		Stats: Stats{
			ProfitBasis: "invoiced",
		},
	}
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Default(), "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	// An empty path skips the file layer; defaults and environment
	// variables still apply.
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if os.IsNotExist(err) {
				log.Infof("Config file not found at %s, using defaults and environment variables", path)
			} else {
				log.Errorf("error loading config from YAML: %v", err)
				return Application{}, err
			}
		} else {
			log.Infof("Loaded configuration from file: %s", path)
		}
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "WORKFORCE_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "WORKFORCE_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
