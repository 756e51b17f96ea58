package cli

import (
	"fmt"

	envparse "github.com/caarlos0/env/v11"

	"github.com/codex-k8s/resty/internal/env"
	"github.com/codex-k8s/resty/internal/logging"
)

const (
	// envFileVar names the variable that points at an optional .env file.
	envFileVar = "RESTY_ENV_FILE"
	// defaultEnvFile is read when RESTY_ENV_FILE is unset.
	defaultEnvFile = ".env"
)

// baseEnv defines root CLI defaults sourced from RESTY_* env vars.
type baseEnv struct {
	// SchemaPath is the schema file path from RESTY_SCHEMA.
	SchemaPath string `env:"RESTY_SCHEMA" envDefault:"schema.yaml"`
	// LogLevel is the logging level from RESTY_LOG_LEVEL.
	LogLevel string `env:"RESTY_LOG_LEVEL" envDefault:"info"`
	// Output is the output format from RESTY_OUTPUT.
	Output string `env:"RESTY_OUTPUT" envDefault:"json"`
	// Unknown overrides the schema unknown-parameter policy from RESTY_UNKNOWN.
	Unknown string `env:"RESTY_UNKNOWN"`
}

// parseEnv fills target from vars via caarlos0/env.
func parseEnv(target any, vars env.Vars) error {
	return envparse.ParseWithOptions(target, envparse.Options{Environment: vars})
}

// optionsFromEnv resolves CLI defaults: the env file is read first and the process
// environment overrides it.
func optionsFromEnv(osVars env.Vars) (*Options, error) {
	path, ok := osVars[envFileVar]
	if !ok {
		path = defaultEnvFile
	}
	fileVars, err := env.LoadOptionalEnvFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", envFileVar, err)
	}

	var base baseEnv
	if err := parseEnv(&base, env.Merge(fileVars, osVars)); err != nil {
		return nil, fmt.Errorf("parse RESTY_* variables: %w", err)
	}

	return &Options{
		SchemaPath: base.SchemaPath,
		Output:     base.Output,
		Unknown:    base.Unknown,
		LogLevel:   logging.ParseLevel(base.LogLevel),
	}, nil
}
