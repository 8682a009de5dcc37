// Package config provides configuration loading and validation for
// querykit commands.
//
// It uses Viper to load a YAML file found next to the command (or given
// explicitly) and overlays environment variables, optionally read from a
// .env file via godotenv.
//
// # Usage
//
//	var cfg config.Config
//	err := config.LoadConfig("querysamples", &cfg, config.WithConfigFile(path))
//	cfg.ApplyDefaults()
//	err = cfg.Validate()
//
// Environment variables carrying the QUERYKIT_ prefix override file values
// using underscore-separated paths (e.g. QUERYKIT_SAMPLES_TAKE=3).
package config
