package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/goliatone/go-formfields/pkg/fields"
)

const (
	cfgKeyAddr         = "addr"
	cfgKeyFieldsDir    = "fields_dir"
	cfgKeyTemplatesDir = "templates_dir"
	cfgKeyDatastarSrc  = "datastar_src"
	cfgKeyTitle        = "title"
	cfgKeyLogLevel     = "log_level"

	envPrefix      = "FORMFIELDS"
	configFileName = "formfields"
)

// loadConfig resolves settings with precedence flags > FORMFIELDS_* env >
// config file > defaults. A missing config file is not an error.
func loadConfig(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyAddr, ":8080")
	v.SetDefault(cfgKeyTitle, "Form fields")
	v.SetDefault(cfgKeyLogLevel, "info")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && configFile == "" {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// buildRegistry assembles the built-in fields plus any custom definitions
// found under fields_dir.
func buildRegistry(v *viper.Viper) (*fields.Registry, error) {
	engine, err := fields.NewTemplateEngine(v.GetString(cfgKeyTemplatesDir))
	if err != nil {
		return nil, fmt.Errorf("template engine: %w", err)
	}
	registry := fields.NewDefaultRegistry(engine)

	if dir := v.GetString(cfgKeyFieldsDir); dir != "" {
		if _, err := registry.RegisterFS(os.DirFS(dir)); err != nil {
			return nil, fmt.Errorf("custom fields: %w", err)
		}
	}
	return registry, nil
}
