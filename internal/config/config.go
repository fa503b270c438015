// Package config loads the boopifier handler configuration.
//
// A configuration file lists notification handlers and optional per-project
// overrides:
//
//	{
//	  "handlers": [
//	    {"name": "desk", "type": "desktop", "match_rules": {"hook_event_name": "Stop"}, "config": {}}
//	  ],
//	  "overrides": [
//	    {"path_pattern": "/home/me/work/*", "handlers": [...]}
//	  ]
//	}
//
// Files ending in .yaml or .yml are parsed as YAML, everything else as JSON.
// Loading validates every handler, normalizes its match rules and resolves
// {{env.NAME}} and {{file.PATH}} secrets.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	clierrors "github.com/boopifier/boopifier/internal/errors"
	"github.com/boopifier/boopifier/internal/match"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/mitchellh/copystructure"
)

// Config is the parsed configuration file.
type Config struct {
	Handlers  []HandlerConfig   `koanf:"handlers" validate:"dive"`
	Overrides []ProjectOverride `koanf:"overrides" validate:"dive"`

	// Path is the file the configuration was loaded from.
	Path string `koanf:"-"`
}

// HandlerConfig configures one notification handler.
type HandlerConfig struct {
	Name       string         `koanf:"name" validate:"required"`
	Type       string         `koanf:"type" validate:"required"`
	MatchRules any            `koanf:"match_rules"`
	MatchType  string         `koanf:"match_type" validate:"omitempty,oneof=exact regex"`
	Config     map[string]any `koanf:"config"`

	// Rule and Mode are derived from MatchRules and MatchType at load time.
	Rule *match.Rule `koanf:"-"`
	Mode match.Type  `koanf:"-"`
}

// ProjectOverride replaces the handler list when the project path matches.
type ProjectOverride struct {
	PathPattern string          `koanf:"path_pattern" validate:"required"`
	Handlers    []HandlerConfig `koanf:"handlers" validate:"dive"`
}

// Load reads, validates and normalizes the configuration at path, then
// resolves secrets from the process environment and the filesystem.
func Load(path string) (*Config, error) {
	cfg, err := LoadWithoutSecrets(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ResolveSecrets(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadWithoutSecrets is Load minus secret resolution.
func LoadWithoutSecrets(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg, err := decode(k)
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// FromJSON parses a JSON configuration document without resolving secrets.
func FromJSON(data []byte) (*Config, error) {
	return parse(data, json.Parser())
}

// FromYAML parses a YAML configuration document without resolving secrets.
func FromYAML(data []byte) (*Config, error) {
	return parse(data, YAMLParser())
}

func parse(data []byte, p koanf.Parser) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), p); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return decode(k)
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAMLParser()
	default:
		return json.Parser()
	}
}

func decode(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateStruct(&cfg); err != nil {
		return nil, err
	}

	if err := normalizeHandlers(cfg.Handlers); err != nil {
		return nil, err
	}
	for i := range cfg.Overrides {
		if err := normalizeHandlers(cfg.Overrides[i].Handlers); err != nil {
			return nil, fmt.Errorf("override %q: %w", cfg.Overrides[i].PathPattern, err)
		}
	}

	return &cfg, nil
}

// normalizeHandlers turns the untyped match_rules of each handler into a
// match.Rule so evaluation never has to guess the rule shape.
func normalizeHandlers(handlers []HandlerConfig) error {
	for i := range handlers {
		h := &handlers[i]

		rule, err := match.ParseRule(h.MatchRules)
		if err != nil {
			return clierrors.InvalidHandlerConfig(h.Name, err)
		}
		mode, err := match.ParseType(h.MatchType)
		if err != nil {
			return clierrors.InvalidHandlerConfig(h.Name, err)
		}

		h.Rule = rule
		h.Mode = mode
		if h.Config == nil {
			h.Config = map[string]any{}
		}
	}
	return nil
}

// Clone returns a deep copy of the handler configuration map, so a running
// handler can never observe or cause changes in another handler's settings.
func (h HandlerConfig) Clone() map[string]any {
	if h.Config == nil {
		return map[string]any{}
	}
	copied, err := copystructure.Copy(h.Config)
	if err != nil {
		out := make(map[string]any, len(h.Config))
		for k, v := range h.Config {
			out[k] = v
		}
		return out
	}
	return copied.(map[string]any)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("koanf"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validateStruct(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("config validation failed: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	// Namespace is "Config.handlers[0].name"; drop the root struct name.
	field := fe.Namespace()
	if idx := strings.Index(field, "."); idx >= 0 {
		field = field[idx+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
