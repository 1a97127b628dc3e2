package scicalc

import (
	"errors"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds settings read from a YAML document, e.g.:
//
//	precision: 64
//	max_depth: 100
//	matching:
//	  unary: nested
//	  boolean: first-close
//	format: "%.10g"
//	log_level: info
//
// Missing fields keep their defaults.
type Config struct {
	// Precision is the bit precision for exp, ln, and log.
	Precision uint `yaml:"precision"`
	// MaxDepth is the nesting limit.
	MaxDepth int `yaml:"max_depth"`
	// Matching maps function kinds to closing-parenthesis policies. Kinds and
	// policies are named as by Kind.String and Match.String.
	Matching MatchConfig `yaml:"matching"`
	// Format is the fmt verb a shell uses to print numeric results.
	Format string `yaml:"format"`
	// LogLevel is the name of a log level for a shell.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the settings used when there is no configuration.
func DefaultConfig() *Config {
	return &Config{
		Precision: 64,
		MaxDepth:  DefaultMaxDepth,
		Format:    "%g",
		LogLevel:  "info",
	}
}

// LoadConfig reads a YAML configuration. Unknown fields are errors. An empty
// document gives the defaults.
func LoadConfig(r io.Reader) (*Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return c, nil
}

// Options converts the configuration to context options.
func (c *Config) Options() []ContextOption {
	opts := []ContextOption{Prec(c.Precision), MaxDepth(c.MaxDepth)}
	for k := Kind(0); k < kindCount; k++ {
		if m, ok := c.Matching[k]; ok {
			opts = append(opts, Matching(k, m))
		}
	}
	return opts
}

// MatchConfig is the matching section of a Config.
type MatchConfig map[Kind]Match

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *MatchConfig) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return &ConfigError{Line: n.Line, Msg: "matching must be a mapping of function kinds to policies"}
	}
	r := make(MatchConfig, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		kind, ok := ParseKind(k.Value)
		if !ok {
			return &ConfigError{Line: k.Line, Msg: "unknown function kind " + strconv.Quote(k.Value)}
		}
		match, ok := ParseMatch(v.Value)
		if !ok {
			return &ConfigError{Line: v.Line, Msg: "unknown matching policy " + strconv.Quote(v.Value)}
		}
		r[kind] = match
	}
	*m = r
	return nil
}

// ConfigError is an invalid value in a configuration document.
type ConfigError struct {
	// Line is the 1-based line of the bad value.
	Line int
	// Msg describes the problem.
	Msg string
}

func (err *ConfigError) Error() string {
	return "config line " + strconv.Itoa(err.Line) + ": " + err.Msg
}
