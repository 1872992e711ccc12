package utils

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/fridagar/fridagar/calendar"
	"github.com/fridagar/fridagar/utils/log"
)

// Output formats of the command line tool.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

// InstanceConfig is the configuration of the running command.
var InstanceConfig = DefaultConfig()

// Config holds the settings of the command line tool.
type Config struct {
	LogLevel        log.Level
	Format          string
	IncludeHalfDays bool
	// RulesFile is a YAML rule table replacing the Icelandic one.
	RulesFile string
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: log.WARNING,
		Format:   FormatTable,
	}
}

// ParseConfig parses a YAML configuration. Unset keys keep their defaults.
func ParseConfig(data []byte) (*Config, error) {
	var aux struct {
		LogLevel        string `yaml:"log_level"`
		Format          string `yaml:"format"`
		IncludeHalfDays string `yaml:"include_half_days"`
		RulesFile       string `yaml:"rules_file"`
	}
	if err := yaml.Unmarshal(data, &aux); err != nil {
		return nil, errors.Wrap(err, "failed to parse configuration")
	}

	m := DefaultConfig()
	if aux.LogLevel != "" {
		level, err := log.ParseLevel(aux.LogLevel)
		if err != nil {
			return nil, errors.Wrap(err, "invalid log_level")
		}
		m.LogLevel = level
	}

	if aux.Format != "" {
		format, err := ParseFormat(aux.Format)
		if err != nil {
			return nil, errors.Wrap(err, "invalid format")
		}
		m.Format = format
	}

	if aux.IncludeHalfDays != "" {
		includeHalfDays, err := strconv.ParseBool(aux.IncludeHalfDays)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value %q for include_half_days", aux.IncludeHalfDays)
		}
		m.IncludeHalfDays = includeHalfDays
	}

	m.RulesFile = aux.RulesFile
	return m, nil
}

// LoadConfig reads and parses the configuration file at path. When the
// file does not exist and required is false the defaults are returned.
func LoadConfig(path string, required bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrap(err, "failed to read configuration file")
	}
	return ParseConfig(data)
}

// ParseFormat validates the name of an output format.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case FormatTable, FormatJSON, FormatCSV:
		return f, nil
	default:
		return "", errors.Errorf("unknown format %q, want one of table, json, csv", s)
	}
}

// Calendar returns the calendar selected by the configuration: the rule
// table in RulesFile when set, the Icelandic one otherwise.
func (m *Config) Calendar() (*calendar.Calendar, error) {
	if m.RulesFile == "" {
		return calendar.Iceland, nil
	}
	data, err := os.ReadFile(m.RulesFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read rules file")
	}
	cal, err := calendar.NewFromYAML(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load rules from %s", m.RulesFile)
	}
	log.Info("loaded %d rules from %s", len(cal.Rules()), m.RulesFile)
	return cal, nil
}
