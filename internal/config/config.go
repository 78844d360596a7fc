package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"ionautocomplete/internal/autocomplete"
	"ionautocomplete/internal/eventbus"
)

// ErrUnsupportedFormat is returned for config files that are neither TOML nor YAML
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config represents the application configuration
type Config struct {
	Version       int              `toml:"version" yaml:"version"`
	Field         FieldSettings    `toml:"field" yaml:"field"`
	Lookup        LookupSettings   `toml:"lookup" yaml:"lookup"`
	UI            UISettings       `toml:"ui" yaml:"ui"`
	Items         []map[string]any `toml:"items" yaml:"items"`
	Model         any              `toml:"model,omitempty" yaml:"model,omitempty"`                   // initial bound value
	SelectedItems []map[string]any `toml:"selected_items,omitempty" yaml:"selected_items,omitempty"` // full items behind a prepopulated multi-select model
}

// FieldSettings is the widget configuration
type FieldSettings struct {
	Name             string `toml:"name" yaml:"name"`
	Placeholder      string `toml:"placeholder" yaml:"placeholder"`
	CancelLabel      string `toml:"cancel_label" yaml:"cancel_label"`
	ItemViewValueKey string `toml:"item_view_value_key" yaml:"item_view_value_key"`
	ItemValueKey     string `toml:"item_value_key" yaml:"item_value_key"`
	MultipleSelect   bool   `toml:"multiple_select" yaml:"multiple_select"`
}

// LookupSettings controls the demo lookup source
type LookupSettings struct {
	Latency   string `toml:"latency" yaml:"latency"`       // Go duration, "" or "0" answers synchronously
	FailOn    string `toml:"fail_on" yaml:"fail_on"`       // queries containing this substring reject
	SearchKey string `toml:"search_key" yaml:"search_key"` // defaults to the field's view key
}

// UISettings represents UI-related configuration
type UISettings struct {
	Title    string `toml:"title" yaml:"title"`
	ShowHelp bool   `toml:"show_help" yaml:"show_help"`
}

// FieldConfig converts the field settings for the controller
func (c *Config) FieldConfig() autocomplete.FieldConfig {
	return autocomplete.FieldConfig{
		Placeholder:      c.Field.Placeholder,
		CancelLabel:      c.Field.CancelLabel,
		ItemViewValueKey: c.Field.ItemViewValueKey,
		ItemValueKey:     c.Field.ItemValueKey,
		MultipleSelect:   c.Field.MultipleSelect,
	}.WithDefaults()
}

// LatencyDuration parses the lookup latency
func (c *Config) LatencyDuration() (time.Duration, error) {
	if c.Lookup.Latency == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Lookup.Latency)
	if err != nil {
		return 0, fmt.Errorf("invalid lookup latency %q: %w", c.Lookup.Latency, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid lookup latency %q: must not be negative", c.Lookup.Latency)
	}
	return d, nil
}

// SearchKey is the key path the catalog matches queries against
func (c *Config) SearchKey() string {
	if c.Lookup.SearchKey != "" {
		return c.Lookup.SearchKey
	}
	return c.Field.ItemViewValueKey
}

// CatalogItems returns the catalog entries as controller items
func (c *Config) CatalogItems() []autocomplete.Item {
	return toItems(c.Items)
}

// SeedItems returns the selected items as controller items
func (c *Config) SeedItems() []autocomplete.Item {
	return toItems(c.SelectedItems)
}

func toItems(in []map[string]any) []autocomplete.Item {
	out := make([]autocomplete.Item, 0, len(in))
	for _, m := range in {
		out = append(out, m)
	}
	return out
}

// Validate checks values the decoders cannot
func (c *Config) Validate() error {
	if _, err := c.LatencyDuration(); err != nil {
		return err
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus eventbus.EventBus
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	return &configService{}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	return &configService{bus: bus}
}

type format int

const (
	formatTOML format = iota
	formatYAML
)

func formatFor(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	f, err := formatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	switch f {
	case formatTOML:
		err = toml.Unmarshal(data, &cfg)
	case formatYAML:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:      path,
			Field:     cfg.FieldConfig(),
			ItemCount: len(cfg.Items),
		})
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	f, err := formatFor(path)
	if err != nil {
		return err
	}

	var data []byte
	switch f {
	case formatTOML:
		data, err = toml.Marshal(config)
	case formatYAML:
		data, err = yaml.Marshal(config)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the built-in demo configuration
func DefaultConfig() *Config {
	items := make([]map[string]any, 0, 6)
	for _, name := range []string{"test1", "test2", "test3", "alpha", "beta", "gamma"} {
		items = append(items, map[string]any{"value": name, "view": "view: " + name})
	}

	return &Config{
		Version: 1,
		Field: FieldSettings{
			Name:             "item",
			Placeholder:      "Search items",
			CancelLabel:      autocomplete.DefaultCancelLabel,
			ItemViewValueKey: "view",
			ItemValueKey:     "value",
		},
		UI: UISettings{
			Title:    "ion-autocomplete",
			ShowHelp: true,
		},
		Items: items,
	}
}
