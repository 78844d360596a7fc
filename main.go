// Ion-autocomplete is a terminal demo host for the autocomplete field
// controller.
//
// It loads a field configuration and an item catalog, runs the field in a
// bubbletea program and prints the bound model on exit.
//
// Usage:
//
//	ion-autocomplete [flags]
//	ion-autocomplete init [path]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ionautocomplete/internal/autocomplete"
	"ionautocomplete/internal/catalog"
	"ionautocomplete/internal/config"
	"ionautocomplete/internal/eventbus"
	"ionautocomplete/internal/logging"
	"ionautocomplete/internal/ui"
)

// e2eEnvVar makes the view print a ready marker for the pty test driver
const e2eEnvVar = "IONAC_E2E_TEST"

// Root command flags
var (
	configPath  string
	multiple    bool
	placeholder string
	cancelLabel string
	viewKey     string
	valueKey    string
	latency     string
	failOn      string
	unbound     bool
	logLevel    string
	logFile     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ion-autocomplete",
	Short: "Autocomplete field demo",
	Long: `Runs a single autocomplete field in the terminal.

The field starts with its search overlay hidden. Open it, type a query and
pick a candidate; the bound model is printed when the program exits.

Without --config the built-in demo catalog is used.`,
	Example: `  # Single select over the demo catalog
  ion-autocomplete

  # Multi-select with a slow lookup that fails on "zz"
  ion-autocomplete --multiple --latency 300ms --fail-on zz

  # Field and catalog from a file
  ion-autocomplete --config field.toml`,
	SilenceUsage: true,
	RunE:         runField,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (.toml, .yaml)")
	rootCmd.Flags().BoolVar(&multiple, "multiple", false, "Allow selecting several items")
	rootCmd.Flags().StringVar(&placeholder, "placeholder", "", "Placeholder of the field and search input")
	rootCmd.Flags().StringVar(&cancelLabel, "cancel-label", "", "Label of the cancel control")
	rootCmd.Flags().StringVar(&viewKey, "view-key", "", "Key path of the item display text")
	rootCmd.Flags().StringVar(&valueKey, "value-key", "", "Key path of the item value committed to the model")
	rootCmd.Flags().StringVar(&latency, "latency", "", "Simulated lookup latency, e.g. 250ms")
	rootCmd.Flags().StringVar(&failOn, "fail-on", "", "Reject lookups whose query contains this text")
	rootCmd.Flags().BoolVar(&unbound, "unbound", false, "Run the field without a bound model")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to $"+logging.LogLevelEnvVar)
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", logging.DefaultLogFile, "Log file")

	rootCmd.AddCommand(initCmd)
}

func runField(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(logLevel, logFile); err != nil {
		return err
	}
	defer logging.Sync()
	log := logging.Named("main")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	bus := eventbus.New(logging.Named("eventbus"))
	defer bus.Close()
	subscribeEventLog(bus, log)

	cfg, err := loadConfig(config.NewConfigServiceWithBus(bus))
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	lookupLatency, _ := cfg.LatencyDuration()
	cat := catalog.New(cfg.CatalogItems(), cfg.SearchKey())
	lookup := cat.Lookup(catalog.LookupOptions{
		Latency: lookupLatency,
		FailOn:  cfg.Lookup.FailOn,
		Logger:  logging.Named("catalog"),
	})

	var binding autocomplete.Binding
	if !unbound {
		b := autocomplete.NewBinding(cfg.Model)
		b.OnChange(func(v any) {
			log.Debug("model changed", zap.Any("value", v))
		})
		binding = b
	}

	ctl := autocomplete.New(cfg.FieldConfig(), binding, lookup,
		autocomplete.WithLogger(logging.Named("autocomplete")),
		autocomplete.WithObserver(eventbus.NewFieldObserver(bus, cfg.Field.Name)),
		autocomplete.WithSelectedItems(cfg.SeedItems()),
		autocomplete.WithErrorSink(func(err error) {
			log.Error("lookup rejected", zap.Error(err))
		}),
	)

	model := ui.NewModel(ctx, ctl, ui.Options{
		Title:    cfg.UI.Title,
		ShowHelp: cfg.UI.ShowHelp,
		E2E:      os.Getenv(e2eEnvVar) == "1",
	}, logging.Named("ui"))

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	log.Info("starting field",
		zap.String("field", cfg.Field.Name),
		zap.Bool("multiple", cfg.Field.MultipleSelect),
		zap.Int("items", cat.Len()))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	data, err := json.Marshal(model.Selection())
	if err != nil {
		return fmt.Errorf("failed to encode selection: %w", err)
	}
	fmt.Printf("selection: %s\n", data)
	return nil
}

func loadConfig(svc config.ConfigService) (*config.Config, error) {
	if configPath == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := svc.LoadFromPath(configPath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", configPath, err)
	}
	return cfg, nil
}

// applyFlags overrides config values with explicitly set flags
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("multiple") {
		cfg.Field.MultipleSelect = multiple
	}
	if flags.Changed("placeholder") {
		cfg.Field.Placeholder = placeholder
	}
	if flags.Changed("cancel-label") {
		cfg.Field.CancelLabel = cancelLabel
	}
	if flags.Changed("view-key") {
		cfg.Field.ItemViewValueKey = viewKey
	}
	if flags.Changed("value-key") {
		cfg.Field.ItemValueKey = valueKey
	}
	if flags.Changed("latency") {
		cfg.Lookup.Latency = latency
	}
	if flags.Changed("fail-on") {
		cfg.Lookup.FailOn = failOn
	}
}

// subscribeEventLog logs every domain event at debug level
func subscribeEventLog(bus eventbus.EventBus, log *zap.Logger) {
	for _, t := range []eventbus.EventType{
		eventbus.EventOverlayOpened,
		eventbus.EventOverlayClosed,
		eventbus.EventSelectionChanged,
		eventbus.EventLookupFailed,
		eventbus.EventConfigLoaded,
	} {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			log.Debug("event", zap.String("type", string(e.Type())), zap.Any("event", e))
		})
	}
}
