package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ionautocomplete/internal/config"
)

var initForce bool

// initCmd writes the demo configuration as a starting point
var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the demo configuration to a file",
	Long: `Writes the built-in demo field and catalog to a config file.

The format follows the extension: .toml, .yaml or .yml.`,
	Example: `  ion-autocomplete init
  ion-autocomplete init field.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "ion-autocomplete.toml"
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := config.NewConfigService().SaveToPath(config.DefaultConfig(), path); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
