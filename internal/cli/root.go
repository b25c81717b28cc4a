// Package cli is the command-line caller of the fit-evaluation core. It
// owns everything the core delegates to callers: parsing user input,
// resolving catalog defaults, unit selection, and rendering results.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"roomfit/internal/catalog"
	"roomfit/internal/history"
	"roomfit/internal/units"
)

var (
	cat       *catalog.Catalog
	appConfig history.AppConfig

	unitsFlag     string
	overridesPath string
)

// NewRootCmd builds the roomfit command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "roomfit",
		Short: "Check whether furniture fits comfortably in a room",
		Long: `roomfit answers a simple question: given a room and a piece of
furniture, will it fit comfortably, fit tightly, or not fit at all —
accounting for the space a person needs to actually use it.

Examples:
  # List room types and their items
  roomfit rooms
  roomfit items bedroom

  # Check a queen bed in a 420x350 cm bedroom
  roomfit check bedroom --item bed_queen --room-length 420 --room-width 350

  # Same check in feet, with an Excel report
  roomfit check bedroom --item bed_queen --room-length 14 --room-width 11.5 --units imperial --xlsx report.xlsx

  # Is this room a pleasant size at all?
  roomfit roomcheck bedroom --length 4.2 --width 3.5`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&unitsFlag, "units", "u", "", "Unit system: metric or imperial (default from config)")
	root.PersistentFlags().StringVar(&overridesPath, "catalog-overrides", "", "Path to a YAML catalog override file")

	root.AddCommand(newRoomsCmd())
	root.AddCommand(newItemsCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newRoomcheckCmd())
	root.AddCommand(newHistoryCmd())

	return root
}

// setup loads preferences and builds the catalog once per invocation. The
// catalog is read-only after this point.
func setup(cmd *cobra.Command) error {
	var err error
	appConfig, err = history.LoadAppConfig(history.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if unitsFlag == "" {
		unitsFlag = appConfig.DefaultUnits
	}

	cat = catalog.Default()

	path := overridesPath
	if path == "" {
		path = filepath.Join(history.DefaultConfigDir(), "catalog.yaml")
	}
	overrides, err := catalog.LoadOverrides(path)
	if err != nil {
		return fmt.Errorf("load catalog overrides: %w", err)
	}
	return cat.Apply(overrides)
}

func unitSystem() units.System {
	return units.ParseSystem(unitsFlag)
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
