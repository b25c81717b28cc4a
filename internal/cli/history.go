package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"roomfit/internal/history"
	"roomfit/internal/units"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved fit checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.Load(history.DefaultHistoryPath())
			if err != nil {
				return fmt.Errorf("load history: %w", err)
			}
			if len(store.Checks) == 0 {
				fmt.Println("No saved checks yet. Run 'roomfit check ... --save' to keep one.")
				return nil
			}

			sys := unitSystem()
			unit := sys.LengthLabel()
			for _, c := range store.Checks {
				orientation := "as-is"
				if c.Rotated {
					orientation = "rotated"
				}
				fmt.Printf("%s  %s  %s in %s  %s×%s %s  %s  %s\n",
					color.New(color.Bold).Sprint(c.ID),
					c.CreatedAt,
					c.ItemLabel, c.RoomLabel,
					units.Format(units.FromCm(c.RoomLengthCm, sys)),
					units.Format(units.FromCm(c.RoomWidthCm, sys)),
					unit, orientation, c.Verdict)
			}
			return nil
		},
	}

	cmd.AddCommand(newHistoryRemoveCmd())
	cmd.AddCommand(newHistoryClearCmd())
	return cmd
}

func newHistoryRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove one saved check",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := history.DefaultHistoryPath()
			store, err := history.Load(path)
			if err != nil {
				return fmt.Errorf("load history: %w", err)
			}
			if !store.Remove(args[0]) {
				return fmt.Errorf("no saved check with id %q", args[0])
			}
			if err := history.Save(path, store); err != nil {
				return fmt.Errorf("save history: %w", err)
			}
			fmt.Printf("Removed %s\n", args[0])
			return nil
		},
	}
}

func newHistoryClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all saved checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := history.Save(history.DefaultHistoryPath(), history.Store{Checks: []history.SavedCheck{}}); err != nil {
				return fmt.Errorf("save history: %w", err)
			}
			fmt.Println("History cleared.")
			return nil
		},
	}
}
