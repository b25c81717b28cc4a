package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"roomfit/internal/units"
)

func newRoomsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rooms",
		Short: "List the supported room types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bold := color.New(color.Bold)
			for _, room := range cat.Rooms() {
				bold.Printf("%-16s", room.ID)
				fmt.Printf(" %s", room.Label)
				if room.Description != "" {
					fmt.Printf(" — %s", room.Description)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func newItemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "items ROOM",
		Short: "List the items that belong in a room type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			room, err := cat.Room(args[0])
			if err != nil {
				return fmt.Errorf("%w (try 'roomfit rooms')", err)
			}

			sys := unitSystem()
			unit := sys.LengthLabel()

			color.New(color.Bold).Println(room.Label)
			for _, item := range cat.ItemsFor(room) {
				fmt.Printf("  %-24s %s  (%s × %s %s)\n",
					item.ID, item.Label,
					units.Format(units.FromCm(item.DefaultLengthCm, sys)),
					units.Format(units.FromCm(item.DefaultWidthCm, sys)),
					unit)
			}
			return nil
		},
	}
}
