package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"roomfit/internal/fit"
	"roomfit/internal/roomcheck"
	"roomfit/internal/units"
)

func newRoomcheckCmd() *cobra.Command {
	var (
		lengthRaw string
		widthRaw  string
		areaRaw   string
	)

	cmd := &cobra.Command{
		Use:   "roomcheck ROOM",
		Short: "Judge whether a room size is pleasant to live with",
		Long: `Judge whether a room size is pleasant to live with, independent of
any particular piece of furniture.

Give either both sides (--length and --width) or the floor area
(--area, optionally with one side so the shape can be judged too).
Sides are meters (metric) or feet (imperial); areas are m² or ft².`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys := unitSystem()

			room, err := cat.Room(args[0])
			if err != nil {
				return fmt.Errorf("%w (try 'roomfit rooms')", err)
			}

			in := roomcheck.Inputs{Method: roomcheck.MethodDims}
			if areaRaw != "" {
				in.Method = roomcheck.MethodArea
				in.Area, err = units.ParsePositive(areaRaw, "area ("+sys.AreaLabel()+")")
				if err != nil {
					return err
				}
				in.HasArea = true
			}
			if lengthRaw != "" {
				in.Length, err = units.ParsePositive(lengthRaw, "length ("+sys.RoomLengthLabel()+")")
				if err != nil {
					return err
				}
			}
			if widthRaw != "" {
				in.Width, err = units.ParsePositive(widthRaw, "width ("+sys.RoomLengthLabel()+")")
				if err != nil {
					return err
				}
			}

			result, err := roomcheck.Evaluate(room, in, sys)
			if err != nil {
				return err
			}

			printRoomcheck(room.Label, result, sys)
			return nil
		},
	}

	cmd.Flags().StringVar(&lengthRaw, "length", "", "Room length")
	cmd.Flags().StringVar(&widthRaw, "width", "", "Room width")
	cmd.Flags().StringVar(&areaRaw, "area", "", "Room floor area")

	return cmd
}

func statusColor(s fit.Status) *color.Color {
	switch s {
	case fit.StatusOK:
		return color.New(color.FgGreen, color.Bold)
	case fit.StatusWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

func printRoomcheck(roomLabel string, result roomcheck.Result, sys units.System) {
	fmt.Println()
	statusColor(result.Status).Printf("%s: %s\n", roomLabel, result.Verdict)
	fmt.Printf("Area: %s %s\n", units.Format(units.FromM2(result.AreaM2, sys)), sys.AreaLabel())
	if result.LengthM > 0 && result.WidthM > 0 {
		fmt.Printf("Shape: %s × %s %s\n",
			units.Format(units.FromM(result.LengthM, sys)),
			units.Format(units.FromM(result.WidthM, sys)),
			sys.RoomLengthLabel())
	}
	if result.ShapeNote != "" {
		fmt.Println(result.ShapeNote)
	}
}
