package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"roomfit/internal/export"
	"roomfit/internal/fit"
	"roomfit/internal/history"
	"roomfit/internal/units"
)

func newCheckCmd() *cobra.Command {
	var (
		itemID     string
		roomLength string
		roomWidth  string
		itemLength string
		itemWidth  string
		xlsxPath   string
		dxfPath    string
		save       bool
	)

	cmd := &cobra.Command{
		Use:   "check ROOM",
		Short: "Check whether an item fits comfortably in a room",
		Long: `Check whether an item fits comfortably in a room.

Room and item dimensions are centimeters (metric) or feet (imperial).
When --item is omitted, the room's first listed item is used; when item
dimensions are omitted, the item's catalog defaults are used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys := unitSystem()
			unit := sys.LengthLabel()

			room, err := cat.Room(args[0])
			if err != nil {
				return fmt.Errorf("%w (try 'roomfit rooms')", err)
			}

			item, err := cat.ResolveItem(room, itemID)
			if err != nil {
				return fmt.Errorf("%w (try 'roomfit items %s')", err, room.ID)
			}

			roomLen, err := units.ParsePositive(roomLength, "room length ("+unit+")")
			if err != nil {
				return err
			}
			roomWid, err := units.ParsePositive(roomWidth, "room width ("+unit+")")
			if err != nil {
				return err
			}

			roomLenCm := units.ToCm(roomLen, sys)
			roomWidCm := units.ToCm(roomWid, sys)

			// Shape sanity first; a room that fails here never reaches
			// the fit evaluator.
			lengthM := roomLenCm / 100
			widthM := roomWidCm / 100
			validation := fit.ValidateRoomDimensions(room.ID, room.Label, &lengthM, &widthM, sys)
			if !validation.OK {
				printRecommendation(fit.BuildInvalidRoomRecommendation(validation))
				return nil
			}

			itemLenCm := item.DefaultLengthCm
			if itemLength != "" {
				v, err := units.ParsePositive(itemLength, item.Label+" length ("+unit+")")
				if err != nil {
					return err
				}
				itemLenCm = units.ToCm(v, sys)
			}
			itemWidCm := item.DefaultWidthCm
			if itemWidth != "" {
				v, err := units.ParsePositive(itemWidth, item.Label+" width ("+unit+")")
				if err != nil {
					return err
				}
				itemWidCm = units.ToCm(v, sys)
			}

			analysis, err := fit.Evaluate(room, item, roomLenCm, roomWidCm, itemLenCm, itemWidCm)
			if err != nil {
				return err
			}
			rec := fit.BuildRecommendation(analysis)

			printRecommendation(rec)
			printOrientations(analysis, sys)

			if xlsxPath != "" {
				if err := export.ExportExcel(xlsxPath, analysis, rec, sys); err != nil {
					return fmt.Errorf("export xlsx: %w", err)
				}
				fmt.Printf("Report written to %s\n", xlsxPath)
			}
			if dxfPath != "" {
				if err := export.ExportDXF(dxfPath, analysis); err != nil {
					return fmt.Errorf("export dxf: %w", err)
				}
				fmt.Printf("Sketch written to %s\n", dxfPath)
			}
			if save {
				if err := saveCheck(analysis, sys); err != nil {
					return fmt.Errorf("save history: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&itemID, "item", "i", "", "Item identifier (default: the room's first item)")
	cmd.Flags().StringVar(&roomLength, "room-length", "", "Room length")
	cmd.Flags().StringVar(&roomWidth, "room-width", "", "Room width")
	cmd.Flags().StringVar(&itemLength, "item-length", "", "Item length (default: catalog size)")
	cmd.Flags().StringVar(&itemWidth, "item-width", "", "Item width (default: catalog size)")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Write an Excel report to this path")
	cmd.Flags().StringVar(&dxfPath, "dxf", "", "Write a DXF sketch to this path")
	cmd.Flags().BoolVar(&save, "save", false, "Save this check to history")
	cmd.MarkFlagRequired("room-length")
	cmd.MarkFlagRequired("room-width")

	return cmd
}

func verdictColor(v fit.Verdict) *color.Color {
	switch v {
	case fit.VerdictComfortable:
		return color.New(color.FgGreen, color.Bold)
	case fit.VerdictTight:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

func printRecommendation(rec fit.Recommendation) {
	fmt.Println()
	verdictColor(rec.Status).Println(rec.Title)
	fmt.Println(rec.Summary)
	fmt.Println()
	for _, b := range rec.Bullets {
		fmt.Printf("  • %s\n", b)
	}
	if rec.Tip != "" {
		fmt.Println()
		color.New(color.FgCyan).Println(rec.Tip)
	}
}

func printOrientations(analysis fit.FitAnalysis, sys units.System) {
	unit := sys.LengthLabel()
	dim := func(cm float64) string {
		return units.Format(units.FromCm(cm, sys))
	}

	fmt.Println()
	color.New(color.Bold).Println("Details")
	for _, o := range []fit.OrientationOutcome{analysis.Best, analysis.Other} {
		marker := " "
		if o == analysis.Best {
			marker = "*"
		}
		fmt.Printf("%s %-20s needs %s×%s %s, leaves %s×%s %s, fills %.0f%% — %s\n",
			marker, o.OrientationLabel(),
			dim(o.RequiredLengthCm), dim(o.RequiredWidthCm), unit,
			dim(o.RemainingLengthCm), dim(o.RemainingWidthCm), unit,
			o.OccupancyRatio*100, o.Verdict.Label())
	}
}

func saveCheck(analysis fit.FitAnalysis, sys units.System) error {
	path := history.DefaultHistoryPath()
	store, err := history.Load(path)
	if err != nil {
		return err
	}
	check := history.NewSavedCheck(analysis, sys)
	store.Add(check, appConfig.HistoryLimit)
	if err := history.Save(path, store); err != nil {
		return err
	}
	fmt.Printf("Saved as %s\n", check.ID)
	return nil
}
