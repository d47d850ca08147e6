package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/DeltaTestSoftware/errplot"
)

var (
	verbose bool
	output  string
	width   float64
	height  float64

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "errplot",
	Short: "Render scatter and error-bar charts from YAML datasets",
	Long: `errplot renders charts described by a YAML dataset file, either in an
interactive window or as an image file.

A dataset file names the figure (title, axis labels, grid) and a list of
series, each with its data, optional error magnitudes and styling:

  title: Example of nice error bars
  xlabel: x
  ylabel: y
  grid: true
  series:
    - x: [1, 2, 3, 4, 5]
      y: [1.0, 2.1, 1.8, 3.2, 2.9]
      yerr: [0.2, 0.15, 0.3, 0.25, 0.2]
      marker: circle
      markersize: 6
      capsize: 5
      capthick: 1.5
      elinewidth: 1.2
      alpha: 0.9
      zorder: 3`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var showCmd = &cobra.Command{
	Use:   "show [dataset]",
	Short: "Display a dataset in an interactive window",
	Long: `Opens a window showing the dataset. Drag with the left mouse button to
pan, zoom with the mouse wheel, press R to reset the view, F11 to toggle
fullscreen and Escape to close the window.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var saveCmd = &cobra.Command{
	Use:   "save [dataset]",
	Short: "Render a dataset into an image file",
	Long: `Renders the dataset without opening a window. The image format is taken
from the output file extension (.png, .svg, .pdf), the size is given in
inches.`,
	Args: cobra.ExactArgs(1),
	RunE: runSave,
}

func runShow(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset(args[0])
	if err != nil {
		return err
	}
	logger.Debug("opening window",
		zap.String("dataset", args[0]),
		zap.Int("series", len(ds.Series)))
	return errplot.Plot(ds.build)
}

func runSave(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset(args[0])
	if err != nil {
		return err
	}
	if err := errplot.Save(output, width, height, ds.build); err != nil {
		return err
	}
	logger.Info("figure saved",
		zap.String("dataset", args[0]),
		zap.String("output", output),
		zap.Float64("width_inches", width),
		zap.Float64("height_inches", height))
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	saveCmd.Flags().StringVarP(&output, "output", "o", "plot.png", "output file")
	saveCmd.Flags().Float64Var(&width, "width", 6, "figure width in inches")
	saveCmd.Flags().Float64Var(&height, "height", 4, "figure height in inches")

	rootCmd.AddCommand(showCmd, saveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
