package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/PR0TX/Vaillant-calorMATIC-630-Heating-Curves/src/viewstate"
)

var (
	logLevel = "info"
)

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	return nil
}

// NewCommand .
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heatcurvectl",
		Short: "heatcurvectl computes and renders calorMATIC 630 heating curves",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger()
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")

	cmd.AddCommand(
		NewComputeCommand(),
		NewRenderCommand(),
		NewServeCommand(),
	)

	return cmd
}

// paramFlags binds the heating-curve parameters to a command's flag set.
type paramFlags struct {
	room    float64
	outdoor float64
	slope   float64
	flowMin float64
	flowMax float64

	showAll    bool
	showGrid   bool
	showGuides bool
}

func newParamFlags() *paramFlags {
	d := viewstate.Defaults()
	return &paramFlags{
		room: d.Room, outdoor: d.Outdoor, slope: d.Slope,
		flowMin: d.FlowMin, flowMax: d.FlowMax,
		showAll: d.ShowAll, showGrid: d.ShowGrid, showGuides: d.ShowGuides,
	}
}

func (f *paramFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.Float64Var(&f.room, "room", f.room, "room target temperature in °C")
	fl.Float64Var(&f.outdoor, "outdoor", f.outdoor, "outdoor temperature in °C")
	fl.Float64Var(&f.slope, "slope", f.slope, "heating curve slope")
	fl.Float64Var(&f.flowMin, "min", f.flowMin, "minimum flow temperature in °C")
	fl.Float64Var(&f.flowMax, "max", f.flowMax, "maximum flow temperature in °C")
	fl.BoolVar(&f.showAll, "all-curves", f.showAll, "draw the whole curve family")
	fl.BoolVar(&f.showGrid, "grid", f.showGrid, "draw the background grid")
	fl.BoolVar(&f.showGuides, "guides", f.showGuides, "draw the 18/20/22 °C guide curves")
}

// toParams funnels the raw flag values through the view-state setters so CLI
// input gets the same clamping and snapping as the sliders.
func (f *paramFlags) toParams() viewstate.Params {
	p := viewstate.Defaults()
	p.SetRoom(f.room)
	p.SetOutdoor(f.outdoor)
	p.SetSlope(f.slope)
	p.SetFlowMin(f.flowMin)
	p.SetFlowMax(f.flowMax)
	p.ShowAll = f.showAll
	p.ShowGrid = f.showGrid
	p.ShowGuides = f.showGuides
	return p
}

func main() {
	if err := NewCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
