package main

import (
	"github.com/spf13/cobra"

	"github.com/PR0TX/Vaillant-calorMATIC-630-Heating-Curves/src/chartrender"
	"github.com/PR0TX/Vaillant-calorMATIC-630-Heating-Curves/src/heatcurve"
)

// NewComputeCommand .
func NewComputeCommand() *cobra.Command {
	flags := newParamFlags()
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the flow temperature for one parameter set",
		Long: `Compute the flow temperature for one parameter set.
The slope is interpolated against the calorMATIC 630 calibration table and the
result is clamped to the configured flow bounds.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := flags.toParams()
			result, meta := chartrender.Summary(p)
			cmd.Printf("%s\n", result)
			cmd.Printf("%s\n", meta)
			cmd.Printf("gain=%.3f\n", heatcurve.GainAt(p.Slope))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
