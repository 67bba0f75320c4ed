package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/PR0TX/Vaillant-calorMATIC-630-Heating-Curves/src/chartrender"
)

// NewRenderCommand .
func NewRenderCommand() *cobra.Command {
	flags := newParamFlags()
	var (
		outPath string
		width   int
		height  int
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the heating-curve chart to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := flags.toParams()

			s := chartrender.NewImageSurface(width, height)
			chartrender.Frame(s, p)

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			defer f.Close()
			if err := s.EncodePNG(f); err != nil {
				return fmt.Errorf("png encode: %w", err)
			}

			logrus.Infof("wrote %s (%dx%d)", outPath, width, height)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&outPath, "output", "o", "heating_curves.png", "output PNG path")
	cmd.Flags().IntVar(&width, "width", 1100, "chart width in pixels")
	cmd.Flags().IntVar(&height, "height", 687, "chart height in pixels")
	return cmd
}
