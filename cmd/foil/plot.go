package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/aerotools-go/foil"
)

var plotOut string

func init() {
	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().StringVarP(&plotOut, "out", "o", "", "output image (default: input stem + .png)")
}

var plotCmd = &cobra.Command{
	Use:   "plot <file>",
	Short: "Plot an airfoil's shape",
	Long: "Render the airfoil's surfaces together with its camber line " +
		"and thickness distribution to an image file.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadAirfoil(args[0])
		if err != nil {
			return err
		}

		out := plotOut
		if out == "" {
			out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".png"
		}
		if err := plotAirfoil(a, out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "written to %s\n", out)
		return nil
	},
}

func plotAirfoil(a *foil.Airfoil, out string) error {
	upper, err := a.Upper()
	if err != nil {
		return err
	}
	lower, err := a.Lower()
	if err != nil {
		return err
	}
	camber, err := a.Camber()
	if err != nil {
		return err
	}
	thickness, err := a.Thickness()
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = a.Name()
	p.X.Label.Text = "x/c"
	p.Y.Label.Text = "y/c"

	err = plotutil.AddLines(p,
		"upper", sideXYs(upper),
		"lower", sideXYs(lower),
		"camber", sideXYs(camber),
		"thickness", sideXYs(thickness),
	)
	if err != nil {
		return err
	}
	return p.Save(10*vg.Inch, 3*vg.Inch, out)
}

func sideXYs(s *foil.Side) plotter.XYs {
	pts := make(plotter.XYs, s.Len())
	for i := range pts {
		pts[i].X = s.X()[i]
		pts[i].Y = s.Y()[i]
	}
	return pts
}
