package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aerotools-go/foil"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Print an airfoil's geometry summary",
	Long: "Print name, paneling and shape parameters of an airfoil, " +
		"together with paneling quality indicators.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadAirfoil(args[0])
		if err != nil {
			return err
		}
		return printInfo(cmd, a)
	},
}

func printInfo(cmd *cobra.Command, a *foil.Airfoil) error {
	mt, err := a.MaxThickness()
	if err != nil {
		return err
	}
	mtx, err := a.MaxThicknessX()
	if err != nil {
		return err
	}
	mc, err := a.MaxCamber()
	if err != nil {
		return err
	}
	mcx, err := a.MaxCamberX()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Name:       %s\n", a.Name())
	fmt.Fprintf(w, "Points:     %d\n", len(a.X()))
	fmt.Fprintf(w, "Normalized: %v\n", a.IsNormalized())
	fmt.Fprintf(w, "Symmetric:  %v\n", a.IsSymmetric())
	fmt.Fprintf(w, "Thickness:  %.2f%% at %.1f%%\n", mt, mtx)
	fmt.Fprintf(w, "Camber:     %.2f%% at %.1f%%\n", mc, mcx)
	fmt.Fprintf(w, "TE gap:     %.2f%%\n", a.TEGap())

	if pg, ok := a.Geo().(*foil.PointGeometry); ok {
		up, lo := pg.LEPanelAngle()
		fmt.Fprintf(w, "LE panels:  %.2f° / %.2f°\n", up, lo)
		angle, at := pg.PanelAngleMin()
		fmt.Fprintf(w, "Panels:     min angle %.1f° at point %d\n", angle, at)
		if pg.LEPanelsDegenerate() {
			fmt.Fprintf(w, "Warning:    leading edge panels are nearly perpendicular to the chord\n")
		}
	}

	upper, err := a.Upper()
	if err != nil {
		return err
	}
	lower, err := a.Lower()
	if err != nil {
		return err
	}
	if revs := upper.Reversals(); len(revs) > 0 {
		fmt.Fprintf(w, "Warning:    %d curvature reversal(s) on the upper surface\n", len(revs))
	}
	if revs := lower.Reversals(); len(revs) > 0 {
		fmt.Fprintf(w, "Warning:    %d curvature reversal(s) on the lower surface\n", len(revs))
	}
	return nil
}
