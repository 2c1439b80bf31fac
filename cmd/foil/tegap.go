package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aerotools-go/foil"
)

var (
	tegapOut   string
	tegapBlend float64
)

func init() {
	rootCmd.AddCommand(tegapCmd)
	tegapCmd.Flags().StringVarP(&tegapOut, "out", "o", "", "output file (default: input stem + _te.dat)")
	tegapCmd.Flags().Float64Var(&tegapBlend, "blend", foil.DefaultTEBlend, "blending distance from the trailing edge (0..1)")
}

var tegapCmd = &cobra.Command{
	Use:   "tegap <file> <gap%>",
	Short: "Set an airfoil's trailing edge gap",
	Long: "Morph the airfoil to a new trailing edge gap, given in percent " +
		"of the chord. The change tapers off towards the leading edge over " +
		"the blending distance.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		gap, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("gap %q is not a number", args[1])
		}

		a, err := loadAirfoil(args[0])
		if err != nil {
			return err
		}
		xs, ys, err := a.WithTEGap(gap/100, tegapBlend)
		if err != nil {
			return err
		}
		a.SetXY(xs, ys)
		fmt.Fprintf(cmd.OutOrStdout(), "set trailing edge gap of '%s' to %.2f%%\n", a.Name(), a.TEGap())

		path, err := saveTo(a, tegapOut, args[0], "_te")
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "written to %s\n", path)
		return nil
	},
}
