package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aerotools-go/foil"
)

var blendOut string

func init() {
	rootCmd.AddCommand(blendCmd)
	blendCmd.Flags().StringVarP(&blendOut, "out", "o", "", "output file (default: the blend name + .dat)")
}

var blendCmd = &cobra.Command{
	Use:   "blend <file1> <file2> <factor>",
	Short: "Blend two airfoils into a strak",
	Long: "Interpolate two airfoil shapes: a factor of 0 reproduces the " +
		"first airfoil, 1 the second. Both airfoils are normalized before " +
		"blending.",
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		factor, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("blend factor %q is not a number", args[2])
		}

		air1, err := loadAirfoil(args[0])
		if err != nil {
			return err
		}
		air2, err := loadAirfoil(args[1])
		if err != nil {
			return err
		}
		a, err := foil.NewBlended(air1, air2, factor)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "blended '%s'\n", a.Name())

		out := blendOut
		if out == "" {
			out = a.Name() + ".dat"
		}
		path, err := saveTo(a, out, "", "")
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "written to %s\n", path)
		return nil
	},
}
