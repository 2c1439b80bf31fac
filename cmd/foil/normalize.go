package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var normalizeOut string

func init() {
	rootCmd.AddCommand(normalizeCmd)
	normalizeCmd.Flags().StringVarP(&normalizeOut, "out", "o", "", "output file (default: input stem + _norm.dat)")
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize <file>",
	Short: "Normalize an airfoil to the unit chord",
	Long: "Shift, rotate and scale an airfoil so the leading edge is at " +
		"(0,0) and the trailing edge is symmetric at x=1.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadAirfoil(args[0])
		if err != nil {
			return err
		}
		if a.Normalize(true) {
			fmt.Fprintf(cmd.OutOrStdout(), "normalized '%s'\n", a.Name())
		} else if !a.IsNormalized() {
			return fmt.Errorf("airfoil '%s' could not be normalized", a.Name())
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "'%s' is already normalized\n", a.Name())
		}

		path, err := saveTo(a, normalizeOut, args[0], "_norm")
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "written to %s\n", path)
		return nil
	},
}
