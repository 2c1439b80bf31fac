package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aerotools-go/foil"
)

var (
	repanelOut     string
	repanelPanels  int
	repanelLEBunch float64
	repanelTEBunch float64
)

func init() {
	rootCmd.AddCommand(repanelCmd)
	repanelCmd.Flags().StringVarP(&repanelOut, "out", "o", "", "output file (default: input stem + _repan.dat)")
	repanelCmd.Flags().IntVarP(&repanelPanels, "panels", "n", foil.DefaultNPanels, "number of panels (even, 40..500)")
	repanelCmd.Flags().Float64Var(&repanelLEBunch, "le-bunch", foil.DefaultLEBunch, "leading edge bunching factor (0..1)")
	repanelCmd.Flags().Float64Var(&repanelTEBunch, "te-bunch", foil.DefaultTEBunch, "trailing edge bunching factor (0..1)")
}

var repanelCmd = &cobra.Command{
	Use:   "repanel <file>",
	Short: "Redistribute an airfoil's panels",
	Long: "Regenerate the coordinate points with a cosine-based panel " +
		"distribution, bunched towards the leading and trailing edges.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadAirfoil(args[0])
		if err != nil {
			return err
		}
		if err := a.SetLEBunch(repanelLEBunch); err != nil {
			return err
		}
		if err := a.SetTEBunch(repanelTEBunch); err != nil {
			return err
		}
		if err := a.SetNPanels(repanelPanels); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "repaneled '%s' to %d panels\n", a.Name(), a.NPanels())

		path, err := saveTo(a, repanelOut, args[0], "_repan")
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "written to %s\n", path)
		return nil
	},
}
