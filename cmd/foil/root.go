package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aerotools-go/foil"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "foil",
	Short: "Inspect and transform airfoil coordinate files",
	Long: `foil works on 2D airfoil geometry: coordinate (.dat) and Bézier
definition (.bez) files. It reports thickness, camber and paneling
quality, normalizes and repanels airfoils, morphs the trailing edge
gap, and blends two airfoils into a strak.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadAirfoil reads a coordinate file into an airfoil, turning the package's
// logged load failures into a hard error for the CLI.
func loadAirfoil(path string) (*foil.Airfoil, error) {
	a := foil.NewAirfoilFromFile(path, "")
	a.Load()
	if !a.IsLoaded() {
		return nil, fmt.Errorf("cannot load airfoil from %q", path)
	}
	return a, nil
}

// saveTo writes the airfoil under the given output path, defaulting to the
// input path with the suffix appended to the name stem.
func saveTo(a *foil.Airfoil, out, inPath, suffix string) (string, error) {
	if out == "" {
		stem := strings.TrimSuffix(inPath, filepath.Ext(inPath))
		out = stem + suffix + ".dat"
	}
	dir := filepath.Dir(out)
	stem := strings.TrimSuffix(filepath.Base(out), filepath.Ext(out))
	return a.SaveAs(dir, stem)
}
