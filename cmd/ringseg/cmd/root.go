package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/soypat/ringseg"
	"github.com/soypat/ringseg/render"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose   bool
	pxPerInch float64
	size      float64
	output    string
)

var rootCmd = &cobra.Command{
	Use:   "ringseg",
	Short: "ringseg - segmented ring layout templates",
	Long: `ringseg computes the segments needed to glue up lathe turned rings
and draws them as templates for printing and cutting.

Dimensions are given in inches, fractions allowed (6-5/8, 3/4, 1.125).

Examples:
  ringseg ring --diameter 6-5/8 --wall 3/4 --segments 12
  ringseg ring --segments 7 -o seven.pdf
  ringseg profile --layer 5.5,1-1/8,1-3/8 --layer 6.5,1-1/8,1-3/8`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetFlags(0)
		log.SetPrefix("ringseg: ")
		if !verbose {
			log.SetOutput(io.Discard)
		}
		if !(pxPerInch > 0) {
			return fmt.Errorf("--px-per-inch must be positive, got %g", pxPerInch)
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Float64Var(&pxPerInch, "px-per-inch", float64(ringseg.DefaultScale), "drawing units per inch")
	rootCmd.PersistentFlags().Float64Var(&size, "size", render.DefaultConfig().Size, "side of the square canvas in drawing units")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output file, format given by extension (svg, png, pdf, eps)")
}

func scale() ringseg.Scale { return ringseg.Scale(pxPerInch) }

// save writes d and warns when the sketch spills off the canvas.
func save(d *render.Drawing) error {
	if !d.Fits() {
		fmt.Fprintf(os.Stderr, "warning: sketch bounds %v exceed the %gx%g canvas, try a smaller --px-per-inch\n", d.Bounds(), size, size)
	}
	if err := d.Save(); err != nil {
		return fmt.Errorf("saving %s: %w", d.Path(), err)
	}
	log.Printf("wrote %s", d.Path())
	return nil
}
