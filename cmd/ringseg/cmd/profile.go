package cmd

import (
	"fmt"
	"log"

	"github.com/soypat/ringseg/form2/obj2"
	"github.com/soypat/ringseg/render"
	"github.com/spf13/cobra"
)

var (
	baseDiameter = inches(4 + 3./4)
	baseHeight   = inches(1. / 2)
	layerFlags   []string
	division     float64
	profileColor string
)

// Rings of the original bowl, bottom to top.
var defaultLayers = []string{
	"5.5,1-1/8,1-3/8",
	"6.5,1-1/8,1-3/8",
	"6-5/8,1-1/4,3/4",
	"6.5,1-1/8,1-3/8",
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Draw the side profile of stacked rings",
	Long: `Draws the side view of a turned vessel: a solid base with rings
stacked on top of it. Each --layer is "diameter,height,wall" and layers are
given bottom to top.`,
	Args: cobra.NoArgs,
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	f := profileCmd.Flags()
	f.Var(&baseDiameter, "base-diameter", "diameter of the solid base")
	f.Var(&baseHeight, "base-height", "height of the solid base")
	f.StringArrayVar(&layerFlags, "layer", defaultLayers, "stacked ring as diameter,height,wall (repeatable)")
	f.Float64Var(&division, "division", render.DefaultProfileConfig().Division, "height of the base line as a fraction of the canvas, from the top")
	f.StringVar(&profileColor, "color", "green", "stroke colour of the profile")
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg := render.DefaultProfileConfig()
	cfg.Size = size
	cfg.Division = division
	var err error
	if cfg.Profile.Stroke, err = render.ParseColor(profileColor); err != nil {
		return err
	}
	k := obj2.ProfileParams{
		BaseDiameter: float64(baseDiameter),
		BaseHeight:   float64(baseHeight),
	}
	for _, lf := range layerFlags {
		d, h, w, err := parseLayer(lf)
		if err != nil {
			return err
		}
		k.Layers = append(k.Layers, obj2.LayerParams{Diameter: d, Height: h, Wall: w})
	}
	base, layers, err := obj2.Profile(k, scale())
	if err != nil {
		return err
	}
	path := output
	if path == "" {
		path = "profile.svg"
	}
	d, err := render.ProfileSketch(cfg, path, base, layers)
	if err != nil {
		return err
	}
	log.Printf("profile with %d layers", len(layers))
	if err = save(d); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "base: radius=%g height=%g\n", base.Radius, base.Height)
	for i, l := range layers {
		fmt.Fprintf(out, "layer %d: radius=%g height=%g thickness=%g altitude=%g\n", i, l.Radius, l.Height, l.Thickness, l.Altitude)
	}
	return nil
}
