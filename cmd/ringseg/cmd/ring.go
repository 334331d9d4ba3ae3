package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/soypat/ringseg"
	"github.com/soypat/ringseg/form2/obj2"
	"github.com/soypat/ringseg/render"
	"github.com/spf13/cobra"
)

var (
	ringDiameter = inches(6 + 5./8)
	ringWall     = inches(3. / 4)
	ringSegments int
	ringUnits    string
	ringColor    string
	segmentColor string
)

var ringCmd = &cobra.Command{
	Use:   "ring",
	Short: "Draw the segment layout of a ring",
	Long: `Draws a ring as two concentric circles and the trapezoidal segments
that enclose it, then prints the cut lengths of each segment and the total
stock needed.

The total stock length averages the inner and outer faces of a segment and
is an estimate, it does not account for kerf.`,
	Args: cobra.NoArgs,
	RunE: runRing,
}

func init() {
	rootCmd.AddCommand(ringCmd)
	f := ringCmd.Flags()
	f.Var(&ringDiameter, "diameter", "outside diameter of the ring")
	f.Var(&ringWall, "wall", "ring wall thickness")
	f.IntVarP(&ringSegments, "segments", "n", 12, "number of segments")
	f.StringVar(&ringUnits, "units", "in", "units of reported lengths: in or px")
	f.StringVar(&ringColor, "ring-color", "black", "stroke colour of the ring walls")
	f.StringVar(&segmentColor, "segment-color", "blue", "stroke colour of the segments")
}

func runRing(cmd *cobra.Command, args []string) error {
	cfg := render.DefaultConfig()
	cfg.Size = size
	var err error
	if cfg.Ring.Stroke, err = render.ParseColor(ringColor); err != nil {
		return err
	}
	if cfg.Segment.Stroke, err = render.ParseColor(segmentColor); err != nil {
		return err
	}
	spec, err := obj2.SegmentedRing(obj2.RingParams{
		Diameter: float64(ringDiameter),
		Wall:     float64(ringWall),
		Segments: ringSegments,
	}, cfg.Origin(), scale())
	if err != nil {
		return err
	}
	log.Printf("ring radius=%g thickness=%g segments=%d", spec.Ring.Radius, spec.Ring.Thickness, spec.Segments)
	path := output
	if path == "" {
		path = "ring.svg"
	}
	d, err := render.RingSketch(cfg, path, spec)
	if err != nil {
		return err
	}
	var summary bytes.Buffer
	if err = printLengths(&summary, spec, ringUnits, scale()); err != nil {
		return err
	}
	if err = save(d); err != nil {
		return err
	}
	_, err = summary.WriteTo(cmd.OutOrStdout())
	return err
}

func printLengths(w io.Writer, spec ringseg.SegmentSpec, units string, sc ringseg.Scale) error {
	l, err := spec.Lengths()
	if err != nil {
		return err
	}
	conv := func(v float64) float64 { return v }
	switch units {
	case "px":
	case "in":
		conv = sc.ToInches
	default:
		return fmt.Errorf("unknown units %q, want in or px", units)
	}
	fmt.Fprintf(w, "segments: %d\n", spec.Segments)
	fmt.Fprintf(w, "degrees_per_segment: %g\n", spec.DegreesPerSegment())
	fmt.Fprintf(w, "outer_segment_length: %.4f %s\n", conv(l.Outer), units)
	fmt.Fprintf(w, "inner_segment_length: %.4f %s\n", conv(l.Inner), units)
	fmt.Fprintf(w, "all_segments_length: %.4f %s\n", conv(l.Total), units)
	return nil
}
