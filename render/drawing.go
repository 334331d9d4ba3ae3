package render

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/soypat/ringseg/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	// Output formats accepted by draw.NewFormattedCanvas.
	_ "gonum.org/v1/plot/vg/vgeps"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

// ErrSaved is returned when saving a drawing that was already saved.
var ErrSaved = errors.New("drawing already saved")

// Drawing is a Drawer that assembles a vector document in memory and
// persists it with a single call to Save. Drawing units are points.
type Drawing struct {
	path   string
	format string
	size   r2.Vec
	canvas vg.CanvasWriterTo
	bounds d2.Box
	saved  bool
}

// NewDrawing returns an empty size.X by size.Y drawing that is saved to path.
// The format is taken from the path's extension: svg, png, pdf, eps, jpg or tif.
// A path without extension is saved as svg.
func NewDrawing(path string, size r2.Vec) (*Drawing, error) {
	if d2.LTEZero(size) || !d2.IsFinite(size) {
		return nil, fmt.Errorf("bad drawing size %v", size)
	}
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format == "" {
		format = "svg"
		path += ".svg"
	}
	canvas, err := draw.NewFormattedCanvas(vg.Length(size.X), vg.Length(size.Y), format)
	if err != nil {
		return nil, err
	}
	// vg canvases put the origin at the bottom left corner with y growing
	// upwards. Flip them so callers work in top-left, y-down space.
	canvas.Translate(vg.Point{Y: vg.Length(size.Y)})
	canvas.Scale(1, -1)
	return &Drawing{
		path:   path,
		format: format,
		size:   size,
		canvas: canvas,
	}, nil
}

// Path returns the file the drawing is saved to.
func (d *Drawing) Path() string { return d.path }

// Format returns the output format, i.e: "svg".
func (d *Drawing) Format() string { return d.format }

// Bounds returns the box containing everything drawn so far.
func (d *Drawing) Bounds() r2.Box { return r2.Box(d.bounds) }

// Fits reports whether everything drawn so far lies on the canvas.
func (d *Drawing) Fits() bool {
	return d2.Box{Max: d.size}.ContainsBox(d.bounds)
}

// Line draws a straight line from start to end.
func (d *Drawing) Line(start, end r2.Vec, s Style) {
	var p vg.Path
	p.Move(point(start))
	p.Line(point(end))
	d.paint(p, Style{Stroke: s.Stroke, Width: s.Width})
	d.include(d2.Set{start, end}.Bounds())
}

// Circle draws a circle of given center and radius.
func (d *Drawing) Circle(center r2.Vec, radius float64, s Style) {
	var p vg.Path
	p.Move(point(r2.Vec{X: center.X + radius, Y: center.Y}))
	p.Arc(point(center), vg.Length(radius), 0, 2*math.Pi)
	p.Close()
	d.paint(p, s)
	d.include(d2.NewBox2(center, d2.Elem(2*radius)))
}

// Polygon draws the closed polygon through points. Fewer than 2 points
// draw nothing; callers building shapes check arity first, see form2.Quad.
func (d *Drawing) Polygon(points []r2.Vec, s Style) {
	if len(points) < 2 {
		return
	}
	var p vg.Path
	p.Move(point(points[0]))
	for _, v := range points[1:] {
		p.Line(point(v))
	}
	p.Close()
	d.paint(p, s)
	d.include(d2.Set(points).Bounds())
}

// Rect draws an axis aligned rectangle.
func (d *Drawing) Rect(topLeft, size r2.Vec, s Style) {
	br := r2.Add(topLeft, size)
	d.Polygon([]r2.Vec{topLeft, {X: br.X, Y: topLeft.Y}, br, {X: topLeft.X, Y: br.Y}}, s)
}

func (d *Drawing) paint(p vg.Path, s Style) {
	if s.Fill != nil {
		d.canvas.SetColor(s.Fill)
		d.canvas.Fill(p)
	}
	if s.Stroke != nil {
		d.canvas.SetColor(s.Stroke)
		d.canvas.SetLineWidth(s.lineWidth())
		d.canvas.Stroke(p)
	}
	d.canvas.SetColor(color.Black)
}

func (d *Drawing) include(b d2.Box) {
	d.bounds = d.bounds.Extend(b)
}

// Save writes the drawing to its path. The document is rendered fully
// in memory and written to a temporary file that replaces path only on success.
// Save may be called once.
func (d *Drawing) Save() (err error) {
	if d.saved {
		return ErrSaved
	}
	var buf bytes.Buffer
	if _, err = d.canvas.WriteTo(&buf); err != nil {
		return fmt.Errorf("rendering %s: %w", d.format, err)
	}
	dir := filepath.Dir(d.path)
	fp, err := os.CreateTemp(dir, "."+filepath.Base(d.path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			fp.Close()
			os.Remove(fp.Name())
		}
	}()
	if err = fp.Chmod(0o644); err != nil {
		return err
	}
	if _, err = fp.Write(buf.Bytes()); err != nil {
		return err
	}
	if err = fp.Close(); err != nil {
		return err
	}
	if err = os.Rename(fp.Name(), d.path); err != nil {
		return err
	}
	d.saved = true
	return nil
}

func point(v r2.Vec) vg.Point {
	return vg.Point{X: vg.Length(v.X), Y: vg.Length(v.Y)}
}
