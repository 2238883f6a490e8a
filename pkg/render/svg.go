package render

import (
	"bytes"
	"fmt"

	"github.com/sevenpixels/datawalk/pkg/walk"
)

// Projection planes for the SVG sink.
const (
	PlaneXY = "xy"
	PlaneXZ = "xz"
	PlaneYZ = "yz"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width  float64
	height float64
	plane  string
	stroke string
}

// WithSize sets the output dimensions in pixels.
func WithSize(width, height float64) SVGOption {
	return func(r *svgRenderer) { r.width = width; r.height = height }
}

// WithPlane selects the projection plane (PlaneXY, PlaneXZ or PlaneYZ).
func WithPlane(plane string) SVGOption {
	return func(r *svgRenderer) { r.plane = plane }
}

// WithStroke sets the polyline stroke color.
func WithStroke(color string) SVGOption {
	return func(r *svgRenderer) { r.stroke = color }
}

const svgMargin = 10.0

// RenderSVG projects a 3-D point path onto a plane and renders it as an
// SVG polyline, scaled to fit the frame with a small margin. A path that
// never leaves a single point renders as a small circle.
func RenderSVG(points []walk.Point, opts ...SVGOption) []byte {
	r := svgRenderer{width: 800, height: 600, plane: PlaneXY, stroke: "#1a1a2e"}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, r.height, r.width, r.height)
	fmt.Fprintf(&buf, `<rect width="%.1f" height="%.1f" fill="white"/>`+"\n", r.width, r.height)

	if len(points) > 0 {
		r.renderPath(&buf, points)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderPath(buf *bytes.Buffer, points []walk.Point) {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = r.project(p)
	}

	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := range xs {
		minX = min(minX, xs[i])
		maxX = max(maxX, xs[i])
		minY = min(minY, ys[i])
		maxY = max(maxY, ys[i])
	}

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 && spanY == 0 {
		fmt.Fprintf(buf, `<circle cx="%.1f" cy="%.1f" r="3" fill="%s"/>`+"\n",
			r.width/2, r.height/2, r.stroke)
		return
	}

	// Uniform scale so the path keeps its aspect ratio.
	scale := min((r.width-2*svgMargin)/maxf(spanX, 1e-9), (r.height-2*svgMargin)/maxf(spanY, 1e-9))
	offX := (r.width - spanX*scale) / 2
	offY := (r.height - spanY*scale) / 2

	buf.WriteString(`<polyline fill="none" stroke="` + r.stroke + `" stroke-width="1.5" points="`)
	for i := range xs {
		if i > 0 {
			buf.WriteByte(' ')
		}
		// SVG Y grows downward.
		fmt.Fprintf(buf, "%.2f,%.2f",
			offX+(xs[i]-minX)*scale,
			r.height-offY-(ys[i]-minY)*scale)
	}
	buf.WriteString(`"/>` + "\n")
}

func (r *svgRenderer) project(p walk.Point) (float64, float64) {
	switch r.plane {
	case PlaneXZ:
		return p[0], p[2]
	case PlaneYZ:
		return p[1], p[2]
	default:
		return p[0], p[1]
	}
}

func maxf(v, floor float64) float64 {
	if v < floor {
		return floor
	}
	return v
}
