// Package render provides output sinks for walked point paths.
//
// A sink transforms a point path into a final output format:
//
//   - JSON: point data export for viewers and external tools
//   - SVG: a 2-D projected polyline, used for thumbnails and quick
//     visual inspection without a 3-D viewer
//
// Both sinks take functional options:
//
//	svg := render.RenderSVG(points,
//	    render.WithSize(800, 600),
//	    render.WithPlane(render.PlaneXZ),
//	)
package render
