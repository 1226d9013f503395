package renderer

import _ "embed"

// gridShaderSource draws colored line lists through the camera uniform. The CameraUniform
// struct is prepended from the camera package at pipeline creation.
//
//go:embed assets/grid.wgsl
var gridShaderSource string

// lineVertexSize is the byte stride of a LineVertex: two vec3<f32>, tightly packed.
const lineVertexSize = 24

// LineVertex is one end of a line segment.
type LineVertex struct {
	Position [3]float32
	Color    [3]float32
}

var (
	gridColor  = [3]float32{0.25, 0.25, 0.28}
	axisXColor = [3]float32{0.8, 0.2, 0.2}
	axisYColor = [3]float32{0.2, 0.8, 0.2}
	axisZColor = [3]float32{0.2, 0.4, 0.9}
)

// GridLines builds a square reference grid on the XZ plane centered at the origin, with the
// X and Z axes highlighted and a vertical Y axis marker of the same half extent.
//
// Parameters:
//   - halfCells: number of cells from the origin to each edge; values below 1 yield only the axes
//   - spacing: distance between adjacent grid lines in world units
//
// Returns:
//   - []LineVertex: vertex pairs suitable for a line list
func GridLines(halfCells int, spacing float32) []LineVertex {
	if spacing <= 0 {
		spacing = 1
	}
	halfCells = max(halfCells, 0)
	extent := float32(halfCells) * spacing
	if halfCells == 0 {
		extent = spacing
	}

	lines := make([]LineVertex, 0, (2*halfCells+1)*4+6)
	for i := -halfCells; i <= halfCells; i++ {
		if i == 0 {
			continue
		}
		o := float32(i) * spacing
		lines = append(lines,
			LineVertex{Position: [3]float32{o, 0, -extent}, Color: gridColor},
			LineVertex{Position: [3]float32{o, 0, extent}, Color: gridColor},
			LineVertex{Position: [3]float32{-extent, 0, o}, Color: gridColor},
			LineVertex{Position: [3]float32{extent, 0, o}, Color: gridColor},
		)
	}
	lines = append(lines,
		LineVertex{Position: [3]float32{-extent, 0, 0}, Color: axisXColor},
		LineVertex{Position: [3]float32{extent, 0, 0}, Color: axisXColor},
		LineVertex{Position: [3]float32{0, 0, 0}, Color: axisYColor},
		LineVertex{Position: [3]float32{0, extent, 0}, Color: axisYColor},
		LineVertex{Position: [3]float32{0, 0, -extent}, Color: axisZColor},
		LineVertex{Position: [3]float32{0, 0, extent}, Color: axisZColor},
	)
	return lines
}
