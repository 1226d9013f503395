package renderer

import (
	"encoding/binary"
	"math"
	"testing"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-showcase/common"
)

func TestGridLinesCount(t *testing.T) {
	tests := []struct {
		name      string
		halfCells int
		want      int
	}{
		{"axes only", 0, 6},
		{"negative treated as zero", -3, 6},
		{"one cell", 1, 8 + 6},
		{"ten cells", 10, 80 + 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := GridLines(tt.halfCells, 1)
			if len(lines) != tt.want {
				t.Fatalf("len(GridLines(%d)) = %d, want %d", tt.halfCells, len(lines), tt.want)
			}
			if len(lines)%2 != 0 {
				t.Fatal("line list must contain vertex pairs")
			}
		})
	}
}

func TestGridLinesStayInsideExtent(t *testing.T) {
	const spacing = 0.5
	lines := GridLines(4, spacing)
	extent := float32(4 * spacing)
	for i, v := range lines {
		for _, c := range v.Position {
			if c < -extent || c > extent {
				t.Fatalf("vertex %d at %v is outside ±%v", i, v.Position, extent)
			}
		}
		if v.Position[1] != 0 && v.Color != axisYColor {
			t.Fatalf("vertex %d leaves the ground plane but is not the Y axis", i)
		}
	}
}

func TestLineVertexLayout(t *testing.T) {
	if size := unsafe.Sizeof(LineVertex{}); size != lineVertexSize {
		t.Fatalf("LineVertex is %d bytes, the pipeline stride is %d", size, lineVertexSize)
	}

	v := LineVertex{Position: [3]float32{1, 2, 3}, Color: [3]float32{0.5, 0.25, 1}}
	buf := common.SliceToBytes([]LineVertex{v, v})
	if len(buf) != 2*lineVertexSize {
		t.Fatalf("len = %d, want %d", len(buf), 2*lineVertexSize)
	}
	read := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}
	if got := read(lineVertexSize + 8); got != 3 {
		t.Errorf("second vertex z = %v, want 3", got)
	}
	if got := read(12 + 4); got != 0.25 {
		t.Errorf("first vertex green = %v, want 0.25", got)
	}
}
