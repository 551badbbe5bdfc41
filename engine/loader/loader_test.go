package loader

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const tolerance = 1e-6

// triangleBuffer holds three VEC3 positions followed by three uint16 indices (42 bytes).
func triangleBuffer() []byte {
	var b bytes.Buffer
	for _, v := range []float32{0, 0, 0, 1, 0, 0, 0, 1, 0} {
		_ = binary.Write(&b, binary.LittleEndian, math.Float32bits(v))
	}
	for _, i := range []uint16{0, 1, 2} {
		_ = binary.Write(&b, binary.LittleEndian, i)
	}
	return b.Bytes()
}

func triangleGLTF(bufferJSON string) string {
	return `{
  "asset": {"version": "2.0"},
  "scene": 0,
  "scenes": [{"nodes": [0]}],
  "nodes": [{"children": [1], "translation": [0, 0, 5]}, {"mesh": 0, "scale": [2, 2, 2]}],
  "meshes": [{"primitives": [{"attributes": {"POSITION": 0}, "indices": 1}]}],
  "accessors": [
    {"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3"},
    {"bufferView": 1, "componentType": 5123, "count": 3, "type": "SCALAR"}
  ],
  "bufferViews": [
    {"buffer": 0, "byteOffset": 0, "byteLength": 36},
    {"buffer": 0, "byteOffset": 36, "byteLength": 6}
  ],
  "buffers": [` + bufferJSON + `]
}`
}

func embeddedGLTF() []byte {
	uri := "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(triangleBuffer())
	return []byte(triangleGLTF(fmt.Sprintf(`{"byteLength": 42, "uri": %q}`, uri)))
}

func glb() []byte {
	jsonChunk := []byte(triangleGLTF(`{"byteLength": 42}`))
	for len(jsonChunk)%4 != 0 {
		jsonChunk = append(jsonChunk, ' ')
	}
	bin := triangleBuffer()
	for len(bin)%4 != 0 {
		bin = append(bin, 0)
	}

	var b bytes.Buffer
	total := 12 + 8 + len(jsonChunk) + 8 + len(bin)
	_ = binary.Write(&b, binary.LittleEndian, gltfGLBHeader{Magic: gltfGLBMagic, Version: gltfGLBVersion, Length: uint32(total)})
	_ = binary.Write(&b, binary.LittleEndian, gltfGLBChunkHeader{ChunkLength: uint32(len(jsonChunk)), ChunkType: gltfGLBChunkJSON})
	b.Write(jsonChunk)
	_ = binary.Write(&b, binary.LittleEndian, gltfGLBChunkHeader{ChunkLength: uint32(len(bin)), ChunkType: gltfGLBChunkBIN})
	b.Write(bin)
	return b.Bytes()
}

// vecNear compares per component with an absolute tolerance, so zero components don't demand an
// exact match the way mgl64's relative comparison does.
func vecNear(a, b mgl64.Vec3) bool {
	for i := range 3 {
		if math.Abs(a[i]-b[i]) > tolerance {
			return false
		}
	}
	return true
}

func assertVecs(t *testing.T, label string, got, want []mgl64.Vec3) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: expected %d vectors, got %d", label, len(want), len(got))
	}
	for i := range want {
		if !vecNear(got[i], want[i]) {
			t.Errorf("%s[%d]: expected %v, got %v", label, i, want[i], got[i])
		}
	}
}

func TestLoadGLTF(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"embedded buffer", embeddedGLTF()},
		{"glb container", glb()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLoader(WithFitSize(0))
			m, err := l.LoadBytes("triangle", tt.data, FormatGLTF)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertVecs(t, "positions", m.Positions, []mgl64.Vec3{{0, 0, 5}, {2, 0, 5}, {0, 2, 5}})
			assertVecs(t, "normals", m.Normals, []mgl64.Vec3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}})
			if !m.Lit || m.Name != "triangle" {
				t.Errorf("unexpected mesh header %+v", m)
			}
			if l.Get("triangle") != m {
				t.Error("mesh not cached")
			}
		})
	}
}

func TestLoadFitsIntoUnitCube(t *testing.T) {
	m, err := NewLoader().LoadBytes("triangle", embeddedGLTF(), FormatGLTF)
	if err != nil {
		t.Fatal(err)
	}
	assertVecs(t, "positions", m.Positions, []mgl64.Vec3{{-0.5, -0.5, 0}, {0.5, -0.5, 0}, {-0.5, 0.5, 0}})
}

func TestGLTFErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{"},
		{"wrong version", `{"asset": {"version": "1.0"}}`},
		{"buffer without uri", `{"asset": {"version": "2.0"}, "buffers": [{"byteLength": 4}]}`},
		{"short buffer", `{"asset": {"version": "2.0"}, "buffers": [{"byteLength": 8, "uri": "data:;base64,AAAA"}]}`},
		{"mesh without position", `{"asset": {"version": "2.0"}, "meshes": [{"primitives": [{"attributes": {}}]}]}`},
		{"accessor past buffer", `{"asset": {"version": "2.0"},
			"meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
			"accessors": [{"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3"}],
			"bufferViews": [{"buffer": 0, "byteLength": 3}],
			"buffers": [{"byteLength": 3, "uri": "data:;base64,AAAA"}]}`},
		{"huge accessor count", `{"asset": {"version": "2.0"},
			"meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
			"accessors": [{"bufferView": 0, "componentType": 5126, "count": 1099511627776, "type": "VEC3"}],
			"bufferViews": [{"buffer": 0, "byteLength": 3}],
			"buffers": [{"byteLength": 3, "uri": "data:;base64,AAAA"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLoader().LoadBytes("bad", []byte(tt.data), FormatGLTF); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestAccessorBoundsCheckedBeforeAllocation(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		byteOffset int
	}{
		{"huge count", 1 << 40, 0},
		{"max int count", math.MaxInt, 0},
		{"offset overflows", 1, math.MaxInt},
		{"one element too many", 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newGLTFParser()
			if err := p.Parse(embeddedGLTF(), ""); err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}
			acc := &p.Document().Accessors[0]
			acc.Count = tt.count
			acc.ByteOffset = tt.byteOffset
			if _, err := p.ReadVec3Accessor(0); !errors.Is(err, errAccessorOutOfRange) {
				t.Errorf("expected errAccessorOutOfRange, got %v", err)
			}
		})
	}
}

func TestLoadOBJ(t *testing.T) {
	obj := `# unit quad facing +Z
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 2
f 1//1 2//1 3//1 4//1
`
	m, err := NewLoader(WithFitSize(0)).LoadBytes("quad", []byte(obj), FormatOBJ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertVecs(t, "positions", m.Positions, []mgl64.Vec3{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0},
		{0, 0, 0}, {1, 1, 0}, {0, 1, 0},
	})
	for i, n := range m.Normals {
		if !vecNear(n, mgl64.Vec3{0, 0, 1}) {
			t.Errorf("normal %d: expected unit +Z, got %v", i, n)
		}
	}
}

func TestLoadOBJNegativeIndicesAndFlatNormals(t *testing.T) {
	obj := "v 0 0 0\nv 0 0 1\nv 1 0 0\nf -3/1 -2/2 -1/3\n"
	m, err := NewLoader(WithFitSize(0)).LoadBytes("tri", []byte(obj), FormatOBJ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertVecs(t, "positions", m.Positions, []mgl64.Vec3{{0, 0, 0}, {0, 0, 1}, {1, 0, 0}})
	assertVecs(t, "normals", m.Normals, []mgl64.Vec3{{0, 1, 0}, {0, 1, 0}, {0, 1, 0}})
}

func TestOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		obj  string
	}{
		{"index out of range", "v 0 0 0\nv 1 0 0\nf 1 2 3\n"},
		{"bad number", "v 0 zero 0\n"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"no faces", "v 0 0 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLoader().LoadBytes("bad", []byte(tt.obj), FormatOBJ); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadFromFileCaches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.obj")
	if err := os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader()
	first, err := l.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := l.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("second load should hit the cache")
	}
	if first.Name != "tri.obj" {
		t.Errorf("expected mesh named after the file, got %q", first.Name)
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  bool
	}{
		{"bunny.obj", FormatOBJ, false},
		{"scene.GLB", FormatGLTF, false},
		{"scene.gltf", FormatGLTF, false},
		{"bunny.ply", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatForPath(tt.path)
			if tt.err {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("expected ErrUnsupportedFormat, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("expected %v, got %v (%v)", tt.want, got, err)
			}
		})
	}
}

func TestTriangulateStripAndFan(t *testing.T) {
	strip, err := triangulate([]uint32{0, 1, 2, 3}, gltfPrimitiveModeTriangleStrip)
	if err != nil {
		t.Fatal(err)
	}
	if fmt.Sprint(strip) != "[0 1 2 2 1 3]" {
		t.Errorf("unexpected strip %v", strip)
	}

	fan, err := triangulate([]uint32{0, 1, 2, 3}, gltfPrimitiveModeTriangleFan)
	if err != nil {
		t.Fatal(err)
	}
	if fmt.Sprint(fan) != "[0 1 2 0 2 3]" {
		t.Errorf("unexpected fan %v", fan)
	}

	if _, err := triangulate([]uint32{0, 1}, 1); err == nil {
		t.Error("line mode should be rejected")
	}
}
