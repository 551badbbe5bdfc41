package loader

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// objLoaderBackendImpl reads the geometry subset of Wavefront OBJ: v, vn and f records. Faces with
// more than three corners are fanned. Texture coordinates, groups and materials are skipped.
type objLoaderBackendImpl struct{}

var _ loaderBackend = &objLoaderBackendImpl{}

func newOBJLoaderBackend() loaderBackend {
	return &objLoaderBackendImpl{}
}

type objCorner struct {
	v, vn int // zero-based; vn is -1 when absent
}

func (b *objLoaderBackendImpl) Decode(data []byte, _ string) (triangleSoup, error) {
	var (
		vertices []mgl64.Vec3
		normals  []mgl64.Vec3
		faces    [][3]objCorner
	)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v", "vn":
			if len(fields) < 4 {
				return triangleSoup{}, fmt.Errorf("line %d: %s needs 3 components", line, fields[0])
			}
			var vec mgl64.Vec3
			for i := range 3 {
				f, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return triangleSoup{}, fmt.Errorf("line %d: %w", line, err)
				}
				vec[i] = f
			}
			if fields[0] == "v" {
				vertices = append(vertices, vec)
			} else {
				normals = append(normals, vec)
			}

		case "f":
			if len(fields) < 4 {
				return triangleSoup{}, fmt.Errorf("line %d: face needs at least 3 corners", line)
			}
			corners := make([]objCorner, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				c, err := parseOBJCorner(ref, len(vertices), len(normals))
				if err != nil {
					return triangleSoup{}, fmt.Errorf("line %d: %w", line, err)
				}
				corners = append(corners, c)
			}
			for i := 2; i < len(corners); i++ {
				faces = append(faces, [3]objCorner{corners[0], corners[i-1], corners[i]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return triangleSoup{}, fmt.Errorf("read obj: %w", err)
	}

	var soup triangleSoup
	withNormals := true
	for _, f := range faces {
		for _, c := range f {
			if c.vn < 0 {
				withNormals = false
			}
		}
	}
	for _, f := range faces {
		for _, c := range f {
			soup.positions = append(soup.positions, vertices[c.v])
			if withNormals {
				soup.normals = append(soup.normals, normals[c.vn].Normalize())
			}
		}
	}
	return soup, nil
}

// parseOBJCorner parses v, v/vt, v//vn or v/vt/vn. Indices are one-based; negative indices count
// back from the latest record.
func parseOBJCorner(ref string, vertexCount, normalCount int) (objCorner, error) {
	parts := strings.Split(ref, "/")
	v, err := resolveOBJIndex(parts[0], vertexCount)
	if err != nil {
		return objCorner{}, fmt.Errorf("vertex %q: %w", ref, err)
	}
	c := objCorner{v: v, vn: -1}
	if len(parts) == 3 && parts[2] != "" {
		if c.vn, err = resolveOBJIndex(parts[2], normalCount); err != nil {
			return objCorner{}, fmt.Errorf("normal %q: %w", ref, err)
		}
	}
	return c, nil
}

func resolveOBJIndex(s string, count int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0 && i <= count:
		return i - 1, nil
	case i < 0 && -i <= count:
		return count + i, nil
	default:
		return 0, fmt.Errorf("index %d out of range of %d", i, count)
	}
}
