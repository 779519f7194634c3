package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-pathtrace/pkg/hittable"
	"github.com/df07/go-pathtrace/pkg/pmath"
)

// MeshData is a parsed, world-ready triangle mesh: recentered at its own
// centroid, in the engine's left-handed coordinate convention (spec §6).
type MeshData struct {
	Triangles [][3]hittable.Vertex
	Centroid  pmath.Vec3
}

// LoadOBJ parses a Wavefront OBJ file into a MeshData, applying spec
// §6's load-time conventions: negate z on position and normal to convert
// the file's right-handed convention to the engine's left-handed world,
// re-wind CCW file faces to the engine's CW convention, and recenter the
// mesh at its centroid.
func LoadOBJ(filename string) (*MeshData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMeshNotFound, filename, err)
	}
	defer file.Close()

	var positions, normals []pmath.Vec3
	var texcoords []pmath.Vec2
	type faceVertex struct{ p, t, n int }
	var faces [][3]faceVertex

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: %s line %d: %v", ErrMeshParse, filename, lineNo, err)
			}
			positions = append(positions, pmath.NewVec3(v.X, v.Y, -v.Z))
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: %s line %d: %v", ErrMeshParse, filename, lineNo, err)
			}
			normals = append(normals, pmath.NewVec3(n.X, n.Y, -n.Z))
		case "vt":
			t, err := parseVec2(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: %s line %d: %v", ErrMeshParse, filename, lineNo, err)
			}
			texcoords = append(texcoords, t)
		case "f":
			face, err := parseFace(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: %s line %d: %v", ErrMeshParse, filename, lineNo, err)
			}
			// Triangulate an n-gon as a fan from its first vertex, and
			// re-wind CCW (file convention) to CW (engine convention) by
			// reversing each triangle's vertex order.
			for i := 1; i+1 < len(face); i++ {
				faces = append(faces, [3]faceVertex{face[i+1], face[i], face[0]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMeshParse, filename, err)
	}

	resolve := func(fv faceVertex) (hittable.Vertex, error) {
		if fv.p < 1 || fv.p > len(positions) {
			return hittable.Vertex{}, fmt.Errorf("vertex index %d out of range", fv.p)
		}
		v := hittable.Vertex{Position: positions[fv.p-1]}
		if fv.n >= 1 && fv.n <= len(normals) {
			v.Normal = normals[fv.n-1]
		}
		if fv.t >= 1 && fv.t <= len(texcoords) {
			v.UV = texcoords[fv.t-1]
		}
		return v, nil
	}

	triangles := make([][3]hittable.Vertex, 0, len(faces))
	var centroid pmath.Vec3
	count := pmath.Float(0)
	for _, f := range faces {
		var tri [3]hittable.Vertex
		for i, fv := range f {
			v, err := resolve(fv)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrMeshParse, filename, err)
			}
			tri[i] = v
			centroid = centroid.Add(v.Position)
			count++
		}
		triangles = append(triangles, tri)
	}
	if count > 0 {
		centroid = centroid.Divide(count)
	}

	for i := range triangles {
		for j := range triangles[i] {
			triangles[i][j].Position = triangles[i][j].Position.Subtract(centroid)
		}
	}

	return &MeshData{Triangles: triangles, Centroid: centroid}, nil
}

func parseVec3(fields []string) (pmath.Vec3, error) {
	if len(fields) < 3 {
		return pmath.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return pmath.Vec3{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return pmath.Vec3{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return pmath.Vec3{}, err
	}
	return pmath.NewVec3(x, y, z), nil
}

func parseVec2(fields []string) (pmath.Vec2, error) {
	if len(fields) < 2 {
		return pmath.Vec2{}, fmt.Errorf("expected 2 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return pmath.Vec2{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return pmath.Vec2{}, err
	}
	return pmath.Vec2{X: x, Y: y}, nil
}

type objFaceVertex = struct{ p, t, n int }

func parseFace(fields []string) ([]objFaceVertex, error) {
	face := make([]objFaceVertex, 0, len(fields))
	for _, f := range fields {
		parts := strings.Split(f, "/")
		fv := objFaceVertex{}
		var err error
		if fv.p, err = parseIndex(parts[0]); err != nil {
			return nil, err
		}
		if len(parts) > 1 && parts[1] != "" {
			if fv.t, err = parseIndex(parts[1]); err != nil {
				return nil, err
			}
		}
		if len(parts) > 2 && parts[2] != "" {
			if fv.n, err = parseIndex(parts[2]); err != nil {
				return nil, err
			}
		}
		face = append(face, fv)
	}
	return face, nil
}

func parseIndex(s string) (int, error) {
	return strconv.Atoi(s)
}
