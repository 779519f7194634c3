package loaders

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/df07/go-pathtrace/pkg/hittable"
	"github.com/df07/go-pathtrace/pkg/pmath"
)

// LoadGLTF parses a .gltf/.glb file's first mesh into a MeshData, a
// second mesh input format alongside LoadOBJ (spec §6's loader
// interface extended per the domain stack). Materials, textures, and
// the node hierarchy are out of scope: only POSITION, NORMAL,
// TEXCOORD_0 and indices feed the geometry the core consumes.
func LoadGLTF(filename string) (*MeshData, error) {
	doc, err := gltf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMeshNotFound, filename, err)
	}
	if len(doc.Meshes) == 0 {
		return nil, fmt.Errorf("%w: %s: document has no meshes", ErrMeshParse, filename)
	}

	var triangles [][3]hittable.Vertex
	for _, prim := range doc.Meshes[0].Primitives {
		tris, err := gltfPrimitiveTriangles(doc, prim)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMeshParse, filename, err)
		}
		triangles = append(triangles, tris...)
	}

	var centroid pmath.Vec3
	count := pmath.Float(0)
	for _, tri := range triangles {
		for _, v := range tri {
			centroid = centroid.Add(v.Position)
			count++
		}
	}
	if count > 0 {
		centroid = centroid.Divide(count)
	}
	for i := range triangles {
		for j := range triangles[i] {
			triangles[i][j].Position = triangles[i][j].Position.Subtract(centroid)
			triangles[i][j].Position.Z = -triangles[i][j].Position.Z
			triangles[i][j].Normal.Z = -triangles[i][j].Normal.Z
		}
		// re-wind CCW (glTF's convention) to the engine's CW, matching
		// LoadOBJ's face-winding treatment (spec §6).
		triangles[i][0], triangles[i][2] = triangles[i][2], triangles[i][0]
	}

	return &MeshData{Triangles: triangles, Centroid: centroid}, nil
}

func gltfPrimitiveTriangles(doc *gltf.Document, prim *gltf.Primitive) ([][3]hittable.Vertex, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, fmt.Errorf("primitive has no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}
	var uvs [][2]float32
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	verts := make([]hittable.Vertex, len(positions))
	for i, p := range positions {
		v := hittable.Vertex{Position: pmath.NewVec3(float64(p[0]), float64(p[1]), float64(p[2]))}
		if i < len(normals) {
			n := normals[i]
			v.Normal = pmath.NewVec3(float64(n[0]), float64(n[1]), float64(n[2]))
		}
		if i < len(uvs) {
			v.UV = pmath.NewVec2(float64(uvs[i][0]), float64(uvs[i][1]))
		}
		verts[i] = v
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(verts))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	triangles := make([][3]hittable.Vertex, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		triangles = append(triangles, [3]hittable.Vertex{
			verts[indices[i]], verts[indices[i+1]], verts[indices[i+2]],
		})
	}
	return triangles, nil
}
