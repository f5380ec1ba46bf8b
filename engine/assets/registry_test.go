package assets

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spaghettifunk/trimesh/engine/core"
	"github.com/spaghettifunk/trimesh/engine/mesh"
)

const tetraOBJ = `v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1
f 1 3 2
f 1 2 4
f 2 3 4
f 1 4 3
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRegistryUnsupportedFormat(t *testing.T) {
	r := NewRegistry(core.NopLogger(), nil)
	dir := t.TempDir()
	path := writeFile(t, dir, "mesh.stl", "solid x\n")

	if _, err := r.Load(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Load(.stl) error = %v, want ErrUnsupportedFormat", err)
	}
	if err := r.Save(filepath.Join(dir, "out.ply"), &Buffers{}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Save(.ply) error = %v, want ErrUnsupportedFormat", err)
	}
	if got := r.Extensions(); !reflect.DeepEqual(got, []string{".obj", ".off"}) {
		t.Fatalf("Extensions() = %v", got)
	}
}

func TestRegistryLookupIgnoresCase(t *testing.T) {
	r := NewRegistry(nil, nil)
	f, err := r.Lookup("MODEL.OBJ")
	if err != nil {
		t.Fatal(err)
	}
	if f.Name() != "obj" {
		t.Fatalf("Lookup(MODEL.OBJ) = %s", f.Name())
	}
}

func TestRegistryLoadTrimeshAndConvert(t *testing.T) {
	metrics := core.NewMetrics()
	r := NewRegistry(core.NopLogger(), metrics)
	dir := t.TempDir()
	path := writeFile(t, dir, "tetra.obj", tetraOBJ)

	m, err := r.LoadTrimesh(path, mesh.Options{})
	if err != nil {
		t.Fatalf("LoadTrimesh: %v", err)
	}
	if m.NumVerts() != 4 || m.NumEdges() != 6 || m.NumFaces() != 4 {
		t.Fatalf("tetra has %d verts, %d edges, %d faces", m.NumVerts(), m.NumEdges(), m.NumFaces())
	}
	if m.Data().Name != "tetra" || m.Data().Filename != path {
		t.Errorf("MeshData = %+v", m.Data())
	}
	if metrics.Count("load:obj") != 1 {
		t.Errorf("load not timed")
	}

	out := filepath.Join(dir, "tetra.off")
	if err := r.SaveMesh(out, m); err != nil {
		t.Fatalf("SaveMesh: %v", err)
	}
	back, err := r.LoadTrimesh(out, mesh.Options{})
	if err != nil {
		t.Fatalf("LoadTrimesh(.off): %v", err)
	}
	if !reflect.DeepEqual(back.VectorCoords(), m.VectorCoords()) || !reflect.DeepEqual(back.FaceIndices(), m.FaceIndices()) {
		t.Fatal("OFF copy differs from the OBJ source")
	}
}

func TestRegistryLoadReportsMissingFile(t *testing.T) {
	r := NewRegistry(nil, nil)
	_, err := r.Load(filepath.Join(t.TempDir(), "missing.obj"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestRegistryLoadTrimeshStrictFailure(t *testing.T) {
	r := NewRegistry(nil, nil)
	// three triangles on edge (1,2)
	path := writeFile(t, t.TempDir(), "book.obj", "v 0 0 0\nv 1 0 0\nv 0 1 0\nv 0 0 1\nv 1 1 1\nf 1 2 3\nf 2 3 4\nf 3 2 5\n")
	if _, err := r.LoadTrimesh(path, mesh.Options{}); !errors.Is(err, mesh.ErrNonManifoldEdge) {
		t.Fatalf("LoadTrimesh error = %v, want mesh.ErrNonManifoldEdge", err)
	}
}
