package assets

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/spaghettifunk/trimesh/engine/core"
	"github.com/spaghettifunk/trimesh/engine/mesh"
)

// Registry picks a Format from the file extension. It is safe for concurrent use.
type Registry struct {
	mutex   sync.RWMutex
	formats map[string]Format
	logger  *core.Logger
	metrics *core.Metrics
}

// NewRegistry returns a registry that knows OBJ and OFF.
func NewRegistry(logger *core.Logger, metrics *core.Metrics) *Registry {
	r := &Registry{
		formats: make(map[string]Format),
		logger:  logger,
		metrics: metrics,
	}
	r.Register(OBJ{})
	r.Register(OFF{})
	return r
}

// Register binds every extension of f, replacing earlier bindings.
func (r *Registry) Register(f Format) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	for _, ext := range f.Extensions() {
		r.formats[strings.ToLower(ext)] = f
	}
}

// Extensions lists the registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	exts := make([]string, 0, len(r.formats))
	for ext := range r.formats {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Lookup returns the format for path, or ErrUnsupportedFormat.
func (r *Registry) Lookup(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	r.mutex.RLock()
	f, ok := r.formats[ext]
	r.mutex.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", path)
	}
	return f, nil
}

// Load reads the buffers stored at path.
func (r *Registry) Load(path string) (*Buffers, error) {
	f, err := r.Lookup(path)
	if err != nil {
		r.logger.LogError("%s", err.Error())
		return nil, err
	}

	clock := core.NewClock()
	clock.Start()

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	defer file.Close()

	b, err := f.Read(file)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}

	clock.Stop()
	r.metrics.Record("load:"+f.Name(), clock.Elapsed())
	r.logger.LogDebug("loaded %s: %d verts, %d faces in %s", path, b.NumVerts(), b.NumFaces(), clock.Elapsed())
	return b, nil
}

// Save writes b to path in the format matching its extension.
func (r *Registry) Save(path string, b *Buffers) error {
	f, err := r.Lookup(path)
	if err != nil {
		r.logger.LogError("%s", err.Error())
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	if err := f.Write(file, b); err != nil {
		file.Close()
		return errors.Wrapf(err, "saving %s", path)
	}
	if err := file.Close(); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	r.logger.LogDebug("saved %s: %d verts, %d faces", path, b.NumVerts(), b.NumFaces())
	return nil
}

// LoadTrimesh loads path and builds a mesh named after the file.
func (r *Registry) LoadTrimesh(path string, opts mesh.Options) (*mesh.Trimesh, error) {
	b, err := r.Load(path)
	if err != nil {
		return nil, err
	}
	m, err := mesh.NewTrimesh(b.Coords, b.Faces, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "building %s", path)
	}
	m.SetData(mesh.MeshData{
		ID:       m.Data().ID,
		Name:     strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Filename: path,
	})
	return m, nil
}

// SaveMesh writes the current buffers of src to path.
func (r *Registry) SaveMesh(path string, src BufferSource) error {
	return r.Save(path, BuffersOf(src))
}
