/*
trimesh loads triangle meshes, merges them, optionally simplifies them by collapsing their
shortest edges, and writes the result together with a PNG preview.

	trimesh [-config f.toml] [-collapse N] [-out out.obj] [-preview out.png] [-watch] in.obj [in.off ...]
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/trimesh/engine/assets"
	"github.com/spaghettifunk/trimesh/engine/core"
	"github.com/spaghettifunk/trimesh/engine/mesh"
	"github.com/spaghettifunk/trimesh/engine/renderer"
	"github.com/spaghettifunk/trimesh/engine/systems"
)

type cliOptions struct {
	configPath string
	collapse   int
	out        string
	preview    string
	watch      bool
	inputs     []string
}

var errNoInputs = errors.New("no input meshes given")

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseFlags(args []string, output io.Writer) (cliOptions, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("trimesh", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.configPath, "config", "", "TOML configuration file")
	fs.IntVar(&opts.collapse, "collapse", 0, "number of shortest edges to collapse")
	fs.StringVar(&opts.out, "out", "", "write the merged mesh to this .obj or .off file")
	fs.StringVar(&opts.preview, "preview", "", "render a PNG preview to this file")
	fs.BoolVar(&opts.watch, "watch", false, "process the inputs again whenever one changes")
	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}
	opts.inputs = fs.Args()
	if len(opts.inputs) == 0 {
		return cliOptions{}, errNoInputs
	}
	if opts.collapse < 0 {
		return cliOptions{}, fmt.Errorf("-collapse must not be negative, got %d", opts.collapse)
	}
	return opts, nil
}

// pipeline holds the collaborators shared by every processing round.
type pipeline struct {
	opts     cliOptions
	cfg      core.Config
	logger   *core.Logger
	metrics  *core.Metrics
	registry *assets.Registry
}

func newPipeline(opts cliOptions, logOut io.Writer) (*pipeline, error) {
	cfg := core.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := core.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	logger := core.NewLogger(logOut, cfg.Log)
	metrics := core.NewMetrics()
	return &pipeline{
		opts:     opts,
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
		registry: assets.NewRegistry(logger, metrics),
	}, nil
}

func run(opts cliOptions) error {
	p, err := newPipeline(opts, os.Stderr)
	if err != nil {
		return err
	}
	if err := p.process(); err != nil {
		if !opts.watch {
			return err
		}
		p.logger.LogError("%s", err.Error())
	}
	if !opts.watch {
		return nil
	}
	return p.watch()
}

// process runs one round: load, merge, report, collapse, save and preview.
func (p *pipeline) process() error {
	m, err := p.loadAll()
	if err != nil {
		return err
	}
	p.report("loaded", m)

	if p.opts.collapse > 0 {
		done, err := m.CollapseShortestEdges(p.opts.collapse)
		if err != nil && !errors.Is(err, mesh.ErrNothingCollapsed) {
			return err
		}
		if err != nil {
			p.logger.LogWarn("%s", err.Error())
		}
		p.logger.LogInfo("collapsed %d edges (avg %.3fms)", done, p.metrics.Average("collapse"))
		p.report("simplified", m)
	}

	if p.opts.out != "" {
		if err := p.registry.SaveMesh(p.opts.out, m); err != nil {
			return err
		}
		p.logger.LogInfo("wrote %s", p.opts.out)
	}
	if p.opts.preview != "" {
		img := renderer.Preview(renderer.NewDrawableTrimesh(m), renderer.DefaultPreviewOptions())
		if err := renderer.SavePNG(p.opts.preview, img); err != nil {
			return err
		}
		p.logger.LogInfo("wrote %s", p.opts.preview)
	}
	return nil
}

// loadAll reads every input on the job system and appends them in input order.
func (p *pipeline) loadAll() (*mesh.Trimesh, error) {
	js, err := systems.NewJobSystem(p.cfg.Jobs.Workers, p.cfg.Jobs.Queue, p.logger, p.metrics)
	if err != nil {
		return nil, err
	}

	meshOpts := mesh.OptionsFromConfig(p.cfg.Manifold, p.logger, p.metrics)
	loaded := make([]*mesh.Trimesh, len(p.opts.inputs))
	failures := make([]error, len(p.opts.inputs))
	for i, path := range p.opts.inputs {
		i, path := i, path
		err := js.Submit(systems.JobTask{
			Name: "load",
			OnStart: func() error {
				m, err := p.registry.LoadTrimesh(path, meshOpts)
				if err != nil {
					return err
				}
				loaded[i] = m
				return nil
			},
			OnFailure: func(err error) {
				failures[i] = err
			},
		})
		if err != nil {
			failures[i] = err
		}
	}
	if err := js.Shutdown(); err != nil {
		return nil, err
	}
	if err := errors.Join(failures...); err != nil {
		return nil, err
	}

	merged := loaded[0]
	for _, m := range loaded[1:] {
		merged.Append(m)
	}
	return merged, nil
}

func (p *pipeline) report(stage string, m *mesh.Trimesh) {
	p.logger.LogInfo("%s %s: %d verts, %d edges, %d faces, %d boundary edges, %d components, area %.6g",
		stage, m.Data().Name, m.NumVerts(), m.NumEdges(), m.NumFaces(),
		len(m.BoundaryEdges()), m.NumComponents(), m.Area())
	if !m.IsManifold() {
		p.logger.LogWarn("%s has %d non-manifold edges", m.Data().Name, len(m.NonManifoldEdges()))
	}
}

// watch re-runs process whenever an input changes, until SIGINT or SIGTERM.
func (p *pipeline) watch() error {
	watcher, err := assets.NewWatcher(p.logger, assets.DefaultDebounce)
	if err != nil {
		return err
	}
	defer watcher.Close()
	for _, path := range p.opts.inputs {
		if err := watcher.Add(path); err != nil {
			return err
		}
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer signal.Stop(sigCh)

	p.logger.LogInfo("watching %d files", len(p.opts.inputs))
	for {
		select {
		case path, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			p.logger.LogInfo("%s changed", path)
			if err := p.process(); err != nil {
				p.logger.LogError("%s", err.Error())
			}
		case err, ok := <-watcher.Errors():
			if !ok {
				return nil
			}
			p.logger.LogError("watcher: %s", err.Error())
		case <-sigCh:
			return nil
		}
	}
}
