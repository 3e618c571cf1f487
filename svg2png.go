// Package svg2png converts SVG documents to PNG files.
//
// The conversion pipeline lives in the converter package and the rendering
// backends in the raster package; this package wires them together with the
// process-wide flags, report formatting and shutdown handling used by the
// svg2png command.
package svg2png

import (
	"context"
	"sync"

	"github.com/flanksource/commons/logger"
	"github.com/flanksource/svg2png/converter"
	"github.com/flanksource/svg2png/raster"
	"github.com/flanksource/svg2png/shutdown"
	"github.com/samber/lo"
)

type (
	Request = converter.Request
	Options = converter.Options
	Output  = converter.Output
)

var (
	Single = converter.Single
	Batch  = converter.Batch
)

// NewRasterizer returns a backend manager over the available backends,
// honoring the preferred backend and strict parsing. The manager is closed
// on shutdown.
func NewRasterizer(opts BackendOptions) (*raster.Manager, error) {
	manager, err := newManager(opts)
	if err != nil {
		return nil, err
	}
	shutdown.AddHookWithPriority("rasterizer", shutdown.PriorityBackends, func() {
		closeManager(manager)
	})
	return manager, nil
}

func newManager(opts BackendOptions) (*raster.Manager, error) {
	backends := lo.Filter(raster.DefaultBackends(), func(b raster.Rasterizer, _ int) bool {
		return b.IsAvailable()
	})
	for _, b := range backends {
		if o, ok := b.(*raster.OKSVG); ok {
			o.Strict = opts.Strict
		}
	}

	manager := raster.NewManager(backends...)
	if opts.Backend != "" {
		if err := manager.SetPreferred(opts.Backend); err != nil {
			return nil, err
		}
	}
	return manager, nil
}

func closeManager(manager *raster.Manager) {
	if err := manager.Close(); err != nil {
		logger.Warnf("failed to close rasterizer: %v", err)
	}
}

var (
	rasterizers   = map[BackendOptions]*raster.Manager{}
	rasterizersMu sync.Mutex
)

// sharedRasterizer returns one manager per set of backend options, created
// on first use and released on shutdown
func sharedRasterizer(opts BackendOptions) (*raster.Manager, error) {
	opts.NoProgress = false
	rasterizersMu.Lock()
	defer rasterizersMu.Unlock()

	if manager, ok := rasterizers[opts]; ok {
		return manager, nil
	}
	manager, err := newManager(opts)
	if err != nil {
		return nil, err
	}
	rasterizers[opts] = manager
	shutdown.AddHookWithPriority("rasterizer", shutdown.PriorityBackends, func() {
		rasterizersMu.Lock()
		delete(rasterizers, opts)
		rasterizersMu.Unlock()
		closeManager(manager)
	})
	return manager, nil
}

// Convert runs req with the backend selected by the global Flags. The
// backend manager is shared between calls.
func Convert(ctx context.Context, req Request, opts ...converter.Option) (*Output, error) {
	rasterizer, err := sharedRasterizer(Flags.BackendOptions)
	if err != nil {
		return nil, err
	}
	return converter.New(append([]converter.Option{converter.WithRasterizer(rasterizer)}, opts...)...).Convert(ctx, req)
}
