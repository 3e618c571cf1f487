// Package shutdown runs cleanup hooks once, in priority order, on normal
// exit or when the process is interrupted.
package shutdown

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"sync"
	"syscall"

	"github.com/flanksource/commons/logger"
)

// Lower priorities run first
const (
	PriorityProgress = 0
	PriorityDefault  = 100
	PriorityBackends = 200
)

type hook struct {
	label    string
	priority int
	fn       func()
}

// Hooks is an ordered set of cleanup functions
type Hooks struct {
	mu    sync.Mutex
	hooks []hook
	log   logger.Logger
}

// New creates an empty hook set
func New() *Hooks {
	return &Hooks{log: logger.GetLogger("shutdown")}
}

// Add registers fn with the default priority
func (h *Hooks) Add(label string, fn func()) {
	h.AddWithPriority(label, PriorityDefault, fn)
}

// AddWithPriority registers fn to run on the next Shutdown
func (h *Hooks) AddWithPriority(label string, priority int, fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, hook{label: label, priority: priority, fn: fn})
}

// Len returns the number of pending hooks
func (h *Hooks) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.hooks)
}

// Shutdown runs every pending hook once, in priority order with
// registration order breaking ties
func (h *Hooks) Shutdown() {
	h.mu.Lock()
	pending := h.hooks
	h.hooks = nil
	h.mu.Unlock()

	if len(pending) == 0 {
		return
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].priority < pending[j].priority
	})

	h.log.Debugf("Executing %d shutdown hooks", len(pending))
	for _, hk := range pending {
		h.run(hk)
	}
}

func (h *Hooks) run(hk hook) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Errorf("Panic in shutdown hook %s: %v", hk.label, r)
		}
	}()
	h.log.Debugf("Executing shutdown hook: %s (priority=%d)", hk.label, hk.priority)
	hk.fn()
}

// WithSignals returns a context cancelled on the first SIGINT or SIGTERM.
// A second signal runs the hooks and exits immediately.
func (h *Hooks) WithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	stopped := make(chan struct{})

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			fmt.Fprintf(os.Stderr, "\nReceived %s, stopping after the current file (press Ctrl+C again to force exit)\n", sig)
			cancel()
		case <-stopped:
			return
		}
		select {
		case <-sigChan:
			fmt.Fprintf(os.Stderr, "\nForce exit\n")
			h.Shutdown()
			os.Exit(1)
		case <-stopped:
		}
	}()

	var once sync.Once
	return ctx, func() {
		once.Do(func() { close(stopped) })
		cancel()
	}
}

var global = New()

// AddHook registers a shutdown hook with default priority
func AddHook(label string, fn func()) {
	global.Add(label, fn)
}

// AddHookWithPriority registers a shutdown hook with specific priority
func AddHookWithPriority(label string, priority int, fn func()) {
	global.AddWithPriority(label, priority, fn)
}

// Shutdown executes all registered hooks in priority order
func Shutdown() {
	global.Shutdown()
}

// WithSignals cancels the returned context on interrupt, see Hooks.WithSignals
func WithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return global.WithSignals(parent)
}
