// Package surface holds the plumbing every feature coordinator shares: how
// models are built from configuration, how views are bound, and the handle
// the shell uses to inspect and tear down a surface.
package surface

import (
	"github.com/entrhq/modelview/pkg/logging"
	"github.com/entrhq/modelview/pkg/modelutil"
)

// Surface is a constructed feature: its model plus a teardown.
type Surface interface {
	// Name is the prefix used for the surface's keys in snapshots and scenarios.
	Name() string

	// Model returns the surface's property model.
	Model() *modelutil.Model

	// Destroy tears the surface down. Safe to call more than once.
	Destroy()
}

// Options carries the settings every coordinator is built with.
type Options struct {
	Model  modelutil.Options
	Replay bool
	Logger *logging.Logger
}

// DefaultOptions notifies on every write and replays on bind.
func DefaultOptions() Options {
	return Options{Replay: true}
}

// NewModel builds a model over keys with the configured policies.
func (o Options) NewModel(keys ...modelutil.PropertyKey) *modelutil.Model {
	return modelutil.NewModel(keys, modelutil.WithOptions(o.Model))
}

// Bind attaches binder to m for view, replaying set keys when configured.
func Bind[V any](o Options, m *modelutil.Model, view V, binder modelutil.ViewBinder[V]) *modelutil.ChangeProcessor[V] {
	return modelutil.Bind(m, view, binder, modelutil.WithReplayIf(o.Replay))
}

// Log returns a logger for component, or nil when logging is off.
func (o Options) Log(component string) *logging.Logger {
	return o.Logger.With(component)
}
