// Package engine owns the chart being edited. It applies model operations,
// records history, persists the chart after every durable change and renders
// scenes for the presentation layer.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashicorp/golang-lru/simplelru"

	"github.com/designspace/designspace/internal/chart"
	"github.com/designspace/designspace/internal/config"
	"github.com/designspace/designspace/internal/history"
	"github.com/designspace/designspace/internal/interact"
	"github.com/designspace/designspace/internal/render"
	"github.com/designspace/designspace/internal/scene"
	"github.com/designspace/designspace/internal/store"
)

// Engine is not safe for concurrent use. The presentation layer handles one
// input event at a time.
type Engine struct {
	state   *chart.State
	history *history.History

	// navigating is set while undo or redo replaces the state, so that the
	// replacement is not recorded as a new history entry.
	navigating bool

	store      store.Store
	storageKey string

	scenes     *simplelru.LRU
	controller *interact.Controller
	notices    []Notice
	logger     *slog.Logger

	// onReplace is called after the whole state was swapped out, so that
	// the presentation layer can resynchronize its form fields.
	onReplace func()
}

// NewEngine creates an engine holding a default chart. Call Load to restore
// the persisted chart.
func NewEngine(cfg *config.Config, st store.Store, logger *slog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if st == nil {
		st = store.NewMemory()
	}
	if logger == nil {
		logger = slog.Default()
	}
	scenes, err := simplelru.NewLRU(cfg.SceneCacheSize, nil /* no onEvict policy */)
	if err != nil {
		return nil, fmt.Errorf("create scene cache: %w", err)
	}

	e := &Engine{
		state:      chart.New(),
		history:    history.New(cfg.HistoryLimit),
		store:      st,
		storageKey: cfg.StorageKey,
		scenes:     scenes,
		logger:     logger,
	}
	e.controller = interact.NewController(binding{e})
	e.record()
	return e, nil
}

// Load restores the persisted chart. A missing or unreadable entry leaves
// the default chart in place. History restarts from the loaded chart.
func (e *Engine) Load(ctx context.Context) error {
	data, err := e.store.Get(ctx, e.storageKey)
	switch {
	case errors.Is(err, store.ErrNotFound):
		e.logger.Info("no saved chart, using defaults", "key", e.storageKey)
		e.reset(chart.New())
		return nil
	case err != nil:
		e.reset(chart.New())
		return fmt.Errorf("load chart: %w", err)
	}

	s, err := chart.Decode(data)
	if err != nil {
		e.logger.Warn("saved chart is unreadable, using defaults", "key", e.storageKey, "error", err)
		s = chart.New()
	}
	e.reset(s)
	e.logger.Info("chart loaded", "title", s.ChartTitle, "dimensions", len(s.Dimensions), "dataPoints", len(s.DataPoints))
	return nil
}

// LoadSample replaces the chart with the built-in example.
func (e *Engine) LoadSample() {
	e.replace(chart.Sample())
}

// replace swaps in s as a durable change.
func (e *Engine) replace(s *chart.State) {
	e.state = s
	e.controller.Cancel()
	e.commit()
	e.replaced()
}

func (e *Engine) reset(s *chart.State) {
	e.state = s
	e.controller.Cancel()
	e.history.Reset()
	e.record()
	e.replaced()
}

// State returns a copy of the current chart.
func (e *Engine) State() *chart.State {
	return e.state.Clone()
}

// StateJSON returns the serialized current chart.
func (e *Engine) StateJSON() (string, error) {
	data, err := e.state.Marshal()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// commit persists the chart and records it in history. It does nothing
// while history navigation is replacing the state.
func (e *Engine) commit() {
	if e.navigating {
		return
	}
	e.persist()
	e.record()
}

func (e *Engine) record() {
	if _, err := e.history.Push(e.state); err != nil {
		e.logger.Warn("record history", "error", err)
	}
}

func (e *Engine) persist() {
	data, err := e.state.Marshal()
	if err != nil {
		e.logger.Warn("persist chart", "error", err)
		return
	}
	if err := e.store.Put(context.Background(), e.storageKey, data); err != nil {
		e.logger.Warn("persist chart", "key", e.storageKey, "error", err)
	}
}

// Undo restores the previous snapshot.
func (e *Engine) Undo() bool {
	return e.navigate(e.history.Undo, "Undo successful")
}

// Redo restores the next snapshot.
func (e *Engine) Redo() bool {
	return e.navigate(e.history.Redo, "Redo successful")
}

func (e *Engine) navigate(step func() (*chart.State, error), message string) bool {
	s, err := step()
	if err != nil {
		if !errors.Is(err, history.ErrNothingToUndo) && !errors.Is(err, history.ErrNothingToRedo) {
			e.logger.Warn("history navigation", "error", err)
		}
		return false
	}

	e.navigating = true
	defer func() { e.navigating = false }()

	e.state = s
	e.controller.Cancel()
	e.persist()
	e.replaced()
	e.notify(NoticeInfo, message)
	e.logger.Info(message, "cursor", e.history.Cursor(), "snapshots", e.history.Len())
	return true
}

// OnReplace registers fn to run whenever the state is replaced as a whole:
// on load, import, sample and history navigation. Edits fn makes while undo
// or redo is in progress are not recorded.
func (e *Engine) OnReplace(fn func()) {
	e.onReplace = fn
}

func (e *Engine) replaced() {
	if e.onReplace != nil {
		e.onReplace()
	}
}

func (e *Engine) CanUndo() bool { return e.history.CanUndo() }
func (e *Engine) CanRedo() bool { return e.history.CanRedo() }

// Render returns the scene of the current chart. Scenes are cached by
// chart content, so re-rendering an unchanged or restored chart is free.
func (e *Engine) Render(scale float64, interactive bool) *scene.Graph {
	data, err := e.state.Marshal()
	if err != nil {
		return render.BuildSceneGraph(e.state, scale, interactive)
	}
	key := sceneKey{snapshot: string(data), scale: scale, interactive: interactive}
	if g, ok := e.scenes.Get(key); ok {
		return g.(*scene.Graph)
	}
	g := render.BuildSceneGraph(e.state, scale, interactive)
	e.scenes.Add(key, g)
	return g
}

// RenderJSON returns the draw commands of the current chart.
func (e *Engine) RenderJSON(scale float64, interactive bool) (string, error) {
	return scene.FrameToJSON(e.Render(scale, interactive))
}

type sceneKey struct {
	snapshot    string
	scale       float64
	interactive bool
}

// binding exposes the engine to the interaction controller without adding
// the controller's callbacks to the engine's public API.
type binding struct{ e *Engine }

func (b binding) State() *chart.State { return b.e.state }

func (b binding) Changed() {
	b.e.logger.Debug("chart changed")
}

func (b binding) Commit() { b.e.commit() }
