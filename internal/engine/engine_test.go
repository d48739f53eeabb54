package engine

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/designspace/designspace/internal/chart"
	"github.com/designspace/designspace/internal/config"
	"github.com/designspace/designspace/internal/geometry"
	"github.com/designspace/designspace/internal/interact"
	"github.com/designspace/designspace/internal/store"
)

func newTestEngine(t *testing.T) (*Engine, *store.Memory) {
	t.Helper()
	st := store.NewMemory()
	e, err := NewEngine(config.Default(), st, nil)
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}
	if err := e.Load(context.Background()); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	return e, st
}

func stored(t *testing.T, st store.Store) *chart.State {
	t.Helper()
	data, err := st.Get(context.Background(), config.Default().StorageKey)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	s, err := chart.Decode(data)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	return s
}

func TestLoad(t *testing.T) {
	tests := []struct {
		description string
		saved       string
		wantTitle   string
	}{
		{description: "nothing saved", wantTitle: chart.DefaultTitle},
		{description: "saved chart", saved: `{"chartTitle":"Saved","dimensions":[]}`, wantTitle: "Saved"},
		{description: "unreadable", saved: `{"chartTitle":`, wantTitle: chart.DefaultTitle},
	}
	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			st := store.NewMemory()
			if test.saved != "" {
				st.Put(context.Background(), config.Default().StorageKey, []byte(test.saved))
			}
			e, err := NewEngine(config.Default(), st, nil)
			if err != nil {
				t.Fatalf("NewEngine() failed: %v", err)
			}
			if err := e.Load(context.Background()); err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if got := e.State().ChartTitle; got != test.wantTitle {
				t.Errorf("title = %q, want %q", got, test.wantTitle)
			}
			if e.CanUndo() || e.CanRedo() {
				t.Error("a freshly loaded chart has history to navigate")
			}
		})
	}
}

func TestMutationsPersistAndRecord(t *testing.T) {
	e, st := newTestEngine(t)
	id := e.AddDimension()
	e.UpdateDimension(id, "Autonomy", "")

	if got := stored(t, st).Dimensions[0].Name; got != "Autonomy" {
		t.Errorf("stored dimension = %q, want Autonomy", got)
	}
	if got := e.history.Len(); got != 3 {
		t.Errorf("history entries = %d, want 3", got)
	}
	if e.DeleteDimension(42) {
		t.Error("DeleteDimension(42) reported a change")
	}
	if got := e.history.Len(); got != 3 {
		t.Errorf("history entries after no-op = %d, want 3", got)
	}
}

func TestUndoRedo(t *testing.T) {
	e, st := newTestEngine(t)
	e.AddDimension()
	e.AddDimension()

	if !e.Undo() {
		t.Fatal("Undo() failed")
	}
	if got := len(e.State().Dimensions); got != 1 {
		t.Errorf("dimensions after undo = %d, want 1", got)
	}
	if got := len(stored(t, st).Dimensions); got != 1 {
		t.Errorf("stored dimensions after undo = %d, want 1", got)
	}
	if !e.Redo() {
		t.Fatal("Redo() failed")
	}
	if got := len(e.State().Dimensions); got != 2 {
		t.Errorf("dimensions after redo = %d, want 2", got)
	}
	if e.Redo() {
		t.Error("Redo() at the newest entry succeeded")
	}

	want := []Notice{{Kind: NoticeInfo, Message: "Undo successful"}, {Kind: NoticeInfo, Message: "Redo successful"}}
	if diff := cmp.Diff(want, e.DrainNotices()); diff != "" {
		t.Errorf("notices mismatch (-want +got):\n%s", diff)
	}
	if got := e.DrainNotices(); len(got) != 0 {
		t.Errorf("second drain = %v, want empty", got)
	}
}

func TestNavigationIsNotRecorded(t *testing.T) {
	e, _ := newTestEngine(t)
	e.SetTitle("A", "")
	e.SetTitle("B", "")

	// A form resync that writes the title back while undo is in progress.
	e.OnReplace(func() { e.SetTitle(e.state.ChartTitle, "resynced") })

	entries := e.history.Len()
	if !e.Undo() {
		t.Fatal("Undo() failed")
	}
	if got := e.history.Len(); got != entries {
		t.Errorf("history entries = %d, want %d", got, entries)
	}
	if !e.CanRedo() {
		t.Fatal("redo branch was discarded by the undo itself")
	}
	e.Redo()
	if got := e.State().ChartTitle; got != "B" {
		t.Errorf("title after redo = %q, want B", got)
	}
}

func setupDrag(t *testing.T) *Engine {
	t.Helper()
	e, _ := newTestEngine(t)
	for i := 0; i < 3; i++ {
		e.AddDimension()
	}
	if _, ok := e.AddDataPoint(); !ok {
		t.Fatal("AddDataPoint() failed")
	}
	return e
}

func TestDragIsOneHistoryEntry(t *testing.T) {
	e := setupDrag(t)
	layout := geometry.NewLayout(800, 800)
	entries := e.history.Len()

	target, ok := e.PointerDown(layout.LevelPoint(0, 3, 0, 3), interact.ButtonPrimary)
	if !ok {
		t.Fatal("PointerDown() on a handle did not start a drag")
	}
	if diff := cmp.Diff(interact.Target{DataPointIndex: 0, DimensionID: 0}, target); diff != "" {
		t.Errorf("target mismatch (-want +got):\n%s", diff)
	}
	e.PointerMove(layout.LevelPoint(0, 3, 2, 3))
	e.PointerMove(layout.LevelPoint(0, 3, 1, 3))
	if got := e.history.Len(); got != entries {
		t.Errorf("history entries during drag = %d, want %d", got, entries)
	}
	if !e.PointerUp() {
		t.Error("PointerUp() reported no change")
	}
	if got := e.history.Len(); got != entries+1 {
		t.Errorf("history entries after drag = %d, want %d", got, entries+1)
	}
	if got := e.State().DataPoints[0].Values[0]; got != 1 {
		t.Errorf("value = %d, want 1", got)
	}

	e.Undo()
	if got := e.State().DataPoints[0].Values[0]; got != 0 {
		t.Errorf("value after undo = %d, want 0", got)
	}
}

func TestPointerDownMisses(t *testing.T) {
	e := setupDrag(t)
	if _, ok := e.PointerDown(geometry.Point{X: 1, Y: 1}, interact.ButtonPrimary); ok {
		t.Error("PointerDown() away from handles started a drag")
	}
	layout := geometry.NewLayout(800, 800)
	if _, ok := e.PointerDown(layout.LevelPoint(0, 3, 0, 3), interact.Button(2)); ok {
		t.Error("PointerDown() with a secondary button started a drag")
	}
}

func TestKeyStepIsOneEntryPerPress(t *testing.T) {
	e := setupDrag(t)
	target := interact.Target{DataPointIndex: 0, DimensionID: 1}
	entries := e.history.Len()

	steps := []struct {
		key         string
		wantChanged bool
		wantLevel   int
	}{
		{key: "ArrowUp", wantChanged: true, wantLevel: 1},
		{key: "ArrowRight", wantChanged: true, wantLevel: 2},
		{key: "ArrowUp", wantChanged: false, wantLevel: 2},
		{key: "Enter", wantChanged: false, wantLevel: 2},
		{key: "ArrowLeft", wantChanged: true, wantLevel: 1},
	}
	for _, step := range steps {
		if got := e.KeyDown(target, step.key); got != step.wantChanged {
			t.Errorf("KeyDown(%q) = %v, want %v", step.key, got, step.wantChanged)
		}
		if got := e.State().DataPoints[0].Values[1]; got != step.wantLevel {
			t.Errorf("after %q level = %d, want %d", step.key, got, step.wantLevel)
		}
	}
	if got := e.history.Len(); got != entries+3 {
		t.Errorf("history entries = %d, want %d", got, entries+3)
	}
}

func TestShortcut(t *testing.T) {
	e, _ := newTestEngine(t)
	e.AddDimension()
	if !e.Shortcut("z", true, false) {
		t.Fatal("Ctrl+Z not handled")
	}
	if got := len(e.State().Dimensions); got != 0 {
		t.Errorf("dimensions after Ctrl+Z = %d, want 0", got)
	}
	if !e.Shortcut("Z", true, true) {
		t.Fatal("Ctrl+Shift+Z not handled")
	}
	if got := len(e.State().Dimensions); got != 1 {
		t.Errorf("dimensions after Ctrl+Shift+Z = %d, want 1", got)
	}
	if e.Shortcut("z", false, false) {
		t.Error("plain z handled as a shortcut")
	}
}

func TestAddDataPointWithoutDimensions(t *testing.T) {
	e, _ := newTestEngine(t)
	if _, ok := e.AddDataPoint(); ok {
		t.Fatal("AddDataPoint() without dimensions succeeded")
	}
	if got := len(e.State().DataPoints); got != 0 {
		t.Errorf("data points = %d, want 0", got)
	}
	want := []Notice{{Kind: NoticeError, Message: MsgAddDimensionsFirst}}
	if diff := cmp.Diff(want, e.DrainNotices()); diff != "" {
		t.Errorf("notices mismatch (-want +got):\n%s", diff)
	}
}

func TestImport(t *testing.T) {
	e, st := newTestEngine(t)
	e.SetTitle("Before", "")
	entries := e.history.Len()

	if err := e.Import(strings.NewReader(`not json`)); err == nil {
		t.Fatal("Import() of malformed JSON succeeded")
	}
	if got := e.State().ChartTitle; got != "Before" {
		t.Errorf("title after failed import = %q, want Before", got)
	}
	if got := e.history.Len(); got != entries {
		t.Errorf("history entries after failed import = %d, want %d", got, entries)
	}

	if err := e.Import(strings.NewReader(`{"chartTitle":"After","theme":{"width":600}}`)); err != nil {
		t.Fatalf("Import() failed: %v", err)
	}
	if got := e.State().Theme.Width; got != 600 {
		t.Errorf("width = %d, want 600", got)
	}
	if got := stored(t, st).ChartTitle; got != "After" {
		t.Errorf("stored title = %q, want After", got)
	}
	want := []Notice{{Kind: NoticeError, Message: MsgImportFailed}, {Kind: NoticeSuccess, Message: MsgImported}}
	if diff := cmp.Diff(want, e.DrainNotices()); diff != "" {
		t.Errorf("notices mismatch (-want +got):\n%s", diff)
	}

	e.Undo()
	if got := e.State().ChartTitle; got != "Before" {
		t.Errorf("title after undoing import = %q, want Before", got)
	}
}

func TestExports(t *testing.T) {
	e, _ := newTestEngine(t)
	var buf bytes.Buffer
	if _, err := e.ExportSVG(&buf); !errors.Is(err, ErrEmptyChart) {
		t.Errorf("ExportSVG() of an empty chart error = %v, want ErrEmptyChart", err)
	}

	e.LoadSample()
	name, err := e.ExportSVG(&buf)
	if err != nil {
		t.Fatalf("ExportSVG() failed: %v", err)
	}
	if name != "Assistant_Design_Space.svg" {
		t.Errorf("svg name = %q", name)
	}
	buf.Reset()
	name, err = e.ExportJSON(&buf)
	if err != nil {
		t.Fatalf("ExportJSON() failed: %v", err)
	}
	if name != "Assistant_Design_Space_config.json" {
		t.Errorf("json name = %q", name)
	}
	back, err := chart.Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("exported configuration does not decode: %v", err)
	}
	if diff := cmp.Diff(e.State(), back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	if _, err := e.TableHTML(99); !errors.Is(err, ErrUnknownDimension) {
		t.Errorf("TableHTML(99) error = %v, want ErrUnknownDimension", err)
	}
	id := e.State().Dimensions[0].ID
	if _, err := e.TableLaTeX(id); err != nil {
		t.Errorf("TableLaTeX(%d) failed: %v", id, err)
	}
	if !strings.HasPrefix(e.Caption(), "Figure: Assistant Design Space.") {
		t.Errorf("Caption() = %q", e.Caption())
	}
}

func TestRenderCache(t *testing.T) {
	e := setupDrag(t)
	first := e.Render(1, true)
	if again := e.Render(1, true); again != first {
		t.Error("unchanged chart was rendered again")
	}
	if other := e.Render(0.5, false); other == first {
		t.Error("different scale returned the cached scene")
	}
	e.SetShowLevelLabels(false)
	if changed := e.Render(1, true); changed == first {
		t.Error("changed chart returned the cached scene")
	}
	e.Undo()
	if restored := e.Render(1, true); restored != first {
		t.Error("undo did not reuse the cached scene")
	}
	if _, err := e.RenderJSON(1, true); err != nil {
		t.Errorf("RenderJSON() failed: %v", err)
	}
}
