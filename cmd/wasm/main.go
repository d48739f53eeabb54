//go:build js && wasm

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall/js"

	"github.com/designspace/designspace/internal/chart"
	"github.com/designspace/designspace/internal/config"
	"github.com/designspace/designspace/internal/engine"
	"github.com/designspace/designspace/internal/interact"
	"github.com/designspace/designspace/internal/store"
)

var eng *engine.Engine

func main() {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx := context.Background()
	var st store.Store
	if cfg.StorageBackend == config.BackendLocal {
		st = newLocalStorage()
	} else {
		s, closeStore, err := store.Open(ctx, cfg)
		if err != nil {
			slog.Error("open store", "error", err)
			os.Exit(1)
		}
		defer closeStore()
		st = s
	}

	eng, err = engine.NewEngine(cfg, st, slog.Default())
	if err != nil {
		slog.Error("create engine", "error", err)
		os.Exit(1)
	}
	if err := eng.Load(ctx); err != nil {
		slog.Warn("load chart", "error", err)
	}

	api := js.Global().Get("Object").New()

	// --- Model commands ---
	api.Set("loadSample", js.FuncOf(loadSample))
	api.Set("addDimension", js.FuncOf(addDimension))
	api.Set("deleteDimension", js.FuncOf(deleteDimension))
	api.Set("moveDimension", js.FuncOf(moveDimension))
	api.Set("updateDimension", js.FuncOf(updateDimension))
	api.Set("addLevel", js.FuncOf(addLevel))
	api.Set("deleteLevel", js.FuncOf(deleteLevel))
	api.Set("updateLevel", js.FuncOf(updateLevel))
	api.Set("addDataPoint", js.FuncOf(addDataPoint))
	api.Set("deleteDataPoint", js.FuncOf(deleteDataPoint))
	api.Set("renameDataPoint", js.FuncOf(renameDataPoint))
	api.Set("toggleVisibility", js.FuncOf(toggleVisibility))
	api.Set("setAllVisible", js.FuncOf(setAllVisible))
	api.Set("setValue", js.FuncOf(setValue))
	api.Set("setTitle", js.FuncOf(setTitle))
	api.Set("setSize", js.FuncOf(setSize))
	api.Set("setColorScheme", js.FuncOf(setColorScheme))
	api.Set("setShowLevelLabels", js.FuncOf(setShowLevelLabels))
	api.Set("setShowDimensionNames", js.FuncOf(setShowDimensionNames))
	api.Set("undo", js.FuncOf(undo))
	api.Set("redo", js.FuncOf(redo))
	api.Set("onReplace", js.FuncOf(onReplace))

	// --- Input ---
	api.Set("pointerDown", js.FuncOf(pointerDown))
	api.Set("pointerMove", js.FuncOf(pointerMove))
	api.Set("pointerUp", js.FuncOf(pointerUp))
	api.Set("keyDown", js.FuncOf(keyDown))
	api.Set("shortcut", js.FuncOf(shortcut))

	// --- Import / export ---
	api.Set("importJSON", js.FuncOf(importJSON))
	api.Set("exportJSON", js.FuncOf(exportJSON))
	api.Set("exportSVG", js.FuncOf(exportSVG))
	api.Set("copyTableHTML", js.FuncOf(copyTableHTML))
	api.Set("copyTableLaTeX", js.FuncOf(copyTableLaTeX))
	api.Set("altText", js.FuncOf(altText))
	api.Set("caption", js.FuncOf(caption))
	api.Set("copyText", js.FuncOf(copyText))

	// --- Queries ---
	api.Set("render", js.FuncOf(renderChart))
	api.Set("getState", js.FuncOf(getState))
	api.Set("getSchemes", js.FuncOf(getSchemes))
	api.Set("canUndo", js.FuncOf(canUndo))
	api.Set("canRedo", js.FuncOf(canRedo))
	api.Set("drainNotices", js.FuncOf(drainNotices))

	js.Global().Set("designSpace", api)
	js.Global().Set("designSpaceReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func ok() interface{} {
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func fail(err error) interface{} {
	return js.ValueOf(map[string]interface{}{"error": err.Error()})
}

func changed(c bool) interface{} {
	return js.ValueOf(map[string]interface{}{"ok": true, "changed": c})
}

func jsError(r interface{}) error {
	if e, isErr := r.(error); isErr {
		return e
	}
	return fmt.Errorf("%v", r)
}

func missing(args []js.Value, n int) bool {
	return len(args) < n
}

var errMissingArgs = errors.New("missing arguments")

// --- Model command handlers ---

func loadSample(this js.Value, args []js.Value) interface{} {
	eng.LoadSample()
	return ok()
}

func addDimension(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(map[string]interface{}{"ok": true, "id": eng.AddDimension()})
}

func deleteDimension(this js.Value, args []js.Value) interface{} {
	if missing(args, 1) {
		return fail(errMissingArgs)
	}
	return changed(eng.DeleteDimension(args[0].Int()))
}

func moveDimension(this js.Value, args []js.Value) interface{} {
	if missing(args, 2) {
		return fail(errMissingArgs)
	}
	dir := chart.Down
	if args[1].String() == "up" {
		dir = chart.Up
	}
	return changed(eng.MoveDimension(args[0].Int(), dir))
}

func updateDimension(this js.Value, args []js.Value) interface{} {
	if missing(args, 3) {
		return fail(errMissingArgs)
	}
	return changed(eng.UpdateDimension(args[0].Int(), args[1].String(), args[2].String()))
}

func addLevel(this js.Value, args []js.Value) interface{} {
	if missing(args, 1) {
		return fail(errMissingArgs)
	}
	return changed(eng.AddLevel(args[0].Int()))
}

func deleteLevel(this js.Value, args []js.Value) interface{} {
	if missing(args, 2) {
		return fail(errMissingArgs)
	}
	return changed(eng.DeleteLevel(args[0].Int(), args[1].Int()))
}

func updateLevel(this js.Value, args []js.Value) interface{} {
	if missing(args, 4) {
		return fail(errMissingArgs)
	}
	return changed(eng.UpdateLevel(args[0].Int(), args[1].Int(), args[2].String(), args[3].String()))
}

func addDataPoint(this js.Value, args []js.Value) interface{} {
	id, added := eng.AddDataPoint()
	if !added {
		return changed(false)
	}
	return js.ValueOf(map[string]interface{}{"ok": true, "changed": true, "id": id})
}

func deleteDataPoint(this js.Value, args []js.Value) interface{} {
	if missing(args, 1) {
		return fail(errMissingArgs)
	}
	return changed(eng.DeleteDataPoint(args[0].Int()))
}

func renameDataPoint(this js.Value, args []js.Value) interface{} {
	if missing(args, 2) {
		return fail(errMissingArgs)
	}
	return changed(eng.RenameDataPoint(args[0].Int(), args[1].String()))
}

func toggleVisibility(this js.Value, args []js.Value) interface{} {
	if missing(args, 1) {
		return fail(errMissingArgs)
	}
	return changed(eng.ToggleVisibility(args[0].Int()))
}

func setAllVisible(this js.Value, args []js.Value) interface{} {
	if missing(args, 1) {
		return fail(errMissingArgs)
	}
	return changed(eng.SetAllVisible(args[0].Bool()))
}

func setValue(this js.Value, args []js.Value) interface{} {
	if missing(args, 3) {
		return fail(errMissingArgs)
	}
	return changed(eng.SetValue(args[0].Int(), args[1].Int(), args[2].Int()))
}

func setTitle(this js.Value, args []js.Value) interface{} {
	if missing(args, 2) {
		return fail(errMissingArgs)
	}
	eng.SetTitle(args[0].String(), args[1].String())
	return ok()
}

func setSize(this js.Value, args []js.Value) interface{} {
	if missing(args, 2) {
		return fail(errMissingArgs)
	}
	return changed(eng.SetSize(args[0].Int(), args[1].Int()))
}

func setColorScheme(this js.Value, args []js.Value) interface{} {
	if missing(args, 1) {
		return fail(errMissingArgs)
	}
	if err := eng.SetColorScheme(chart.ColorScheme(args[0].String())); err != nil {
		return fail(err)
	}
	return ok()
}

func setShowLevelLabels(this js.Value, args []js.Value) interface{} {
	if missing(args, 1) {
		return fail(errMissingArgs)
	}
	eng.SetShowLevelLabels(args[0].Bool())
	return ok()
}

func setShowDimensionNames(this js.Value, args []js.Value) interface{} {
	if missing(args, 1) {
		return fail(errMissingArgs)
	}
	eng.SetShowDimensionNames(args[0].Bool())
	return ok()
}

func undo(this js.Value, args []js.Value) interface{} {
	return changed(eng.Undo())
}

func redo(this js.Value, args []js.Value) interface{} {
	return changed(eng.Redo())
}

// onReplace registers a page callback that resynchronizes form fields after
// the chart was replaced as a whole.
func onReplace(this js.Value, args []js.Value) interface{} {
	if missing(args, 1) || args[0].Type() != js.TypeFunction {
		eng.OnReplace(nil)
		return nil
	}
	fn := args[0]
	eng.OnReplace(func() { fn.Invoke() })
	return nil
}

// --- Input handlers ---

// viewport reads the displayed bounding box of the chart element from
// args[start:start+4] as left, top, width, height.
func viewport(args []js.Value, start int) interact.Viewport {
	s := eng.State()
	vp := interact.Viewport{ChartWidth: float64(s.Theme.Width), ChartHeight: float64(s.Theme.Height)}
	if len(args) >= start+4 {
		vp.Left, vp.Top = args[start].Float(), args[start+1].Float()
		vp.Width, vp.Height = args[start+2].Float(), args[start+3].Float()
	}
	return vp
}

// pointerDown(clientX, clientY, button, left, top, width, height)
func pointerDown(this js.Value, args []js.Value) interface{} {
	if missing(args, 3) {
		return fail(errMissingArgs)
	}
	pos := viewport(args, 3).ToChart(args[0].Float(), args[1].Float())
	target, started := eng.PointerDown(pos, interact.Button(args[2].Int()))
	if !started {
		return changed(false)
	}
	return js.ValueOf(map[string]interface{}{
		"ok":             true,
		"dragging":       true,
		"dataPointIndex": target.DataPointIndex,
		"dimensionId":    target.DimensionID,
	})
}

// pointerMove(clientX, clientY, left, top, width, height)
func pointerMove(this js.Value, args []js.Value) interface{} {
	if missing(args, 2) {
		return fail(errMissingArgs)
	}
	if _, dragging := eng.Dragging(); !dragging {
		return changed(false)
	}
	pos := viewport(args, 2).ToChart(args[0].Float(), args[1].Float())
	return changed(eng.PointerMove(pos))
}

func pointerUp(this js.Value, args []js.Value) interface{} {
	return changed(eng.PointerUp())
}

// keyDown(dataPointIndex, dimensionId, key)
func keyDown(this js.Value, args []js.Value) interface{} {
	if missing(args, 3) {
		return fail(errMissingArgs)
	}
	target := interact.Target{DataPointIndex: args[0].Int(), DimensionID: args[1].Int()}
	return changed(eng.KeyDown(target, args[2].String()))
}

// shortcut(key, ctrlOrMeta, shift)
func shortcut(this js.Value, args []js.Value) interface{} {
	if missing(args, 3) {
		return fail(errMissingArgs)
	}
	return js.ValueOf(map[string]interface{}{"handled": eng.Shortcut(args[0].String(), args[1].Bool(), args[2].Bool())})
}

// --- Import / export handlers ---

func importJSON(this js.Value, args []js.Value) interface{} {
	if missing(args, 1) {
		return fail(errMissingArgs)
	}
	if err := eng.Import(strings.NewReader(args[0].String())); err != nil {
		return fail(err)
	}
	return ok()
}

func exportJSON(this js.Value, args []js.Value) interface{} {
	var b strings.Builder
	name, err := eng.ExportJSON(&b)
	if err != nil {
		return fail(err)
	}
	return js.ValueOf(map[string]interface{}{"ok": true, "name": name, "type": "application/json", "data": b.String()})
}

func exportSVG(this js.Value, args []js.Value) interface{} {
	var b strings.Builder
	name, err := eng.ExportSVG(&b)
	if err != nil {
		return fail(err)
	}
	return js.ValueOf(map[string]interface{}{"ok": true, "name": name, "type": "image/svg+xml", "data": b.String()})
}

// writeClipboard copies text and queues message once the write resolves.
func writeClipboard(text, message string) {
	var then js.Func
	then = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		eng.Notify(engine.NoticeInfo, message)
		then.Release()
		return nil
	})
	js.Global().Get("navigator").Get("clipboard").Call("writeText", text).Call("then", then)
}

func copyTableHTML(this js.Value, args []js.Value) interface{} {
	if missing(args, 1) {
		return fail(errMissingArgs)
	}
	html, err := eng.TableHTML(args[0].Int())
	if err != nil {
		return fail(err)
	}
	writeClipboard(html, engine.MsgHTMLTableCopied)
	return ok()
}

func copyTableLaTeX(this js.Value, args []js.Value) interface{} {
	if missing(args, 1) {
		return fail(errMissingArgs)
	}
	latex, err := eng.TableLaTeX(args[0].Int())
	if err != nil {
		return fail(err)
	}
	writeClipboard(latex, engine.MsgLaTeXTableCopied)
	return ok()
}

func altText(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.AltText())
}

func caption(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.Caption())
}

func copyText(this js.Value, args []js.Value) interface{} {
	if missing(args, 1) {
		return fail(errMissingArgs)
	}
	writeClipboard(args[0].String(), engine.MsgTextCopied)
	return ok()
}

// --- Query handlers ---

// render(scale, interactive) returns the frame as JSON.
func renderChart(this js.Value, args []js.Value) interface{} {
	scale, interactive := 1.0, true
	if len(args) > 0 && args[0].Type() == js.TypeNumber {
		scale = args[0].Float()
	}
	if len(args) > 1 && args[1].Type() == js.TypeBoolean {
		interactive = args[1].Bool()
	}
	frame, err := eng.RenderJSON(scale, interactive)
	if err != nil {
		slog.Warn("render", "error", err)
	}
	return js.ValueOf(frame)
}

func getState(this js.Value, args []js.Value) interface{} {
	s, err := eng.StateJSON()
	if err != nil {
		return fail(err)
	}
	return js.ValueOf(s)
}

func getSchemes(this js.Value, args []js.Value) interface{} {
	return jsonValue(chart.Schemes())
}

func canUndo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.CanUndo())
}

func canRedo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.CanRedo())
}

func drainNotices(this js.Value, args []js.Value) interface{} {
	n := eng.DrainNotices()
	if n == nil {
		n = []engine.Notice{}
	}
	return jsonValue(n)
}

func jsonValue(v interface{}) interface{} {
	data, err := json.Marshal(v)
	if err != nil {
		return js.ValueOf("null")
	}
	return js.ValueOf(string(data))
}
