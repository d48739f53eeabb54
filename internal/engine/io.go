package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/designspace/designspace/internal/chart"
	"github.com/designspace/designspace/internal/export"
	"github.com/designspace/designspace/internal/typeid"
)

var (
	ErrUnknownDimension = errors.New("unknown dimension")
	ErrEmptyChart       = errors.New("chart has no dimensions")
)

// Import replaces the chart with a configuration file. On failure the
// current chart is left untouched and an error notice is queued.
func (e *Engine) Import(r io.Reader) error {
	s, err := export.ImportJSON(r)
	if err != nil {
		e.notify(NoticeError, MsgImportFailed)
		e.logger.Warn("import failed", "error", err)
		return err
	}
	e.replace(s)
	e.notify(NoticeSuccess, MsgImported)
	e.logger.Info("configuration imported", "title", s.ChartTitle, "dimensions", len(s.Dimensions), "dataPoints", len(s.DataPoints))
	return nil
}

// ExportJSON writes the configuration file and returns its download name.
func (e *Engine) ExportJSON(w io.Writer) (string, error) {
	name := export.JSONFilename(e.state.ChartTitle)
	if err := export.ExportJSON(w, e.state); err != nil {
		return "", err
	}
	e.logger.Info("configuration exported", "id", typeid.NewExportID(), "file", name)
	return name, nil
}

// ExportSVG writes the vector document and returns its download name. A
// chart without dimensions has nothing to draw and is not exported.
func (e *Engine) ExportSVG(w io.Writer) (string, error) {
	if len(e.state.Dimensions) == 0 {
		e.notify(NoticeError, MsgNotRendered)
		return "", ErrEmptyChart
	}
	name := export.SVGFilename(e.state.ChartTitle)
	if err := export.WriteSVG(w, e.state); err != nil {
		return "", err
	}
	e.logger.Info("svg exported", "id", typeid.NewExportID(), "file", name)
	return name, nil
}

// TableHTML renders the levels of a dimension as an HTML table.
func (e *Engine) TableHTML(dimensionID int) (string, error) {
	d, err := e.dimension(dimensionID)
	if err != nil {
		return "", err
	}
	return export.TableHTML(d)
}

// TableLaTeX renders the levels of a dimension as a LaTeX table.
func (e *Engine) TableLaTeX(dimensionID int) (string, error) {
	d, err := e.dimension(dimensionID)
	if err != nil {
		return "", err
	}
	return export.TableLaTeX(d)
}

func (e *Engine) dimension(id int) (*chart.Dimension, error) {
	d := e.state.Dimension(id)
	if d == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDimension, id)
	}
	return d, nil
}

// AltText describes the current chart for screen readers.
func (e *Engine) AltText() string {
	return export.AltText(e.state)
}

// Caption returns a figure caption for the current chart.
func (e *Engine) Caption() string {
	return export.Caption(e.state)
}
