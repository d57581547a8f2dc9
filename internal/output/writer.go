// Package output formats probe reports as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// ReportWriter is the interface for writing reports to output.
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *Report) error
}

// NewWriter returns the writer selected by cfg.
func NewWriter(cfg *config.OutputConfig) ReportWriter {
	if cfg.JSONFormat {
		return &JSONWriter{w: cfg.Writer}
	}
	return &TextWriter{w: cfg.Writer}
}

// TextWriter writes reports as aligned "label: value" lines.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteReport writes r in text form.
func (tw *TextWriter) WriteReport(r *Report) error {
	return WriteText(tw.w, r)
}

// JSONWriter writes each report as an indented JSON object.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteReport writes r in JSON form.
func (jw *JSONWriter) WriteReport(r *Report) error {
	return WriteJSON(jw.w, r)
}

// WriteJSON encodes r to w.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteText writes r to w, one field per line.
func WriteText(w io.Writer, r *Report) error {
	var sb strings.Builder

	line := func(label, value string) {
		fmt.Fprintf(&sb, "%-13s %s\n", label+":", value)
	}

	line("position", r.FEN)
	line("side to move", r.SideToMove)
	line("rules", r.Rules)

	if m := r.Move; m != nil {
		desc := m.From + m.To
		if m.Piece != "" {
			desc += " (" + m.Piece + ")"
		}
		line("move", desc)
		if m.Legal {
			line("legal", "yes")
		} else {
			line("legal", "no, "+m.Reason)
		}
		if m.Captured != "" {
			line("captures", m.Captured)
		}
		if m.ResultFEN != "" {
			line("result", m.ResultFEN)
		}
	}

	if d := r.Destinations; d != nil {
		targets := "none"
		if len(d.Squares) > 0 {
			targets = strings.Join(d.Squares, " ")
		}
		line("destinations", d.From+" -> "+targets)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
