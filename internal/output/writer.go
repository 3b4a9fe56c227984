// Package output writes legality query results and board diagrams.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/config"
)

// Result is the outcome of one legality query.
type Result struct {
	Move         string   `json:"move"`
	Piece        string   `json:"piece,omitempty"`
	Legal        bool     `json:"legal"`
	Destinations []string `json:"destinations,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// NewResult asks board whether m is possible and records the answer.
func NewResult(board *chess.Board, m chess.Move) Result {
	r := Result{
		Move:  m.String(),
		Legal: board.IsMovePossible(m),
	}
	if p, ok := board.Get(m.From); ok {
		r.Piece = p.String()
	}
	return r
}

// NewDestinationsResult lists every square the piece on from can reach.
func NewDestinationsResult(board *chess.Board, from chess.Square) Result {
	r := Result{Move: from.String(), Destinations: []string{}}
	if p, ok := board.Get(from); ok {
		r.Piece = p.String()
	}
	for _, to := range board.Destinations(from) {
		r.Destinations = append(r.Destinations, to.String())
	}
	r.Legal = len(r.Destinations) > 0
	return r
}

// ErrorResult records input that could not be turned into a query.
func ErrorResult(input string, err error) Result {
	return Result{Move: input, Error: err.Error()}
}

// ResultWriter is the interface for writing results.
type ResultWriter interface {
	// WriteResult writes a single result to the output.
	WriteResult(r Result) error

	// Close writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by cfg.OutputFormat.
func NewWriter(w io.Writer, cfg *config.Config) ResultWriter {
	if cfg.OutputFormat == config.JSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w)
}

// TextWriter writes one line per result.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteResult writes r as a single line.
func (tw *TextWriter) WriteResult(r Result) error {
	var err error
	switch {
	case r.Error != "":
		_, err = fmt.Fprintf(tw.w, "%s: error: %s\n", r.Move, r.Error)
	case r.Destinations != nil:
		_, err = fmt.Fprintf(tw.w, "%s %s: %s\n", r.Move, pieceLabel(r.Piece), joinOrNone(r.Destinations))
	default:
		_, err = fmt.Fprintf(tw.w, "%s %s: %s\n", r.Move, pieceLabel(r.Piece), legality(r.Legal))
	}
	return err
}

// Close is a no-op; text is written immediately.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter buffers results and writes them as a JSON array on Close.
type JSONWriter struct {
	w       io.Writer
	results []Result
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		results: make([]Result, 0),
	}
}

// WriteResult buffers r.
func (jw *JSONWriter) WriteResult(r Result) error {
	jw.results = append(jw.results, r)
	return nil
}

// Close writes the buffered results.
func (jw *JSONWriter) Close() error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(jw.results)

	jw.results = jw.results[:0]

	return err
}

func pieceLabel(piece string) string {
	if piece == "" {
		return "(empty)"
	}
	return "(" + piece + ")"
}

func legality(legal bool) string {
	if legal {
		return "legal"
	}
	return "illegal"
}

func joinOrNone(squares []string) string {
	if len(squares) == 0 {
		return "none"
	}
	return strings.Join(squares, " ")
}
