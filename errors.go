package script

import (
	"fmt"
	"strings"
)

// maxRenderedLine caps the width of the rendered offending-line window;
// longer lines are truncated around the offending column.
const maxRenderedLine = 120

// ParserError is raised by ParseScript and ParseExpression on failure.
// Rendering is kept separate from construction: callers that only need
// the description use Error(), callers that want the full caret
// display call Render().
type ParserError struct {
	Err          string // description, e.g. "Syntax error"
	Line         string // offending line text, as entered, untrimmed
	ColumnNumber int    // 1-based; defaults to 1
	LineNumber   int    // 0 means unset
	Prefix       string // optional message prefix line
}

func (e *ParserError) Error() string {
	if e.LineNumber > 0 {
		return fmt.Sprintf("%s, line number %d", e.Err, e.LineNumber)
	}
	return e.Err
}

// Render produces the three (or four, with Prefix) line caret display:
// an optional prefix line, the "<error>[, line number <n>]:" line, a
// possibly-truncated view of the offending line, and a caret under the
// offending column.
func (e *ParserError) Render() string {
	col := e.ColumnNumber
	if col < 1 {
		col = 1
	}
	line, col := truncateLine(e.Line, col)

	var b strings.Builder
	if e.Prefix != "" {
		b.WriteString(e.Prefix)
		b.WriteByte('\n')
	}
	b.WriteString(e.Error())
	b.WriteString(":\n")
	b.WriteString(line)
	b.WriteByte('\n')
	if col > 1 {
		b.WriteString(strings.Repeat(" ", col-1))
	}
	b.WriteByte('^')
	return b.String()
}

// truncateLine builds a maxRenderedLine-wide window centered on col,
// returning the rendered line and the column adjusted for that window.
// The caller's stored Line/ColumnNumber are never mutated.
func truncateLine(line string, col int) (string, int) {
	if len(line) <= maxRenderedLine {
		return line, col
	}

	half := maxRenderedLine / 2
	start := col - 1 - half
	truncatedLeft := start > 0
	if start < 0 {
		start = 0
	}
	end := start + maxRenderedLine
	truncatedRight := end < len(line)
	if end > len(line) {
		end = len(line)
		start = end - maxRenderedLine
		if start < 0 {
			start = 0
		}
		truncatedLeft = start > 0
	}

	window := line[start:end]
	adjustedCol := col - start

	if truncatedLeft {
		window = "... " + window
		adjustedCol += len("... ")
	}
	if truncatedRight {
		window = window + " ..."
	}
	return window, adjustedCol
}

func newParserError(err, line string, col int) *ParserError {
	return &ParserError{Err: err, Line: line, ColumnNumber: col}
}
