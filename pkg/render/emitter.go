package render

import "strings"

// indentUnit is part of the format contract: golden files diff against
// this exact indentation.
const indentUnit = "    "

// emitter accumulates renderer output. It owns the buffer, the current
// indent depth, and a line-beginning flag; indentation is applied on
// the first non-empty write of each line. One emitter serves exactly
// one Render call.
type emitter struct {
	buf       strings.Builder
	depth     int
	lineStart bool
}

func newEmitter() *emitter {
	return &emitter{lineStart: true}
}

// Write appends s to the current line, indenting first if this is the
// first write since the last line terminator.
func (e *emitter) Write(s string) {
	if s == "" {
		return
	}
	if e.lineStart {
		for i := 0; i < e.depth; i++ {
			e.buf.WriteString(indentUnit)
		}
		e.lineStart = false
	}
	e.buf.WriteString(s)
}

// WriteLine appends s, then terminates the current line.
func (e *emitter) WriteLine(s string) {
	e.Write(s)
	e.buf.WriteString("\n")
	e.lineStart = true
}

// TerminateLine ends the current line if anything is on it.
func (e *emitter) TerminateLine() {
	if !e.lineStart {
		e.WriteLine("")
	}
}

func (e *emitter) PushIndent() {
	e.depth++
}

func (e *emitter) PopIndent() {
	if e.depth == 0 {
		panic("render: PopIndent without matching PushIndent")
	}
	e.depth--
}

// Indented runs fn one indent level deeper.
func (e *emitter) Indented(fn func()) {
	e.PushIndent()
	fn()
	e.PopIndent()
}

func (e *emitter) String() string {
	return e.buf.String()
}
