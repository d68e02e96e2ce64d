package element

import "regexp"

// LabelFormatter rewrites a label before it is stored.
type LabelFormatter func(string) string

// PassThrough stores labels unchanged. It is the default formatter.
func PassThrough(s string) string { return s }

// DefaultBreakPattern matches line-break-like sequences in labels.
const DefaultBreakPattern = `(\r?\n)|(\n)|(\f)|(\r)|(%n)`

// DefaultBreakInsert is the escaped newline the renderer understands.
const DefaultBreakInsert = `\n`

// LineBreaker replaces every Every-th match of Pattern with Insert.
// Every <= 1 replaces every match. Empty Pattern and Insert fall back to
// DefaultBreakPattern and DefaultBreakInsert.
type LineBreaker struct {
	Every   int
	Insert  string
	Pattern string
}

// Formatter compiles the breaker into a LabelFormatter.
// It panics if Pattern is not a valid regular expression.
func (b LineBreaker) Formatter() LabelFormatter {
	pattern := b.Pattern
	if pattern == "" {
		pattern = DefaultBreakPattern
	}
	insert := b.Insert
	if insert == "" {
		insert = DefaultBreakInsert
	}
	every := max(b.Every, 1)
	re := regexp.MustCompile(pattern)

	return func(s string) string {
		n := 0
		return re.ReplaceAllStringFunc(s, func(m string) string {
			n++
			if n%every == 0 {
				return insert
			}
			return m
		})
	}
}
