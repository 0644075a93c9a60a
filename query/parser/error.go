package parser

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// SyntaxError represents a malformed query with the position where
// parsing failed. Parsing aborts at the first such error; no partial
// tree is returned alongside one.
type SyntaxError struct {
	Message     string   // Human-readable message
	Expected    string   // What the parser wanted at Pos (optional)
	Token       string   // Offending token text, empty at end of input
	Pos         Position // Where parsing failed
	Suggestions []string // Possible fixes
}

// Error implements the error interface with the plain format
func (e *SyntaxError) Error() string {
	return e.Plain()
}

// Plain creates a concise error for logs and machine consumers
func (e *SyntaxError) Plain() string {
	msg := fmt.Sprintf("%s at line %d, column %d", e.Message, e.Pos.Line, e.Pos.Character+1)
	if e.Expected != "" {
		msg += fmt.Sprintf(" (expected %s)", e.Expected)
	}
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(". Suggestions: %s", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// FormatTerminal creates a rich colored error for terminal display
func (e *SyntaxError) FormatTerminal() string {
	baseMsg := pterm.Red(e.Message)

	context := fmt.Sprintf("\n\n%s", pterm.LightCyan("Context:"))
	context += fmt.Sprintf("\n  %s line %d, column %d", pterm.Yellow("Position:"), e.Pos.Line, e.Pos.Character+1)
	if e.Token != "" {
		context += fmt.Sprintf("\n  %s '%s'", pterm.Yellow("Token:"), e.Token)
	}
	if e.Expected != "" {
		context += fmt.Sprintf("\n  %s %s", pterm.Yellow("Expected:"), e.Expected)
	}

	if len(e.Suggestions) > 0 {
		context += fmt.Sprintf("\n\n%s", pterm.Green("Suggestions:"))
		for _, suggestion := range e.Suggestions {
			context += fmt.Sprintf("\n  • %s", suggestion)
		}
	}

	return fmt.Sprintf("%s%s", baseMsg, context)
}

// NewSyntaxError creates a new SyntaxError with the given message
func NewSyntaxError(message string) *SyntaxError {
	return &SyntaxError{Message: message}
}

// WithPosition sets where the error occurred
func (e *SyntaxError) WithPosition(pos Position) *SyntaxError {
	e.Pos = pos
	return e
}

// WithExpected records what the parser wanted at the failure point
func (e *SyntaxError) WithExpected(expected string) *SyntaxError {
	e.Expected = expected
	return e
}

// WithToken sets the offending token text
func (e *SyntaxError) WithToken(token string) *SyntaxError {
	e.Token = token
	return e
}

// WithSuggestion adds a suggestion for fixing the error
func (e *SyntaxError) WithSuggestion(suggestion string) *SyntaxError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}
