package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Veraticus/ledgerfield/internal/field"
	"github.com/Veraticus/ledgerfield/internal/model"
)

// Session commands. Any other line replaces the buffer.
const (
	CommandIncrease = "+"
	CommandDecrease = "-"
	CommandQuit     = "q"
)

// SessionConfig wires a Session.
type SessionConfig struct {
	Validator field.Validator
	Stepper   field.Stepper
	Store     field.Store
	// Autofill suggests a tag for the current buffer. Only used for tags.
	Autofill func(buf string) string
	Reader   io.Reader
	Writer   io.Writer
	Kind     model.FieldKind
	Initial  string
}

// Session edits a single field buffer line by line.
type Session struct {
	validator field.Validator
	stepper   field.Stepper
	store     field.Store
	autofill  func(string) string
	reader    *NonBlockingReader
	writer    io.Writer
	kind      model.FieldKind
	buffer    string
}

// NewSession creates a session for cfg.Kind.
func NewSession(cfg SessionConfig) *Session {
	autofill := cfg.Autofill
	if autofill == nil {
		autofill = func(string) string { return "" }
	}
	return &Session{
		validator: cfg.Validator,
		stepper:   cfg.Stepper,
		store:     cfg.Store,
		autofill:  autofill,
		reader:    NewNonBlockingReader(cfg.Reader),
		writer:    cfg.Writer,
		kind:      cfg.Kind,
		buffer:    cfg.Initial,
	}
}

// Buffer returns the current field buffer.
func (s *Session) Buffer() string {
	return s.buffer
}

// Run reads commands until quit, end of input or cancellation. It returns
// nil on quit and end of input.
func (s *Session) Run(ctx context.Context) error {
	s.printf("%s\n", FormatTitle(s.kind.Label()+" session"))
	s.printf("%s\n", SubtleStyle.Render("+ next value, - previous value, q quit, anything else is checked"))

	for {
		s.printf("%s", FormatPrompt(s.kind.Label()))

		line, err := s.reader.ReadLine(ctx)
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		eof := errors.Is(err, io.EOF)
		if eof && line == "" {
			s.printf("\n")
			return nil
		}

		if quit, applyErr := s.Apply(line); applyErr != nil || quit {
			return applyErr
		}
		if eof {
			return nil
		}
	}
}

// Apply runs one command line against the buffer and prints the result.
// It reports whether the line asked to quit.
func (s *Session) Apply(line string) (bool, error) {
	switch strings.TrimSpace(line) {
	case CommandQuit:
		return true, nil
	case CommandIncrease:
		return false, s.step(model.Increase)
	case CommandDecrease:
		return false, s.step(model.Decrease)
	}

	suggestion := ""
	if s.kind == model.FieldTags {
		suggestion = s.autofill(line)
	}

	s.buffer = line
	outcome, err := field.Validate(s.validator, s.kind, &s.buffer, s.store)
	if err != nil {
		return false, err
	}
	s.printf("%s\n%s\n", FormatOutcome(outcome), FormatBuffer(s.buffer))

	if suggestion != "" && !outcome.IsAccepted() {
		s.printf("%s\n", FormatInfo("Did you mean "+suggestion+"?"))
	}
	return false, nil
}

func (s *Session) step(dir model.Direction) error {
	autofill := ""
	if s.kind == model.FieldTags {
		autofill = s.autofill(s.buffer)
	}

	err := field.Step(s.stepper, s.kind, &s.buffer, dir, s.store, autofill)

	var failure model.SteppingFailure
	switch {
	case err == nil:
		s.printf("%s\n", FormatBuffer(s.buffer))
	case errors.As(err, &failure):
		slog.Debug("Step failed", "kind", s.kind, "error", err)
		s.printf("%s\n%s\n", FormatError(failure.Message()), FormatBuffer(s.buffer))
	default:
		return err
	}
	return nil
}

func (s *Session) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(s.writer, format, args...); err != nil {
		slog.Warn("Failed to write session output", "error", err)
	}
}
