package indent

import (
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/indent/pkg/errors"
)

// override is an indent string used instead of the base indent at one depth
type override struct {
	depth int
	ind   string
}

// state is the output cursor shared by every frame of one session
type state[O any] struct {
	mu sync.Mutex

	sink    io.Writer
	options O

	// base is the indent emitted per level unless overridden
	base string
	// overrides is ordered by strictly increasing depth
	overrides []override
	depth     int

	// pendingNewline is set by every depth change and cleared once a
	// newline has been owed and settled
	pendingNewline bool
	// sol is set when the next character written must be preceded by
	// the indentation for the current depth
	sol bool

	// frames holds the live frames, innermost last
	frames []*Indenter[O]

	log zerolog.Logger
}

func newState[O any](w io.Writer, base string, opts O, log zerolog.Logger) *state[O] {
	return &state[O]{
		sink:    w,
		options: opts,
		base:    base,
		sol:     true,
		log:     log,
	}
}

// pushIndent moves to a deeper level; a non-nil ind overrides the indent
// string used for the level being entered
func (s *state[O]) pushIndent(depth int, ind *string) {
	s.pendingNewline = true
	if ind != nil {
		s.overrides = append(s.overrides, override{depth: s.depth, ind: *ind})
	}
	s.log.Trace().Int("from", s.depth).Int("to", depth).Bool("override", ind != nil).Msg("push indent")
	s.depth = depth
}

// popIndent returns to a shallower level, dropping the override that was
// pushed for that level if there is one
func (s *state[O]) popIndent(depth int) {
	s.pendingNewline = true
	if n := len(s.overrides); n > 0 && s.overrides[n-1].depth == depth {
		s.overrides = s.overrides[:n-1]
	}
	s.log.Trace().Int("from", s.depth).Int("to", depth).Msg("pop indent")
	s.depth = depth
}

// outputNewline ends the current line unless nothing has been written on it
func (s *state[O]) outputNewline() error {
	s.pendingNewline = false
	if s.sol {
		return nil
	}
	s.sol = true
	return s.emit("\n")
}

// indentation builds the prefix for the current depth
func (s *state[O]) indentation() string {
	var b strings.Builder
	next := 0
	for i := 0; i < s.depth; i++ {
		if next < len(s.overrides) && s.overrides[next].depth == i {
			b.WriteString(s.overrides[next].ind)
			next++
			continue
		}
		b.WriteString(s.base)
	}
	return b.String()
}

// writeFragment writes text that contains no newline
func (s *state[O]) writeFragment(text string) error {
	// Nothing to show means no indentation either; the depth may still
	// change before real content arrives.
	if text == "" {
		return nil
	}
	if s.pendingNewline {
		if err := s.outputNewline(); err != nil {
			return err
		}
	}
	if s.sol {
		if prefix := s.indentation(); prefix != "" {
			if err := s.emit(prefix); err != nil {
				return err
			}
		}
	}
	s.sol = false
	return s.emit(text)
}

// write splits text into lines and writes each with its own indentation.
// It returns the number of bytes of text consumed.
func (s *state[O]) write(text string) (int, error) {
	n := 0
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			if err := s.outputNewline(); err != nil {
				return n, err
			}
			n++
		}
		if err := s.writeFragment(line); err != nil {
			return n, err
		}
		n += len(line)
	}
	return n, nil
}

// finalize settles an owed newline when the session ends. It cannot fail.
func (s *state[O]) finalize() {
	if !s.pendingNewline {
		return
	}
	if err := s.outputNewline(); err != nil {
		s.log.Debug().Err(err).Msg("Discarding error while flushing trailing newline")
	}
}

func (s *state[O]) emit(text string) error {
	if _, err := io.WriteString(s.sink, text); err != nil {
		return errors.Wrap(err, errors.ErrWrite, "failed to write to sink").
			WithDetail("depth", s.depth)
	}
	return nil
}
