package indent

import (
	"fmt"
	"io"

	"github.com/arthur-debert/indent/pkg/errors"
	"github.com/arthur-debert/indent/pkg/logging"
)

// NullOptions is an options type carrying nothing, for display code that
// takes no options
type NullOptions struct{}

// Indenter is one frame of an indentation session. The root frame is created
// by New; nested frames by Sub and Push. All frames of a session share one
// output cursor.
type Indenter[O any] struct {
	st     *state[O]
	parent *Indenter[O]
	depth  int
	closed bool
}

var (
	_ io.Writer       = (*Indenter[NullOptions])(nil)
	_ io.StringWriter = (*Indenter[NullOptions])(nil)
)

// New starts an indentation session writing to w, using indent for every
// level that is not given its own string by Push. The writer must outlive
// the session; it is never closed by this package.
func New[O any](w io.Writer, indent string, opts O) *Indenter[O] {
	st := newState(w, indent, opts, logging.GetLogger("indent"))
	root := &Indenter[O]{st: st}
	st.frames = append(st.frames, root)
	return root
}

// Sub opens a child frame one level deeper, indented with the base string.
// The child must be closed before ind is used to open another frame.
func (ind *Indenter[O]) Sub() *Indenter[O] {
	return ind.child(nil)
}

// Push opens a child frame one level deeper whose level is indented with s
// instead of the base string. Deeper frames keep s as the prefix for this
// level until the child is closed.
func (ind *Indenter[O]) Push(s string) *Indenter[O] {
	return ind.child(&s)
}

func (ind *Indenter[O]) child(override *string) *Indenter[O] {
	st := ind.st
	st.mu.Lock()
	defer st.mu.Unlock()

	if ind.closed {
		panic(errors.Newf(errors.ErrFrameClosed, "cannot open a child of the closed frame at depth %d", ind.depth))
	}
	if top := st.top(); top != ind {
		panic(errors.Newf(errors.ErrFrameOrder,
			"cannot open a child of the frame at depth %d while the frame at depth %d is open",
			ind.depth, top.depth))
	}

	c := &Indenter[O]{st: st, parent: ind, depth: ind.depth + 1}
	st.pushIndent(c.depth, override)
	st.frames = append(st.frames, c)
	return c
}

// Close ends the frame. A child frame restores its parent's depth; the root
// frame flushes an owed trailing newline, discarding any write error.
// Closing a closed frame does nothing. Closing a frame that still has open
// children panics.
func (ind *Indenter[O]) Close() {
	st := ind.st
	st.mu.Lock()
	defer st.mu.Unlock()

	if ind.closed {
		return
	}
	if top := st.top(); top != ind {
		panic(errors.Newf(errors.ErrFrameOrder,
			"frame at depth %d closed while the frame at depth %d is still open",
			ind.depth, top.depth))
	}
	st.closeTop()
}

// Pop closes a child frame and returns its parent. Unlike Close it reports
// misuse as an error: popping the root, a closed frame, or a frame that
// still has open children.
func (ind *Indenter[O]) Pop() (*Indenter[O], error) {
	st := ind.st
	st.mu.Lock()
	defer st.mu.Unlock()

	switch {
	case ind.closed:
		return nil, errors.Newf(errors.ErrFrameClosed, "frame at depth %d is already closed", ind.depth)
	case ind.parent == nil:
		return nil, errors.New(errors.ErrFrameRoot, "the root frame has no parent")
	case st.top() != ind:
		return nil, errors.Newf(errors.ErrFrameAliased, "frame at depth %d still has open children", ind.depth).
			WithDetail("open", len(st.frames)-1-ind.depth)
	}
	st.closeTop()
	return ind.parent, nil
}

// Options returns the options the session was created with
func (ind *Indenter[O]) Options() O {
	return ind.st.options
}

// Depth returns the nesting depth of this frame; the root is at 0
func (ind *Indenter[O]) Depth() int {
	return ind.depth
}

// WriteString writes s at the session's current depth, indenting every line
func (ind *Indenter[O]) WriteString(s string) (int, error) {
	st := ind.st
	st.mu.Lock()
	defer st.mu.Unlock()

	if ind.closed {
		return 0, errors.Newf(errors.ErrFrameClosed, "write to the closed frame at depth %d", ind.depth)
	}
	return st.write(s)
}

// Write implements io.Writer
func (ind *Indenter[O]) Write(p []byte) (int, error) {
	return ind.WriteString(string(p))
}

// Printf formats according to a format specifier and writes the result
func (ind *Indenter[O]) Printf(format string, args ...any) error {
	_, err := fmt.Fprintf(ind, format, args...)
	return err
}

// String describes the session cursor, for debugging
func (ind *Indenter[O]) String() string {
	st := ind.st
	st.mu.Lock()
	defer st.mu.Unlock()
	return fmt.Sprintf("Indenter[sol:%v depth:%d ind:%q frame:%d]", st.sol, st.depth, st.base, ind.depth)
}

func (s *state[O]) top() *Indenter[O] {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

// closeTop retires the innermost frame
func (s *state[O]) closeTop() {
	n := len(s.frames)
	f := s.frames[n-1]
	s.frames[n-1] = nil
	s.frames = s.frames[:n-1]
	f.closed = true

	if f.parent != nil {
		s.popIndent(f.parent.depth)
		return
	}
	s.finalize()
	s.log.Trace().Msg("session finalized")
}
