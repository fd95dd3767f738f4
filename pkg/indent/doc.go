// Package indent provides scoped, stateful indentation for nested display code.
//
// A session starts with [New], which wraps an [io.Writer] with a base indent
// string and an options value. Display code writes text through the returned
// [Indenter] and opens child frames for nested structure with [Indenter.Sub]
// or [Indenter.Push]. Every physical output line is prefixed with the
// indentation of the depth that is current when its first character is
// written; callers never pass depth around.
//
//	ind := indent.New(os.Stdout, "  ", indent.NullOptions{})
//	defer ind.Close()
//
//	fmt.Fprintln(ind, "Not indented")
//	{
//	    sub := ind.Push("...")
//	    fmt.Fprintln(sub, "Indented once with three dots")
//	    sub.Close()
//	}
//	fmt.Fprintln(ind, "Not indented")
//
// # Frames
//
// Frames form a strict stack. A frame must be closed before its parent, and
// child frames may only be opened from the innermost live frame. The usual
// idiom is to defer Close right after opening the frame, so the depth is
// restored on every return path. Closing frames out of order panics with an
// error of code FRAME_ORDER; [Indenter.Pop] reports misuse as an error.
//
// A depth change never emits output by itself. The newline it implies is
// owed until real content is written, so a child frame that writes nothing
// leaves no trace, and closing the root frame emits at most one trailing
// newline.
//
// # Errors
//
// Sink failures are returned from the write that caused them, wrapped in an
// error with code WRITE. Failures while flushing the trailing newline on
// Close are discarded.
package indent
