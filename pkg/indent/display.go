package indent

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
)

// Displayer is implemented by values that know how to render themselves
// into an indentation frame. Indent may write text and open child frames of
// ind, and must close every frame it opens before returning. It must not
// retain ind.
type Displayer[O any] interface {
	Indent(ind *Indenter[O]) error
}

// DisplayFunc adapts a plain function to a Displayer
type DisplayFunc[O any] func(ind *Indenter[O]) error

// Indent calls f(ind)
func (f DisplayFunc[O]) Indent(ind *Indenter[O]) error {
	return f(ind)
}

// Display renders v into ind. Displayers render themselves; strings,
// numbers, errors and Stringers are written in their ordinary form; slices
// and arrays use the sequence layout of DisplaySlice.
func Display[O any](ind *Indenter[O], v any) error {
	switch x := v.(type) {
	case Displayer[O]:
		return x.Indent(ind)
	case string:
		_, err := ind.WriteString(x)
		return err
	case error:
		_, err := ind.WriteString(x.Error())
		return err
	case fmt.Stringer:
		_, err := ind.WriteString(x.String())
		return err
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return displaySeq(ind, rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	}
	_, err := fmt.Fprint(ind, v)
	return err
}

// DisplaySlice renders items as
//
//	[
//	    item,
//	    item,
//	]
//
// with each item rendered one level deeper. The closing bracket is always
// followed by a newline, and an empty slice renders as "[\n]\n".
func DisplaySlice[O, T any](ind *Indenter[O], items []T) error {
	return displaySeq(ind, len(items), func(i int) any { return items[i] })
}

func displaySeq[O any](ind *Indenter[O], n int, at func(int) any) error {
	if _, err := ind.WriteString("[\n"); err != nil {
		return err
	}
	if err := displayItems(ind.Sub(), n, at); err != nil {
		return err
	}
	_, err := ind.WriteString("]\n")
	return err
}

func displayItems[O any](sub *Indenter[O], n int, at func(int) any) error {
	defer sub.Close()
	for i := 0; i < n; i++ {
		if err := Display(sub, at(i)); err != nil {
			return err
		}
		if _, err := sub.WriteString(",\n"); err != nil {
			return err
		}
	}
	return nil
}

// Render starts a session on w, displays v into it and ends the session
func Render[O any](w io.Writer, indent string, opts O, v any) error {
	ind := New(w, indent, opts)
	defer ind.Close()
	return Display(ind, v)
}

// Sprint renders v into a string. On error the partial output is returned
// alongside it.
func Sprint[O any](indent string, opts O, v any) (string, error) {
	var buf bytes.Buffer
	err := Render(&buf, indent, opts, v)
	return buf.String(), err
}
