package state

import "fmt"

// Empty marks the base and cursor of a window without lines.
const Empty = -1

// Window is an immutable cursor and viewport over an ordered list of rows.
// Every transition returns a new Window; the receiver is never modified.
//
// For a non-empty window 0 <= base <= cursor < len(lines) and the cursor is
// always one of the height visible rows starting at base.
type Window[T any] struct {
	lines  []T
	base   int
	cursor int
	height int
}

// EmptyWindow returns a window with no lines showing height rows at a time.
func EmptyWindow[T any](height int) Window[T] {
	return newWindow[T](nil, Empty, Empty, height)
}

func newWindow[T any](lines []T, base, cursor, height int) Window[T] {
	if height < 1 {
		height = 1
	}
	w := Window[T]{lines: lines, base: base, cursor: cursor, height: height}
	w.check()
	return w
}

// check panics on states no transition may produce.
func (w Window[T]) check() {
	if len(w.lines) == 0 {
		if w.base != Empty || w.cursor != Empty {
			panic(fmt.Sprintf("window: empty window with base=%d cursor=%d", w.base, w.cursor))
		}
		return
	}
	if w.cursor < 0 || w.cursor >= len(w.lines) {
		panic(fmt.Sprintf("window: cursor %d outside %d lines", w.cursor, len(w.lines)))
	}
	if w.base < 0 || w.base > w.cursor {
		panic(fmt.Sprintf("window: base %d not in [0, cursor %d]", w.base, w.cursor))
	}
	if w.cursor-w.base > w.height-1 {
		panic(fmt.Sprintf("window: cursor %d below viewport base=%d height=%d", w.cursor, w.base, w.height))
	}
}

// Lines returns the rows held by the window.
func (w Window[T]) Lines() []T { return w.lines }

// Len returns the number of rows.
func (w Window[T]) Len() int { return len(w.lines) }

// Base is the index of the first visible row, or Empty.
func (w Window[T]) Base() int { return w.base }

// Cursor is the index of the highlighted row, or Empty.
func (w Window[T]) Cursor() int { return w.cursor }

// Height is the number of visible rows.
func (w Window[T]) Height() int { return w.height }

// IsEmpty reports whether the window holds no rows.
func (w Window[T]) IsEmpty() bool { return len(w.lines) == 0 }

// Current returns the highlighted row.
func (w Window[T]) Current() (T, bool) {
	if w.cursor == Empty {
		var zero T
		return zero, false
	}
	return w.lines[w.cursor], true
}

// Visible returns the rows inside the viewport.
func (w Window[T]) Visible() []T {
	if w.base == Empty {
		return nil
	}
	end := min(w.base+w.height, len(w.lines))
	return w.lines[w.base:end]
}

func concat[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Append adds rows after the existing ones. The cursor stays where it was,
// except that a previously empty window starts at the first row.
func (w Window[T]) Append(lines ...T) Window[T] {
	all := concat(w.lines, lines)
	switch {
	case len(all) == 0:
		return newWindow(all, Empty, Empty, w.height)
	case w.cursor == Empty:
		return newWindow(all, 0, 0, w.height)
	default:
		return newWindow(all, w.base, w.cursor, w.height)
	}
}

// AppendView adds rows and places the viewport explicitly.
func (w Window[T]) AppendView(lines []T, base, cursor int) Window[T] {
	return newWindow(concat(w.lines, lines), base, cursor, w.height)
}

// Refresh replaces the rows, keeping the cursor and base as close to their
// previous positions as the new rows allow.
func (w Window[T]) Refresh(lines []T) Window[T] {
	base, cursor := clampView(len(lines), w.base, w.cursor, w.height)
	return EmptyWindow[T](w.height).AppendView(lines, base, cursor)
}

// Resize changes the viewport height without moving the cursor.
func (w Window[T]) Resize(height int) Window[T] {
	if height < 1 {
		height = 1
	}
	base, cursor := clampView(len(w.lines), w.base, w.cursor, height)
	return newWindow(w.lines, base, cursor, height)
}

func clampView(n, base, cursor, height int) (int, int) {
	if n == 0 {
		return Empty, Empty
	}
	cursor = max(min(cursor, n-1), 0)
	base = max(min(base, cursor), cursor-(height-1), 0)
	return base, cursor
}

// CursorDown moves the cursor one row down, scrolling by one row when it
// would leave the viewport. It does nothing on the last row.
func (w Window[T]) CursorDown() Window[T] {
	if w.cursor == Empty || w.cursor == len(w.lines)-1 {
		return w
	}
	cursor := w.cursor + 1
	base := w.base
	if cursor > base+w.height-1 {
		base++
	}
	return newWindow(w.lines, base, cursor, w.height)
}

// CursorUp moves the cursor one row up, scrolling by one row when it would
// leave the viewport. It does nothing on the first row.
func (w Window[T]) CursorUp() Window[T] {
	if w.cursor <= 0 {
		return w
	}
	cursor := w.cursor - 1
	base := w.base
	if cursor < base {
		base--
	}
	return newWindow(w.lines, base, cursor, w.height)
}

// PageForward scrolls one viewport down without showing blank rows past the
// end of the content.
func (w Window[T]) PageForward() Window[T] {
	if w.cursor == Empty {
		return w
	}
	n := len(w.lines)
	base, cursor := w.base, w.cursor
	nextBase := base + w.height

	switch {
	case n-1 > nextBase+w.height:
		base, cursor = nextBase, nextBase
	case n-1 > nextBase:
		base += n - nextBase
		cursor = base
	default:
		cursor = n - 1
		base = max(base, cursor-(w.height-1))
	}
	return newWindow(w.lines, base, cursor, w.height)
}

// PageBackward scrolls one viewport up. At the top it moves the cursor to
// the first row.
func (w Window[T]) PageBackward() Window[T] {
	if w.cursor == Empty {
		return w
	}
	if w.base == 0 {
		return newWindow(w.lines, 0, 0, w.height)
	}
	base := max(w.base-w.height, 0)
	cursor := min(max(base+(w.height-1), 0), len(w.lines)-1)
	return newWindow(w.lines, base, cursor, w.height)
}

// JumpTop moves the cursor to the first row.
func (w Window[T]) JumpTop() Window[T] {
	if w.cursor == Empty {
		return w
	}
	return newWindow(w.lines, 0, 0, w.height)
}

// JumpBottom moves the cursor to the last row, showing the final page.
func (w Window[T]) JumpBottom() Window[T] {
	if w.cursor == Empty {
		return w
	}
	cursor := len(w.lines) - 1
	return newWindow(w.lines, max(cursor-(w.height-1), 0), cursor, w.height)
}
