package lexer

// EOFChar is the sentinel returned by cursor lookahead past the end of
// the input.
const EOFChar rune = '\x00'

// Cursor walks a source string one rune at a time while tracking the
// line and column of the rune last consumed. Lookahead never moves the
// cursor; only Peek and the Eat helpers consume.
type Cursor struct {
	chars   []rune
	pos     int // count of runes consumed; index of the next rune
	prev    rune
	hasPrev bool
	at      Position
}

func NewCursor(source string) *Cursor {
	return &Cursor{chars: []rune(source), at: Position{Line: 1, Column: 0}}
}

// First returns the next unconsumed rune without consuming it.
func (c *Cursor) First() rune {
	return c.NthChar(0)
}

// Second returns the rune after First without consuming anything.
func (c *Cursor) Second() rune {
	return c.NthChar(1)
}

// NthChar returns the rune n places past the cursor, or EOFChar when
// the input runs out first.
func (c *Cursor) NthChar(n int) rune {
	if n < 0 || c.pos+n >= len(c.chars) {
		return EOFChar
	}
	return c.chars[c.pos+n]
}

// Peek consumes a single rune, updating the tracked position and the
// previous-rune record.
func (c *Cursor) Peek() (rune, bool) {
	if c.IsEOF() {
		return 0, false
	}
	ch := c.chars[c.pos]
	c.pos++
	c.prev = ch
	c.hasPrev = true
	if ch == '\n' {
		c.at.Line++
		c.at.Column = 0
	} else {
		c.at.Column++
	}
	return ch, true
}

// PeekInc consumes exactly n runes and returns the last one consumed.
func (c *Cursor) PeekInc(n int) (rune, bool) {
	var last rune
	var ok bool
	for i := 0; i < n; i++ {
		last, ok = c.Peek()
		if !ok {
			return 0, false
		}
	}
	return last, ok
}

// EatWhile consumes runes while pred accepts them and returns the
// consumed text.
func (c *Cursor) EatWhile(pred func(rune) bool) string {
	start := c.pos
	for !c.IsEOF() && pred(c.First()) {
		c.Peek()
	}
	return string(c.chars[start:c.pos])
}

// EatWhileCursor consumes runes while pred accepts them. The predicate
// receives the cursor itself, so it can look ahead and consume a
// terminator before stopping. Returns everything consumed during the
// call, including runes the predicate consumed.
func (c *Cursor) EatWhileCursor(pred func(*Cursor, rune) bool) string {
	start := c.pos
	for {
		ch, ok := c.Peek()
		if !ok {
			break
		}
		if !pred(c, ch) {
			break
		}
	}
	return string(c.chars[start:c.pos])
}

// Slice returns the text covered by r. Out-of-bounds ranges return the
// empty string.
func (c *Cursor) Slice(r Range) string {
	if r.Start < 0 || r.End > len(c.chars) || r.Start > r.End {
		return ""
	}
	return string(c.chars[r.Start:r.End])
}

// Eaten returns the number of runes consumed so far.
func (c *Cursor) Eaten() int {
	return c.pos
}

// Prev returns the rune most recently consumed.
func (c *Cursor) Prev() (rune, bool) {
	return c.prev, c.hasPrev
}

// Pos returns the position of the rune most recently consumed.
func (c *Cursor) Pos() Position {
	return c.at
}

func (c *Cursor) IsEOF() bool {
	return c.pos >= len(c.chars)
}
