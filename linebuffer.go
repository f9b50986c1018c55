package marmoset

// LineBuffer holds the line currently being edited: an ordered rune
// sequence plus a cursor offset. Invariant: 0 <= cursor <= len, restored
// atomically by every operation. The buffer knows nothing about the host
// or the interpreter and performs no I/O.
type LineBuffer struct {
	runes  []rune
	cursor int
}

func NewLineBuffer() *LineBuffer {
	return &LineBuffer{}
}

// Insert places r at the cursor and advances the cursor past it.
func (b *LineBuffer) Insert(r rune) {
	b.runes = append(b.runes[:b.cursor], append([]rune{r}, b.runes[b.cursor:]...)...)
	b.cursor++
}

// DeleteBackward removes the rune before the cursor. No-op at offset 0.
// Reports whether the buffer changed.
func (b *LineBuffer) DeleteBackward() bool {
	if b.cursor == 0 {
		return false
	}
	b.runes = append(b.runes[:b.cursor-1], b.runes[b.cursor:]...)
	b.cursor--
	return true
}

// DeleteForward removes the rune under the cursor. No-op at end of line.
// Reports whether the buffer changed.
func (b *LineBuffer) DeleteForward() bool {
	if b.cursor >= len(b.runes) {
		return false
	}
	b.runes = append(b.runes[:b.cursor], b.runes[b.cursor+1:]...)
	return true
}

// MoveCursor shifts the cursor by delta, clamping into [0, len]. Reports
// whether the cursor moved.
func (b *LineBuffer) MoveCursor(delta int) bool {
	pos := b.cursor + delta
	if pos < 0 {
		pos = 0
	}
	if pos > len(b.runes) {
		pos = len(b.runes)
	}
	moved := pos != b.cursor
	b.cursor = pos
	return moved
}

// WordLeft moves the cursor to the start of the previous word: back over
// any spaces, then back over the word itself. Reports whether the cursor
// moved.
func (b *LineBuffer) WordLeft() bool {
	pos := b.cursor
	for pos > 0 && b.runes[pos-1] == ' ' {
		pos--
	}
	for pos > 0 && b.runes[pos-1] != ' ' {
		pos--
	}
	moved := pos != b.cursor
	b.cursor = pos
	return moved
}

// WordRight moves the cursor past the end of the current word and any
// spaces that follow it. Reports whether the cursor moved.
func (b *LineBuffer) WordRight() bool {
	pos := b.cursor
	for pos < len(b.runes) && b.runes[pos] != ' ' {
		pos++
	}
	for pos < len(b.runes) && b.runes[pos] == ' ' {
		pos++
	}
	moved := pos != b.cursor
	b.cursor = pos
	return moved
}

// Home moves the cursor to offset 0.
func (b *LineBuffer) Home() bool {
	return b.MoveCursor(-len(b.runes))
}

// End moves the cursor past the last rune.
func (b *LineBuffer) End() bool {
	return b.MoveCursor(len(b.runes))
}

// KillToEnd drops everything from the cursor to the end of the line.
// Reports whether the buffer changed.
func (b *LineBuffer) KillToEnd() bool {
	if b.cursor >= len(b.runes) {
		return false
	}
	b.runes = b.runes[:b.cursor]
	return true
}

// TakeContents returns the buffered text and resets the buffer to empty
// with cursor 0 in one step; no observable intermediate state exists
// because nothing else can run between the read and the reset.
func (b *LineBuffer) TakeContents() string {
	text := string(b.runes)
	b.runes = nil
	b.cursor = 0
	return text
}

// Contents returns the buffered text without resetting.
func (b *LineBuffer) Contents() string {
	return string(b.runes)
}

// Cursor returns the current cursor offset.
func (b *LineBuffer) Cursor() int {
	return b.cursor
}

// Len returns the number of buffered runes.
func (b *LineBuffer) Len() int {
	return len(b.runes)
}
