package marmoset

import "testing"

func typeString(b *LineBuffer, s string) {
	for _, r := range s {
		b.Insert(r)
	}
}

func TestLineBufferInsert(t *testing.T) {
	b := NewLineBuffer()
	typeString(b, "hello")

	if got := b.Contents(); got != "hello" {
		t.Errorf("Contents() = %q, want %q", got, "hello")
	}
	if b.Cursor() != 5 {
		t.Errorf("Cursor() = %d, want 5", b.Cursor())
	}
}

func TestLineBufferInsertMidLine(t *testing.T) {
	b := NewLineBuffer()
	typeString(b, "hllo")
	b.MoveCursor(-3)
	b.Insert('e')

	if got := b.Contents(); got != "hello" {
		t.Errorf("Contents() = %q, want %q", got, "hello")
	}
	if b.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", b.Cursor())
	}
}

func TestLineBufferDeleteBackward(t *testing.T) {
	b := NewLineBuffer()
	typeString(b, "ab")

	if !b.DeleteBackward() {
		t.Error("DeleteBackward() = false on non-empty buffer")
	}
	if got := b.Contents(); got != "a" {
		t.Errorf("Contents() = %q, want %q", got, "a")
	}

	b.DeleteBackward()
	if b.DeleteBackward() {
		t.Error("DeleteBackward() = true at offset 0, want false no-op")
	}
	if b.Len() != 0 || b.Cursor() != 0 {
		t.Errorf("after deleting all: len=%d cursor=%d, want 0 0", b.Len(), b.Cursor())
	}
}

func TestLineBufferDeleteForward(t *testing.T) {
	b := NewLineBuffer()
	typeString(b, "abc")
	b.Home()

	if !b.DeleteForward() {
		t.Error("DeleteForward() = false with rune under cursor")
	}
	if got := b.Contents(); got != "bc" {
		t.Errorf("Contents() = %q, want %q", got, "bc")
	}

	b.End()
	if b.DeleteForward() {
		t.Error("DeleteForward() = true at end of line, want false no-op")
	}
}

func TestLineBufferCursorClamping(t *testing.T) {
	b := NewLineBuffer()
	typeString(b, "ab")

	if b.MoveCursor(10) {
		t.Error("MoveCursor(10) at end reported movement")
	}
	if b.Cursor() != 2 {
		t.Errorf("Cursor() = %d after clamped move, want 2", b.Cursor())
	}

	if !b.MoveCursor(-10) {
		t.Error("MoveCursor(-10) from end reported no movement")
	}
	if b.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", b.Cursor())
	}
}

func TestLineBufferWordMotion(t *testing.T) {
	b := NewLineBuffer()
	typeString(b, "foo  bar baz")

	if !b.WordLeft() {
		t.Error("WordLeft() = false from end of line")
	}
	if b.Cursor() != 9 {
		t.Errorf("Cursor() = %d after word left, want 9 (start of baz)", b.Cursor())
	}

	b.WordLeft()
	if b.Cursor() != 5 {
		t.Errorf("Cursor() = %d, want 5 (start of bar)", b.Cursor())
	}

	b.WordLeft()
	if b.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", b.Cursor())
	}
	if b.WordLeft() {
		t.Error("WordLeft() = true at offset 0, want false no-op")
	}

	if !b.WordRight() {
		t.Error("WordRight() = false from offset 0")
	}
	if b.Cursor() != 5 {
		t.Errorf("Cursor() = %d after word right, want 5 (past foo and spaces)", b.Cursor())
	}

	b.End()
	if b.WordRight() {
		t.Error("WordRight() = true at end of line, want false no-op")
	}
}

func TestLineBufferKillToEnd(t *testing.T) {
	b := NewLineBuffer()
	typeString(b, "hello world")
	b.MoveCursor(-6)

	if !b.KillToEnd() {
		t.Error("KillToEnd() = false with text after cursor")
	}
	if got := b.Contents(); got != "hello" {
		t.Errorf("Contents() = %q, want %q", got, "hello")
	}
	if b.KillToEnd() {
		t.Error("KillToEnd() = true at end of line, want false no-op")
	}
}

func TestLineBufferTakeContents(t *testing.T) {
	b := NewLineBuffer()
	typeString(b, "let x = 5;")

	if got := b.TakeContents(); got != "let x = 5;" {
		t.Errorf("TakeContents() = %q, want %q", got, "let x = 5;")
	}
	if b.Len() != 0 || b.Cursor() != 0 {
		t.Errorf("after take: len=%d cursor=%d, want 0 0", b.Len(), b.Cursor())
	}
	if got := b.TakeContents(); got != "" {
		t.Errorf("second TakeContents() = %q, want empty", got)
	}
}

func TestLineBufferUnicode(t *testing.T) {
	b := NewLineBuffer()
	typeString(b, "héllo")

	if b.Len() != 5 {
		t.Errorf("Len() = %d, want 5 runes", b.Len())
	}
	b.MoveCursor(-4)
	b.DeleteForward()
	if got := b.Contents(); got != "hllo" {
		t.Errorf("Contents() = %q, want %q", got, "hllo")
	}
}
