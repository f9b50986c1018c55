package main

import (
	"bytes"
	"testing"
)

func TestSplitPartialRune(t *testing.T) {
	emoji := []byte("🐒") // 4 bytes
	accent := []byte("é") // 2 bytes

	tests := []struct {
		name         string
		data         []byte
		wantComplete []byte
		wantPartial  []byte
	}{
		{"ascii", []byte("abc"), []byte("abc"), nil},
		{"whole rune at end", append([]byte("x"), accent...), append([]byte("x"), accent...), nil},
		{"split two-byte rune", append([]byte("x"), accent[0]), []byte("x"), accent[:1]},
		{"split four-byte rune", append([]byte("ab"), emoji[:3]...), []byte("ab"), emoji[:3]},
		{"whole four-byte rune", append([]byte("ab"), emoji...), append([]byte("ab"), emoji...), nil},
		{"empty", nil, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			complete, partial := splitPartialRune(tt.data)
			if !bytes.Equal(complete, tt.wantComplete) {
				t.Errorf("complete = %q, want %q", complete, tt.wantComplete)
			}
			if !bytes.Equal(partial, tt.wantPartial) {
				t.Errorf("partial = %q, want %q", partial, tt.wantPartial)
			}
		})
	}
}

func TestSplitPartialRuneReassembly(t *testing.T) {
	// A paste split mid-rune across two reads must reassemble cleanly.
	data := []byte("let x = \"🐒\";")
	cut := bytes.IndexByte(data, '"') + 3 // inside the emoji

	first, carry := splitPartialRune(data[:cut])
	second, rest := splitPartialRune(append(carry, data[cut:]...))

	if len(rest) != 0 {
		t.Fatalf("rest = %q, want fully consumed", rest)
	}
	if got := append(append([]byte(nil), first...), second...); !bytes.Equal(got, data) {
		t.Errorf("reassembled %q, want %q", got, data)
	}
}
