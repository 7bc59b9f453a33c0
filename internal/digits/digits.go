// Package digits is the edit buffer behind numeric text fields.
package digits

import "strconv"

// Buffer holds a non negative integer being typed, capped at max.
type Buffer struct {
	text string
	max  int
}

// New returns a buffer showing value, clamped to [0, max].
func New(value, max int) *Buffer {
	b := &Buffer{max: max}
	b.text = strconv.Itoa(b.clamp(value))
	return b
}

// Type appends the digits of typed and ignores every other rune.
// Leading zeros are dropped and the text never grows past the width of max.
func (b *Buffer) Type(typed []rune) {
	width := len(strconv.Itoa(b.max))
	for _, r := range typed {
		if r < '0' || r > '9' {
			continue
		}
		if b.text == "0" {
			b.text = ""
		}
		if len(b.text) >= width {
			continue
		}
		b.text += string(r)
	}
}

// Backspace removes the last digit.
func (b *Buffer) Backspace() {
	if n := len(b.text); n > 0 {
		b.text = b.text[:n-1]
	}
}

func (b *Buffer) String() string { return b.text }

// Value is the typed number clamped to [0, max]; an empty buffer is 0.
func (b *Buffer) Value() int {
	v, err := strconv.Atoi(b.text)
	if err != nil {
		return 0
	}
	return b.clamp(v)
}

func (b *Buffer) clamp(v int) int {
	return min(max(v, 0), b.max)
}
