package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMainKey(t *testing.T) {
	tests := []struct {
		name string
		ev   KeyEvent
		want string
	}{
		{name: "letter code wins", ev: KeyEvent{Key: "a", Code: "KeyA"}, want: "A"},
		{name: "other layout", ev: KeyEvent{Key: "q", Code: "KeyA"}, want: "A"},
		{name: "cyrillic layout", ev: KeyEvent{Key: "ф", Code: "KeyA"}, want: "A"},
		{name: "digit falls back to key", ev: KeyEvent{Key: "1", Code: "Digit1"}, want: "1"},
		{name: "function key", ev: KeyEvent{Key: "F5", Code: "F5"}, want: "F5"},
		{name: "no code", ev: KeyEvent{Key: "x"}, want: "x"},
		{name: "lowercase code ignored", ev: KeyEvent{Key: "k", Code: "Keyk"}, want: "k"},
		{name: "longer code ignored", ev: KeyEvent{Key: "Enter", Code: "KeyEnter"}, want: "Enter"},
		{name: "space", ev: KeyEvent{Key: " ", Code: "Space"}, want: " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MainKey(tt.ev))
		})
	}
}
