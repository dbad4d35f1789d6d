package shortcut

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantMods []ModifierKey
		wantMain string
	}{
		{
			name:     "single modifier",
			input:    "Control+A",
			wantMods: []ModifierKey{Control},
			wantMain: "A",
		},
		{
			name:     "reorders modifiers canonically",
			input:    "Shift+Alt+A",
			wantMods: []ModifierKey{Alt, Shift},
			wantMain: "A",
		},
		{
			name:     "main key first",
			input:    "F5+Meta+Control",
			wantMods: []ModifierKey{Control, Meta},
			wantMain: "F5",
		},
		{
			name:     "space escape",
			input:    "Control+Space",
			wantMods: []ModifierKey{Control},
			wantMain: " ",
		},
		{
			name:     "plus escape",
			input:    "Control+Shift+Plus",
			wantMods: []ModifierKey{Control, Shift},
			wantMain: "+",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  Alt+Tab \n",
			wantMods: []ModifierKey{Alt},
			wantMain: "Tab",
		},
		{
			name:     "empty tokens dropped",
			input:    "Control++A",
			wantMods: []ModifierKey{Control},
			wantMain: "A",
		},
		{
			name:     "all five modifiers",
			input:    "Meta+CapsLock+Shift+Alt+Control+Z",
			wantMods: []ModifierKey{Control, Alt, Shift, CapsLock, Meta},
			wantMain: "Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseDefault(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMods, v.Modifiers())
			main, ok := v.MainKey()
			assert.True(t, ok)
			assert.Equal(t, tt.wantMain, main)
			assert.True(t, v.IsValid())
		})
	}
}

func TestParse_Empty(t *testing.T) {
	v, err := ParseDefault("")
	require.NoError(t, err)
	assert.True(t, v.IsEmpty())
	assert.False(t, v.IsValid())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ValidationError
	}{
		{name: "no modifiers", input: "A", want: NoModifierKeys},
		{name: "whitespace only", input: "   ", want: NoModifierKeys},
		{name: "separators only", input: "+++", want: NoModifierKeys},
		{name: "no main key", input: "Control+Shift", want: NoMainKey},
		{name: "two main keys", input: "Control+A+B", want: MoreThanOneMainKey},
		{name: "duplicate modifier", input: "Control+Control+A", want: DuplicateModifierKeys},
		{name: "lowercase modifier is a main key", input: "control+A", want: NoModifierKeys},
		// duplicates are checked before the main key rules
		{name: "duplicate and no main key", input: "Alt+Alt", want: DuplicateModifierKeys},
		{name: "modifier alone", input: "Shift", want: NoMainKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseDefault(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.True(t, v.IsEmpty())

			var verr ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.want, verr)
		})
	}
}

func TestParse_AllowList(t *testing.T) {
	allowed, err := NewModifierSet(Alt, Shift)
	require.NoError(t, err)

	// Control is not allowed, so it is a second main key
	_, err = Parse("Control+Alt+A", allowed)
	assert.ErrorIs(t, err, MoreThanOneMainKey)

	v, err := Parse("Shift+Control", allowed)
	require.NoError(t, err)
	main, _ := v.MainKey()
	assert.Equal(t, "Control", main)
	assert.Equal(t, []ModifierKey{Shift}, v.Modifiers())

	_, err = Parse("Control+A", allowed)
	assert.ErrorIs(t, err, NoModifierKeys)
}

func TestSerialize(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{name: "zero value", value: Value{}, want: ""},
		{name: "empty", value: Empty(), want: ""},
		{name: "canonical order", value: NewValue("A", Shift, Control), want: "Control+Shift+A"},
		{name: "space", value: NewValue(" ", Alt), want: "Alt+Space"},
		{name: "plus", value: NewValue("+", Control), want: "Control+Plus"},
		{name: "lowercase letter kept", value: NewValue("a", Meta), want: "Meta+a"},
		{name: "modifier only", value: NewValue("", Control), want: "Control"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Serialize(tt.value))
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"Control+A",
		"Control+Alt+Delete",
		"Alt+Shift+F12",
		"Control+Alt+Shift+CapsLock+Meta+K",
		"Meta+Space",
		"Shift+Plus",
		"Control+ArrowUp",
		"Alt+,",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			v, err := ParseDefault(in)
			require.NoError(t, err)
			assert.Equal(t, in, Serialize(v))
		})
	}
}

func TestRoundTrip_NonCanonicalInput(t *testing.T) {
	v, err := ParseDefault("Shift+Alt+A")
	require.NoError(t, err)
	assert.Equal(t, "Alt+Shift+A", Serialize(v))
}

func TestValidationError_Text(t *testing.T) {
	assert.Equal(t, "NO_MAIN_KEY", NoMainKey.Code())
	assert.Equal(t, "No main key", NoMainKey.Error())
	assert.Equal(t, "Duplicate modifier keys", DuplicateModifierKeys.Message())
	assert.Equal(t, "MORE_THAN_ONE_MAIN_KEY", MoreThanOneMainKey.String())
	assert.Equal(t, "No modifier keys", NoModifierKeys.Message())
	assert.Equal(t, "UNKNOWN", ValidationError(0).Code())
}
