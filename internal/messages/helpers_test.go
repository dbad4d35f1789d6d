package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/keycap/internal/types"
)

func TestStatusCmds(t *testing.T) {
	tests := []struct {
		name string
		msg  any
		want types.StatusMsg
	}{
		{name: "error", msg: ErrorCmd("Copy failed: %v", "boom")(), want: types.ErrorStatusMsg("Copy failed: boom")},
		{name: "success", msg: SuccessCmd("Copied %s", "Control+A")(), want: types.SuccessMsg("Copied Control+A")},
		{name: "info", msg: InfoCmd("%d actions", 3)(), want: types.InfoMsg("3 actions")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.msg)
		})
	}
}

func TestWrapError(t *testing.T) {
	base := errors.New("denied")
	err := WrapError(base, "reading %s", "keycap.yaml")

	assert.EqualError(t, err, "reading keycap.yaml: denied")
	assert.ErrorIs(t, err, base)
}
