package confirm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequire(t *testing.T) {
	t.Run("skip bypasses the prompt", func(t *testing.T) {
		called := false
		err := Require(true, "Delete?", func(string) bool {
			called = true
			return false
		})

		assert.NoError(t, err)
		assert.False(t, called)
	})

	t.Run("accepted prompt returns nil", func(t *testing.T) {
		err := Require(false, "Delete?", func(string) bool { return true })
		assert.NoError(t, err)
	})

	t.Run("declined prompt aborts", func(t *testing.T) {
		err := Require(false, "Delete?", func(string) bool { return false })
		assert.ErrorIs(t, err, ErrAborted)
	})

	t.Run("nil prompter aborts", func(t *testing.T) {
		err := Require(false, "Delete?", nil)
		assert.ErrorIs(t, err, ErrAborted)
	})
}

func TestStdinPrompter(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"whatever\n", false},
	}

	for _, tc := range cases {
		var out bytes.Buffer
		prompt := StdinPrompter(strings.NewReader(tc.input), &out)

		assert.Equal(t, tc.want, prompt("Delete container 'x'?"), "input %q", tc.input)
		assert.Contains(t, out.String(), "[y/N]")
	}
}
