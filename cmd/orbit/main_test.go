package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	t.Run("no arguments prints usage and succeeds", func(t *testing.T) {
		assert.Zero(t, run(nil))
	})

	t.Run("version exits cleanly", func(t *testing.T) {
		assert.Zero(t, run([]string{"version"}))
	})

	t.Run("unknown command fails", func(t *testing.T) {
		assert.Equal(t, 2, run([]string{"launch"}))
	})

	t.Run("unknown flag fails", func(t *testing.T) {
		assert.Equal(t, 2, run([]string{"--frobnicate"}))
	})

	t.Run("ambiguous auth configuration is a configuration error", func(t *testing.T) {
		t.Setenv("ORBIT_COSMOS_CONNECTION_STRING", "AccountEndpoint=https://a;AccountKey=b")
		t.Setenv("ORBIT_COSMOS_ENDPOINT", "https://a.documents.azure.com/")

		assert.Equal(t, 2, run([]string{"containers", "list"}))
	})
}
