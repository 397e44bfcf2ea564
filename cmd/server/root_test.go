package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegistered(t *testing.T) {
	assert.Equal(t, "repo-pulse", rootCmd.Use)

	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	assert.True(t, names["run"], "run command missing")
	assert.True(t, names["version"], "version command missing")
}

func TestRetry(t *testing.T) {
	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := retry(3, time.Millisecond, func() error {
			calls++
			if calls < 3 {
				return assert.AnError
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after exhausting attempts", func(t *testing.T) {
		calls := 0
		err := retry(3, time.Millisecond, func() error {
			calls++
			return assert.AnError
		})
		require.Error(t, err)
		assert.Equal(t, 3, calls)
	})
}
