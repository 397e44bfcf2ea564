package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepoInput(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedOwner string
		expectedRepo  string
		expectError   bool
	}{
		{
			name:          "owner/name shorthand",
			input:         "pandas-dev/pandas",
			expectedOwner: "pandas-dev",
			expectedRepo:  "pandas",
		},
		{
			name:          "full https URL",
			input:         "https://github.com/golang/go",
			expectedOwner: "golang",
			expectedRepo:  "go",
		},
		{
			name:          "URL with trailing slash",
			input:         "https://github.com/torvalds/linux/",
			expectedOwner: "torvalds",
			expectedRepo:  "linux",
		},
		{
			name:          "URL with .git suffix",
			input:         "https://github.com/golang/go.git",
			expectedOwner: "golang",
			expectedRepo:  "go",
		},
		{
			name:          "surrounding whitespace",
			input:         "  pandas-dev/pandas  ",
			expectedOwner: "pandas-dev",
			expectedRepo:  "pandas",
		},
		{
			name:        "empty input",
			input:       "",
			expectError: true,
		},
		{
			name:        "missing name",
			input:       "pandas-dev",
			expectError: true,
		},
		{
			name:        "bare URL without path",
			input:       "https://github.com/",
			expectError: true,
		},
		{
			name:        "slash only",
			input:       "/",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, name, err := ParseRepoInput(tt.input)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedOwner, owner)
			assert.Equal(t, tt.expectedRepo, name)
		})
	}
}

func TestIsValidRepoInput(t *testing.T) {
	assert.True(t, IsValidRepoInput("pandas-dev/pandas"))
	assert.True(t, IsValidRepoInput("https://github.com/golang/go"))
	assert.False(t, IsValidRepoInput(""))
	assert.False(t, IsValidRepoInput("just-an-owner"))
}
