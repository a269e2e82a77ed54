package magetasks

import (
	"errors"
	"testing"
)

func TestIsCommandNotFound(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil", nil, false},
		{
			"mage-wrapped exec error",
			errors.New(`failed to run "staticcheck ./...: exec: \"staticcheck\": executable file not found in $PATH"`),
			true,
		},
		{"missing file", errors.New("no such file or directory"), true},
		{"tool failure", errors.New("exit status 1"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCommandNotFound(tt.err); got != tt.expected {
				t.Errorf("IsCommandNotFound(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}
