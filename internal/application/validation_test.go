package application

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr bool
		errMsg  string
	}{
		{
			name:  "non-empty value",
			field: "sourceDir",
			value: "./site",
		},
		{
			name:    "empty value",
			field:   "sourceDir",
			value:   "",
			wantErr: true,
			errMsg:  "source directory is required",
		},
		{
			name:    "whitespace only",
			field:   "outputDir",
			value:   "   ",
			wantErr: true,
			errMsg:  "output directory is required",
		},
		{
			name:    "unknown field falls back to raw name",
			field:   "query",
			value:   "",
			wantErr: true,
			errMsg:  "query is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.field, tt.value)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestDirectoryNotFoundError_MatchesSentinel(t *testing.T) {
	err := &DirectoryNotFoundError{Path: "/no/such/dir"}

	if !errors.Is(err, ErrDirectoryNotFound) {
		t.Error("DirectoryNotFoundError does not match ErrDirectoryNotFound")
	}
	if !strings.Contains(err.Error(), "/no/such/dir") {
		t.Errorf("error message does not name the path: %q", err.Error())
	}
}
