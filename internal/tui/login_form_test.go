package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "a@b.co", wantErr: false},
		{name: "surrounding whitespace", input: "  a@b.co  ", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "no at sign", input: "nobody.example.com", wantErr: true},
		{name: "at sign first", input: "@example.com", wantErr: true},
		{name: "at sign last", input: "nobody@", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
