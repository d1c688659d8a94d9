package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_Authenticated(t *testing.T) {
	tests := []struct {
		name string
		sess Session
		want bool
	}{
		{
			name: "token present",
			sess: Session{Token: "abc", Email: "a@b.co"},
			want: true,
		},
		{
			name: "zero value",
			sess: Session{},
			want: false,
		},
		{
			name: "email without token",
			sess: Session{Email: "a@b.co"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sess.Authenticated())
		})
	}
}
