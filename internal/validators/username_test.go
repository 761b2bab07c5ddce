package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsernameToEmail(t *testing.T) {
	cases := []struct {
		in, domain, want string
	}{
		{"jdoe", "pdx.edu", "jdoe@pdx.edu"},
		{"  JDoe ", "pdx.edu", "jdoe@pdx.edu"},
		{"jdoe@example.com", "pdx.edu", "jdoe@pdx.edu"},
		{"jdoe", "@pdx.edu", "jdoe@pdx.edu"},
	}

	for _, tc := range cases {
		got, err := UsernameToEmail(tc.in, tc.domain)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestUsernameToEmail_Rejects(t *testing.T) {
	for _, in := range []string{"", "   ", "@pdx.edu", "j doe", "a/b"} {
		_, err := UsernameToEmail(in, "pdx.edu")
		assert.ErrorIs(t, err, ErrInvalidUsername, in)
	}
}
