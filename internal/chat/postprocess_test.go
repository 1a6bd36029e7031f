package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureCompleteSentence(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"All good here.", "All good here."},
		{"Really?", "Really?"},
		{"Wow!", "Wow!"},
		{"First point. And then it trails o", "First point."},
		{"Hello world", "Hello world..."},
		{"  padded sentence.  ", "padded sentence."},
		{"", ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, EnsureCompleteSentence(tc.in), "input: %q", tc.in)
	}
}

func TestEnsureCompleteSentenceIsIdempotent(t *testing.T) {
	inputs := []string{"All good here.", "First point. And then it trails o", "Hello world"}
	for _, in := range inputs {
		once := EnsureCompleteSentence(in)
		require.Equal(t, once, EnsureCompleteSentence(once), "input: %q", in)
	}
}

func TestIsDegenerate(t *testing.T) {
	require.True(t, IsDegenerate(""))
	require.True(t, IsDegenerate("   "))
	require.True(t, IsDegenerate("a"))
	require.False(t, IsDegenerate("ok"))
}
