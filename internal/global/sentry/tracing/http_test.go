package tracing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeURL(t *testing.T) {
	require.Equal(t, "http://localhost:5555/campers/1", sanitizeURL("http://localhost:5555/campers/1?token=abc"))
	require.Equal(t, "https://api.example.com/signups", sanitizeURL("https://user:pw@api.example.com/signups#frag"))
	require.Equal(t, "unknown", sanitizeURL(""))
	require.Equal(t, "unknown", sanitizeURL("http://[::1"))
}
