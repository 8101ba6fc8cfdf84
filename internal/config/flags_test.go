package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set_Valid(t *testing.T) {
	var addr NetAddress

	require.NoError(t, addr.Set("localhost:8080"))
	assert.Equal(t, "localhost", addr.Host)
	assert.Equal(t, 8080, addr.Port)
	assert.Equal(t, "localhost:8080", addr.String())
}

func TestNetAddress_Set_ValidIP(t *testing.T) {
	var addr NetAddress

	require.NoError(t, addr.Set("127.0.0.1:9090"))
	assert.Equal(t, "127.0.0.1:9090", addr.String())
}

func TestNetAddress_Set_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "no port", input: "localhost"},
		{name: "bad port", input: "localhost:abc"},
		{name: "negative port", input: "localhost:-1"},
		{name: "bad host", input: "not an ip:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			assert.Error(t, addr.Set(tt.input))
		})
	}
}

func TestNetAddress_String_Empty(t *testing.T) {
	var addr NetAddress
	assert.Equal(t, "", addr.String())
}
