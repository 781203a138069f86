package keyring_test

import (
	"testing"

	"github.com/alkime/creatoros/internal/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gokeyring "github.com/zalando/go-keyring"
)

func TestAPIKeyFromServiceName(t *testing.T) {
	tests := []struct {
		name string
		want keyring.APIKey
	}{
		{name: "openai", want: keyring.OpenAI},
		{name: "anthropic", want: keyring.Anthropic},
		{name: "gemini", want: keyring.Gemini},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := keyring.APIKeyFromServiceName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := keyring.APIKeyFromServiceName("mistral")
	assert.Error(t, err)
}

func TestSetAndGet(t *testing.T) {
	gokeyring.MockInit()

	assert.False(t, keyring.IsSet(keyring.Gemini))

	require.NoError(t, keyring.Set(keyring.Gemini, "secret"))
	assert.True(t, keyring.IsSet(keyring.Gemini))

	got, err := keyring.Get(keyring.Gemini)
	require.NoError(t, err)
	assert.Equal(t, "secret", got)

	_, err = keyring.Get(keyring.OpenAI)
	assert.ErrorIs(t, err, gokeyring.ErrNotFound)
}
