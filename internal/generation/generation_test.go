package generation

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MissingAPIKey(t *testing.T) {
	for _, provider := range []Provider{ProviderOpenAI, ProviderAnthropic, ProviderGemini} {
		t.Run(string(provider), func(t *testing.T) {
			client, err := New(context.Background(), Config{Provider: provider})

			assert.Error(t, err)
			assert.Contains(t, err.Error(), "API key")
			assert.Nil(t, client)
		})
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(context.Background(), Config{Provider: "carrier-pigeon", APIKey: "key"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "carrier-pigeon")
}

func TestNew_DefaultsToOpenAI(t *testing.T) {
	client, err := New(context.Background(), Config{APIKey: "test-key"})
	require.NoError(t, err)

	openaiClient, ok := client.(*OpenAIClient)
	require.True(t, ok, "expected *OpenAIClient, got %T", client)
	assert.Equal(t, "gpt-5-mini", openaiClient.model)
}

func TestNew_WrapsWithTimeout(t *testing.T) {
	client, err := New(context.Background(), Config{APIKey: "test-key", Timeout: time.Minute})
	require.NoError(t, err)

	_, ok := client.(*timeoutClient)
	assert.True(t, ok)
}

func TestDefaultModel(t *testing.T) {
	assert.Equal(t, "gpt-5-mini", DefaultModel(ProviderOpenAI))
	assert.Equal(t, "gemini-2.5-flash", DefaultModel(ProviderGemini))
	assert.NotEmpty(t, DefaultModel(ProviderAnthropic))
}

func TestOpenAIClient_Complete(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(raw, &body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1,
			"model": "gpt-5-mini",
			"choices": [{
				"index": 0,
				"finish_reason": "stop",
				"message": {"role": "assistant", "content": "{\"hooks\": []}"}
			}]
		}`)
	}))
	defer srv.Close()

	client, err := NewOpenAIClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	text, err := client.Complete(context.Background(), Request{
		System:    "system block",
		Task:      "task block",
		SessionID: "content_gen_u1_1.5",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"hooks": []}`, text)

	assert.Equal(t, "gpt-5-mini", body["model"])
	assert.Equal(t, "content_gen_u1_1.5", body["user"])

	messages, ok := body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "user", messages[1].(map[string]any)["role"])
}

func TestOpenAIClient_UpstreamErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error": {"message": "quota exceeded", "type": "server_error"}}`)
	}))
	defer srv.Close()

	client, err := NewOpenAIClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	text, err := client.Complete(context.Background(), Request{System: "s", Task: "t"})

	require.Error(t, err)
	assert.Empty(t, text)
	assert.Equal(t, int32(1), calls.Load())
}

func openAIStub(t *testing.T, choices string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id": "chatcmpl-1", "object": "chat.completion", "created": 1, "model": "gpt-5-mini", "choices": `+choices+`}`)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestOpenAIClient_EmptyReply(t *testing.T) {
	t.Run("empty text is returned as is", func(t *testing.T) {
		srv := openAIStub(t, `[{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": ""}}]`)
		client, err := NewOpenAIClient(Config{APIKey: "test-key", BaseURL: srv.URL})
		require.NoError(t, err)

		text, err := client.Complete(context.Background(), Request{System: "s", Task: "t"})
		require.NoError(t, err)
		assert.Equal(t, "", text)
	})

	t.Run("no choices is an error", func(t *testing.T) {
		srv := openAIStub(t, `[]`)
		client, err := NewOpenAIClient(Config{APIKey: "test-key", BaseURL: srv.URL})
		require.NoError(t, err)

		_, err = client.Complete(context.Background(), Request{System: "s", Task: "t"})
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})
}

type blockingClient struct{}

func (blockingClient) Complete(ctx context.Context, _ Request) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestWithTimeout(t *testing.T) {
	t.Run("non-positive returns the client", func(t *testing.T) {
		var c Client = blockingClient{}
		assert.Equal(t, c, WithTimeout(c, 0))
	})

	t.Run("deadline is applied", func(t *testing.T) {
		c := WithTimeout(blockingClient{}, 10*time.Millisecond)

		_, err := c.Complete(context.Background(), Request{})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
