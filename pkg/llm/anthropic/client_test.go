package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchtour/phishstats/pkg/llm"
)

func TestGenerate_RequestShape(t *testing.T) {
	var got messagesRequest
	var gotHeaders http.Header
	calls := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		gotHeaders = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[{"type":"text","text":"hello"}]}`))
	}))
	defer srv.Close()

	c := New("test-key", srv.URL, "claude-sonnet-4-5", 2048)
	out, err := c.Generate(context.Background(), "system says", `{"shows":[1,2,3]}`)
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	assert.Equal(t, 1, calls, "exactly one outbound call")
	assert.Equal(t, "claude-sonnet-4-5", got.Model)
	assert.Equal(t, 2048, got.MaxTokens)
	assert.Equal(t, "system says", got.System)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, `{"shows":[1,2,3]}`, got.Messages[0].Content)

	assert.Equal(t, "test-key", gotHeaders.Get("x-api-key"))
	assert.Equal(t, apiVersion, gotHeaders.Get("anthropic-version"))
	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
}

func TestGenerate_UpstreamErrorKeepsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	}))
	defer srv.Close()

	c := New("bad-key", srv.URL, "", 0)
	_, err := c.Generate(context.Background(), "sys", "user")
	require.Error(t, err)

	var apiErr *llm.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "invalid x-api-key", apiErr.Message)
}

func TestGenerate_UpstreamErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	c := New("key", srv.URL, "", 0)
	_, err := c.Generate(context.Background(), "sys", "user")

	var apiErr *llm.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Message)
}

func TestGenerate_NoContentBlocks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":[]}`))
	}))
	defer srv.Close()

	c := New("key", srv.URL, "", 0)
	_, err := c.Generate(context.Background(), "sys", "user")
	require.Error(t, err)
	assert.NotErrorAs(t, err, new(*llm.APIError), "shape errors are not upstream status errors")
}

func TestGenerate_FirstBlockNotText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":[{"type":"tool_use"},{"type":"text","text":"later"}]}`))
	}))
	defer srv.Close()

	c := New("key", srv.URL, "", 0)
	_, err := c.Generate(context.Background(), "sys", "user")
	require.Error(t, err)
}

func TestGenerate_EmptyAPIKey(t *testing.T) {
	c := New("", "http://localhost:1", "", 0)
	_, err := c.Generate(context.Background(), "sys", "user")
	require.Error(t, err)
}

func TestNew_Defaults(t *testing.T) {
	c := New("key", "", "", 0)
	assert.Equal(t, "https://api.anthropic.com/v1", c.BaseURL)
	assert.Equal(t, "claude-sonnet-4-5", c.Model)
	assert.Equal(t, 2048, c.MaxTokens)
}
