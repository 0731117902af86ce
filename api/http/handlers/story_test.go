package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apihttp "github.com/couchtour/phishstats/api/http"
	"github.com/couchtour/phishstats/api/http/handlers"
	"github.com/couchtour/phishstats/pkg/llm"
	"github.com/couchtour/phishstats/pkg/llm/anthropic"
	"github.com/couchtour/phishstats/pkg/story"
)

type stubService struct {
	gotPayload json.RawMessage
	out        json.RawMessage
	err        error
}

func (s *stubService) Generate(_ context.Context, payload json.RawMessage) (json.RawMessage, error) {
	s.gotPayload = append(json.RawMessage(nil), payload...)
	return s.out, s.err
}

func newApp(svc story.Service) *fiber.App {
	app := fiber.New()
	apihttp.Register(app, handlers.NewStoryHandler(svc), handlers.NewHealthHandler())
	return app
}

func postStory(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-story", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestGenerateStory_RelaysServiceOutput(t *testing.T) {
	out := `{"attendance_overview":{"summary":"ok","confidence":"high"}}`
	svc := &stubService{out: json.RawMessage(out)}
	app := newApp(svc)

	resp := postStory(t, app, `{"shows":["1997-11-17"]}`)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, out, string(body), "body relayed byte-for-byte")
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
	assert.Equal(t, `{"shows":["1997-11-17"]}`, string(svc.gotPayload), "payload forwarded untouched")
}

func TestGenerateStory_UpstreamStatusPropagated(t *testing.T) {
	svc := &stubService{err: &llm.APIError{StatusCode: http.StatusUnauthorized, Message: "invalid x-api-key"}}
	app := newApp(svc)

	resp := postStory(t, app, `{}`)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"invalid x-api-key"}`, string(body))
}

func TestGenerateStory_GenericErrorIs500(t *testing.T) {
	svc := &stubService{err: assert.AnError}
	app := newApp(svc)

	resp := postStory(t, app, `{}`)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var errResp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.NotEmpty(t, errResp.Error)
}

// Full proxy flow against a simulated upstream: one request in, one outbound
// call, one response out.
func TestGenerateStory_ProxyFlow(t *testing.T) {
	const storyJSON = `{"attendance_overview":{"summary":"30 shows over 20 years.","confidence":"high"},` +
		`"musical_identity":{"summary":"Jam-heavy.","confidence":"medium"},` +
		`"era_journey":{"summary":"3.0 native.","confidence":"high"},` +
		`"venue_story":{"summary":"MSG regular.","confidence":"medium"},` +
		`"standout_moments":{"summary":"Baker's Dozen.","confidence":"low"}}`

	calls := 0
	var upstream struct {
		System   string `json:"system"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.NoError(t, json.NewDecoder(r.Body).Decode(&upstream))
		reply := map[string]any{
			"content": []map[string]string{{"type": "text", "text": storyJSON}},
		}
		json.NewEncoder(w).Encode(reply)
	}))
	defer srv.Close()

	client := anthropic.New("test-key", srv.URL, "", 0)
	app := newApp(story.NewService(client))

	payload := `{"shows":[{"showdate":"2017-07-25","venue":"Madison Square Garden"}]}`
	resp := postStory(t, app, payload)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, storyJSON, string(body))

	assert.Equal(t, 1, calls)
	assert.Equal(t, story.SystemPrompt, upstream.System)
	require.Len(t, upstream.Messages, 1)
	assert.Equal(t, payload, upstream.Messages[0].Content)
}

func TestGenerateStory_UpstreamReplyNotJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"type": "text", "text": "I'd be happy to help, but..."}},
		})
	}))
	defer srv.Close()

	client := anthropic.New("test-key", srv.URL, "", 0)
	app := newApp(story.NewService(client))

	resp := postStory(t, app, `{}`)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var errResp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.NotEmpty(t, errResp.Error)
}
