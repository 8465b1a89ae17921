package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-assistant/internal/assistant"
	assistantHTTP "voice-assistant/internal/assistant/delivery/http"
	"voice-assistant/internal/dispatch"
	"voice-assistant/internal/intent"
	"voice-assistant/internal/middleware"
	"voice-assistant/internal/model"
	pkgLog "voice-assistant/pkg/log"
	"voice-assistant/pkg/response"
)

type mockUseCase struct {
	reply      assistant.Reply
	err        error
	history    []model.ChatEntry
	gotScope   model.Scope
	gotInput   assistant.ProcessInput
	gotLimit   int
	processCnt int
}

func (m *mockUseCase) Process(ctx context.Context, sc model.Scope, input assistant.ProcessInput) (assistant.Reply, error) {
	m.processCnt++
	m.gotScope = sc
	m.gotInput = input
	return m.reply, m.err
}

func (m *mockUseCase) History(ctx context.Context, limit int) ([]model.ChatEntry, error) {
	m.gotLimit = limit
	return m.history, m.err
}

func setup(uc *mockUseCase, perMinute int) *gin.Engine {
	return setupWith(uc, perMinute, assistantHTTP.Options{Trusted: true})
}

func setupWith(uc *mockUseCase, perMinute int, opts assistantHTTP.Options) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := pkgLog.NewNop()
	r := gin.New()
	h := assistantHTTP.New(l, uc, opts)
	assistantHTTP.RegisterRoutes(r.Group("/api/v1"), h, middleware.New(l, middleware.Config{PerMinute: perMinute}))
	return r
}

func postTurn(r *gin.Engine, body string, header map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/turns", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "192.0.2.7:5555"
	for k, v := range header {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, _ := resp.Data.(map[string]any)
	return data
}

func TestProcessTurn(t *testing.T) {
	uc := &mockUseCase{reply: assistant.Reply{
		TurnID:    "turn-1",
		Utterance: "open chrome and what time is it",
		Tasks: []intent.Task{
			{Kind: intent.KindOpen, Argument: "chrome"},
			{Kind: intent.KindGeneral, Argument: "what time is it"},
		},
		Results: []dispatch.Result{
			{Task: intent.Task{Kind: intent.KindOpen, Argument: "chrome"}, OK: true, Status: "Opening chrome."},
			{Task: intent.Task{Kind: intent.KindGeneral, Argument: "what time is it"}, Deferred: true},
		},
		Answer: "It is noon.",
	}}
	r := setup(uc, 0)

	w := postTurn(r, `{"utterance":"open chrome and what time is it"}`, map[string]string{"X-User-ID": "desk"})

	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)
	assert.Equal(t, "turn-1", data["turn_id"])
	assert.Equal(t, "It is noon.", data["answer"])
	tasks := data["tasks"].([]any)
	require.Len(t, tasks, 2)
	assert.Equal(t, "open", tasks[0].(map[string]any)["kind"])
	results := data["results"].([]any)
	assert.Equal(t, true, results[1].(map[string]any)["deferred"])

	assert.Equal(t, model.Scope{Channel: model.ChannelHTTP, UserID: "desk", Trusted: true}, uc.gotScope)
	assert.Equal(t, "open chrome and what time is it", uc.gotInput.Utterance)
}

func TestProcessTurnDefaultsUserToClientIP(t *testing.T) {
	uc := &mockUseCase{}
	r := setup(uc, 0)

	w := postTurn(r, `{"utterance":"hello"}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "192.0.2.7", uc.gotScope.UserID)
}

func TestProcessTurnErrors(t *testing.T) {
	tcs := map[string]struct {
		body     string
		err      error
		wantCode int
		wantCall bool
	}{
		"invalid json":    {body: `{`, wantCode: http.StatusBadRequest},
		"missing field":   {body: `{}`, wantCode: http.StatusBadRequest},
		"blank utterance": {body: `{"utterance":"   "}`, wantCode: http.StatusBadRequest},
		"busy":            {body: `{"utterance":"hi"}`, err: context.DeadlineExceeded, wantCode: http.StatusServiceUnavailable, wantCall: true},
		"internal":        {body: `{"utterance":"hi"}`, err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantCall: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc := &mockUseCase{err: tc.err}
			r := setup(uc, 0)

			w := postTurn(r, tc.body, nil)

			assert.Equal(t, tc.wantCode, w.Code)
			assert.Equal(t, tc.wantCall, uc.processCnt == 1)
		})
	}
}

func TestProcessTurnRateLimited(t *testing.T) {
	uc := &mockUseCase{}
	r := setup(uc, 1)

	assert.Equal(t, http.StatusOK, postTurn(r, `{"utterance":"hi"}`, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, postTurn(r, `{"utterance":"hi"}`, nil).Code)
	assert.Equal(t, 1, uc.processCnt)
}

func TestChatLog(t *testing.T) {
	uc := &mockUseCase{history: []model.ChatEntry{
		{Role: model.RoleUser, Content: "Hello."},
		{Role: model.RoleAssistant, Content: "Hi there."},
	}}
	r := setup(uc, 0)

	tcs := map[string]struct {
		query     string
		wantLimit int
	}{
		"default": {query: "", wantLimit: 20},
		"custom":  {query: "?limit=5", wantLimit: 5},
		"clamped": {query: "?limit=5000", wantLimit: 200},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/chatlog"+tc.query, nil))

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.wantLimit, uc.gotLimit)
			entries := decode(t, w)["entries"].([]any)
			assert.Len(t, entries, 2)
			assert.Equal(t, "assistant", entries[1].(map[string]any)["role"])
		})
	}
}

func TestChatLogBadQuery(t *testing.T) {
	r := setup(&mockUseCase{}, 0)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/chatlog?limit=abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUntrustedAPI(t *testing.T) {
	uc := &mockUseCase{history: []model.ChatEntry{{Role: model.RoleUser, Content: "secret"}}}
	r := setupWith(uc, 0, assistantHTTP.Options{})

	w := postTurn(r, `{"utterance":"open chrome"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, uc.gotScope.Trusted)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/chatlog", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")
}
