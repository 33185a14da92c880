package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gateway "github.com/gipersonic/miet/internal/adapters/http"
	"github.com/gipersonic/miet/pkg/domain"
)

type stubEngine struct {
	lastEvent domain.Event
	render    domain.Render
	err       error

	relayOperator string
	relayUser     string
}

func (e *stubEngine) Handle(ctx context.Context, ev domain.Event) (domain.Render, error) {
	e.lastEvent = ev
	return e.render, e.err
}

func (e *stubEngine) OpenRelay(ctx context.Context, operatorID, userID string) error {
	e.relayOperator = operatorID
	e.relayUser = userID
	return e.err
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleEvent(t *testing.T) {
	engine := &stubEngine{
		render: domain.Render{Text: "Hi! Choose a subject:", Choices: []string{"Math"}},
	}
	handler := gateway.NewHandler(engine)

	rec := postJSON(t, handler, "/v1/events", gateway.EventRequest{UserID: "u1", Text: "restart"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp gateway.RenderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Hi! Choose a subject:", resp.Text)
	assert.Equal(t, []string{"Math"}, resp.Choices)

	assert.Equal(t, domain.Event{UserID: "u1", Text: "restart"}, engine.lastEvent)
}

func TestHandleEvent_RequiresUserID(t *testing.T) {
	handler := gateway.NewHandler(&stubEngine{})

	rec := postJSON(t, handler, "/v1/events", gateway.EventRequest{Text: "restart"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleEvent_EngineError(t *testing.T) {
	handler := gateway.NewHandler(&stubEngine{err: errors.New("store down")})

	rec := postJSON(t, handler, "/v1/events", gateway.EventRequest{UserID: "u1", Text: "hi"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleReply(t *testing.T) {
	engine := &stubEngine{}
	handler := gateway.NewHandler(engine)

	rec := postJSON(t, handler, "/v1/reply/u1", gateway.ReplyRequest{OperatorID: "op"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "op", engine.relayOperator)
	assert.Equal(t, "u1", engine.relayUser)
}

func TestHandleReply_RequiresOperatorID(t *testing.T) {
	handler := gateway.NewHandler(&stubEngine{})

	rec := postJSON(t, handler, "/v1/reply/u1", gateway.ReplyRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthz(t *testing.T) {
	handler := gateway.NewHandler(&stubEngine{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	handler := gateway.NewHandler(&stubEngine{})

	req := httptest.NewRequest(http.MethodOptions, "/v1/events", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestWebhookNotifier(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	notifier := gateway.NewWebhookNotifier(srv.URL)
	require.NoError(t, notifier.Notify(context.Background(), "Message from u1", "u1"))
	assert.Equal(t, map[string]string{"text": "Message from u1", "reply_user": "u1"}, got)

	// Decoding into a non-nil map merges keys; start fresh so a stale
	// reply_user from the first payload cannot leak into this assertion.
	got = nil
	require.NoError(t, notifier.Notify(context.Background(), "Feedback from u1", ""))
	assert.Equal(t, map[string]string{"text": "Feedback from u1"}, got)
}

func TestWebhookMessenger_ReportsHTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	messenger := gateway.NewWebhookMessenger(srv.URL)
	err := messenger.SendTo(context.Background(), "u1", "hello")
	assert.ErrorContains(t, err, "502")
}
