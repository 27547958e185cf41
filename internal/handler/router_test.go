package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zhouzirui/folio/backend/internal/auth"
	"github.com/zhouzirui/folio/backend/internal/config"
	contentModel "github.com/zhouzirui/folio/backend/internal/model/content"
	chatService "github.com/zhouzirui/folio/backend/internal/service/chat"
	contactService "github.com/zhouzirui/folio/backend/internal/service/contact"
	contentService "github.com/zhouzirui/folio/backend/internal/service/content"
)

const testSecret = "router-test-secret"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	verifier, err := auth.NewVerifier(testSecret, "")
	require.NoError(t, err)

	logger := zap.NewNop()
	return NewRouter(Dependencies{
		Chat:           chatService.NewService(config.ChatConfig{MockExpiresIn: 3600}, logger),
		Contact:        contactService.NewService(logger, contactService.NewLogRecorder(logger)),
		Content:        contentService.NewService(contentModel.NewMemoryStore(contentModel.Seed()), logger),
		Verifier:       verifier,
		CookieName:     "__session",
		AllowedOrigins: []string{"https://folio.example"},
		Logger:         logger,
	})
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestRoutesMounted(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodPost, "/api/chat/session", "", http.StatusOK},
		{http.MethodGet, "/api/chat/config", "", http.StatusOK},
		{http.MethodPost, "/api/contact", `{"name":"Ada","email":"ada@example.com","message":"hi"}`, http.StatusOK},
		{http.MethodGet, "/api/sections", "", http.StatusOK},
		{http.MethodGet, "/api/sections/projects", "", http.StatusOK},
		{http.MethodGet, "/api/page", "", http.StatusOK},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			resp := httptest.NewRecorder()
			r.ServeHTTP(resp, req)
			assert.Equal(t, tt.want, resp.Code)
		})
	}
}

func TestSessionUsesSignedInUser(t *testing.T) {
	r := newTestRouter(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user_42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/chat/session", nil)
	req.AddCookie(&http.Cookie{Name: "__session", Value: signed})
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
		Mock bool `json:"mock"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "user_42", body.User.ID)
	assert.True(t, body.Mock)
}

func TestSessionFallsBackToGuest(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/chat/session", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, chatService.IsGuestID(body.User.ID))
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://folio.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, "https://folio.example", resp.Header().Get("Access-Control-Allow-Origin"))
}

func TestAccessLogGoesThroughZap(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	r := NewRouter(Dependencies{
		Chat:    chatService.NewService(config.ChatConfig{MockExpiresIn: 3600}, logger),
		Contact: contactService.NewService(logger),
		Content: contentService.NewService(contentModel.NewMemoryStore(contentModel.Seed()), logger),
		Logger:  logger,
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "http", entries[0].LoggerName)
	assert.Equal(t, "/healthz", entries[0].ContextMap()["path"])
}
