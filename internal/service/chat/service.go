package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zhouzirui/folio/backend/internal/auth"
	"github.com/zhouzirui/folio/backend/internal/config"
	"github.com/zhouzirui/folio/backend/internal/model/chat"
)

const (
	sessionsPath   = "/chatkit/sessions"
	guestPrefix    = "guest-"
	guestIDLength  = 7
	mockSecretSize = 6
)

// Service issues chat widget session credentials. It keeps no state between
// calls: every invocation yields an independent session.
type Service struct {
	cfg    config.ChatConfig
	client *http.Client
	logger *zap.Logger
	now    func() time.Time
}

// Option customises a Service.
type Option func(*Service)

// WithHTTPClient overrides the client used to reach the provider.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		s.client = client
	}
}

// NewService wires the bootstrap against the provider configuration. Missing
// credentials are not an error: the service hands out mock sessions instead.
func NewService(cfg config.ChatConfig, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		cfg:    cfg,
		client: &http.Client{},
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MockMode reports whether sessions are synthesised locally.
func (s *Service) MockMode() bool {
	return !s.cfg.Enabled()
}

// CreateSession resolves the caller identity and exchanges it for a session
// credential. Provider rejections come back as *chat.ProviderError; there is
// no retry here, the widget decides when to ask again.
func (s *Service) CreateSession(ctx context.Context) (chat.Credential, error) {
	userID := resolveIdentity(ctx)

	if s.MockMode() {
		cred := s.mockCredential(userID)
		s.logger.Info("issued mock chat session",
			zap.String("session_id", cred.SessionID),
			zap.String("user_id", userID))
		return cred, nil
	}

	body, err := json.Marshal(map[string]any{
		"workflow": s.cfg.WorkflowID,
		"user":     chat.User{ID: userID},
	})
	if err != nil {
		return chat.Credential{}, fmt.Errorf("encode session request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+sessionsPath, bytes.NewReader(body))
	if err != nil {
		return chat.Credential{}, fmt.Errorf("build session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return chat.Credential{}, fmt.Errorf("call session provider: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return chat.Credential{}, fmt.Errorf("read session response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		perr := &chat.ProviderError{StatusCode: resp.StatusCode, Message: providerMessage(payload)}
		s.logger.Warn("session provider rejected request",
			zap.Int("status", resp.StatusCode),
			zap.String("user_id", userID),
			zap.String("message", perr.Error()))
		return chat.Credential{}, perr
	}

	cred, err := chat.ParseCredential(payload)
	if err != nil {
		return chat.Credential{}, fmt.Errorf("decode session response: %w", err)
	}

	s.logger.Info("issued chat session",
		zap.String("session_id", cred.SessionID),
		zap.String("user_id", userID),
		zap.Int("expires_in", cred.ExpiresIn))
	return cred, nil
}

func (s *Service) mockCredential(userID string) chat.Credential {
	return chat.Credential{
		SessionID:    fmt.Sprintf("mock-session-%d", s.now().UnixMilli()),
		ClientSecret: "mock-secret-" + randomToken(mockSecretSize),
		User:         &chat.User{ID: userID},
		ExpiresIn:    s.cfg.MockExpiresIn,
		Mock:         true,
	}
}

// resolveIdentity prefers the signed-in user and otherwise invents a guest.
func resolveIdentity(ctx context.Context) string {
	if id, ok := auth.UserID(ctx); ok {
		return id
	}
	return NewGuestID()
}

// NewGuestID returns a short guest identity. Collisions are possible and
// harmless: guests carry no stored state.
func NewGuestID() string {
	return guestPrefix + randomToken(guestIDLength)
}

// IsGuestID reports whether id was minted by NewGuestID.
func IsGuestID(id string) bool {
	return strings.HasPrefix(id, guestPrefix)
}

func randomToken(n int) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(token) {
		n = len(token)
	}
	return token[:n]
}

// providerMessage returns the error payload's top-level "message", or "" so
// the caller falls back to the default text.
func providerMessage(payload []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	return body.Message
}
