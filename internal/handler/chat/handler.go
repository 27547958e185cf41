package chat

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zhouzirui/folio/backend/internal/model/chat"
	"github.com/zhouzirui/folio/backend/internal/model/content"
	chatService "github.com/zhouzirui/folio/backend/internal/service/chat"
	"github.com/zhouzirui/folio/backend/pkg/utils"
)

// SessionIssuer hands out chat widget credentials.
type SessionIssuer interface {
	CreateSession(ctx context.Context) (chat.Credential, error)
}

// ProfileReader loads the owner profile used for the greeting.
type ProfileReader interface {
	Profile(ctx context.Context) (*content.Profile, error)
}

// Handler 聊天组件的HTTP处理器
type Handler struct {
	sessions SessionIssuer
	profiles ProfileReader
	logger   *zap.Logger
}

// New 创建聊天处理器
func New(sessions SessionIssuer, profiles ProfileReader, logger *zap.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		profiles: profiles,
		logger:   logger,
	}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat/session", h.handleCreateSession)
	r.Get("/chat/config", h.handleWidgetConfig)
}

// handleCreateSession 为聊天组件签发会话凭证，每次调用都是新会话
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	cred, err := h.sessions.CreateSession(r.Context())
	if err != nil {
		var perr *chat.ProviderError
		switch {
		case errors.As(err, &perr):
			utils.RespondError(w, http.StatusBadGateway, perr.Error())
		case errors.Is(err, context.Canceled):
			h.logger.Debug("session request cancelled by client")
		default:
			h.logger.Error("chat session bootstrap failed", zap.Error(err))
			utils.RespondError(w, http.StatusBadGateway, chat.DefaultProviderMessage)
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, cred)
}

// handleWidgetConfig 返回欢迎语、推荐问题等组件配置
func (h *Handler) handleWidgetConfig(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profiles.Profile(r.Context())
	if err != nil {
		// The generic greeting still works without a profile.
		h.logger.Warn("profile unavailable for chat greeting", zap.Error(err))
		profile = nil
	}

	utils.RespondJSON(w, http.StatusOK, chatService.WidgetConfig(profile))
}
