package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/zhouzirui/folio/backend/internal/auth"
	"github.com/zhouzirui/folio/backend/internal/handler/chat"
	"github.com/zhouzirui/folio/backend/internal/handler/contact"
	"github.com/zhouzirui/folio/backend/internal/handler/content"
	middlewarePkg "github.com/zhouzirui/folio/backend/internal/middleware"
	chatService "github.com/zhouzirui/folio/backend/internal/service/chat"
	contactService "github.com/zhouzirui/folio/backend/internal/service/contact"
	contentService "github.com/zhouzirui/folio/backend/internal/service/content"
	"github.com/zhouzirui/folio/backend/pkg/utils"
)

// Dependencies 路由所需的服务集合
type Dependencies struct {
	Chat    *chatService.Service
	Contact *contactService.Service
	Content *contentService.Service

	// Verifier 为空时不校验登录态，所有请求都按访客处理
	Verifier       *auth.Verifier
	CookieName     string
	AllowedOrigins []string
	Logger         *zap.Logger
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Dependencies) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.RequestLogger(logger.Named("http")))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(auth.Middleware(deps.Verifier, deps.CookieName, logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	chatHandler := chat.New(deps.Chat, deps.Content, logger.Named("chat"))
	contactHandler := contact.New(deps.Contact)
	contentHandler := content.New(deps.Content, logger.Named("content"))

	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
		contactHandler.RegisterRoutes(api)
		contentHandler.RegisterRoutes(api)
	})

	return r
}
