package content

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zhouzirui/folio/backend/internal/model/content"
	contentService "github.com/zhouzirui/folio/backend/internal/service/content"
	"github.com/zhouzirui/folio/backend/pkg/utils"
)

// Reader is the read side of the content service.
type Reader interface {
	Section(ctx context.Context, name string) (content.Result, error)
	Page(ctx context.Context) ([]contentService.PageSection, error)
}

// Handler 页面内容的HTTP处理器
type Handler struct {
	content Reader
	logger  *zap.Logger
}

// New 创建内容处理器
func New(reader Reader, logger *zap.Logger) *Handler {
	return &Handler{content: reader, logger: logger}
}

// RegisterRoutes 注册内容相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/sections", h.handleListSections)
	r.Get("/sections/{section}", h.handleSection)
	r.Get("/page", h.handlePage)
}

func (h *Handler) handleListSections(w http.ResponseWriter, _ *http.Request) {
	all := content.Sections()
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, s.Name)
	}
	utils.RespondJSON(w, http.StatusOK, map[string][]string{"sections": names})
}

// handleSection 返回单个区块；没有数据时返回 204，前端据此不渲染该区块
func (h *Handler) handleSection(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "section")

	res, err := h.content.Section(r.Context(), name)
	if err != nil {
		if errors.Is(err, content.ErrUnknownSection) {
			utils.RespondError(w, http.StatusNotFound, "section not found")
			return
		}
		h.logger.Error("content fetch failed", zap.String("section", name), zap.Error(err))
		utils.RespondError(w, http.StatusBadGateway, "content unavailable")
		return
	}

	if res.Empty() {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]json.RawMessage{"data": res.Data})
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	sections, err := h.content.Page(r.Context())
	if err != nil {
		h.logger.Error("page fetch failed", zap.Error(err))
		utils.RespondError(w, http.StatusBadGateway, "content unavailable")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{"sections": sections})
}
