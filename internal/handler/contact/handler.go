package contact

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/folio/backend/internal/auth"
	"github.com/zhouzirui/folio/backend/internal/model/contact"
	"github.com/zhouzirui/folio/backend/pkg/utils"
)

const maxFormBytes = 1 << 20

// Submitter accepts contact form submissions and never fails outright.
type Submitter interface {
	Submit(ctx context.Context, sub contact.Submission) contact.Result
}

// Handler 联系表单的HTTP处理器
type Handler struct {
	svc Submitter
}

// New 创建联系表单处理器
func New(svc Submitter) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes 注册联系表单路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/contact", h.handleSubmit)
}

// handleSubmit 接收表单。只有请求体无法解析时返回 400，其余情况都返回 200；
// 两种情况的响应体都是 Result。
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	fields, err := readFields(r)
	if err != nil {
		utils.RespondJSON(w, http.StatusBadRequest, contact.Result{Success: false, Error: err.Error()})
		return
	}

	sub := contact.FromFields(fields)
	if userID, ok := auth.UserID(r.Context()); ok {
		sub.UserID = userID
	}

	utils.RespondJSON(w, http.StatusOK, h.svc.Submit(r.Context(), sub))
}

// readFields flattens a JSON object or an HTML form into string fields. A
// request without a Content-Type is read as an urlencoded form.
func readFields(r *http.Request) (map[string]string, error) {
	if r.Header.Get("Content-Type") == "" {
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/json":
		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			return nil, fmt.Errorf("invalid request body")
		}
		fields := make(map[string]string, len(raw))
		for key, value := range raw {
			switch v := value.(type) {
			case nil:
			case string:
				fields[key] = v
			default:
				encoded, _ := json.Marshal(v)
				fields[key] = string(encoded)
			}
		}
		return fields, nil

	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxFormBytes); err != nil {
			return nil, fmt.Errorf("invalid form body")
		}
		return firstValues(r.MultipartForm.Value), nil

	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("invalid form body")
		}
		return firstValues(r.PostForm), nil

	default:
		return nil, fmt.Errorf("unsupported content type %q", mediaType)
	}
}

func firstValues(values map[string][]string) map[string]string {
	fields := make(map[string]string, len(values))
	for key, v := range values {
		if len(v) > 0 {
			fields[key] = v[0]
		}
	}
	return fields
}
