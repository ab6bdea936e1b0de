package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"PifKeeper/internal/config"
	"PifKeeper/internal/middleware"
	"PifKeeper/internal/onepif"
	"PifKeeper/internal/service"
	"PifKeeper/internal/vault"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ImportHandler обрабатывает импорт архивов 1PIF и чтение журнала импортов.
type ImportHandler struct {
	ImportService *service.ImportService
	Logger        *zap.SugaredLogger
	Config        *config.Config
}

// NewImportHandler создаёт хендлер импорта
func NewImportHandler(importService *service.ImportService, logger *zap.SugaredLogger, cfg *config.Config) *ImportHandler {
	return &ImportHandler{ImportService: importService, Logger: logger, Config: cfg}
}

// ImportRequest - тело POST /api/import. Вложения: uuid записи → имя файла → байты (base64 в JSON).
type ImportRequest struct {
	Text        string                       `json:"text"`
	Attachments map[string]map[string][]byte `json:"attachments,omitempty"`
	Strict      bool                         `json:"strict,omitempty"`
}

// ImportResponse - итог импорта и построенное дерево (без секретов).
type ImportResponse struct {
	ID          string   `json:"id"`
	Groups      int      `json:"groups"`
	Imported    int      `json:"imported"`
	Trashed     int      `json:"trashed"`
	Unsupported int      `json:"unsupported"`
	Tree        *NodeDTO `json:"tree"`
}

// NodeDTO - узел дерева в ответе.
type NodeDTO struct {
	Kind         string     `json:"kind"`
	Title        string     `json:"title"`
	Icon         int        `json:"icon"`
	Username     string     `json:"username,omitempty"`
	URL          string     `json:"url,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	CustomFields []string   `json:"custom_fields,omitempty"`
	Attachments  []string   `json:"attachments,omitempty"`
	Children     []*NodeDTO `json:"children,omitempty"`
}

// Import конвертирует присланный архив и записывает его в журнал
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.GetSubjectFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes())
	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	out, err := h.ImportService.Import(r.Context(), subject, service.ImportInput{
		Text:        req.Text,
		Attachments: req.Attachments,
		Strict:      req.Strict || h.Config.StrictTypes,
	})
	if err != nil {
		var ute *onepif.UnknownRecordTypeError
		switch {
		case errors.Is(err, onepif.ErrCouldNotConvertStringToData), errors.As(err, &ute):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			h.Logger.Errorw("import failed", "subject", subject, "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, ImportResponse{
		ID:          out.Log.ID,
		Groups:      out.Log.Groups,
		Imported:    out.Log.Imported,
		Trashed:     out.Log.Trashed,
		Unsupported: out.Log.Unsupported,
		Tree:        toDTO(out.Root.EffectiveRoot()),
	})
}

// List возвращает журнал импортов текущего субъекта
func (h *ImportHandler) List(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.GetSubjectFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	logs, err := h.ImportService.List(r.Context(), subject)
	if err != nil {
		h.Logger.Errorw("list imports failed", "subject", subject, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if len(logs) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

// Entries возвращает сводку записей одного импорта
func (h *ImportHandler) Entries(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.GetSubjectFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	entries, err := h.ImportService.Entries(r.Context(), subject, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "import not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("list import entries failed", "subject", subject, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// maxBodyBytes - лимит тела после распаковки gzip (WithGzip стоит раньше в цепочке).
func (h *ImportHandler) maxBodyBytes() int64 {
	mb := h.Config.MaxBodyMB
	if mb <= 0 {
		mb = config.DefaultMaxBodyMB
	}
	return int64(mb) << 20
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func toDTO(n *vault.Node) *NodeDTO {
	dto := &NodeDTO{
		Kind:  n.Kind.String(),
		Title: n.Title,
		Icon:  int(n.Icon),
	}
	if n.IsGroup() {
		for _, c := range n.Children {
			dto.Children = append(dto.Children, toDTO(c))
		}
		return dto
	}
	f := n.Fields
	dto.Username = f.Username
	dto.URL = f.URL
	dto.Tags = f.Tags
	for _, cf := range f.CustomFields {
		dto.CustomFields = append(dto.CustomFields, cf.Key)
	}
	for name := range f.Attachments {
		dto.Attachments = append(dto.Attachments, name)
	}
	sort.Strings(dto.Attachments)
	return dto
}
