package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"PifKeeper/internal/archive"
	"PifKeeper/internal/cli/api"
	"PifKeeper/internal/onepif"
)

// importRequest/importResponse соответствуют серверному API /api/import.
type importRequest struct {
	Text        string                       `json:"text"`
	Attachments map[string]map[string][]byte `json:"attachments,omitempty"`
	Strict      bool                         `json:"strict,omitempty"`
}

// PushResult - итог серверного импорта.
type PushResult struct {
	ID          string `json:"id"`
	Groups      int    `json:"groups"`
	Imported    int    `json:"imported"`
	Trashed     int    `json:"trashed"`
	Unsupported int    `json:"unsupported"`
}

// ErrUnauthorized возвращается, если сервер отклонил токен.
var ErrUnauthorized = errors.New("unauthorized: save a valid token with token-save")

// PushArchive отправляет архив на сервер через /api/import.
// Архив проверяется локально (UTF-8, наличие .1pif) до отправки.
func PushArchive(ctx context.Context, serverURL, token string, src archive.Entry, strict bool) (*PushResult, error) {
	text, attachments, err := onepif.ReadSource(src)
	if err != nil {
		return nil, err
	}
	payload := importRequest{Text: text, Attachments: attachments, Strict: strict}
	url := strings.TrimRight(serverURL, "/") + "/api/import"
	resp, body, err := api.PostJSON(ctx, url, payload, token)
	if err != nil {
		return nil, err
	}
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, fmt.Errorf("server returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var pr PushResult
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &pr, nil
}
