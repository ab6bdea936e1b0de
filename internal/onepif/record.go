package onepif

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// UnifiedRecord - одна декодированная запись 1PIF. После декодирования не изменяется.
type UnifiedRecord struct {
	TypeName       *string        `json:"typeName"`
	UUID           *string        `json:"uuid"`
	Trashed        *bool          `json:"trashed"`
	Title          string         `json:"title"`
	Location       string         `json:"location"`
	FolderUUID     string         `json:"folderUuid"`
	CreatedAt      *EpochTime     `json:"createdAt"`
	UpdatedAt      *EpochTime     `json:"updatedAt"`
	OpenContents   OpenContents   `json:"openContents"`
	SecureContents SecureContents `json:"secureContents"`
}

// Type выводит вид записи из typeName; отсутствующее имя даёт RecordTypeUnknown.
func (r *UnifiedRecord) Type() RecordType {
	if r.TypeName == nil {
		return RecordTypeUnknown
	}
	return ResolveRecordType(*r.TypeName)
}

// IsTrashed - по умолчанию false.
func (r *UnifiedRecord) IsTrashed() bool {
	return r.Trashed != nil && *r.Trashed
}

// ID возвращает uuid записи или пустую строку.
func (r *UnifiedRecord) ID() string {
	if r.UUID == nil {
		return ""
	}
	return *r.UUID
}

type OpenContents struct {
	Tags []string `json:"tags"`
}

type SecureContents struct {
	Fields     []WebFormField `json:"fields"`
	URLs       []URLEntry     `json:"URLs"`
	NotesPlain string         `json:"notesPlain"`
	Password   string         `json:"password"`
	Sections   []Section      `json:"sections"`
}

// WebFormField - поле веб-формы логина. Type: T текст, P пароль, E email, C чекбокс, B кнопка.
type WebFormField struct {
	Name        string     `json:"name"`
	Value       FieldValue `json:"value"`
	Type        string     `json:"type"`
	Designation string     `json:"designation"`
}

type URLEntry struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type Section struct {
	Name   string         `json:"name"`
	Title  string         `json:"title"`
	Fields []SectionField `json:"fields"`
}

// SectionField - поле секции: k вид, n внутреннее имя, t заголовок, v значение.
type SectionField struct {
	Kind  string     `json:"k"`
	Name  string     `json:"n"`
	Title string     `json:"t"`
	Value FieldValue `json:"v"`
}

// EpochTime - дата в секундах от начала эпохи Unix.
type EpochTime struct {
	time.Time
}

func (t *EpochTime) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var secs float64
	if err := json.Unmarshal(b, &secs); err != nil {
		return fmt.Errorf("epoch time: %w", err)
	}
	whole, frac := math.Modf(secs)
	t.Time = time.Unix(int64(whole), int64(frac*1e9)).UTC()
	return nil
}

// FieldValue - значение поля произвольного JSON-типа (строка, число, объект адреса).
type FieldValue struct {
	raw json.RawMessage
}

func (v *FieldValue) UnmarshalJSON(b []byte) error {
	v.raw = append(v.raw[:0], b...)
	return nil
}

// Format приводит значение к строке с учётом вида поля.
func (v FieldValue) Format(kind string) string {
	raw := bytes.TrimSpace(v.raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		if kind == "date" || kind == "monthYear" {
			if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
				return formatNumber(n, kind)
			}
		}
		return s
	case '{':
		var obj map[string]any
		if err := json.Unmarshal(raw, &obj); err != nil {
			return ""
		}
		if kind == "address" {
			return formatAddress(obj)
		}
		return formatObject(obj)
	case 't', 'f', '[':
		return string(raw)
	}

	n, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return string(raw)
	}
	return formatNumber(n, kind)
}

// formatNumber форматирует число по виду поля секции: date - секунды эпохи,
// monthYear - YYYYMM.
func formatNumber(n float64, kind string) string {
	switch kind {
	case "date":
		return time.Unix(int64(n), 0).UTC().Format("2006-01-02")
	case "monthYear":
		ym := int64(n)
		return fmt.Sprintf("%02d/%04d", ym%100, ym/100)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

var addressParts = []string{"street", "city", "state", "zip", "region", "country"}

func formatAddress(obj map[string]any) string {
	var parts []string
	for _, k := range addressParts {
		v, ok := obj[k]
		if !ok || v == nil {
			continue
		}
		if s := fmt.Sprint(v); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

func formatObject(obj map[string]any) string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", k, obj[k]))
	}
	return strings.Join(parts, "\n")
}
