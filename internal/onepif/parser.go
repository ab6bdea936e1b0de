package onepif

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MagicSplitter разделяет JSON-записи в файле 1PIF.
const MagicSplitter = "***5642bee8-a5ff-11dc-8314-0800200c9a66***"

// ParseRecords делит текст по MagicSplitter и декодирует каждый непустой фрагмент.
// Любой некорректный фрагмент - ошибка для всего текста. Порядок записей сохраняется.
func ParseRecords(text string) ([]UnifiedRecord, error) {
	var records []UnifiedRecord
	for i, piece := range strings.Split(text, MagicSplitter) {
		trimmed := strings.TrimSpace(piece)
		if trimmed == "" {
			continue
		}
		// запись обязана быть JSON-объектом; null и массивы не принимаются
		if trimmed[0] != '{' {
			return nil, fmt.Errorf("%w: segment %d is not a JSON object", ErrCouldNotConvertStringToData, i)
		}
		var rec UnifiedRecord
		if err := json.Unmarshal([]byte(trimmed), &rec); err != nil {
			return nil, fmt.Errorf("%w: segment %d: %v", ErrCouldNotConvertStringToData, i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
