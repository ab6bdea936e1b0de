package vault

import (
	"fmt"
	"time"
)

// CustomField - дополнительное строковое поле записи.
type CustomField struct {
	Key       string
	Value     string
	Protected bool
}

// Fields - нормализованный набор полей записи.
type Fields struct {
	Username     string
	Password     string
	URL          string
	Email        string
	Notes        string
	Tags         []string
	CustomFields []CustomField
	Attachments  map[string]*DatabaseAttachment
	Created      time.Time
	Modified     time.Time
}

// SetCustomField добавляет поле. Пустые значения пропускаются,
// повторяющиеся ключи получают суффикс " (2)", " (3)" и т.д.
func (f *Fields) SetCustomField(key, value string, protected bool) {
	if value == "" {
		return
	}
	f.CustomFields = append(f.CustomFields, CustomField{
		Key:       f.uniqueKey(key),
		Value:     value,
		Protected: protected,
	})
}

// CustomField возвращает значение поля по ключу.
func (f *Fields) CustomField(key string) (CustomField, bool) {
	for _, cf := range f.CustomFields {
		if cf.Key == key {
			return cf, true
		}
	}
	return CustomField{}, false
}

func (f *Fields) uniqueKey(key string) string {
	if key == "" {
		key = "Field"
	}
	candidate := key
	for i := 2; ; i++ {
		if _, exists := f.CustomField(candidate); !exists {
			return candidate
		}
		candidate = fmt.Sprintf("%s (%d)", key, i)
	}
}

// AddAttachment сохраняет вложение под именем файла, перезаписывая существующее.
func (f *Fields) AddAttachment(filename string, a *DatabaseAttachment) {
	if f.Attachments == nil {
		f.Attachments = map[string]*DatabaseAttachment{}
	}
	f.Attachments[filename] = a
}
