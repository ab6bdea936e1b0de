// Package onepif импортирует экспорт 1PIF (JSON-записи, разделённые магической
// строкой, и необязательный каталог вложений) в дерево хранилища vault.
package onepif

import (
	"fmt"
	"unicode/utf8"

	"PifKeeper/internal/archive"
	"PifKeeper/internal/vault"

	"go.uber.org/zap"
)

// FileExt - расширение файла записей внутри каталога экспорта.
const FileExt = ".1pif"

// Importer не хранит состояния между вызовами; один экземпляр можно
// использовать из нескольких горутин.
type Importer struct {
	logger *zap.SugaredLogger
	strict bool
}

// Option настраивает Importer.
type Option func(*Importer)

// WithLogger задаёт логгер диагностики пропущенных записей.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(im *Importer) {
		if l != nil {
			im.logger = l
		}
	}
}

// WithStrictTypes включает строгий режим: неизвестный typeName - ошибка.
func WithStrictTypes(strict bool) Option {
	return func(im *Importer) { im.strict = strict }
}

func NewImporter(opts ...Option) *Importer {
	im := &Importer{logger: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(im)
	}
	return im
}

// Result - итог конвертации.
type Result struct {
	Root        *vault.Node
	Imported    int
	Trashed     int
	Unsupported int
}

// ConvertText конвертирует текст 1PIF импортёром по умолчанию.
func ConvertText(text string, attachments AttachmentMap) (*vault.Node, error) {
	res, err := NewImporter().Import(text, attachments)
	if err != nil {
		return nil, err
	}
	return res.Root, nil
}

// ConvertPath загружает файл или каталог экспорта с диска и конвертирует его.
func (im *Importer) ConvertPath(path string) (*Result, error) {
	src, err := archive.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return im.Convert(src)
}

// Convert принимает либо одиночный файл, либо каталог с файлом *.1pif
// и необязательным каталогом attachments.
func (im *Importer) Convert(src archive.Entry) (*Result, error) {
	text, attachments, err := ReadSource(src)
	if err != nil {
		return nil, err
	}
	return im.Import(text, attachments)
}

// ReadSource извлекает текст записей и вложения из источника, не строя дерево.
// Текст обязан быть корректным UTF-8.
func ReadSource(src archive.Entry) (string, AttachmentMap, error) {
	var (
		data        []byte
		attachments AttachmentMap
	)
	switch s := src.(type) {
	case archive.Leaf:
		data = s
	case archive.Directory:
		_, leaf, ok := s.FindLeafByExt(FileExt)
		if !ok {
			return "", nil, fmt.Errorf("%w: no %s file in archive", ErrCouldNotConvertStringToData, FileExt)
		}
		data = leaf
		attachments = FindAttachments(s)
	default:
		return "", nil, fmt.Errorf("%w: empty source", ErrCouldNotConvertStringToData)
	}

	if !utf8.Valid(data) {
		return "", nil, fmt.Errorf("%w: source is not valid UTF-8", ErrCouldNotConvertStringToData)
	}
	return string(data), attachments, nil
}

// Import строит дерево: корень → эффективный корень → группы категорий → записи.
// Структурные ошибки прерывают импорт целиком, частичный результат не возвращается.
func (im *Importer) Import(text string, attachments AttachmentMap) (*Result, error) {
	records, err := ParseRecords(text)
	if err != nil {
		return nil, err
	}
	if im.strict {
		if err := checkKnownTypes(records); err != nil {
			return nil, err
		}
	}

	root := vault.NewRootWithDefaultEffectiveRootGroup()
	effectiveRoot := root.EffectiveRoot()

	groups := map[ItemCategory]*vault.Node{}
	for _, category := range presentCategories(records) {
		g, err := vault.NewGroup(string(category))
		if err != nil {
			return nil, fmt.Errorf("create group %q: %w", category, err)
		}
		g.Icon = category.Icon()
		if err := effectiveRoot.AddChild(g); err != nil {
			return nil, err
		}
		groups[category] = g
	}

	res := &Result{Root: root}
	for i := range records {
		rec := &records[i]
		if rec.IsTrashed() {
			im.logger.Debugw("trashed record, skipping", "uuid", rec.ID())
			res.Trashed++
			continue
		}
		recordType := rec.Type()
		if !recordType.IsImportable() {
			im.logger.Infow("unprocessable record type, ignoring",
				"type", typeNameOf(rec), "kind", recordType.String(), "uuid", rec.ID())
			res.Unsupported++
			continue
		}

		parent, ok := groups[recordType.Category()]
		if !ok {
			im.logger.Debugw("record without category, placing under root",
				"type", typeNameOf(rec), "kind", recordType.String(), "uuid", rec.ID())
			parent = effectiveRoot
		}

		entry := vault.NewEntry("")
		fill(entry, rec)

		if id := rec.ID(); id != "" {
			for filename, data := range attachments[id] {
				a, err := vault.NewDatabaseAttachment(data, true, true)
				if err != nil {
					return nil, fmt.Errorf("attachment %s/%s: %w", id, filename, err)
				}
				entry.Fields.AddAttachment(filename, a)
			}
		}

		if err := parent.AddChild(entry); err != nil {
			return nil, err
		}
		res.Imported++
	}

	im.logger.Infow("1pif import finished",
		"records", len(records),
		"imported", res.Imported,
		"trashed", res.Trashed,
		"unsupported", res.Unsupported,
		"groups", len(groups),
	)
	return res, nil
}

// presentCategories возвращает категории уцелевших импортируемых записей
// в порядке первого появления. Unknown не материализуется.
func presentCategories(records []UnifiedRecord) []ItemCategory {
	seen := map[ItemCategory]bool{}
	var res []ItemCategory
	for i := range records {
		rec := &records[i]
		if rec.IsTrashed() || !rec.Type().IsImportable() {
			continue
		}
		c := rec.Type().Category()
		if c == CategoryUnknown || seen[c] {
			continue
		}
		seen[c] = true
		res = append(res, c)
	}
	return res
}

func checkKnownTypes(records []UnifiedRecord) error {
	for i := range records {
		name := typeNameOf(&records[i])
		if _, ok := LookupRecordType(name); !ok {
			return &UnknownRecordTypeError{TypeName: name}
		}
	}
	return nil
}

func typeNameOf(rec *UnifiedRecord) string {
	if rec.TypeName == nil {
		return ""
	}
	return *rec.TypeName
}
