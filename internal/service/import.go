package service

import (
	"context"
	"errors"

	"PifKeeper/internal/model"
	"PifKeeper/internal/onepif"
	"PifKeeper/internal/repo"
	"PifKeeper/internal/vault"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrEmptySubject возвращается для запросов без аутентифицированного субъекта.
var ErrEmptySubject = errors.New("empty subject")

// ImportInput - текст 1PIF и вложения, полученные от клиента.
type ImportInput struct {
	Text        string
	Attachments onepif.AttachmentMap
	Strict      bool
}

// ImportOutcome - результат серверного импорта: дерево и сохранённая запись журнала.
type ImportOutcome struct {
	Log  model.ImportLog
	Root *vault.Node
}

// ImportService конвертирует архивы 1PIF и ведёт журнал импортов.
type ImportService struct {
	repo   repo.ImportLogRepository
	logger *zap.SugaredLogger
}

func NewImportService(r repo.ImportLogRepository, logger *zap.SugaredLogger) *ImportService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ImportService{repo: r, logger: logger}
}

// Import строит дерево из in и записывает сводку в журнал.
// Ошибки разбора (onepif.ErrCouldNotConvertStringToData, *onepif.UnknownRecordTypeError)
// возвращаются как есть, журнал при этом не пишется.
func (s *ImportService) Import(ctx context.Context, subject string, in ImportInput) (*ImportOutcome, error) {
	if subject == "" {
		return nil, ErrEmptySubject
	}
	im := onepif.NewImporter(
		onepif.WithLogger(s.logger.With("subject", subject)),
		onepif.WithStrictTypes(in.Strict),
	)
	res, err := im.Import(in.Text, in.Attachments)
	if err != nil {
		s.logger.Infow("import rejected", "subject", subject, "error", err)
		return nil, err
	}

	// синтетическая группа Database не считается
	groups, _ := res.Root.EffectiveRoot().Count()
	log := model.ImportLog{
		ID:          uuid.NewString(),
		Subject:     subject,
		Strict:      in.Strict,
		Groups:      groups,
		Imported:    res.Imported,
		Trashed:     res.Trashed,
		Unsupported: res.Unsupported,
		Entries:     summarize(res.Root),
	}
	if err := s.repo.Create(ctx, &log); err != nil {
		s.logger.Errorw("failed to save import log", "subject", subject, "error", err)
		return nil, err
	}
	s.logger.Infow("import stored", "subject", subject, "id", log.ID, "imported", log.Imported)
	return &ImportOutcome{Log: log, Root: res.Root}, nil
}

// List возвращает журнал импортов субъекта.
func (s *ImportService) List(ctx context.Context, subject string) ([]model.ImportLog, error) {
	if subject == "" {
		return nil, ErrEmptySubject
	}
	return s.repo.ListBySubject(ctx, subject)
}

// Entries возвращает сводку записей одного импорта субъекта.
func (s *ImportService) Entries(ctx context.Context, subject, id string) ([]model.ImportedEntry, error) {
	if subject == "" {
		return nil, ErrEmptySubject
	}
	return s.repo.GetEntries(ctx, subject, id)
}

// summarize обходит дерево в порядке детей и собирает сводку записей.
func summarize(root *vault.Node) []model.ImportedEntry {
	var out []model.ImportedEntry
	root.Walk(func(n *vault.Node) {
		if n.IsGroup() {
			return
		}
		group := ""
		if p := n.Parent(); p != nil {
			group = p.Title
		}
		out = append(out, model.ImportedEntry{
			Position:    len(out),
			Group:       group,
			Title:       n.Title,
			Username:    n.Fields.Username,
			URL:         n.Fields.URL,
			Attachments: len(n.Fields.Attachments),
		})
	})
	return out
}
