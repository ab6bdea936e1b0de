package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"PifKeeper/internal/cli/crypto"
	"PifKeeper/internal/cli/model"
	view "PifKeeper/internal/cli/model/view"
	"PifKeeper/internal/cli/repo"
	"PifKeeper/internal/vault"

	"github.com/google/uuid"
)

const decryptError = "<decrypt error>"

// VaultServiceLocal - локальная реализация VaultService.
// Пароли, защищённые поля и вложения шифруются ключом key перед записью в репозиторий.
type VaultServiceLocal struct {
	repo repo.VaultRepository
	key  []byte
	now  func() time.Time
}

// NewVaultServiceLocal создаёт сервис поверх репозитория и ключа локального хранилища.
func NewVaultServiceLocal(r repo.VaultRepository, key []byte) *VaultServiceLocal {
	return &VaultServiceLocal{repo: r, key: key, now: time.Now}
}

var _ VaultService = (*VaultServiceLocal)(nil)

// Import раскладывает дерево в плоские строки групп и записей, шифрует секреты
// и сохраняет всё одной транзакцией. Синтетический корень не сохраняется.
func (s *VaultServiceLocal) Import(ctx context.Context, source string, root *vault.Node) (model.Import, error) {
	if root == nil {
		return model.Import{}, errors.New("nil tree")
	}
	imp := model.Import{
		ID:        uuid.NewString(),
		Source:    source,
		CreatedAt: s.now().Unix(),
	}

	var (
		groups  []model.Group
		entries []model.Entry
	)
	var visit func(n *vault.Node, parentID string, position int) error
	visit = func(n *vault.Node, parentID string, position int) error {
		if !n.IsGroup() {
			e, err := s.sealEntry(n, imp.ID, parentID, position)
			if err != nil {
				return err
			}
			e.Seq = len(entries)
			entries = append(entries, e)
			return nil
		}
		g := model.Group{
			ID:       n.ID.String(),
			ImportID: imp.ID,
			ParentID: parentID,
			Title:    n.Title,
			Icon:     int(n.Icon),
			Position: position,
		}
		groups = append(groups, g)
		for i, c := range n.Children {
			if err := visit(c, g.ID, i); err != nil {
				return err
			}
		}
		return nil
	}
	for i, top := range root.ChildGroups() {
		if err := visit(top, "", i); err != nil {
			return model.Import{}, err
		}
	}

	imp.Groups, imp.Entries = len(groups), len(entries)
	if err := s.repo.SaveImport(ctx, imp, groups, entries); err != nil {
		return model.Import{}, err
	}
	return imp, nil
}

func (s *VaultServiceLocal) sealEntry(n *vault.Node, importID, groupID string, position int) (model.Entry, error) {
	f := n.Fields
	e := model.Entry{
		ID:         n.ID.String(),
		ImportID:   importID,
		GroupID:    groupID,
		Title:      n.Title,
		Icon:       int(n.Icon),
		Username:   f.Username,
		URL:        f.URL,
		Email:      f.Email,
		Notes:      f.Notes,
		Tags:       strings.Join(f.Tags, ","),
		CreatedAt:  unixOrZero(f.Created),
		ModifiedAt: unixOrZero(f.Modified),
		Position:   position,
	}
	if f.Password != "" {
		c, nonce, err := crypto.Encrypt([]byte(f.Password), s.key)
		if err != nil {
			return model.Entry{}, err
		}
		e.PasswordCipher, e.PasswordNonce = c, nonce
	}
	for _, cf := range f.CustomFields {
		mcf := model.CustomField{Name: cf.Key, Protected: cf.Protected}
		if cf.Protected {
			c, nonce, err := crypto.Encrypt([]byte(cf.Value), s.key)
			if err != nil {
				return model.Entry{}, err
			}
			mcf.ValueCipher, mcf.ValueNonce = c, nonce
		} else {
			mcf.Value = cf.Value
		}
		e.CustomFields = append(e.CustomFields, mcf)
	}
	names := make([]string, 0, len(f.Attachments))
	for name := range f.Attachments {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		a := f.Attachments[name]
		data, err := a.Data()
		if err != nil {
			return model.Entry{}, err
		}
		c, nonce, err := crypto.Encrypt(data, s.key)
		if err != nil {
			return model.Entry{}, err
		}
		e.Attachments = append(e.Attachments, model.Attachment{
			FileName: name,
			Size:     int64(a.Length()),
			Digest:   a.Digest(),
			Cipher:   c,
			Nonce:    nonce,
		})
	}
	return e, nil
}

// List возвращает список всех записей.
func (s *VaultServiceLocal) List(ctx context.Context) ([]model.Entry, error) {
	return s.repo.ListEntries(ctx)
}

// Get возвращает DTO с расшифрованными полями. Ошибка расшифровки отдельного
// поля не прерывает чтение: значение заменяется на "<decrypt error>".
func (s *VaultServiceLocal) Get(ctx context.Context, id string) (*view.DecryptedEntry, error) {
	e, err := s.repo.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := &view.DecryptedEntry{
		ID:         e.ID,
		Group:      e.GroupTitle,
		Title:      e.Title,
		Username:   e.Username,
		URL:        e.URL,
		Email:      e.Email,
		Notes:      e.Notes,
		Tags:       e.Tags,
		CreatedAt:  e.CreatedAt,
		ModifiedAt: e.ModifiedAt,
	}
	if len(e.PasswordCipher) > 0 {
		dto.Password = s.open(e.PasswordCipher, e.PasswordNonce)
	}
	for _, cf := range e.CustomFields {
		value := cf.Value
		if cf.Protected {
			value = s.open(cf.ValueCipher, cf.ValueNonce)
		}
		dto.CustomFields = append(dto.CustomFields, view.Field{Name: cf.Name, Value: value, Protected: cf.Protected})
	}
	for _, a := range e.Attachments {
		dto.Attachments = append(dto.Attachments, view.AttachmentInfo{FileName: a.FileName, Size: a.Size, Digest: a.Digest})
	}
	return dto, nil
}

func (s *VaultServiceLocal) open(cipher, nonce []byte) string {
	plain, err := crypto.Decrypt(cipher, nonce, s.key)
	if err != nil {
		return decryptError
	}
	return string(plain)
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
