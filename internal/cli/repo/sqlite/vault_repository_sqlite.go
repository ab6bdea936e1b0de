package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"PifKeeper/internal/cli/model"
	"PifKeeper/internal/cli/repo"

	_ "modernc.org/sqlite"
)

// DBFileName - имя файла локальной БД внутри каталога хранилища.
const DBFileName = "vault.sqlite"

// ErrEntryNotFound возвращается GetEntry для неизвестного id.
var ErrEntryNotFound = errors.New("entry not found")

// VaultRepositorySQLite - репозиторий импортированных записей (локальная БД SQLite).
type VaultRepositorySQLite struct {
	db *sql.DB
}

var _ repo.VaultRepository = (*VaultRepositorySQLite)(nil)

// Open открывает (и создаёт при необходимости) файл БД в каталоге dir.
// Вторым значением возвращается путь к БД.
func Open(dir string) (*VaultRepositorySQLite, string, error) {
	if dir == "" {
		return nil, "", errors.New("empty vault dir")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, "", err
	}
	dbPath := filepath.Join(dir, DBFileName)
	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, "", err
	}
	return &VaultRepositorySQLite{db: db}, dbPath, nil
}

// Close закрывает соединение с БД.
func (r *VaultRepositorySQLite) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Migrate гарантирует наличие необходимых таблиц/индексов.
func (r *VaultRepositorySQLite) Migrate() error {
	_, err := r.db.Exec(initialDDL())
	return err
}

// SaveImport сохраняет импорт, группы (родители раньше потомков) и записи в одной транзакции.
func (r *VaultRepositorySQLite) SaveImport(ctx context.Context, imp model.Import, groups []model.Group, entries []model.Entry) error {
	if imp.ID == "" {
		return errors.New("empty import id")
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		// в случае ошибки или некоммита - откат
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `INSERT INTO imports(id, source, created_at, groups_count, entries_count)
        VALUES(?, ?, ?, ?, ?)`, imp.ID, imp.Source, imp.CreatedAt, imp.Groups, imp.Entries); err != nil {
		return fmt.Errorf("insert import: %w", err)
	}

	for _, g := range groups {
		if _, err := tx.ExecContext(ctx, `INSERT INTO vault_groups(id, import_id, parent_id, title, icon, position)
            VALUES(?, ?, ?, ?, ?, ?)`, g.ID, imp.ID, nullable(g.ParentID), g.Title, g.Icon, g.Position); err != nil {
			return fmt.Errorf("insert group %q: %w", g.Title, err)
		}
	}

	for _, e := range entries {
		if _, err := tx.ExecContext(ctx, `INSERT INTO entries(
            id, import_id, group_id, title, icon, username, url, email, notes, tags,
            created_at, modified_at, position, seq, password_cipher, password_nonce
        ) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, imp.ID, e.GroupID, e.Title, e.Icon, e.Username, e.URL, e.Email, e.Notes, e.Tags,
			e.CreatedAt, e.ModifiedAt, e.Position, e.Seq, e.PasswordCipher, e.PasswordNonce,
		); err != nil {
			return fmt.Errorf("insert entry %q: %w", e.Title, err)
		}
		for i, cf := range e.CustomFields {
			if _, err := tx.ExecContext(ctx, `INSERT INTO custom_fields(entry_id, position, name, value, value_cipher, value_nonce, protected)
                VALUES(?, ?, ?, ?, ?, ?, ?)`,
				e.ID, i, cf.Name, cf.Value, cf.ValueCipher, cf.ValueNonce, boolToInt(cf.Protected)); err != nil {
				return fmt.Errorf("insert custom field %q: %w", cf.Name, err)
			}
		}
		for _, a := range e.Attachments {
			if _, err := tx.ExecContext(ctx, `INSERT INTO attachments(entry_id, file_name, size, digest, cipher, nonce)
                VALUES(?, ?, ?, ?, ?, ?)`, e.ID, a.FileName, a.Size, a.Digest, a.Cipher, a.Nonce); err != nil {
				return fmt.Errorf("insert attachment %q: %w", a.FileName, err)
			}
		}
	}
	return tx.Commit()
}

// ListImports возвращает все импорты, отсортированные по created_at DESC.
func (r *VaultRepositorySQLite) ListImports(ctx context.Context) ([]model.Import, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, source, created_at, groups_count, entries_count
        FROM imports ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []model.Import
	for rows.Next() {
		var imp model.Import
		if err := rows.Scan(&imp.ID, &imp.Source, &imp.CreatedAt, &imp.Groups, &imp.Entries); err != nil {
			return nil, err
		}
		res = append(res, imp)
	}
	return res, rows.Err()
}

// ListEntries возвращает записи каждого импорта в порядке обхода дерева (seq).
func (r *VaultRepositorySQLite) ListEntries(ctx context.Context) ([]model.Entry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT e.id, e.import_id, e.group_id, g.title, e.title, e.icon,
        IFNULL(e.username, ''), IFNULL(e.url, ''), e.position, e.seq
        FROM entries e JOIN vault_groups g ON g.id = e.group_id
        ORDER BY e.import_id, e.seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []model.Entry
	for rows.Next() {
		var e model.Entry
		if err := rows.Scan(&e.ID, &e.ImportID, &e.GroupID, &e.GroupTitle, &e.Title, &e.Icon,
			&e.Username, &e.URL, &e.Position, &e.Seq); err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}

// GetEntry возвращает запись по id вместе с пользовательскими полями и вложениями.
func (r *VaultRepositorySQLite) GetEntry(ctx context.Context, id string) (*model.Entry, error) {
	var e model.Entry
	err := r.db.QueryRowContext(ctx, `SELECT e.id, e.import_id, e.group_id, g.title, e.title, e.icon,
        IFNULL(e.username, ''), IFNULL(e.url, ''), IFNULL(e.email, ''), IFNULL(e.notes, ''), IFNULL(e.tags, ''),
        e.created_at, e.modified_at, e.position, e.seq, e.password_cipher, e.password_nonce
        FROM entries e JOIN vault_groups g ON g.id = e.group_id WHERE e.id = ?`, id).
		Scan(&e.ID, &e.ImportID, &e.GroupID, &e.GroupTitle, &e.Title, &e.Icon,
			&e.Username, &e.URL, &e.Email, &e.Notes, &e.Tags,
			&e.CreatedAt, &e.ModifiedAt, &e.Position, &e.Seq, &e.PasswordCipher, &e.PasswordNonce)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
		}
		return nil, err
	}

	fields, err := r.db.QueryContext(ctx, `SELECT name, IFNULL(value, ''), value_cipher, value_nonce, protected
        FROM custom_fields WHERE entry_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer fields.Close()
	for fields.Next() {
		var cf model.CustomField
		var protInt int
		if err := fields.Scan(&cf.Name, &cf.Value, &cf.ValueCipher, &cf.ValueNonce, &protInt); err != nil {
			return nil, err
		}
		cf.Protected = protInt != 0
		e.CustomFields = append(e.CustomFields, cf)
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	atts, err := r.db.QueryContext(ctx, `SELECT file_name, size, digest, cipher, nonce
        FROM attachments WHERE entry_id = ? ORDER BY file_name`, id)
	if err != nil {
		return nil, err
	}
	defer atts.Close()
	for atts.Next() {
		var a model.Attachment
		if err := atts.Scan(&a.FileName, &a.Size, &a.Digest, &a.Cipher, &a.Nonce); err != nil {
			return nil, err
		}
		e.Attachments = append(e.Attachments, a)
	}
	return &e, atts.Err()
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
