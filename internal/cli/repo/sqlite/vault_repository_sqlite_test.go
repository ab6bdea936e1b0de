package sqlite

import (
	"context"
	"errors"
	"os"
	"testing"

	cmodel "PifKeeper/internal/cli/model"
)

// openTemp открывает мигрированную БД во временном каталоге.
func openTemp(t *testing.T) *VaultRepositorySQLite {
	t.Helper()
	r, dbPath, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	if err := r.Migrate(); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("db file not created: %v", err)
	}
	return r
}

func sampleImport() (cmodel.Import, []cmodel.Group, []cmodel.Entry) {
	imp := cmodel.Import{ID: "imp1", Source: "/tmp/a.1pif", CreatedAt: 100, Groups: 2, Entries: 2}
	groups := []cmodel.Group{
		{ID: "g-root", Title: "Database", Icon: 48},
		{ID: "g-logins", ParentID: "g-root", Title: "Logins", Icon: 1},
	}
	entries := []cmodel.Entry{
		{
			ID: "e2", GroupID: "g-logins", Title: "Second", Position: 1, Seq: 1,
		},
		{
			ID: "e1", GroupID: "g-logins", Title: "First", Username: "alice", URL: "https://a",
			Email: "a@x", Notes: "n", Tags: "t1,t2", CreatedAt: 10, ModifiedAt: 20,
			PasswordCipher: []byte{1, 2}, PasswordNonce: []byte{3},
			CustomFields: []cmodel.CustomField{
				{Name: "PIN", ValueCipher: []byte{9}, ValueNonce: []byte{8}, Protected: true},
				{Name: "Hint", Value: "pet"},
			},
			Attachments: []cmodel.Attachment{
				{FileName: "b.txt", Size: 1, Digest: "d2", Cipher: []byte{5}, Nonce: []byte{6}},
				{FileName: "a.txt", Size: 2, Digest: "d1", Cipher: []byte{7}, Nonce: []byte{8}},
			},
		},
	}
	return imp, groups, entries
}

func TestOpen_EmptyDir(t *testing.T) {
	if _, _, err := Open(""); err == nil {
		t.Fatalf("expected error for empty dir")
	}
}

func TestSaveImport_ThenListAndGet(t *testing.T) {
	r := openTemp(t)
	ctx := context.Background()

	// пустая БД → списки пусты
	list, err := r.ListEntries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}

	imp, groups, entries := sampleImport()
	if err := r.SaveImport(ctx, imp, groups, entries); err != nil {
		t.Fatalf("SaveImport: %v", err)
	}

	imps, err := r.ListImports(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(imps) != 1 || imps[0] != imp {
		t.Fatalf("unexpected imports: %+v", imps)
	}

	list, err = r.ListEntries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].ID != "e1" || list[1].ID != "e2" {
		t.Fatalf("unexpected order: %+v", list)
	}
	if list[0].GroupTitle != "Logins" || list[0].ImportID != "imp1" || list[0].Username != "alice" {
		t.Fatalf("unexpected entry: %+v", list[0])
	}

	got, err := r.GetEntry(ctx, "e1")
	if err != nil {
		t.Fatalf("GetEntry: %v", err)
	}
	if got.Email != "a@x" || got.Tags != "t1,t2" || got.CreatedAt != 10 || got.ModifiedAt != 20 {
		t.Fatalf("fields not saved: %+v", got)
	}
	if len(got.PasswordCipher) != 2 || len(got.PasswordNonce) != 1 {
		t.Fatalf("password cipher not saved: %+v", got)
	}
	if len(got.CustomFields) != 2 || got.CustomFields[0].Name != "PIN" || !got.CustomFields[0].Protected ||
		got.CustomFields[1].Value != "pet" || got.CustomFields[1].Protected {
		t.Fatalf("custom fields: %+v", got.CustomFields)
	}
	if len(got.Attachments) != 2 || got.Attachments[0].FileName != "a.txt" || got.Attachments[1].Digest != "d2" {
		t.Fatalf("attachments: %+v", got.Attachments)
	}

	// запись без секретов
	second, err := r.GetEntry(ctx, "e2")
	if err != nil {
		t.Fatal(err)
	}
	if second.Username != "" || len(second.PasswordCipher) != 0 || len(second.CustomFields) != 0 {
		t.Fatalf("unexpected second entry: %+v", second)
	}
}

func TestGetEntry_NotFound(t *testing.T) {
	r := openTemp(t)
	_, err := r.GetEntry(context.Background(), "nope")
	if !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestSaveImport_RollbackOnError(t *testing.T) {
	r := openTemp(t)
	ctx := context.Background()

	if err := r.SaveImport(ctx, cmodel.Import{}, nil, nil); err == nil {
		t.Fatalf("expected error for empty import id")
	}

	imp, groups, entries := sampleImport()
	// ссылка на несуществующую группу нарушает внешний ключ
	entries[0].GroupID = "missing"
	if err := r.SaveImport(ctx, imp, groups, entries); err == nil {
		t.Fatalf("expected foreign key error")
	}
	imps, err := r.ListImports(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(imps) != 0 {
		t.Fatalf("transaction was not rolled back: %+v", imps)
	}

	// повторная вставка того же импорта после отката проходит
	_, groups, entries = sampleImport()
	if err := r.SaveImport(ctx, imp, groups, entries); err != nil {
		t.Fatalf("SaveImport after rollback: %v", err)
	}
	if err := r.SaveImport(ctx, imp, groups, entries); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestListEntries_KeepsTreeOrderAcrossRootAndCategories(t *testing.T) {
	r := openTemp(t)
	ctx := context.Background()

	// Database: [Logins: L1, L2, L3], X1. Запись X1 лежит прямо в корне
	imp := cmodel.Import{ID: "imp1", Source: "a.1pif", CreatedAt: 1, Groups: 2, Entries: 4}
	groups := []cmodel.Group{
		{ID: "g-root", Title: "Database"},
		{ID: "g-logins", ParentID: "g-root", Title: "Logins", Position: 0},
	}
	entries := []cmodel.Entry{
		{ID: "l3", GroupID: "g-logins", Title: "L3", Position: 2, Seq: 2},
		{ID: "x1", GroupID: "g-root", Title: "X1", Position: 1, Seq: 3},
		{ID: "l1", GroupID: "g-logins", Title: "L1", Position: 0, Seq: 0},
		{ID: "l2", GroupID: "g-logins", Title: "L2", Position: 1, Seq: 1},
	}
	if err := r.SaveImport(ctx, imp, groups, entries); err != nil {
		t.Fatalf("SaveImport: %v", err)
	}

	list, err := r.ListEntries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, e := range list {
		got = append(got, e.GroupTitle+"/"+e.Title)
	}
	want := []string{"Logins/L1", "Logins/L2", "Logins/L3", "Database/X1"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
