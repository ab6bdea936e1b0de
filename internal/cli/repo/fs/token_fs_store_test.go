package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTokenFSStore_SaveLoad_TrimsWhitespace(t *testing.T) {
	st := TokenFSStore{Path: filepath.Join(t.TempDir(), "nested", "token")}
	// Сохранение токена (каталог создаётся)
	if err := st.Save("tok-123\n\n"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	// Дозапишем вручную лишние пробелы в конец файла, чтобы проверить trim
	f, _ := os.OpenFile(st.Path, os.O_APPEND|os.O_WRONLY, 0o600)
	_, _ = f.WriteString("  \r\n")
	_ = f.Close()

	tok, err := st.Load()
	if err != nil {
		t.Fatalf("load token: %v", err)
	}
	if tok != "tok-123" {
		t.Fatalf("token not trimmed, got %q", tok)
	}
}

func TestTokenFSStore_Load_MissingOrEmpty(t *testing.T) {
	st := TokenFSStore{Path: filepath.Join(t.TempDir(), "token")}
	// отсутствует файл
	if _, err := st.Load(); err == nil {
		t.Fatalf("expected error for missing token file")
	}
	// пустой файл
	if err := os.WriteFile(st.Path, []byte(" \n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Load(); err == nil {
		t.Fatalf("expected error for empty token file")
	}
}

func TestTokenFSStore_Errors(t *testing.T) {
	if err := (TokenFSStore{}).Save("x"); err == nil {
		t.Fatalf("expected error for empty path")
	}
	if _, err := (TokenFSStore{}).Load(); err == nil {
		t.Fatalf("expected error for empty path")
	}
	if err := (TokenFSStore{Path: filepath.Join(t.TempDir(), "t")}).Save("   "); err == nil {
		t.Fatalf("expected error for blank token")
	}
}
