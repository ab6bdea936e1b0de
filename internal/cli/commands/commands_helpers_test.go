package commands

import (
	"os"
	"path/filepath"
	"testing"

	"PifKeeper/internal/config"
	"PifKeeper/internal/onepif"
)

// tempConfig возвращает конфигурацию, у которой хранилище и токен лежат во временном каталоге.
func tempConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		ClientDBPath: filepath.Join(dir, "vault"),
		TokenFile:    filepath.Join(dir, "token"),
	}
}

// writeArchive создаёт каталог-архив 1PIF с одной записью-логином и вложением.
func writeArchive(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "export.1pif")
	text := `{"uuid":"U1","typeName":"webforms.WebForm","title":"Mail",` +
		`"secureContents":{"fields":[{"designation":"username","value":"alice"},{"designation":"password","value":"pw1"}]}}` +
		"\n" + onepif.MagicSplitter + "\n" +
		`{"uuid":"U2","typeName":"securenotes.SecureNote","title":"Note","secureContents":{"notesPlain":"hello"}}` +
		"\n" + onepif.MagicSplitter + "\n" +
		`{"uuid":"U3","typeName":"webforms.WebForm","title":"Old","trashed":true}`
	if err := os.MkdirAll(filepath.Join(dir, "attachments", "U1"), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "data.1pif"), []byte(text), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "attachments", "U1", "key.txt"), []byte("KEY"), 0o600); err != nil {
		t.Fatal(err)
	}
	return dir
}
