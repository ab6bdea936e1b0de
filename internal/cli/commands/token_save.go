package commands

import (
	"context"
	"fmt"

	fsrepo "PifKeeper/internal/cli/repo/fs"
	"PifKeeper/internal/config"
)

type tokenSaveCmd struct{}

func (tokenSaveCmd) Name() string { return "token-save" }
func (tokenSaveCmd) Description() string {
	return "Сохранить API-токен сервера (см. server -issue-token)"
}
func (tokenSaveCmd) Usage() string { return "token-save <token>" }

func (tokenSaveCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	if err := (fsrepo.TokenFSStore{Path: cfg.TokenFile}).Save(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "✓ Токен сохранён в %s\n", cfg.TokenFile)
	return nil
}

func init() { RegisterCmd(tokenSaveCmd{}) }
