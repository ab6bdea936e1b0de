package commands

import (
	"context"
	"fmt"

	"PifKeeper/internal/archive"
	fsrepo "PifKeeper/internal/cli/repo/fs"
	"PifKeeper/internal/cli/service"
	"PifKeeper/internal/config"
)

type pushCmd struct{}

func (pushCmd) Name() string { return "push" }
func (pushCmd) Description() string {
	return "Отправить архив 1PIF на сервер для импорта"
}
func (pushCmd) Usage() string { return "push <path>" }

func (pushCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	token, err := fsrepo.TokenFSStore{Path: cfg.TokenFile}.Load()
	if err != nil {
		return fmt.Errorf("нет токена: выполните token-save: %w", err)
	}
	src, err := archive.Load(args[0])
	if err != nil {
		return err
	}
	res, err := service.PushArchive(ctx, cfg.ServerURL, token, src, cfg.StrictTypes)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "✓ Сервер принял импорт %s\n", res.ID)
	fmt.Fprintf(Out, "  записей: %d, групп: %d, в корзине: %d, неподдерживаемых: %d\n",
		res.Imported, res.Groups, res.Trashed, res.Unsupported)
	return nil
}

func init() { RegisterCmd(pushCmd{}) }
