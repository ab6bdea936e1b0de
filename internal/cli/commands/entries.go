package commands

import (
	"context"
	"fmt"

	"PifKeeper/internal/cli/bootstrap"
	"PifKeeper/internal/config"
)

type entriesCmd struct{}

func (entriesCmd) Name() string { return "entries" }
func (entriesCmd) Description() string {
	return "Показать все записи локального хранилища"
}
func (entriesCmd) Usage() string { return "entries" }

func (entriesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	svc, done, err := bootstrap.OpenVault(cfg)
	if err != nil {
		return err
	}
	defer done()
	list, err := svc.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return nil
	}
	for _, e := range list {
		user := ""
		if e.Username != "" {
			user = "  user=" + e.Username
		}
		fmt.Fprintf(Out, "- %s  [%s] %s%s\n", e.ID, e.GroupTitle, e.Title, user)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(entriesCmd{}) }
