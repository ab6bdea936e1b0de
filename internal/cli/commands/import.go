package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"PifKeeper/internal/cli/bootstrap"
	"PifKeeper/internal/config"
)

type importCmd struct{}

func (importCmd) Name() string { return "import" }
func (importCmd) Description() string {
	return "Импортировать архив 1PIF (файл или каталог) в локальное хранилище"
}
func (importCmd) Usage() string { return "import <path>" }

func (importCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	path := args[0]
	res, err := bootstrap.NewImporter(cfg).ConvertPath(path)
	if err != nil {
		return err
	}

	svc, done, err := bootstrap.OpenVault(cfg)
	if err != nil {
		return err
	}
	defer done()

	source := path
	if abs, err := filepath.Abs(path); err == nil {
		source = abs
	}
	imp, err := svc.Import(ctx, source, res.Root)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "✓ Импорт %s\n", imp.ID)
	groups, _ := res.Root.EffectiveRoot().Count()
	fmt.Fprintf(Out, "  записей: %d, групп: %d\n", res.Imported, groups)
	if res.Trashed > 0 || res.Unsupported > 0 {
		fmt.Fprintf(Out, "  пропущено: в корзине %d, неподдерживаемых %d\n", res.Trashed, res.Unsupported)
	}
	return nil
}

func init() { RegisterCmd(importCmd{}) }
