package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"PifKeeper/internal/cli/bootstrap"
	"PifKeeper/internal/config"
	"PifKeeper/internal/vault"
)

type treeCmd struct{}

func (treeCmd) Name() string { return "tree" }
func (treeCmd) Description() string {
	return "Показать дерево групп и записей архива без сохранения"
}
func (treeCmd) Usage() string { return "tree <path>" }

func (treeCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	res, err := bootstrap.NewImporter(cfg).ConvertPath(args[0])
	if err != nil {
		return err
	}
	for _, top := range res.Root.ChildGroups() {
		printNode(Out, top, 0)
	}
	groups, entries := res.Root.EffectiveRoot().Count()
	fmt.Fprintf(Out, "Групп: %d, записей: %d\n", groups, entries)
	return nil
}

// printNode печатает узел и его потомков с отступом по глубине.
func printNode(w io.Writer, n *vault.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n.IsGroup() {
		fmt.Fprintf(w, "%s[%s]\n", indent, n.Title)
		for _, c := range n.Children {
			printNode(w, c, depth+1)
		}
		return
	}
	line := indent + "- " + n.Title
	if n.Fields.Username != "" {
		line += " (" + n.Fields.Username + ")"
	}
	if k := len(n.Fields.Attachments); k > 0 {
		line += fmt.Sprintf(" +%d attachment(s)", k)
	}
	fmt.Fprintln(w, line)
}

func init() { RegisterCmd(treeCmd{}) }
