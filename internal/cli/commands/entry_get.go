package commands

import (
	"context"
	"fmt"
	"time"

	"PifKeeper/internal/cli/bootstrap"
	"PifKeeper/internal/config"
)

type entryGetCmd struct{}

func (entryGetCmd) Name() string { return "entry-get" }
func (entryGetCmd) Description() string {
	return "Показать запись по id с расшифрованными полями"
}
func (entryGetCmd) Usage() string { return "entry-get <id>" }

func (entryGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	svc, done, err := bootstrap.OpenVault(cfg)
	if err != nil {
		return err
	}
	defer done()
	e, err := svc.Get(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "id:        %s\n", e.ID)
	fmt.Fprintf(Out, "group:     %s\n", e.Group)
	fmt.Fprintf(Out, "title:     %s\n", e.Title)
	fmt.Fprintf(Out, "username:  %s\n", e.Username)
	fmt.Fprintf(Out, "password:  %s\n", e.Password)
	fmt.Fprintf(Out, "url:       %s\n", e.URL)
	fmt.Fprintf(Out, "email:     %s\n", e.Email)
	fmt.Fprintf(Out, "tags:      %s\n", e.Tags)
	fmt.Fprintf(Out, "created:   %s\n", formatUnix(e.CreatedAt))
	fmt.Fprintf(Out, "modified:  %s\n", formatUnix(e.ModifiedAt))
	if e.Notes != "" {
		fmt.Fprintf(Out, "notes:\n%s\n", e.Notes)
	}
	for _, f := range e.CustomFields {
		mark := ""
		if f.Protected {
			mark = " (protected)"
		}
		fmt.Fprintf(Out, "field:     %s = %s%s\n", f.Name, f.Value, mark)
	}
	for _, a := range e.Attachments {
		fmt.Fprintf(Out, "file:      %s (%d bytes, sha256 %s)\n", a.FileName, a.Size, a.Digest)
	}
	return nil
}

func formatUnix(sec int64) string {
	if sec == 0 {
		return "-"
	}
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}

func init() { RegisterCmd(entryGetCmd{}) }
