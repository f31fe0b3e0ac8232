package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"autobloggerx/internal/storage"
)

func newShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print the archived copy of a saved website",
		Long: `Show reads websites/<id>.json from the S3 archive and prints it. Only
websites saved while the archive was configured can be shown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.show(cmd.Context(), args[0])
		},
	}
}

func (a *app) show(ctx context.Context, id string) error {
	if err := a.cfg.ValidateArchive(); err != nil {
		return err
	}

	archive, err := storage.New(a.cfg.S3Endpoint, a.cfg.S3Region, a.cfg.S3AccessKey, a.cfg.S3SecretKey, a.cfg.S3Bucket)
	if err != nil {
		return err
	}

	data, err := archive.Get(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "%s\n", data)
	return nil
}
