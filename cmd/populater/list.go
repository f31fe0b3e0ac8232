package main

import (
	"context"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"autobloggerx/internal/models"
)

func newListCommand(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored websites, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.list(cmd.Context(), limit)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of websites to show (0 for all)")
	return cmd
}

func (a *app) list(ctx context.Context, limit int) error {
	if err := a.cfg.ValidateStore(); err != nil {
		return err
	}

	websites, closeStore, err := openStore(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	rows, err := websites.List(ctx, limit)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		slog.Info("no websites stored")
		return nil
	}

	a.renderTable(rows)
	return nil
}

// renderTable writes rows to stdout as a table.
func (a *app) renderTable(rows []models.WebsiteSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(a.stdout)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"ID", "Host", "Name", "Topic", "Primary", "Background", "Text", "Fonts", "Created"})
	for _, w := range rows {
		t.AppendRow(table.Row{
			w.ID,
			w.HostName,
			w.WebsiteName,
			w.Topic,
			w.PrimaryColor,
			w.BackgroundColor,
			w.TextColor,
			w.FontHeading + " / " + w.FontBody,
			w.CreatedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	t.Render()
}
