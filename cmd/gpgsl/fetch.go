package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/MilosMiki/GPGSL-boosts/internal/cli"
	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

func fetchCmd() *cobra.Command {
	var withBodies bool

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Refresh the cached message inbox",
		Long: `Scrape the private message inbox into the local cache. With --bodies each
message body is fetched as well, which takes one request per message.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			client := newForumClient()
			session, err := requireSession(ctx, store, client)
			if err != nil {
				return err
			}

			messages, err := client.FetchMessages(ctx, session)
			if err != nil {
				return fmt.Errorf("failed to fetch inbox: %w", err)
			}
			if err := store.SaveMessages(ctx, messages); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Fetched %d messages", len(messages))))

			if !withBodies {
				return nil
			}

			// Body backfill only needs the messages the cache has no body for.
			cached, err := store.ListMessages(ctx)
			if err != nil {
				return err
			}
			var missing []model.RawMessage
			for _, msg := range cached {
				if msg.Body == "" {
					missing = append(missing, msg)
				}
			}
			if len(missing) == 0 {
				fmt.Println(cli.FormatInfo("All message bodies already cached"))
				return nil
			}

			bar := progressbar.NewOptions(len(missing),
				progressbar.OptionSetWriter(os.Stdout),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionShowElapsedTimeOnFinish(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan][bold]Fetching message bodies...[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stdout)
				}),
			)

			for _, msg := range missing {
				if err := ctx.Err(); err != nil {
					return err
				}
				body, err := client.FetchMessageBody(ctx, session, msg.ID)
				if err != nil {
					slog.Warn("failed to fetch message body", "id", msg.ID, "error", err)
					continue
				}
				if err := store.UpdateMessageBody(ctx, msg.ID, body); err != nil {
					return err
				}
				if err := bar.Add(1); err != nil {
					slog.Warn("failed to update progress bar", "error", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&withBodies, "bodies", false, "also fetch each message body")

	return cmd
}
