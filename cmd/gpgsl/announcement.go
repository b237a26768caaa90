package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MilosMiki/GPGSL-boosts/internal/cli"
	"github.com/MilosMiki/GPGSL-boosts/internal/common"
)

func announcementCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "announcement",
		Short: "Show the currently open boost window",
		Long:  `Scrape the league account's recent forum posts for the latest boost announcement.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client := newForumClient()
			announcement, err := client.FindAnnouncement(ctx)
			if err != nil {
				if errors.Is(err, common.ErrNoAnnouncement) {
					fmt.Println(cli.FormatInfo("No open boost window found"))
					return nil
				}
				return fmt.Errorf("failed to check announcements: %w", err)
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Next Boost: Round %d - %s", announcement.Round, announcement.Venue)))
			return nil
		},
	}
}
