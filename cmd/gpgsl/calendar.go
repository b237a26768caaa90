package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/MilosMiki/GPGSL-boosts/internal/cli"
	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

func calendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Manage the race calendar",
		Long: `List and edit the season's races. The venue, track and country strings are
what boost titles must contain to count for a race.`,
	}

	cmd.AddCommand(listRacesCmd())
	cmd.AddCommand(setRaceCmd())

	return cmd
}

func listRacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all races",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			races, err := store.ListRaces(ctx)
			if err != nil {
				return fmt.Errorf("failed to list races: %w", err)
			}
			if len(races) == 0 {
				fmt.Println(cli.FormatInfo("No races found. Use 'gpgsl calendar set' to create one."))
				return nil
			}

			rows := make([][]string, 0, len(races))
			for _, race := range races {
				rows = append(rows, []string{
					strconv.Itoa(race.ID),
					race.Venue,
					race.Track,
					race.Country,
					race.Deadline().Format("02.01.2006 15:04"),
				})
			}
			fmt.Println(cli.RenderTable([]string{"ID", "Venue", "Track", "Country", "Deadline"}, rows))
			return nil
		},
	}
}

func setRaceCmd() *cobra.Command {
	var (
		date    string
		track   string
		country string
	)

	cmd := &cobra.Command{
		Use:   "set <id> <venue>",
		Short: "Add or update a race",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid race id %q", args[0])
			}
			raceDate, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("invalid --date, want YYYY-MM-DD: %w", err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			race := &model.Race{
				ID:      id,
				Venue:   args[1],
				Track:   track,
				Country: country,
				Date:    raceDate,
			}
			if err := store.SaveRace(ctx, race); err != nil {
				return fmt.Errorf("failed to save race: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Saved race %d: %s, boost deadline %s",
				race.ID, race.Venue, race.Deadline().Format("02.01.2006 15:04"))))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "race day (YYYY-MM-DD); the boost deadline is 20:00 that day")
	cmd.Flags().StringVar(&track, "track", "", "track name")
	cmd.Flags().StringVar(&country, "country", "", "country")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
