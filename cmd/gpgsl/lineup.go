package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/MilosMiki/GPGSL-boosts/internal/boost"
	"github.com/MilosMiki/GPGSL-boosts/internal/cli"
	"github.com/MilosMiki/GPGSL-boosts/internal/model"
	"github.com/MilosMiki/GPGSL-boosts/internal/service"
)

func lineupCmd() *cobra.Command {
	var (
		raceOnly     bool
		testOnly     bool
		testFullGrid bool
		viewer       string
		asTSV        bool
	)

	cmd := &cobra.Command{
		Use:   "lineup <race-id>",
		Short: "Run a matching pass and render the lineup",
		Long: `Match the cached inbox against the roster for the given race and print the
posting-ready lineup table. Unmatched and late boosts are listed separately.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			raceID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid race id %q", args[0])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			res, drivers, teams, err := runPass(ctx, store, raceID, viewer)
			if err != nil {
				return err
			}
			warnings, err := store.ListWarnings(ctx)
			if err != nil {
				return err
			}

			opts := boost.LineupOptions{Race: true, Test: true, TestFullGrid: testFullGrid}
			if raceOnly {
				opts.Test = false
			}
			if testOnly {
				opts.Race = false
			}

			rows := boost.BuildLineup(teams, drivers, res, warnings, opts)

			if asTSV {
				fmt.Println(boost.LineupTSV(rows))
				return nil
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Lineup for race %d", raceID)))
			cells := make([][]string, 0, len(rows))
			for _, row := range rows {
				cells = append(cells, []string{row.Entry, row.Boost, row.Warning})
			}
			fmt.Println(cli.RenderTable([]string{"User", "Boosts", "Warning"}, cells))

			printSideTables(res, drivers, teams)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raceOnly, "race-drivers", false, "only race seats")
	cmd.Flags().BoolVar(&testOnly, "test-drivers", false, "only test seats")
	cmd.Flags().BoolVar(&testFullGrid, "test-full-grid", false, "test seats with race drivers filling empty ones")
	cmd.Flags().StringVar(&viewer, "viewer", "", "whose mailbox the messages were read from (default: logged-in user)")
	cmd.Flags().BoolVar(&asTSV, "tsv", false, "print tab-separated output for pasting into a spreadsheet")

	return cmd
}

// runPass loads the stored snapshots and executes one matching pass.
func runPass(ctx context.Context, store service.Storage, raceID int, viewer string) (*boost.Result, []model.Driver, []model.Team, error) {
	race, err := store.GetRace(ctx, raceID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("race %d not found: %w", raceID, err)
	}
	drivers, err := store.ListDrivers(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	teams, err := store.ListTeams(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	overrides, err := store.GetOverrides(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	messages, err := store.ListMessages(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	if viewer == "" {
		if session, sessionErr := store.GetSession(ctx); sessionErr == nil {
			viewer = session.Username
		}
	}

	res := boost.Run(boost.Input{
		Overrides: overrides,
		Messages:  messages,
		Drivers:   drivers,
		Teams:     teams,
		Race:      *race,
		Viewer:    model.Viewer{Username: viewer},
		Now:       time.Now(),
	})
	return res, drivers, teams, nil
}

func printSideTables(res *boost.Result, drivers []model.Driver, teams []model.Team) {
	if len(res.Unmatched) > 0 {
		fmt.Println()
		fmt.Println(cli.FormatTitle("Unmatched boosts"))
		for _, u := range res.Unmatched {
			fmt.Println(cli.FormatError(fmt.Sprintf("%s  (%s, %s)", u.Title, u.Sender, u.Date)))
			fmt.Println("  " + cli.SubtleStyle.Render(u.Reason))
			if suggestion := boost.SuggestTitle(u.Title, u.Sender, drivers, teams); suggestion != "" && suggestion != u.Title {
				fmt.Println("  suggested: " + cli.InfoStyle.Render(suggestion))
			}
		}
	}

	if len(res.DeadlineViolations) > 0 {
		fmt.Println()
		fmt.Println(cli.FormatTitle("Past the deadline"))
		for _, r := range res.DeadlineViolations {
			fmt.Println(cli.FormatWarning(fmt.Sprintf("%s  (%s, %s)", r.Title, r.Sender, r.Date)))
		}
	}

	if len(res.Other) > 0 {
		fmt.Println()
		fmt.Println(cli.FormatTitle("Other messages"))
		for _, r := range res.Other {
			fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%s  (%s, %s)", r.Title, r.Sender, r.Date)))
		}
	}

	if len(res.Failures) > 0 {
		fmt.Println()
		for _, f := range res.Failures {
			fmt.Println(cli.FormatWarning(fmt.Sprintf("message %s: unreadable date %q", f.MessageID, f.Date)))
		}
	}
}
