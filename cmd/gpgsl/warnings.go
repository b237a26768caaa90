package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MilosMiki/GPGSL-boosts/internal/cli"
	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

func warningsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "warnings",
		Short: "Manage activity-check warning totals",
		Long: `List and edit per-user warning counts. Warnings escalate to grid penalties
in the lineup table: 10/25/out for teams, 20/40/out for drivers.`,
	}

	cmd.AddCommand(listWarningsCmd())
	cmd.AddCommand(setWarningCmd())

	return cmd
}

func listWarningsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all warning totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			warnings, err := store.ListWarnings(ctx)
			if err != nil {
				return fmt.Errorf("failed to list warnings: %w", err)
			}
			if len(warnings) == 0 {
				fmt.Println(cli.FormatInfo("No warnings recorded."))
				return nil
			}

			rows := make([][]string, 0, len(warnings))
			for _, w := range warnings {
				posted := ""
				if w.NotPosted {
					posted = "not posted"
				}
				rows = append(rows, []string{w.Username, strconv.Itoa(w.Warnings), posted})
			}
			fmt.Println(cli.RenderTable([]string{"User", "Warnings", ""}, rows))
			return nil
		},
	}
}

func setWarningCmd() *cobra.Command {
	var notPosted bool

	cmd := &cobra.Command{
		Use:   "set <username> <count>",
		Short: "Set a user's warning count",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			count, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid warning count %q", args[1])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			warning := &model.WarningTotal{
				Username:  args[0],
				Warnings:  count,
				NotPosted: notPosted,
			}
			if err := store.SaveWarning(ctx, warning); err != nil {
				return fmt.Errorf("failed to save warning: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s now has %d warning(s)", warning.Username, warning.Warnings)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&notPosted, "not-posted", false, "mark the user as not having posted this round")

	return cmd
}
