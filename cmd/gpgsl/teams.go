package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MilosMiki/GPGSL-boosts/internal/cli"
	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

func teamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Manage the team roster",
		Long:  `List, add, update, and delete the teams boost messages are matched against.`,
	}

	cmd.AddCommand(listTeamsCmd())
	cmd.AddCommand(setTeamCmd())
	cmd.AddCommand(deleteTeamCmd())

	return cmd
}

func listTeamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all teams",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			teams, err := store.ListTeams(ctx)
			if err != nil {
				return fmt.Errorf("failed to list teams: %w", err)
			}
			if len(teams) == 0 {
				fmt.Println(cli.FormatInfo("No teams found. Use 'gpgsl teams set' to create one."))
				return nil
			}

			rows := make([][]string, 0, len(teams))
			for _, team := range teams {
				rows = append(rows, []string{
					strconv.Itoa(team.ID),
					team.Name,
					team.Username,
					team.Short1,
					team.Short2,
				})
			}
			fmt.Println(cli.RenderTable([]string{"ID", "Name", "Owner", "Short1", "Short2"}, rows))
			return nil
		},
	}
}

func setTeamCmd() *cobra.Command {
	var (
		username string
		short1   string
		short2   string
	)

	cmd := &cobra.Command{
		Use:   "set <id> <name>",
		Short: "Add or update a team",
		Long: `Create or overwrite a team entry. Team ids are multiples of 100; the team's
grid number is id/100.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid team id %q", args[0])
			}
			if username == "" {
				return fmt.Errorf("--username is required")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			team := &model.Team{
				ID:       id,
				Name:     args[1],
				Username: username,
				Short1:   short1,
				Short2:   short2,
			}
			if err := store.SaveTeam(ctx, team); err != nil {
				return fmt.Errorf("failed to save team: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Saved team %d. %s (%s)", team.Number(), team.Name, team.Username)))
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "forum username of the team owner")
	cmd.Flags().StringVar(&short1, "short1", "", "alternate team name accepted in titles")
	cmd.Flags().StringVar(&short2, "short2", "", "second alternate team name")

	return cmd
}

func deleteTeamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid team id %q", args[0])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteTeam(ctx, id); err != nil {
				return fmt.Errorf("failed to delete team: %w", err)
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted team %d", id)))
			return nil
		},
	}
}
