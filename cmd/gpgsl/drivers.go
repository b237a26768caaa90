package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MilosMiki/GPGSL-boosts/internal/cli"
	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

func driversCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drivers",
		Short: "Manage the driver roster",
		Long:  `List, add, update, and delete the drivers boost messages are matched against.`,
	}

	cmd.AddCommand(listDriversCmd())
	cmd.AddCommand(setDriverCmd())
	cmd.AddCommand(deleteDriverCmd())

	return cmd
}

func listDriversCmd() *cobra.Command {
	var testOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all drivers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			drivers, err := store.ListDrivers(ctx)
			if err != nil {
				return fmt.Errorf("failed to list drivers: %w", err)
			}
			if len(drivers) == 0 {
				fmt.Println(cli.FormatInfo("No drivers found. Use 'gpgsl drivers set' to create one."))
				return nil
			}

			rows := make([][]string, 0, len(drivers))
			for _, driver := range drivers {
				if testOnly && !driver.IsTestDriver() {
					continue
				}
				seat := "race"
				if driver.IsTestDriver() {
					seat = "test"
				}
				rows = append(rows, []string{
					strconv.Itoa(driver.ID),
					driver.Name,
					driver.Username,
					driver.Team,
					seat,
				})
			}
			fmt.Println(cli.RenderTable([]string{"ID", "Name", "User", "Team", "Seat"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&testOnly, "test", false, "only test drivers")

	return cmd
}

func setDriverCmd() *cobra.Command {
	var (
		username string
		team     string
	)

	cmd := &cobra.Command{
		Use:   "set <id> <name>",
		Short: "Add or update a driver",
		Long: `Create or overwrite a driver entry. Driver ids encode the seat: id/100 is
the team number, id%100 the seat (1 and 2 race, 3 and up test).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid driver id %q", args[0])
			}
			if username == "" {
				return fmt.Errorf("--username is required")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			driver := &model.Driver{
				ID:       id,
				Name:     args[1],
				Username: username,
				Team:     team,
			}
			if err := store.SaveDriver(ctx, driver); err != nil {
				return fmt.Errorf("failed to save driver: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Saved driver #%d %s (%s)", driver.ID, driver.Name, driver.Username)))
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "forum username of the driver")
	cmd.Flags().StringVar(&team, "team", "", "team name")

	return cmd
}

func deleteDriverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a driver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid driver id %q", args[0])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteDriver(ctx, id); err != nil {
				return fmt.Errorf("failed to delete driver: %w", err)
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted driver %d", id)))
			return nil
		},
	}
}
