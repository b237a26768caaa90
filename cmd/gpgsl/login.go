package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MilosMiki/GPGSL-boosts/internal/cli"
)

func loginCmd() *cobra.Command {
	var (
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log into the forum and save the session",
		Long: `Authenticate against grandprixgames.org, store the session cookie locally,
and cache the current private message inbox.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if username == "" {
				username = viper.GetString("forum.username")
			}
			prompter := cli.NewPrompter(os.Stdin, os.Stdout)
			if username == "" {
				var err error
				username, err = prompter.Ask(ctx, "Forum username", "")
				if err != nil {
					return err
				}
			}
			if password == "" {
				password = viper.GetString("forum.password")
			}
			if password == "" {
				var err error
				password, err = prompter.Ask(ctx, "Forum password", "")
				if err != nil {
					return err
				}
			}
			if username == "" || password == "" {
				return fmt.Errorf("username and password are required")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			client := newForumClient()
			session, err := client.Login(ctx, username, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			if err := store.SaveSession(ctx, session); err != nil {
				return err
			}

			messages, err := client.FetchMessages(ctx, session)
			if err != nil {
				return fmt.Errorf("failed to fetch inbox: %w", err)
			}
			if err := store.SaveMessages(ctx, messages); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Logged in as %s, cached %d messages", session.Username, len(messages))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "forum username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "forum password")

	return cmd
}
