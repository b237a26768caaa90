package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MilosMiki/GPGSL-boosts/internal/boost"
	"github.com/MilosMiki/GPGSL-boosts/internal/cli"
	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

func fixCmd() *cobra.Command {
	var viewer string

	cmd := &cobra.Command{
		Use:   "fix <race-id>",
		Short: "Interactively fix unmatched boost titles",
		Long: `Walk through the unmatched boosts for a race. Each one gets a suggested
corrected title to accept, edit or skip; accepted fixes are stored as title
overrides and applied on every following pass.`,
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
			if len(res.Unmatched) == 0 {
				fmt.Println(cli.FormatSuccess("Nothing to fix"))
				return nil
			}

			prompter := cli.NewPrompter(os.Stdin, os.Stdout)
			fixed := 0
			for _, u := range res.Unmatched {
				fmt.Println()
				fmt.Println(cli.FormatError(fmt.Sprintf("%s  (%s, %s)", u.Title, u.Sender, u.Date)))
				fmt.Println("  " + cli.SubtleStyle.Render(u.Reason))

				suggestion := boost.SuggestTitle(u.Title, u.Sender, drivers, teams)
				title := u.Title
				if suggestion != "" && suggestion != u.Title {
					accept, err := prompter.Confirm(ctx, fmt.Sprintf("Use %q?", suggestion), true)
					if err != nil {
						if errors.Is(err, cli.ErrInputCancelled) {
							break
						}
						return err
					}
					if accept {
						title = suggestion
					}
				}
				if title == u.Title {
					title, err = prompter.Ask(ctx, "Corrected title (empty to skip)", "")
					if err != nil {
						if errors.Is(err, cli.ErrInputCancelled) {
							break
						}
						return err
					}
					if title == "" || title == u.Title {
						continue
					}
				}

				if err := store.SaveFixedTitle(ctx, &model.FixedTitle{
					MessageID:     u.ID,
					OriginalTitle: u.Title,
					FixedTitle:    title,
					Sender:        u.Sender,
				}); err != nil {
					return err
				}
				fixed++
			}

			if fixed == 0 {
				fmt.Println(cli.FormatInfo("No overrides saved"))
				return nil
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Saved %d override(s), rerunning pass", fixed)))

			res, _, _, err = runPass(ctx, store, raceID, viewer)
			if err != nil {
				return err
			}
			fmt.Println(cli.FormatInfo(fmt.Sprintf("%d boost(s) matched, %d still unmatched", len(res.Boosts), len(res.Unmatched))))
			return nil
		},
	}

	cmd.Flags().StringVar(&viewer, "viewer", "", "whose mailbox the messages were read from (default: logged-in user)")

	return cmd
}
