// Package cli wires the cobra command surface: the bare command runs the
// interactive tracker, subcommands cover the session history and version.
package cli

import (
	"fmt"

	"workwatch/internal/config"
	"workwatch/internal/notify"
	"workwatch/internal/store"
	"workwatch/internal/tui"

	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "workwatch",
		Short:        "Terminal work-time tracker",
		SilenceUsage: true,
		Long: `WorkWatch tracks work sessions from the terminal: clock in, jot down
session logs, clock out. Clock events are posted to a Discord-style webhook
(WORKWATCH_WEBHOOK) and finished sessions land in a local SQLite history.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv(cmd.ErrOrStderr())

			history, err := store.Open(cfg.Dir)
			if err != nil {
				// The tracker still works without history; say so and move on.
				fmt.Fprintf(cmd.ErrOrStderr(), "WorkWatch Warning: session history disabled: %v\n", err)
				history = nil
			} else {
				defer history.Close()
			}

			notifier := notify.New(cfg.WebhookURL, config.BotName, cfg.Username)
			return tui.Run(cfg, history, notifier)
		},
	}

	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}
