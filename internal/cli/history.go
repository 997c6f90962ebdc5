package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"workwatch/internal/config"
	"workwatch/internal/store"
	"workwatch/internal/timefmt"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only the history dir matters here; skip the username/webhook warnings.
			cfg := config.FromEnv(io.Discard)

			s, err := store.Open(cfg.Dir)
			if err != nil {
				return err
			}
			defer s.Close()

			sessions, err := s.List(limit)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sessions recorded yet.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "STARTED\tELAPSED\tLOGS")
			for _, sess := range sessions {
				fmt.Fprintf(w, "%s\t%s\t%d\n",
					sess.StartedAt.Local().Format("01/02/2006 15:04"),
					timefmt.Verbose(sess.Seconds),
					len(sess.Logs),
				)
				for _, entry := range sess.Logs {
					fmt.Fprintf(w, "\t- %s\t\n", entry)
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most N sessions (0 = all)")
	return cmd
}
