package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/inovacc/grab/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show clones recorded in the registry",
	Long: `Show the repositories grab has cloned on this machine, from the registry.
Entries stay listed even if the directories were later moved or removed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := store.OpenDefault()
		if err != nil {
			return err
		}
		defer func() { _ = reg.Close() }()

		records, err := reg.All()
		if err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No clones recorded.")
			fmt.Fprintln(cmd.OutOrStdout(), "Create one with: grab clone <repository-url>")

			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "REPOSITORY\tPATH\tCLONED")
		fmt.Fprintln(w, "----------\t----\t------")

		for _, rec := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\n", rec.Location().FullName(), rec.Path, formatTimeSince(rec.ClonedAt))
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
