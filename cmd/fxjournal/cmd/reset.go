package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete ALL records and zero the balance",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show recent trades and transactions together",
	Args:  cobra.NoArgs,
	RunE:  runActivity,
}

var activityLimit int

func init() {
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(activityCmd)

	activityCmd.Flags().IntVarP(&activityLimit, "limit", "n", 5, "number of entries to show (0 for all)")
}

func runReset(cmd *cobra.Command, args []string) error {
	if !confirm("WARNING: this deletes ALL your data and cannot be undone. Continue?") {
		return nil
	}

	s, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := s.Reset(); err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	fmt.Println("All data cleared.")
	return nil
}

func runActivity(cmd *cobra.Command, args []string) error {
	s, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	entries := s.Ledger().RecentActivity(activityLimit)
	if len(entries) == 0 {
		fmt.Println("No activity recorded yet.")
		return nil
	}

	for _, a := range entries {
		fmt.Printf("%s %s  %-10s %-24s %s\n",
			a.Date, a.Time, a.Kind, a.Detail, a.Amount.StringFixed(2))
	}
	return nil
}
