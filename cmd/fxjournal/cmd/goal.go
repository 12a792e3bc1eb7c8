package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Record, list and delete trading goals",
}

var goalAddCmd = &cobra.Command{
	Use:   "add <content>",
	Short: "Record a goal dated today",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGoalAdd,
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals, newest first",
	Args:  cobra.NoArgs,
	RunE:  runGoalList,
}

var goalDeleteCmd = &cobra.Command{
	Use:   "delete <goal-id>",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalDelete,
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalDeleteCmd)
}

func runGoalAdd(cmd *cobra.Command, args []string) error {
	s, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	g, err := s.RecordGoal(strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("record goal: %w", err)
	}

	fmt.Printf("Saved goal %s (%s)\n", g.ID, g.Date)
	return nil
}

func runGoalList(cmd *cobra.Command, args []string) error {
	s, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	goals := s.Ledger().Goals
	if len(goals) == 0 {
		fmt.Println("No goals recorded yet. Write your first trading goal!")
		return nil
	}

	for _, g := range goals {
		fmt.Printf("%s  %s  %s\n", g.ID, g.Date, g.Content)
	}
	return nil
}

func runGoalDelete(cmd *cobra.Command, args []string) error {
	if !confirm("Delete this goal?") {
		return nil
	}

	s, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := s.DeleteGoal(args[0]); err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}

	fmt.Println("Deleted.")
	return nil
}
