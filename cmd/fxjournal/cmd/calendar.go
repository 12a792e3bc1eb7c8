package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fxtrader/fxjournal/calendar"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar [YYYY-MM]",
	Short: "Show the per-day net P&L grid for a month",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCalendar,
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(cmd *cobra.Command, args []string) error {
	now := time.Now()
	year, month := now.Year(), now.Month()
	if len(args) == 1 {
		t, err := time.Parse("2006-01", args[0])
		if err != nil {
			return fmt.Errorf("parse month: %w", err)
		}
		year, month = t.Year(), t.Month()
	}

	s, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	g := calendar.Grid(s.Ledger(), year, month)

	fmt.Printf("%s %d\n", g.Month, g.Year)
	fmt.Println("Sun        Mon        Tue        Wed        Thu        Fri        Sat")

	col := 0
	for i := 0; i < g.Leading; i++ {
		fmt.Printf("%-11s", "")
		col++
	}
	for _, day := range g.Days {
		cell := fmt.Sprintf("%2d", day.Day)
		if day.Activity > 0 {
			cell = fmt.Sprintf("%2d %s", day.Day, day.Net.StringFixed(0))
		}
		fmt.Printf("%-11s", cell)
		col++
		if col%7 == 0 {
			fmt.Println()
		}
	}
	if col%7 != 0 {
		fmt.Println()
	}
	return nil
}
