package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fxtrader/fxjournal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the dashboard statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var equityCmd = &cobra.Command{
	Use:   "equity",
	Short: "Show the equity curve",
	Args:  cobra.NoArgs,
	RunE:  runEquity,
}

var equityPeriod string

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(equityCmd)

	equityCmd.Flags().StringVar(&equityPeriod, "period", "1m", "1m (daily, last 30 days) or 12m (monthly, last 12 months)")
}

func runStats(cmd *cobra.Command, args []string) error {
	s, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	sum := stats.Summarize(s.Ledger(), time.Now())

	fmt.Printf("Account Balance: %s\n", sum.Balance.StringFixed(2))
	fmt.Printf("Today's P&L:     %s (%d/%d trades)\n", sum.TodayPnL.StringFixed(2), sum.TodayTrades, sum.TradeCap)
	fmt.Printf("7-Day P&L:       %s\n", sum.WeekPnL.StringFixed(2))
	fmt.Printf("30-Day P&L:      %s\n", sum.MonthPnL.StringFixed(2))
	fmt.Printf("Win Rate:        %.1f%%\n", sum.WinRate*100)

	profit, loss := stats.WinLossAggregate(s.Ledger().Trades)
	wins, losses := stats.WinLossCounts(s.Ledger().Trades)
	fmt.Printf("Total Profit:    %s (%d wins)\n", profit.StringFixed(2), wins)
	fmt.Printf("Total Loss:      %s (%d losses)\n", loss.StringFixed(2), losses)
	return nil
}

func runEquity(cmd *cobra.Command, args []string) error {
	g := stats.Daily
	switch equityPeriod {
	case "1m":
		g = stats.Daily
	case "12m":
		g = stats.Monthly
	default:
		return fmt.Errorf("unknown period %q (want 1m or 12m)", equityPeriod)
	}

	s, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	for _, p := range stats.EquitySeries(s.Ledger(), g, time.Now()) {
		fmt.Printf("%-10s %s\n", p.Label, p.Balance.StringFixed(2))
	}
	return nil
}
