package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fxtrader/fxjournal/journal"
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Record, list and delete trades",
	Long: `Manage the trade ledger.

Examples:
  fxjournal trade add --pair EUR/USD --strategy breakout --pnl 120.50 --number 1
  fxjournal trade list
  fxjournal trade delete <trade-id>`,
}

var tradeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a trade (max 4 per day)",
	Args:  cobra.NoArgs,
	RunE:  runTradeAdd,
}

var tradeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all trades, newest first",
	Args:  cobra.NoArgs,
	RunE:  runTradeList,
}

var tradeDeleteCmd = &cobra.Command{
	Use:   "delete <trade-id>",
	Short: "Delete a trade and reverse its P&L",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeDelete,
}

var (
	tradeDate     string
	tradeTime     string
	tradeNumber   int
	tradePair     string
	tradeStrategy string
	tradeCustom   string
	tradePnL      string
	tradeNotes    string
)

func init() {
	rootCmd.AddCommand(tradeCmd)
	tradeCmd.AddCommand(tradeAddCmd)
	tradeCmd.AddCommand(tradeListCmd)
	tradeCmd.AddCommand(tradeDeleteCmd)

	tradeAddCmd.Flags().StringVar(&tradeDate, "date", "", "trade date YYYY-MM-DD (default today)")
	tradeAddCmd.Flags().StringVar(&tradeTime, "time", "", "trade time HH:MM (default now)")
	tradeAddCmd.Flags().IntVar(&tradeNumber, "number", 1, "trade ordinal within the day")
	tradeAddCmd.Flags().StringVar(&tradePair, "pair", "", "instrument, e.g. EUR/USD")
	tradeAddCmd.Flags().StringVar(&tradeStrategy, "strategy", "", "strategy label")
	tradeAddCmd.Flags().StringVar(&tradeCustom, "custom-strategy", "", "free-text strategy overriding --strategy")
	tradeAddCmd.Flags().StringVar(&tradePnL, "pnl", "", "profit or loss, e.g. -120.50")
	tradeAddCmd.Flags().StringVar(&tradeNotes, "notes", "", "free-text notes")
}

func runTradeAdd(cmd *cobra.Command, args []string) error {
	pnl, err := decimal.NewFromString(tradePnL)
	if err != nil {
		return fmt.Errorf("parse --pnl: %w", err)
	}

	s, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	now := time.Now()
	in := journal.TradeInput{
		Date:           tradeDate,
		Time:           tradeTime,
		TradeNumber:    tradeNumber,
		Pair:           tradePair,
		Strategy:       tradeStrategy,
		CustomStrategy: tradeCustom,
		PnL:            pnl,
		Notes:          tradeNotes,
	}
	if in.Date == "" {
		in.Date = now.Format("2006-01-02")
	}
	if in.Time == "" {
		in.Time = now.Format("15:04")
	}

	t, err := s.RecordTrade(in)
	if err != nil {
		return fmt.Errorf("record trade: %w", err)
	}

	fmt.Printf("Recorded trade %s (%s %s, P&L %s). Balance: %s\n",
		t.ID, t.Pair, t.Strategy, t.PnL.StringFixed(2), s.Balance().StringFixed(2))
	return nil
}

func runTradeList(cmd *cobra.Command, args []string) error {
	s, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	trades := s.Ledger().Trades
	if len(trades) == 0 {
		fmt.Println("No trades recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTIME\t#\tPAIR\tSTRATEGY\tP&L\tNOTES")
	for _, t := range trades {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			t.ID, t.Date, t.Time, t.TradeNumber, t.Pair, t.Strategy,
			t.PnL.StringFixed(2), t.Notes)
	}
	return w.Flush()
}

func runTradeDelete(cmd *cobra.Command, args []string) error {
	if !confirm("Delete this trade?") {
		return nil
	}

	s, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := s.DeleteTrade(args[0]); err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}

	fmt.Printf("Deleted. Balance: %s\n", s.Balance().StringFixed(2))
	return nil
}
