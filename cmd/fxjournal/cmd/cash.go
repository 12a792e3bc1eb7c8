package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fxtrader/fxjournal/journal"
	"github.com/fxtrader/fxjournal/ledger"
)

var depositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "Record a deposit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCash(ledger.Deposit)
	},
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Record a withdrawal (must not exceed the balance)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCash(ledger.Withdrawal)
	},
}

var cashCmd = &cobra.Command{
	Use:   "cash",
	Short: "Manage cash transactions",
}

var cashListCmd = &cobra.Command{
	Use:   "list",
	Short: "List deposits and withdrawals, newest first",
	Args:  cobra.NoArgs,
	RunE:  runCashList,
}

var cashDeleteCmd = &cobra.Command{
	Use:   "delete <transaction-id>",
	Short: "Delete a transaction and reverse its balance effect",
	Args:  cobra.ExactArgs(1),
	RunE:  runCashDelete,
}

var (
	cashDate   string
	cashTime   string
	cashBroker string
	cashAmount string
	cashNotes  string
)

func init() {
	rootCmd.AddCommand(depositCmd)
	rootCmd.AddCommand(withdrawCmd)
	rootCmd.AddCommand(cashCmd)
	cashCmd.AddCommand(cashListCmd)
	cashCmd.AddCommand(cashDeleteCmd)

	for _, c := range []*cobra.Command{depositCmd, withdrawCmd} {
		c.Flags().StringVar(&cashDate, "date", "", "date YYYY-MM-DD (default today)")
		c.Flags().StringVar(&cashTime, "time", "", "time HH:MM (default now)")
		c.Flags().StringVar(&cashBroker, "broker", "", "broker or venue")
		c.Flags().StringVar(&cashAmount, "amount", "", "positive amount, e.g. 500.00")
		c.Flags().StringVar(&cashNotes, "notes", "", "free-text notes")
	}
}

func runCash(kind ledger.Kind) error {
	amount, err := decimal.NewFromString(cashAmount)
	if err != nil {
		return fmt.Errorf("parse --amount: %w", err)
	}

	s, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	now := time.Now()
	in := journal.CashInput{
		Date:   cashDate,
		Time:   cashTime,
		Broker: cashBroker,
		Amount: amount,
		Notes:  cashNotes,
	}
	if in.Date == "" {
		in.Date = now.Format("2006-01-02")
	}
	if in.Time == "" {
		in.Time = now.Format("15:04")
	}

	var c ledger.CashTransaction
	if kind == ledger.Deposit {
		c, err = s.RecordDeposit(in)
	} else {
		c, err = s.RecordWithdrawal(in)
	}
	if err != nil {
		return fmt.Errorf("record %s: %w", kind, err)
	}

	fmt.Printf("Recorded %s %s: %s -> %s\n",
		c.Kind, c.Amount.StringFixed(2),
		c.BalanceBefore.StringFixed(2), c.BalanceAfter.StringFixed(2))
	return nil
}

func runCashList(cmd *cobra.Command, args []string) error {
	s, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	txs := s.Ledger().Transactions
	if len(txs) == 0 {
		fmt.Println("No transactions recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTIME\tKIND\tBROKER\tAMOUNT\tBEFORE\tAFTER")
	for _, c := range txs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Date, c.Time, c.Kind, c.Broker,
			c.Signed().StringFixed(2),
			c.BalanceBefore.StringFixed(2), c.BalanceAfter.StringFixed(2))
	}
	return w.Flush()
}

func runCashDelete(cmd *cobra.Command, args []string) error {
	if !confirm("Delete this transaction?") {
		return nil
	}

	s, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := s.DeleteTransaction(args[0]); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}

	fmt.Printf("Deleted. Balance: %s\n", s.Balance().StringFixed(2))
	return nil
}
