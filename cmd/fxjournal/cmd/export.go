package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fxtrader/fxjournal/report"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export ledger records",
	Long: `Export ledger records for spreadsheets or a text journal.

Examples:
  fxjournal export trades --out trades.csv
  fxjournal export transactions --out transactions.csv
  fxjournal export report`,
}

var exportTradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "Export all trades as CSV",
	Args:  cobra.NoArgs,
	RunE:  runExportTrades,
}

var exportTransactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "Export all cash transactions as CSV",
	Args:  cobra.NoArgs,
	RunE:  runExportTransactions,
}

var exportReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the deposits & withdrawals report",
	Args:  cobra.NoArgs,
	RunE:  runExportReport,
}

var exportOut string

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportTradesCmd)
	exportCmd.AddCommand(exportTransactionsCmd)
	exportCmd.AddCommand(exportReportCmd)

	exportCmd.PersistentFlags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
}

func outWriter() (*os.File, func(), error) {
	if exportOut == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(exportOut)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func runExportTrades(cmd *cobra.Command, args []string) error {
	s, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	w, done, err := outWriter()
	if err != nil {
		return err
	}
	defer done()

	return report.WriteTradesCSV(w, s.Ledger().Trades)
}

func runExportTransactions(cmd *cobra.Command, args []string) error {
	s, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	w, done, err := outWriter()
	if err != nil {
		return err
	}
	defer done()

	return report.WriteTransactionsCSV(w, s.Ledger().Transactions)
}

func runExportReport(cmd *cobra.Command, args []string) error {
	s, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	w, done, err := outWriter()
	if err != nil {
		return err
	}
	defer done()

	_, err = fmt.Fprint(w, report.FormatCashReportOrg(s.Ledger()))
	return err
}
