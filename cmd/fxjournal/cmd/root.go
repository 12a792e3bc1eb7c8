package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fxtrader/fxjournal/config"
	"github.com/fxtrader/fxjournal/journal"
	"github.com/fxtrader/fxjournal/ledger"
	"github.com/fxtrader/fxjournal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "fxjournal",
	Short: "A personal trading journal with a derived balance and performance stats",
	Long: `fxjournal records trades, deposits and withdrawals in a local ledger and
derives the account balance and performance statistics from it.

It provides commands for:
  - Recording trades (up to 4 per day) and cash transactions
  - Tracking the account balance derived from the full ledger
  - Win rate, P&L windows and equity curve statistics
  - A per-day calendar aggregation of net P&L
  - Exporting records as CSV and Org-mode reports`,
}

var (
	cfgFile   string
	assumeYes bool
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML or JSON); defaults are used when unset")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation prompts")
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(cfgFile)
}

// openSession wires config -> storage -> store -> session. The returned
// close func releases the database handle.
func openSession() (*journal.Session, func() error, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	kv, err := storage.NewSQLite(cfg.Storage.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}

	store := ledger.NewStore(kv)

	// First run only: apply the configured starting balance.
	seed, err := cfg.Account.ParseStartingBalance()
	if err == nil && seed.IsPositive() {
		if err := store.SeedStartingBalance(seed); err != nil {
			kv.Close()
			return nil, nil, fmt.Errorf("seed starting balance: %w", err)
		}
	}

	return journal.Open(store, nil), kv.Close, nil
}

// confirm asks before a destructive operation. The --yes flag answers for
// the user.
func confirm(prompt string) bool {
	if assumeYes {
		return true
	}
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
