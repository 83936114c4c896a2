package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/spf13/cobra"

	"bankist/store"
)

var (
	storeBackend string
	outputFormat string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bankist",
	Short: "An in-memory banking demo with seeded accounts",
	Long: `Bankist is a banking demo that runs entirely in memory. It seeds four
demo accounts with transaction histories and lets you log in, transfer money,
request loans and close accounts through an interactive session.

Nothing is persisted and nothing leaves the process: every run starts from the
same seed data and all state is gone when the program exits.`,
	Example: `  # List the seeded accounts
  bankist accounts

  # Start an interactive session
  bankist demo

  # Same, but with the sqlite-backed account store
  bankist demo --store sqlite`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&storeBackend, "store", "memory", "Account store backend (memory, sqlite)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, json)")
}

// newAccountStore builds the selected store backend, seeded with the demo
// accounts. The returned func releases the backend's resources.
func newAccountStore() (store.AccountStore, func(), error) {
	switch storeBackend {
	case "memory":
		return store.NewMemoryStore(store.Seed()), func() {}, nil
	case "sqlite":
		s, err := store.NewSQLStore(store.Seed())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported store backend: %s", storeBackend)
	}
}

func newLogger() log.Logger {
	logger := log.NewLogfmtLogger(os.Stderr)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	logger = log.With(logger, "caller", log.DefaultCaller)
	return logger
}
