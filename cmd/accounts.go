package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bankist/model"
	"bankist/render"
)

// accountsCmd represents the accounts command
var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List the seeded demo accounts",
	Long: `List every account in the store with its derived username, balance,
interest rate and movement count. Balances are computed from the movement
history on the fly; nothing is stored.`,
	Example: `  # Table output
  bankist accounts

  # JSON output
  bankist accounts --output json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closeStore, err := newAccountStore()
		if err != nil {
			return err
		}
		defer closeStore()

		accounts, err := st.Accounts()
		if err != nil {
			return fmt.Errorf("failed to list accounts: %w", err)
		}
		return displayAccounts(accounts, outputFormat)
	},
}

func init() {
	rootCmd.AddCommand(accountsCmd)
}

// displayAccounts formats and displays account information
func displayAccounts(accounts []*model.Account, format string) error {
	switch format {
	case "json":
		return displayAccountsJSON(accounts)
	case "table":
		return displayAccountsTable(accounts)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func displayAccountsTable(accounts []*model.Account) error {
	fmt.Printf("Found %d account(s):\n", len(accounts))
	for i, a := range accounts {
		fmt.Printf("%d. %s (%s)\n", i+1, a.Owner, a.Username)
		fmt.Printf("   Balance: %s\n", render.BalanceLine(a))
		fmt.Printf("   Interest rate: %s%%\n", a.InterestRate)
		fmt.Printf("   Movements: %d\n", len(a.Movements))
		fmt.Println()
	}
	return nil
}

func displayAccountsJSON(accounts []*model.Account) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(accounts)
}
