package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"bankist/bank"
	"bankist/model"
	"bankist/render"
)

const demoHelp = `Commands:
  login <username> <pin>       log in to an account (try: login js 1111)
  transfer <username> <amount> send money to another account
  loan <amount>                request a loan
  close <username> <pin>       close your account
  summary                      show balance and in/out/interest totals
  movements [sorted]           show the transaction history
  logout                       end the session
  quit                         leave the demo`

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive banking demo",
	Long: `Start an interactive session against the seeded accounts. Commands are
read one per line; each runs to completion before the next is read.

Seeded logins: js/1111, jd/2222, stw/3333, ss/4444.`,
	Example: `  bankist demo
  > login js 1111
  > transfer jd 100
  > loan 500
  > summary
  > quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closeStore, err := newAccountStore()
		if err != nil {
			return err
		}
		defer closeStore()

		svc := bank.NewService(st, newLogger())
		return runDemo(svc, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

// runDemo reads commands from in, one per line, and routes them to the
// service. It is the input collector: it parses raw field values and clears
// nothing because each line is consumed whole.
func runDemo(svc *bank.Service, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, render.LoggedOutLine())
	fmt.Fprintln(out, demoHelp)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch cmd, args := fields[0], fields[1:]; cmd {
		case "login":
			doLogin(svc, out, args)
		case "transfer":
			doTransfer(svc, out, args)
		case "loan":
			doLoan(svc, out, args)
		case "close":
			doClose(svc, out, args)
		case "summary":
			withAccount(svc, out, func(a *model.Account) {
				fmt.Fprintln(out, render.BalanceLine(a))
				for _, line := range render.SummaryLines(a) {
					fmt.Fprintln(out, line)
				}
			})
		case "movements":
			sorted := len(args) > 0 && args[0] == "sorted"
			withAccount(svc, out, func(a *model.Account) {
				for _, row := range render.MovementRows(a, sorted) {
					fmt.Fprintln(out, row)
				}
			})
		case "logout":
			svc.Logout()
			fmt.Fprintln(out, render.LoggedOutLine())
		case "help":
			fmt.Fprintln(out, demoHelp)
		case "quit", "exit":
			return scanner.Err()
		default:
			fmt.Fprintf(out, "unknown command %q (try: help)\n", cmd)
		}
	}
	return scanner.Err()
}

func doLogin(svc *bank.Service, out io.Writer, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(out, "usage: login <username> <pin>")
		return
	}
	pin, err := strconv.Atoi(args[1])
	if err != nil {
		// a non-numeric pin can never match
		fmt.Fprintln(out, bank.ErrWrongPin)
		return
	}
	a, err := svc.Login(args[0], pin)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	fmt.Fprintln(out, render.WelcomeLine(a))
	showDashboard(out, a)
}

func doTransfer(svc *bank.Service, out io.Writer, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(out, "usage: transfer <username> <amount>")
		return
	}
	amount, err := decimal.NewFromString(args[1])
	if err != nil {
		fmt.Fprintln(out, bank.ErrAmountNotPositive)
		return
	}
	if err := svc.Transfer(args[0], amount); err != nil {
		fmt.Fprintln(out, err)
		return
	}
	withAccount(svc, out, func(a *model.Account) {
		showDashboard(out, a)
	})
}

func doLoan(svc *bank.Service, out io.Writer, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: loan <amount>")
		return
	}
	amount, err := decimal.NewFromString(args[0])
	if err != nil {
		fmt.Fprintln(out, bank.ErrAmountNotPositive)
		return
	}
	if err := svc.RequestLoan(amount); err != nil {
		fmt.Fprintln(out, err)
		return
	}
	withAccount(svc, out, func(a *model.Account) {
		showDashboard(out, a)
	})
}

func doClose(svc *bank.Service, out io.Writer, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(out, "usage: close <username> <pin>")
		return
	}
	pin, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintln(out, bank.ErrClosePinMismatch)
		return
	}
	if err := svc.Close(args[0], pin); err != nil {
		fmt.Fprintln(out, err)
		return
	}
	fmt.Fprintln(out, "Account closed.")
	fmt.Fprintln(out, render.LoggedOutLine())
}

// withAccount runs fn against the logged-in account, printing the error when
// there is no session.
func withAccount(svc *bank.Service, out io.Writer, fn func(*model.Account)) {
	a, err := svc.Current()
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	fn(a)
}

// showDashboard prints the movement list, balance and summary, the same
// refresh that follows every successful action.
func showDashboard(out io.Writer, a *model.Account) {
	for _, row := range render.MovementRows(a, false) {
		fmt.Fprintln(out, row)
	}
	fmt.Fprintln(out, render.BalanceLine(a))
	for _, line := range render.SummaryLines(a) {
		fmt.Fprintln(out, line)
	}
}
