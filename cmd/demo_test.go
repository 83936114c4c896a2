package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankist/bank"
	"bankist/store"
)

// runScript feeds a scripted session into the demo loop and returns
// everything it printed.
func runScript(t *testing.T, lines ...string) string {
	t.Helper()

	svc := bank.NewService(store.NewMemoryStore(store.Seed()), log.NewNopLogger())
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer

	require.NoError(t, runDemo(svc, in, &out))
	return out.String()
}

func TestDemoStartsLoggedOut(t *testing.T) {
	out := runScript(t, "quit")
	assert.Contains(t, out, "Log in to get started")
}

func TestDemoLogin(t *testing.T) {
	out := runScript(t,
		"login js 1111",
		"quit",
	)
	assert.Contains(t, out, "Welcome back, Jonas!")
	assert.Contains(t, out, "3900 €")
	assert.Contains(t, out, "Interest: 59.40€")
}

func TestDemoLoginFailures(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "unknown_username",
			line: "login zz 1111",
			want: "username does not exist",
		},
		{
			name: "wrong_pin",
			line: "login js 9999",
			want: "incorrect pin",
		},
		{
			name: "non_numeric_pin",
			line: "login js abcd",
			want: "incorrect pin",
		},
		{
			name: "missing_args",
			line: "login js",
			want: "usage: login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runScript(t, tt.line, "quit")
			assert.Contains(t, out, tt.want)
			assert.NotContains(t, out, "Welcome back")
		})
	}
}

func TestDemoTransferAndSummary(t *testing.T) {
	out := runScript(t,
		"login js 1111",
		"transfer jd 100",
		"quit",
	)
	assert.Contains(t, out, "3800 €")
	assert.Contains(t, out, "-100€")
}

func TestDemoTransferRequiresLogin(t *testing.T) {
	out := runScript(t, "transfer jd 100", "quit")
	assert.Contains(t, out, "not logged in")
}

func TestDemoLoan(t *testing.T) {
	out := runScript(t,
		"login js 1111",
		"loan 2001",
		"quit",
	)
	assert.Contains(t, out, "5901 €")

	out = runScript(t,
		"login js 1111",
		"loan 30001",
		"quit",
	)
	assert.Contains(t, out, "no deposit large enough")
}

func TestDemoCloseAccount(t *testing.T) {
	out := runScript(t,
		"login js 1111",
		"close js 1111",
		"login js 1111",
		"quit",
	)
	assert.Contains(t, out, "Account closed.")
	// the account is gone, so the second login fails
	assert.Contains(t, out, "username does not exist")
}

func TestDemoCloseMismatchMessages(t *testing.T) {
	out := runScript(t,
		"login js 1111",
		"close jd 9999",
		"close jd 1111",
		"close js 9999",
		"quit",
	)
	assert.Contains(t, out, "username and pin do not match")
	assert.Contains(t, out, "username does not match")
	assert.Contains(t, out, "pin does not match")
}

func TestDemoSortedMovements(t *testing.T) {
	out := runScript(t,
		"login js 1111",
		"movements sorted",
		"quit",
	)
	assert.Contains(t, out, "9 deposit  3 days ago  3000€")
}

func TestDemoLogout(t *testing.T) {
	out := runScript(t,
		"login js 1111",
		"logout",
		"summary",
		"quit",
	)
	assert.Contains(t, out, "not logged in")
}

func TestDemoUnknownCommand(t *testing.T) {
	out := runScript(t, "dance", "quit")
	assert.Contains(t, out, `unknown command "dance"`)
}
