package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func movements(t *testing.T, amounts ...int64) []decimal.Decimal {
	t.Helper()

	out := make([]decimal.Decimal, len(amounts))
	for i, a := range amounts {
		out[i] = decimal.NewFromInt(a)
	}
	return out
}

func testAccount(t *testing.T, owner string, rate string, amounts ...int64) *Account {
	t.Helper()

	return &Account{
		Owner:        owner,
		Username:     DeriveUsername(owner),
		Movements:    movements(t, amounts...),
		InterestRate: decimal.RequireFromString(rate),
	}
}

func TestDeriveUsername(t *testing.T) {
	tests := []struct {
		name  string
		owner string
		want  string
	}{
		{
			name:  "two_words",
			owner: "Jonas Schmedtmann",
			want:  "js",
		},
		{
			name:  "three_words",
			owner: "Steven Thomas Williams",
			want:  "stw",
		},
		{
			name:  "second_two_words",
			owner: "Sarah Smith",
			want:  "ss",
		},
		{
			name:  "already_lowercase",
			owner: "jessica davis",
			want:  "jd",
		},
		{
			name:  "extra_whitespace",
			owner: "  Jonas   Schmedtmann ",
			want:  "js",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveUsername(tt.owner))
		})
	}
}

func TestFirstName(t *testing.T) {
	a := testAccount(t, "Steven Thomas Williams", "0.7")
	assert.Equal(t, "Steven", a.FirstName())

	empty := &Account{}
	assert.Equal(t, "", empty.FirstName())
}

func TestBalance(t *testing.T) {
	tests := []struct {
		name    string
		account *Account
		want    string
	}{
		{
			name:    "jonas",
			account: testAccount(t, "Jonas Schmedtmann", "1.2", 200, 450, -400, 3000, -650, -130, 70, 1300, 60),
			want:    "3900",
		},
		{
			name:    "jessica",
			account: testAccount(t, "Jessica Davis", "1.5", 5000, 3400, -150, -790, -3210, -1000, 8500, -30),
			want:    "11720",
		},
		{
			name:    "no_movements",
			account: testAccount(t, "Sarah Smith", "1"),
			want:    "0",
		},
		{
			name:    "overdrawn",
			account: testAccount(t, "Sarah Smith", "1", 100, -250),
			want:    "-150",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.account.Balance()
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "Balance() = %s, want %s", got, tt.want)
		})
	}
}

func TestSummaryTotals(t *testing.T) {
	a := testAccount(t, "Jonas Schmedtmann", "1.2", 200, 450, -400, 3000, -650, -130, 70, 1300, 60)

	deposits := a.TotalDeposits()
	withdrawals := a.TotalWithdrawals()

	assert.True(t, deposits.Equal(decimal.NewFromInt(5080)), "TotalDeposits() = %s", deposits)
	assert.True(t, withdrawals.Equal(decimal.NewFromInt(1180)), "TotalWithdrawals() = %s", withdrawals)

	// deposits minus withdrawals reconstructs the balance
	assert.True(t, deposits.Sub(withdrawals).Equal(a.Balance()))
}

// TestQualifyingInterest pins down the per-deposit cutoff: the filter applies
// to each deposit's computed interest, not to the deposit amount. At 1.2% the
// 70 deposit earns 0.84 and the 60 deposit earns 0.72, so neither counts;
// 200, 450, 3000 and 1300 all earn at least 1 and sum to 59.40.
func TestQualifyingInterest(t *testing.T) {
	tests := []struct {
		name    string
		account *Account
		want    string
	}{
		{
			name:    "jonas_at_1_2_percent",
			account: testAccount(t, "Jonas Schmedtmann", "1.2", 200, 450, -400, 3000, -650, -130, 70, 1300, 60),
			want:    "59.4",
		},
		{
			name:    "deposit_exactly_at_cutoff",
			account: testAccount(t, "Sarah Smith", "1", 100),
			want:    "1",
		},
		{
			name:    "deposit_just_below_cutoff",
			account: testAccount(t, "Sarah Smith", "1", 99),
			want:    "0",
		},
		{
			name:    "withdrawals_ignored",
			account: testAccount(t, "Sarah Smith", "1", -5000, 100),
			want:    "1",
		},
		{
			name:    "no_movements",
			account: testAccount(t, "Sarah Smith", "1.5"),
			want:    "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.account.QualifyingInterest()
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "QualifyingInterest() = %s, want %s", got, tt.want)
		})
	}
}

func TestDepositsInUSD(t *testing.T) {
	a := testAccount(t, "Jonas Schmedtmann", "1.2", 200, 450, -400, 3000, -650, -130, 70, 1300, 60)

	// 5080 EUR in deposits at the fixed 1.1 rate
	got := a.DepositsInUSD()
	assert.True(t, got.Equal(decimal.RequireFromString("5588")), "DepositsInUSD() = %s", got)
}

// Derived values are pure: computing them twice without a mutation in between
// yields identical results and leaves the movement list untouched.
func TestCalculatorsAreIdempotent(t *testing.T) {
	a := testAccount(t, "Jessica Davis", "1.5", 5000, 3400, -150, -790, -3210, -1000, 8500, -30)

	first := []decimal.Decimal{a.Balance(), a.TotalDeposits(), a.TotalWithdrawals(), a.QualifyingInterest(), a.DepositsInUSD()}
	second := []decimal.Decimal{a.Balance(), a.TotalDeposits(), a.TotalWithdrawals(), a.QualifyingInterest(), a.DepositsInUSD()}

	require.Len(t, second, len(first))
	for i := range first {
		assert.True(t, first[i].Equal(second[i]), "recomputation %d changed: %s vs %s", i, first[i], second[i])
	}
	assert.Len(t, a.Movements, 8)
}
