package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"bankist/model"
)

const accountTable = "ACCOUNT"
const movementTable = "MOVEMENT"

// SQLStore keeps the accounts in an in-memory sqlite database. Amounts are
// stored as decimal strings; movement order is preserved through a per-account
// sequence number.
type SQLStore struct {
	db *sqlx.DB
}

type accountRow struct {
	Username     string `db:"USERNAME"`
	Owner        string `db:"OWNER"`
	InterestRate string `db:"INTEREST_RATE"`
	Pin          int    `db:"PIN"`
	Position     int    `db:"POSITION"`
}

// NewSQLStore opens a fresh :memory: database, creates the schema and loads
// the seed accounts.
func NewSQLStore(seed []model.Account) (*SQLStore, error) {
	db, err := sqlx.Connect("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("problem opening sqlite database: %w", err)
	}

	schema := fmt.Sprintf(`
	CREATE TABLE %s (
		USERNAME TEXT PRIMARY KEY,
		OWNER TEXT NOT NULL,
		INTEREST_RATE TEXT NOT NULL,
		PIN INTEGER NOT NULL,
		POSITION INTEGER NOT NULL
	);
	CREATE TABLE %s (
		ACCOUNT_USERNAME TEXT NOT NULL,
		SEQ INTEGER NOT NULL,
		AMOUNT TEXT NOT NULL,
		FOREIGN KEY(ACCOUNT_USERNAME) REFERENCES %s(USERNAME)
	);
	CREATE INDEX idx_movement_account ON %s(ACCOUNT_USERNAME);
	`, accountTable, movementTable, accountTable, movementTable)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("problem creating schema: %w", err)
	}

	s := &SQLStore{db: db}
	for i := range seed {
		if err := s.insertAccount(i, seed[i]); err != nil {
			db.Close()
			return nil, err
		}
	}
	return s, nil
}

func (s *SQLStore) Close() {
	s.db.Close()
}

func (s *SQLStore) insertAccount(position int, a model.Account) error {
	username := model.DeriveUsername(a.Owner)
	query := fmt.Sprintf("INSERT INTO %s (USERNAME, OWNER, INTEREST_RATE, PIN, POSITION) VALUES (?, ?, ?, ?, ?)", accountTable)
	if _, err := s.db.Exec(query, username, a.Owner, a.InterestRate.String(), a.Pin, position); err != nil {
		return err
	}
	for seq, m := range a.Movements {
		if err := s.insertMovement(username, seq, m); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLStore) insertMovement(username string, seq int, amount decimal.Decimal) error {
	query := fmt.Sprintf("INSERT INTO %s (ACCOUNT_USERNAME, SEQ, AMOUNT) VALUES (?, ?, ?)", movementTable)
	_, err := s.db.Exec(query, username, seq, amount.String())
	return err
}

func (s *SQLStore) FindByUsername(username string) (*model.Account, error) {
	var row accountRow
	query := fmt.Sprintf("SELECT USERNAME, OWNER, INTEREST_RATE, PIN, POSITION FROM %s WHERE USERNAME = ?", accountTable)
	if err := s.db.Get(&row, query, strings.ToLower(username)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return s.buildAccount(row)
}

func (s *SQLStore) Accounts() ([]*model.Account, error) {
	var rows []accountRow
	query := fmt.Sprintf("SELECT USERNAME, OWNER, INTEREST_RATE, PIN, POSITION FROM %s ORDER BY POSITION", accountTable)
	if err := s.db.Select(&rows, query); err != nil {
		return nil, err
	}
	out := make([]*model.Account, 0, len(rows))
	for _, row := range rows {
		a, err := s.buildAccount(row)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *SQLStore) AppendMovement(username string, amount decimal.Decimal) error {
	username = strings.ToLower(username)

	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE USERNAME = ?", accountTable)
	if err := s.db.Get(&count, query, username); err != nil {
		return err
	}
	if count == 0 {
		return ErrAccountNotFound
	}

	var seq int
	query = fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE ACCOUNT_USERNAME = ?", movementTable)
	if err := s.db.Get(&seq, query, username); err != nil {
		return err
	}
	return s.insertMovement(username, seq, amount)
}

func (s *SQLStore) Remove(username string) error {
	username = strings.ToLower(username)

	query := fmt.Sprintf("DELETE FROM %s WHERE ACCOUNT_USERNAME = ?", movementTable)
	if _, err := s.db.Exec(query, username); err != nil {
		return err
	}

	query = fmt.Sprintf("DELETE FROM %s WHERE USERNAME = ?", accountTable)
	res, err := s.db.Exec(query, username)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (s *SQLStore) buildAccount(row accountRow) (*model.Account, error) {
	rate, err := decimal.NewFromString(row.InterestRate)
	if err != nil {
		return nil, fmt.Errorf("bad interest rate for %s: %w", row.Username, err)
	}

	var raw []string
	query := fmt.Sprintf("SELECT AMOUNT FROM %s WHERE ACCOUNT_USERNAME = ? ORDER BY SEQ", movementTable)
	if err := s.db.Select(&raw, query, row.Username); err != nil {
		return nil, err
	}
	movements := make([]decimal.Decimal, 0, len(raw))
	for _, v := range raw {
		m, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("bad movement amount for %s: %w", row.Username, err)
		}
		movements = append(movements, m)
	}

	return &model.Account{
		Owner:        row.Owner,
		Username:     row.Username,
		Movements:    movements,
		InterestRate: rate,
		Pin:          row.Pin,
	}, nil
}
