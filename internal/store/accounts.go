package store

import (
	"context"
)

const accountColumns = `id, telegram_id, username, first_name, last_name, balance, created_at, updated_at`

func (s *Store) CreateAccount(ctx context.Context, telegramID, username, firstName, lastName string, initialBalance int64) (*Account, error) {
	id := NewID()
	row := s.Pool.QueryRow(ctx, `
		INSERT INTO accounts (id, telegram_id, username, first_name, last_name, balance)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING `+accountColumns, id, telegramID, username, firstName, lastName, initialBalance)
	return scanAccount(row)
}

func (s *Store) GetAccount(ctx context.Context, id string) (*Account, error) {
	row := s.Pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	a, err := scanAccount(row)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return a, nil
}

func (s *Store) GetAccountByTelegramID(ctx context.Context, telegramID string) (*Account, error) {
	row := s.Pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE telegram_id = $1`, telegramID)
	a, err := scanAccount(row)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return a, nil
}

// UpdateAccountProfile refreshes the Telegram display fields on login.
// Balance is untouched.
func (s *Store) UpdateAccountProfile(ctx context.Context, id, username, firstName, lastName string) (*Account, error) {
	row := s.Pool.QueryRow(ctx, `
		UPDATE accounts
		SET username = $2, first_name = $3, last_name = $4, updated_at = now()
		WHERE id = $1
		RETURNING `+accountColumns, id, username, firstName, lastName)
	a, err := scanAccount(row)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return a, nil
}

func (s *Store) GetAccountBalance(ctx context.Context, id string) (int64, error) {
	var bal int64
	err := s.Pool.QueryRow(ctx, `SELECT balance FROM accounts WHERE id = $1`, id).Scan(&bal)
	if err != nil {
		return 0, mapNotFound(err)
	}
	return bal, nil
}

func (s *Store) ListAccounts(ctx context.Context, limit, offset int) ([]Account, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.Pool.Query(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Account{}
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.TelegramID, &a.Username, &a.FirstName, &a.LastName, &a.Balance, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*Account, error) {
	var a Account
	if err := row.Scan(&a.ID, &a.TelegramID, &a.Username, &a.FirstName, &a.LastName, &a.Balance, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
