package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aussiebroadwan/clientdesk/internal/api/domain"
)

const clientColumns = `id, shared_key, name, email, phone, start_date, end_date, created_at`

type clientsRepo struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (domain.Client, error) {
	var (
		c         domain.Client
		createdAt string
	)
	if err := row.Scan(&c.ID, &c.SharedKey, &c.Name, &c.Email, &c.Phone, &c.StartDate, &c.EndDate, &createdAt); err != nil {
		return domain.Client{}, err
	}

	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return domain.Client{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	c.CreatedAt = t
	return c, nil
}

func (r *clientsRepo) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *clientsRepo) GetClientBySharedKey(ctx context.Context, sharedKey string) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE shared_key = ?`, sharedKey)
	c, err := scanClient(row)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return c, nil
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO clients (`+clientColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.SharedKey, c.Name, c.Email, c.Phone, c.StartDate, c.EndDate,
		c.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	return mapConstraint(err)
}
