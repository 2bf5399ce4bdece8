// internal/repository/postgres/rate_repo.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"farepass-service/internal/domain/currency"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RateRepository struct {
	db *pgxpool.Pool
}

func NewRateRepository(db *pgxpool.Pool) *RateRepository {
	return &RateRepository{db: db}
}

// UpsertAll replaces the stored rates in one batch.
func (r *RateRepository) UpsertAll(ctx context.Context, table currency.RateTable) error {
	batch := &pgx.Batch{}
	now := time.Now()

	query := `
		INSERT INTO exchange_rates (code, rate, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (code)
		DO UPDATE SET rate = EXCLUDED.rate, updated_at = EXCLUDED.updated_at
	`

	for code, rate := range table {
		batch.Queue(query, code, rate, now)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range table {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to upsert exchange rate: %w", err)
		}
	}
	return nil
}

// LoadTable reads all stored rates into a table.
func (r *RateRepository) LoadTable(ctx context.Context) (currency.RateTable, error) {
	rows, err := r.db.Query(ctx, `SELECT code, rate FROM exchange_rates`)
	if err != nil {
		return nil, fmt.Errorf("failed to load exchange rates: %w", err)
	}
	defer rows.Close()

	table := currency.RateTable{}
	for rows.Next() {
		var code string
		var rate float64
		if err := rows.Scan(&code, &rate); err != nil {
			return nil, fmt.Errorf("failed to scan exchange rate: %w", err)
		}
		table[code] = rate
	}

	return table, nil
}

// List reads all stored rates with their refresh timestamps.
func (r *RateRepository) List(ctx context.Context) ([]currency.ExchangeRate, error) {
	rows, err := r.db.Query(ctx, `SELECT code, rate, updated_at FROM exchange_rates ORDER BY code ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	defer rows.Close()

	rates := []currency.ExchangeRate{}
	for rows.Next() {
		var er currency.ExchangeRate
		if err := rows.Scan(&er.Code, &er.Rate, &er.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan exchange rate: %w", err)
		}
		rates = append(rates, er)
	}

	return rates, nil
}
