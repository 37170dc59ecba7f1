package court

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, c *Court) error {
	const query = `
		INSERT INTO public.courts (sport_id, name, type, price_per_hour)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, c.SportID, c.Name, c.Type, c.PricePerHour).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("create court failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Court, error) {
	const query = `
		SELECT id, sport_id, name, type, price_per_hour, created_at
		FROM public.courts
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var c Court
	if err := row.Scan(&c.ID, &c.SportID, &c.Name, &c.Type, &c.PricePerHour, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get court failed: %w", err)
	}
	return &c, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Court, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "sport_id", "name", "type", "price_per_hour", "created_at",
		"count(*) OVER() as total_count",
	).From("public.courts")

	if filter.SportID != "" {
		query = query.Where(squirrel.Eq{"sport_id": filter.SportID})
	}

	query = query.OrderBy("created_at ASC")

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list courts query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list courts failed: %w", err)
	}
	defer rows.Close()

	var result []*Court
	var total int

	for rows.Next() {
		var c Court
		if err := rows.Scan(&c.ID, &c.SportID, &c.Name, &c.Type, &c.PricePerHour, &c.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan court failed: %w", err)
		}
		result = append(result, &c)
	}

	return result, total, nil
}
