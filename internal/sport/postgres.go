package sport

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, s *Sport) error {
	const query = `
		INSERT INTO public.sports (name, image_url, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, s.Name, s.ImageURL, s.Description).
		Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("create sport failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Sport, error) {
	const query = `
		SELECT id, name, image_url, description, created_at
		FROM public.sports
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var s Sport
	if err := row.Scan(&s.ID, &s.Name, &s.ImageURL, &s.Description, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get sport failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Sport, int, error) {
	const query = `
		SELECT id, name, image_url, description, created_at, count(*) OVER() as total_count
		FROM public.sports
		ORDER BY created_at ASC
		LIMIT $1 OFFSET $2
	`

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	rows, err := r.pool.Query(ctx, query, filter.PageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list sports failed: %w", err)
	}
	defer rows.Close()

	var result []*Sport
	var total int

	for rows.Next() {
		var s Sport
		if err := rows.Scan(&s.ID, &s.Name, &s.ImageURL, &s.Description, &s.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan sport failed: %w", err)
		}
		result = append(result, &s)
	}

	return result, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, s *Sport) error {
	const query = `
		UPDATE public.sports
		SET name = $1, image_url = $2, description = $3
		WHERE id = $4
	`
	ct, err := r.pool.Exec(ctx, query, s.Name, s.ImageURL, s.Description, s.ID)
	if err != nil {
		return fmt.Errorf("update sport failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
