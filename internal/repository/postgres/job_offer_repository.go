package postgres

import (
	"context"

	"new-recruitment-api/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type jobOfferRepository struct {
	db *pgxpool.Pool
}

func NewJobOfferRepository(db *pgxpool.Pool) domain.JobOfferRepository {
	return &jobOfferRepository{db: db}
}

func (r *jobOfferRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM job_offer WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
