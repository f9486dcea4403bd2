package postgres

import (
	"context"
	"fmt"

	"new-recruitment-api/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

const candidateColumns = `id, name, surname, email, phone, notes, years_of_experience, recruitment_status, consent_at`

func (r *candidateRepository) Fetch(ctx context.Context, limit, offset int) ([]domain.Candidate, int64, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidate LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		var c domain.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Surname, &c.Email, &c.Phone, &c.Notes, &c.YearsOfExperience, &c.RecruitmentStatus, &c.ConsentAt); err != nil {
			return nil, 0, err
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM candidate`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return candidates, total, nil
}

func (r *candidateRepository) FetchByJobOffer(ctx context.Context, jobOfferID int64, limit, offset int) ([]domain.Candidate, int64, error) {
	query := `
		SELECT c.id, c.name, c.surname, c.email, c.phone, c.notes, c.years_of_experience, c.recruitment_status, c.consent_at
		FROM candidate c
		JOIN candidate_job_offer co ON c.id = co.candidate_id
		WHERE co.job_offer_id = $1
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, jobOfferID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		var c domain.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Surname, &c.Email, &c.Phone, &c.Notes, &c.YearsOfExperience, &c.RecruitmentStatus, &c.ConsentAt); err != nil {
			return nil, 0, err
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery := `
		SELECT COUNT(*)
		FROM candidate c
		JOIN candidate_job_offer co ON c.id = co.candidate_id
		WHERE co.job_offer_id = $1`

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, jobOfferID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return candidates, total, nil
}

func (r *candidateRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM candidate WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

// Create writes the candidate row and one association row per job offer in a
// single transaction. beforeCommit runs after the local writes so an external
// acknowledgment can gate the commit; any error rolls everything back.
func (r *candidateRepository) Create(ctx context.Context, candidate *domain.Candidate, beforeCommit func(context.Context) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	insertCandidate := `
		INSERT INTO candidate (name, surname, email, phone, years_of_experience)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`

	err = tx.QueryRow(ctx, insertCandidate,
		candidate.Name, candidate.Surname, candidate.Email, candidate.Phone, candidate.YearsOfExperience,
	).Scan(&candidate.ID)
	if err != nil {
		return fmt.Errorf("failed to insert candidate: %w", err)
	}

	insertAssoc := `INSERT INTO candidate_job_offer (candidate_id, job_offer_id) VALUES ($1, $2)`
	for _, jobOfferID := range candidate.JobOffers {
		if _, err := tx.Exec(ctx, insertAssoc, candidate.ID, jobOfferID); err != nil {
			return fmt.Errorf("failed to link job offer %d: %w", jobOfferID, err)
		}
	}

	if beforeCommit != nil {
		if err := beforeCommit(ctx); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
