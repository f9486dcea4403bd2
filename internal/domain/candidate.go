package domain

import (
	"context"
	"time"
)

// RecruitmentStatus tracks where a candidate sits in the pipeline.
type RecruitmentStatus string

const (
	StatusNew        RecruitmentStatus = "new"
	StatusInProgress RecruitmentStatus = "in_progress"
	StatusAccepted   RecruitmentStatus = "accepted"
	StatusRejected   RecruitmentStatus = "rejected"
)

type Candidate struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	Surname           string            `json:"surname"`
	Email             string            `json:"email"`
	Phone             string            `json:"phone"`
	Notes             string            `json:"notes"`
	YearsOfExperience int               `json:"years_of_experience"`
	RecruitmentStatus RecruitmentStatus `json:"recruitment_status"`
	ConsentAt         *time.Time        `json:"consent_at"`
	// JobOffers is only populated on creation requests; list rows omit it.
	JobOffers []int64 `json:"job_offers,omitempty"`
}

type CandidateRepository interface {
	// Fetch returns one page of candidates plus the total row count.
	Fetch(ctx context.Context, limit, offset int) ([]Candidate, int64, error)
	// FetchByJobOffer restricts the page to candidates linked to the job offer.
	FetchByJobOffer(ctx context.Context, jobOfferID int64, limit, offset int) ([]Candidate, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Create inserts the candidate and its job offer associations in one
	// transaction. beforeCommit runs after all local writes; if it returns an
	// error the transaction is rolled back and nothing persists.
	Create(ctx context.Context, candidate *Candidate, beforeCommit func(context.Context) error) error
}

type CandidateUsecase interface {
	List(ctx context.Context, page int) (*CandidatePage, error)
	ListByJobOffer(ctx context.Context, jobOfferID int64, page int) (*CandidatePage, error)
	Create(ctx context.Context, candidate *Candidate) error
}

// LegacyNotifier mirrors a created candidate to the legacy system. The call
// is the last gate before commit: a failure must abort the local transaction.
type LegacyNotifier interface {
	NotifyCandidateCreated(ctx context.Context, candidate *Candidate) error
}
