package usecase

import (
	"context"
	"strings"

	"new-recruitment-api/internal/domain"
	"new-recruitment-api/pkg/apperror"
	"new-recruitment-api/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
	validator     *candidateValidator
	notifier      domain.LegacyNotifier
	pageSize      int
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository, jobOfferRepo domain.JobOfferRepository, notifier domain.LegacyNotifier, validate *validator.Validate, pageSize int) domain.CandidateUsecase {
	if pageSize < 1 {
		pageSize = 10
	}
	return &candidateUsecase{
		candidateRepo: candidateRepo,
		validator:     newCandidateValidator(validate, candidateRepo, jobOfferRepo),
		notifier:      notifier,
		pageSize:      pageSize,
	}
}

func (u *candidateUsecase) List(ctx context.Context, page int) (*domain.CandidatePage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * u.pageSize

	candidates, total, err := u.candidateRepo.Fetch(ctx, u.pageSize, offset)
	if err != nil {
		logger.Log.Error("Error fetching candidates", "error", err)
		return nil, apperror.Internal(err)
	}

	return domain.NewCandidatePage(candidates, total, page, u.pageSize), nil
}

func (u *candidateUsecase) ListByJobOffer(ctx context.Context, jobOfferID int64, page int) (*domain.CandidatePage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * u.pageSize

	candidates, total, err := u.candidateRepo.FetchByJobOffer(ctx, jobOfferID, u.pageSize, offset)
	if err != nil {
		logger.Log.Error("Error fetching candidates by job offer", "job_offer_id", jobOfferID, "error", err)
		return nil, apperror.Internal(err)
	}

	return domain.NewCandidatePage(candidates, total, page, u.pageSize), nil
}

// Create runs the two-phase best-effort protocol: local writes first, then
// the legacy API call, then commit. The legacy system sits outside the local
// transaction, so its acknowledgment is the last gate before commit and a
// refusal rolls the local writes back. A crash between remote success and
// local commit leaves the legacy system one candidate ahead; that window is
// accepted rather than masked (no outbox, no retry).
func (u *candidateUsecase) Create(ctx context.Context, candidate *domain.Candidate) error {
	if msgs := u.validator.Validate(ctx, candidate); len(msgs) > 0 {
		return apperror.UnprocessableEntity("Invalid inputs passed: " + strings.Join(msgs, ", "))
	}

	err := u.candidateRepo.Create(ctx, candidate, func(ctx context.Context) error {
		return u.notifier.NotifyCandidateCreated(ctx, candidate)
	})
	if err != nil {
		logger.Log.Error("Error creating candidate", "email", candidate.Email, "error", err)
		return apperror.Internal(err)
	}

	logger.Log.Info("Candidate created successfully", "id", candidate.ID)
	return nil
}
