package usecase

import (
	"context"
	"fmt"

	"new-recruitment-api/internal/domain"
	"new-recruitment-api/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// candidateValidator runs every check on a creation request and accumulates
// the failures in field order instead of stopping at the first one. Shape
// checks use validator tags; email uniqueness and job offer existence are
// read-only queries against the repositories. A check whose store read fails
// cannot be confirmed and fails closed with its own message.
type candidateValidator struct {
	validate      *validator.Validate
	candidateRepo domain.CandidateRepository
	jobOfferRepo  domain.JobOfferRepository
}

func newCandidateValidator(validate *validator.Validate, candidateRepo domain.CandidateRepository, jobOfferRepo domain.JobOfferRepository) *candidateValidator {
	return &candidateValidator{
		validate:      validate,
		candidateRepo: candidateRepo,
		jobOfferRepo:  jobOfferRepo,
	}
}

func (v *candidateValidator) Validate(ctx context.Context, c *domain.Candidate) []string {
	var msgs []string

	if v.validate.Var(c.Name, "required") != nil {
		msgs = append(msgs, "Name is required")
	}
	if v.validate.Var(c.Surname, "required") != nil {
		msgs = append(msgs, "Surname is required")
	}

	if v.validate.Var(c.Email, "required,email") != nil {
		msgs = append(msgs, "Valid email is required")
	}
	exists, err := v.candidateRepo.ExistsByEmail(ctx, c.Email)
	if err != nil {
		logger.Log.Error("Failed to check email uniqueness", "error", err)
	}
	if exists || err != nil {
		msgs = append(msgs, "Email must be unique")
	}

	if v.validate.Var(c.Phone, "required") != nil {
		msgs = append(msgs, "Phone number is required")
	}

	if v.validate.Var(c.YearsOfExperience, "min=0") != nil {
		msgs = append(msgs, "Years of experience must be an integer")
	}

	if v.validate.Var(c.JobOffers, "required,min=1") != nil {
		msgs = append(msgs, "Job offers must contain at least one job offer ID")
	} else {
		for _, id := range c.JobOffers {
			exists, err := v.jobOfferRepo.Exists(ctx, id)
			if err != nil {
				logger.Log.Error("Failed to check job offer existence", "job_offer_id", id, "error", err)
			}
			if !exists || err != nil {
				msgs = append(msgs, fmt.Sprintf("Job offer ID %d must reference an existing job offer", id))
			}
		}
	}

	return msgs
}
