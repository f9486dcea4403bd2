package domain

import "context"

// Job offers are owned by another system; this API only checks that the ids
// a candidate applies to actually exist.
type JobOfferRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
