package domain

// CandidatePage is the response shape shared by both listing endpoints.
type CandidatePage struct {
	Candidates      []Candidate `json:"candidates"`
	TotalPages      int         `json:"totalPages"`
	CurrentPage     int         `json:"currentPage"`
	HasNextPage     bool        `json:"hasNextPage"`
	HasPreviousPage bool        `json:"hasPreviousPage"`
	NextPage        int         `json:"nextPage"`
	PreviousPage    int         `json:"previousPage"`
}

// NewCandidatePage derives the pagination fields from the total row count.
// NextPage and PreviousPage are not clamped to the valid range; clients use
// the has* flags.
func NewCandidatePage(candidates []Candidate, total int64, page, perPage int) *CandidatePage {
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	if candidates == nil {
		candidates = []Candidate{}
	}
	return &CandidatePage{
		Candidates:      candidates,
		TotalPages:      totalPages,
		CurrentPage:     page,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
		NextPage:        page + 1,
		PreviousPage:    page - 1,
	}
}
