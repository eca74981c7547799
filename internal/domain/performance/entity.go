package performance

import (
	"time"
)

type ReviewStatus string

const (
	ReviewStatusDraft     ReviewStatus = "DRAFT"
	ReviewStatusSubmitted ReviewStatus = "SUBMITTED"
	ReviewStatusFinalized ReviewStatus = "FINALIZED"
)

// Review is a performance review cycle entry. A review counts as active while
// it is still DRAFT or SUBMITTED.
type Review struct {
	ID            string
	EmployeeID    string
	ReviewerID    string
	PeriodYear    int
	Status        ReviewStatus
	OverallRating *float64
	CreatedAt     time.Time
}

func (r Review) IsActive() bool {
	return r.Status == ReviewStatusDraft || r.Status == ReviewStatusSubmitted
}
