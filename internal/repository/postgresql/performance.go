package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/primatek-mfg/erp-backend-go/internal/domain/performance"
	"github.com/primatek-mfg/erp-backend-go/internal/pkg/database"
)

type performanceRepositoryImpl struct {
	db *database.DB
}

func NewPerformanceRepository(db *database.DB) performance.Repository {
	return &performanceRepositoryImpl{db: db}
}

// GetActiveByEmployee implements performance.Repository. At most one review is
// returned: the newest one still in DRAFT or SUBMITTED.
func (r *performanceRepositoryImpl) GetActiveByEmployee(ctx context.Context, employeeID string) (performance.Review, error) {
	query := `
		SELECT id, employee_id, reviewer_id, period_year, status, overall_rating, created_at
		FROM performance_reviews
		WHERE employee_id = $1 AND status IN ($2, $3)
		ORDER BY created_at DESC
		LIMIT 1
	`

	var review performance.Review
	err := r.db.QueryRow(ctx, query, employeeID,
		performance.ReviewStatusDraft, performance.ReviewStatusSubmitted,
	).Scan(
		&review.ID,
		&review.EmployeeID,
		&review.ReviewerID,
		&review.PeriodYear,
		&review.Status,
		&review.OverallRating,
		&review.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return performance.Review{}, performance.ErrReviewNotFound
		}
		return performance.Review{}, err
	}

	return review, nil
}
