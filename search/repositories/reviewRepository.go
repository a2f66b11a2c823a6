package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"search-battle-backend/search/models"

	"gorm.io/gorm"
)

// ReviewRepository is the relational half of the battle: a case-insensitive
// substring scan over the reviews table.
type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Source() models.Source {
	return models.SourceRelational
}

type reviewRow struct {
	ExternalID int    `gorm:"column:external_id"`
	Review     string `gorm:"column:review"`
	Sentiment  int    `gorm:"column:sentiment"`
	TotalCount int64  `gorm:"column:total_count"`
}

// SearchReviews matches the query as a literal substring of the review text.
// The window count keeps page and total in one scan, so the total can never
// disagree with the rows it was computed against.
func (r *ReviewRepository) SearchReviews(ctx context.Context, query string) (*models.LookupOutcome, error) {
	pattern := "%" + escapeLike(query) + "%"

	started := time.Now()
	var rows []reviewRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT external_id, review, sentiment, count(*) OVER () AS total_count
		 FROM reviews
		 WHERE review ILIKE ? ESCAPE '\'
		 LIMIT ?`,
		pattern, models.PageSize,
	).Scan(&rows).Error
	elapsed := time.Since(started).Milliseconds()
	if err != nil {
		return nil, fmt.Errorf("review search failed: %w", err)
	}

	records := make([]models.Record, 0, len(rows))
	var total int64
	for _, row := range rows {
		records = append(records, models.Record{
			ExternalID: row.ExternalID,
			Review:     row.Review,
			Sentiment:  row.Sentiment,
		})
		total = row.TotalCount
	}

	return &models.LookupOutcome{
		Source:        models.SourceRelational,
		Records:       records,
		Total:         total,
		ElapsedMillis: elapsed,
	}, nil
}

// escapeLike neutralizes LIKE metacharacters so user input always matches as
// a literal substring. The query value itself is bound, never concatenated.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
