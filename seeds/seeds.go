package seeds

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"search-battle-backend/config"
	"search-battle-backend/db/models"
	searchmodels "search-battle-backend/search/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedReviews loads the demo review corpus into Postgres and Elasticsearch so
// both adapters answer over the same logical dataset. Idempotent: existing
// rows are left alone, index writes overwrite by external id.
func SeedReviews(ctx context.Context, db *gorm.DB, esClient *elasticsearch.Client, index string) error {
	config.Logger.Info("Starting review corpus seeding...", zap.Int("reviews", len(reviewCorpus)))

	createdCount := 0
	for _, record := range reviewCorpus {
		review := models.Review{
			ID:         uuid.New(),
			ExternalID: record.ExternalID,
			Review:     record.Review,
			Sentiment:  record.Sentiment,
		}

		var existing models.Review
		result := db.Where("external_id = ?", review.ExternalID).First(&existing)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				if err := db.Create(&review).Error; err != nil {
					config.Logger.Error("Failed to create review",
						zap.Int("external_id", review.ExternalID),
						zap.Error(err))
					return fmt.Errorf("failed to create review %d: %w", review.ExternalID, err)
				}
				createdCount++
			} else {
				return fmt.Errorf("error checking for review %d: %w", review.ExternalID, result.Error)
			}
		}

		if err := indexReview(ctx, esClient, index, record); err != nil {
			return err
		}
	}

	config.Logger.Info("Review corpus seeding completed",
		zap.Int("created", createdCount),
		zap.Int("indexed", len(reviewCorpus)))
	return nil
}

func indexReview(ctx context.Context, esClient *elasticsearch.Client, index string, record searchmodels.Record) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode review %d: %w", record.ExternalID, err)
	}

	res, err := esClient.Index(
		index,
		bytes.NewReader(body),
		esClient.Index.WithDocumentID(strconv.Itoa(record.ExternalID)),
		esClient.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to index review %d: %w", record.ExternalID, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("failed to index review %d: %s", record.ExternalID, res.String())
	}
	return nil
}
