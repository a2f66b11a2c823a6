package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"search-battle-backend/search/models"
	"search-battle-backend/utils"

	"github.com/elastic/go-elasticsearch/v8"
)

// ElasticRepository is the indexed half of the battle: a wildcard term match
// over the same corpus in the reviews index.
type ElasticRepository struct {
	esClient *elasticsearch.Client
	index    string
}

func NewElasticRepository(esClient *elasticsearch.Client, index string) *ElasticRepository {
	return &ElasticRepository{esClient: esClient, index: index}
}

func (r *ElasticRepository) Source() models.Source {
	return models.SourceIndexed
}

// SearchReviews runs a wildcard-wrapped, case-insensitive match per token,
// OR'd together, to stay behaviorally comparable with the ILIKE scan rather
// than invoking full relevance-ranked search.
func (r *ElasticRepository) SearchReviews(ctx context.Context, query string) (*models.LookupOutcome, error) {
	body, err := json.Marshal(buildSearchBody(query))
	if err != nil {
		return nil, fmt.Errorf("failed to encode search body: %w", err)
	}

	started := time.Now()
	res, err := r.esClient.Search(
		r.esClient.Search.WithContext(ctx),
		r.esClient.Search.WithIndex(r.index),
		r.esClient.Search.WithBody(bytes.NewReader(body)),
	)
	elapsed := time.Since(started).Milliseconds()
	if err != nil {
		return nil, fmt.Errorf("elasticsearch request failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		msg, readErr := utils.ReadResponseBody(res)
		if readErr != nil {
			msg = res.Status()
		}
		return nil, fmt.Errorf("elasticsearch returned %s: %s", res.Status(), msg)
	}

	var result esSearchResult
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode elasticsearch response: %w", err)
	}

	records := make([]models.Record, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		records = append(records, hit.Source)
	}

	return &models.LookupOutcome{
		Source:        models.SourceIndexed,
		Records:       records,
		Total:         result.Hits.Total.Value,
		ElapsedMillis: elapsed,
	}, nil
}

type esSearchResult struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []struct {
			Source models.Record `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// buildSearchBody constructs the query DSL as data, never as spliced strings,
// so user input cannot reach a query parser.
func buildSearchBody(query string) map[string]interface{} {
	tokens := strings.Fields(query)
	should := make([]map[string]interface{}, 0, len(tokens))
	for _, token := range tokens {
		should = append(should, map[string]interface{}{
			"wildcard": map[string]interface{}{
				"review": map[string]interface{}{
					"value":            "*" + escapeWildcard(token) + "*",
					"case_insensitive": true,
				},
			},
		})
	}

	return map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"should":               should,
				"minimum_should_match": 1,
			},
		},
		"size":             models.PageSize,
		"track_total_hits": true,
	}
}

// escapeWildcard neutralizes wildcard metacharacters inside a token so they
// match literally.
func escapeWildcard(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `*`, `\*`)
	s = strings.ReplaceAll(s, `?`, `\?`)
	return s
}
