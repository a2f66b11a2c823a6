package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"search-battle-backend/search/models"

	"go.uber.org/zap"
)

// LookupRepository is one side of the battle. Both backends are injected so
// the coordinator can be exercised against fakes.
type LookupRepository interface {
	Source() models.Source
	SearchReviews(ctx context.Context, query string) (*models.LookupOutcome, error)
}

// SearchCoordinator races the relational and indexed lookups and streams each
// outcome the moment it settles, in whichever order the backends answer.
type SearchCoordinator struct {
	relational LookupRepository
	indexed    LookupRepository
	scoreboard *ScoreboardService
	timeout    time.Duration
	logger     *zap.Logger
}

func NewSearchCoordinator(
	relational LookupRepository,
	indexed LookupRepository,
	scoreboard *ScoreboardService,
	timeout time.Duration,
	logger *zap.Logger,
) *SearchCoordinator {
	return &SearchCoordinator{
		relational: relational,
		indexed:    indexed,
		scoreboard: scoreboard,
		timeout:    timeout,
		logger:     logger,
	}
}

// Search dispatches both lookups concurrently and returns a channel carrying
// at most two events. The channel closes once both sides have settled; no
// sentinel event is sent. A backend failure becomes a tagged error event and
// never suppresses the other side's result.
func (c *SearchCoordinator) Search(ctx context.Context, query string) (<-chan models.SearchEvent, error) {
	if strings.TrimSpace(query) == "" {
		return nil, models.ErrInvalidQuery
	}

	settled := make(chan models.SearchEvent, 2)
	var wg sync.WaitGroup
	for _, repo := range []LookupRepository{c.relational, c.indexed} {
		wg.Add(1)
		go func(repo LookupRepository) {
			defer wg.Done()
			settled <- c.runLookup(ctx, repo, query)
		}(repo)
	}
	go func() {
		wg.Wait()
		close(settled)
	}()

	// Buffered to capacity, so a caller that disconnects mid-stream never
	// blocks the forwarder; late results are simply discarded.
	events := make(chan models.SearchEvent, 2)
	go func() {
		defer close(events)
		winnerRecorded := false
		for event := range settled {
			if !winnerRecorded && !event.Failed() {
				winnerRecorded = true
				c.scoreboard.RecordWin(ctx, event.Source)
			}
			events <- event
		}
	}()

	return events, nil
}

func (c *SearchCoordinator) runLookup(ctx context.Context, repo LookupRepository, query string) models.SearchEvent {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	started := time.Now()
	outcome, err := repo.SearchReviews(ctx, query)
	elapsed := time.Since(started).Milliseconds()

	if err != nil {
		backendErr := &models.BackendError{Source: repo.Source(), Cause: err}
		c.logger.Error("backend lookup failed",
			zap.String("source", string(repo.Source())),
			zap.Error(err))
		return models.SearchEvent{
			Source: repo.Source(),
			Error:  backendErr.Error(),
			Time:   elapsed,
		}
	}

	return models.SearchEvent{
		Source: outcome.Source,
		Data: &models.ResultPage{
			Data:  outcome.Records,
			Total: outcome.Total,
		},
		Time: outcome.ElapsedMillis,
	}
}
