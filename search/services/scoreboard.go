package services

import (
	"context"
	"fmt"
	"strconv"

	"search-battle-backend/search/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const racesKey = "search_battle:races"

func winKey(source models.Source) string {
	return fmt.Sprintf("search_battle:wins:%s", source)
}

// ScoreboardService keeps a running tally in Redis of which backend answered
// first. Nil-safe: with no Redis client every call is a no-op, so the
// coordinator works without a scoreboard in tests.
type ScoreboardService struct {
	redisClient *redis.Client
	logger      *zap.Logger
}

func NewScoreboardService(redisClient *redis.Client, logger *zap.Logger) *ScoreboardService {
	return &ScoreboardService{redisClient: redisClient, logger: logger}
}

// RecordWin counts one finished race for the backend that reported first.
// Failures are logged and swallowed; the scoreboard must never fail a search.
func (s *ScoreboardService) RecordWin(ctx context.Context, source models.Source) {
	if s == nil || s.redisClient == nil {
		return
	}

	pipe := s.redisClient.Pipeline()
	pipe.Incr(ctx, racesKey)
	pipe.Incr(ctx, winKey(source))
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Warn("failed to record race winner",
			zap.String("source", string(source)),
			zap.Error(err))
	}
}

// Scoreboard returns the current tally, zeroes when no scoreboard is wired.
func (s *ScoreboardService) Scoreboard(ctx context.Context) (*models.Scoreboard, error) {
	board := &models.Scoreboard{}
	if s == nil || s.redisClient == nil {
		return board, nil
	}

	values, err := s.redisClient.MGet(ctx,
		racesKey,
		winKey(models.SourceRelational),
		winKey(models.SourceIndexed),
	).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read scoreboard: %w", err)
	}

	board.Races = parseCounter(values[0])
	board.RelationalWins = parseCounter(values[1])
	board.IndexedWins = parseCounter(values[2])
	return board, nil
}

func parseCounter(value interface{}) int64 {
	s, ok := value.(string)
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
