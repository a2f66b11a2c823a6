package services

import (
	"context"
	"testing"

	"search-battle-backend/search/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestScoreboardNilServiceIsSafe(t *testing.T) {
	var s *ScoreboardService

	// Must not panic; the coordinator calls this on every race.
	s.RecordWin(context.Background(), models.SourceRelational)

	board, err := s.Scoreboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.Scoreboard{}, board)
}

func TestScoreboardWithoutRedisIsSafe(t *testing.T) {
	s := NewScoreboardService(nil, zap.NewNop())

	s.RecordWin(context.Background(), models.SourceIndexed)

	board, err := s.Scoreboard(context.Background())
	require.NoError(t, err)
	assert.Zero(t, board.Races)
	assert.Zero(t, board.RelationalWins)
	assert.Zero(t, board.IndexedWins)
}

func TestParseCounter(t *testing.T) {
	assert.Equal(t, int64(42), parseCounter("42"))
	assert.Equal(t, int64(0), parseCounter(nil))
	assert.Equal(t, int64(0), parseCounter("not-a-number"))
}
