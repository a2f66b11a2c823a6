package controllers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"search-battle-backend/search/controllers"
	"search-battle-backend/search/models"
	"search-battle-backend/search/routes"
	"search-battle-backend/search/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepository struct {
	source  models.Source
	outcome *models.LookupOutcome
	err     error
	delay   time.Duration
	calls   atomic.Int32
}

func (f *fakeRepository) Source() models.Source {
	return f.source
}

func (f *fakeRepository) SearchReviews(ctx context.Context, query string) (*models.LookupOutcome, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.outcome, nil
}

func setupApp(relational, indexed services.LookupRepository) *fiber.App {
	app := fiber.New()
	coordinator := services.NewSearchCoordinator(relational, indexed, nil, time.Second, zap.NewNop())
	controller := controllers.NewSearchController(coordinator, nil, zap.NewNop())
	routes.InitSearchRoutes(app, controller)
	return app
}

func wombatRepo(source models.Source) *fakeRepository {
	return &fakeRepository{
		source: source,
		outcome: &models.LookupOutcome{
			Source: source,
			Records: []models.Record{
				{ExternalID: 1, Review: "a rare wombat sighting", Sentiment: 0},
			},
			Total: 1,
		},
	}
}

func parseEvents(t *testing.T, body string) []models.SearchEvent {
	t.Helper()
	var events []models.SearchEvent
	for _, block := range strings.Split(body, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		require.True(t, strings.HasPrefix(block, "data: "), "unexpected SSE block: %q", block)
		var event models.SearchEvent
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(block, "data: ")), &event))
		events = append(events, event)
	}
	return events
}

func TestSearchRequiresQuery(t *testing.T) {
	for _, target := range []string{"/search", "/search?q=", "/search?q=%20%20"} {
		t.Run(target, func(t *testing.T) {
			relational := wombatRepo(models.SourceRelational)
			indexed := wombatRepo(models.SourceIndexed)
			app := setupApp(relational, indexed)

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil), 5000)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), "error")

			assert.Equal(t, int32(0), relational.calls.Load(), "no adapter may be invoked for an empty query")
			assert.Equal(t, int32(0), indexed.calls.Load(), "no adapter may be invoked for an empty query")
		})
	}
}

func TestSearchStreamsBothOutcomes(t *testing.T) {
	relational := wombatRepo(models.SourceRelational)
	indexed := wombatRepo(models.SourceIndexed)
	app := setupApp(relational, indexed)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/search?q=wombat", nil), 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get(fiber.HeaderContentType))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	events := parseEvents(t, string(body))
	require.Len(t, events, 2)

	seen := map[models.Source]bool{}
	for _, event := range events {
		seen[event.Source] = true
		assert.False(t, event.Failed())
		require.NotNil(t, event.Data)
		assert.Equal(t, int64(1), event.Data.Total)
		require.Len(t, event.Data.Data, 1)
		assert.Equal(t, 1, event.Data.Data[0].ExternalID)
		assert.Equal(t, "a rare wombat sighting", event.Data.Data[0].Review)
		assert.GreaterOrEqual(t, event.Time, int64(0))
	}
	assert.True(t, seen[models.SourceRelational])
	assert.True(t, seen[models.SourceIndexed])
}

func TestSearchStreamKeepsHealthySideOnFailure(t *testing.T) {
	relational := wombatRepo(models.SourceRelational)
	indexed := &fakeRepository{source: models.SourceIndexed, err: errors.New("connection refused")}
	app := setupApp(relational, indexed)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/search?q=wombat", nil), 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	events := parseEvents(t, string(body))
	require.Len(t, events, 2)

	for _, event := range events {
		switch event.Source {
		case models.SourceIndexed:
			assert.True(t, event.Failed())
			assert.Contains(t, event.Error, "indexed backend")
		case models.SourceRelational:
			assert.False(t, event.Failed())
			require.NotNil(t, event.Data)
			assert.Equal(t, int64(1), event.Data.Total)
		default:
			t.Fatalf("unexpected source %q", event.Source)
		}
	}
}

func TestScoreboardWithoutRedisReturnsZeroes(t *testing.T) {
	app := setupApp(wombatRepo(models.SourceRelational), wombatRepo(models.SourceIndexed))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/search/scoreboard", nil), 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var board models.Scoreboard
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&board))
	assert.Zero(t, board.Races)
	assert.Zero(t, board.RelationalWins)
	assert.Zero(t, board.IndexedWins)
}
