package controllers

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// SearchBattleController streams both backend outcomes over SSE as they
// settle. The stream closing is the terminal signal; no done event is sent.
func (c *SearchController) SearchBattleController(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	if strings.TrimSpace(query) == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Search query is required",
		})
	}

	// Detached from the fasthttp request context: the stream writer runs
	// after this handler returns. Cancelled when the stream ends or the
	// caller disconnects, so in-flight lookups stop with it.
	searchCtx, cancel := context.WithCancel(context.Background())

	events, err := c.coordinator.Search(searchCtx, query)
	if err != nil {
		cancel()
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	ctx.Set(fiber.HeaderContentType, "text/event-stream")
	ctx.Set(fiber.HeaderCacheControl, "no-cache")
	ctx.Set(fiber.HeaderConnection, "keep-alive")
	ctx.Set("X-Accel-Buffering", "no")

	ctx.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		for event := range events {
			payload, err := json.Marshal(event)
			if err != nil {
				c.logger.Error("failed to marshal search event", zap.Error(err))
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			// Flush per event so a fast backend is never held back by a
			// slow one. A flush error means the caller disconnected.
			if err := w.Flush(); err != nil {
				c.logger.Warn("client disconnected mid-stream", zap.Error(err))
				return
			}
		}
	}))

	return nil
}
