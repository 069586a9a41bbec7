package handlers

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/paintconnect/storefront/internal/logging"
	"github.com/paintconnect/storefront/internal/mykafka"
)

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

// parseCategoryIDs accepts repeated ?category= params and a comma-separated
// ?categories= list; malformed ids are dropped, this feeds a search box.
func parseCategoryIDs(c echo.Context) []uuid.UUID {
	raw := c.QueryParams()["category"]
	if joined := c.QueryParam("categories"); joined != "" {
		raw = append(raw, strings.Split(joined, ",")...)
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// publish sends a domain event best-effort. A dead broker must not fail the
// request that triggered the event.
func publish(c echo.Context, producer *mykafka.Producer, topic, key string, event map[string]any) {
	if producer == nil {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := producer.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka_publish_error", "topic", topic, "error", err)
	}
}
