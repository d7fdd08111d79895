package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bcortri1/jobly/internal/apperr"
	"github.com/bcortri1/jobly/internal/events"
)

const maxBodyBytes = 1 << 20

func readBody(r *http.Request) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, apperr.Invalid("invalid request body")
	}
	if len(b) == 0 {
		return []byte("{}"), nil
	}
	return b, nil
}

// parseID reports whether raw is a job id. Ids are positive in storage but
// negative ones are still well formed and simply match nothing.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	return id, err == nil
}

// publish sends ev and only logs a failure.
func publish(ctx context.Context, p events.Publisher, ev events.Event) {
	if err := p.Publish(ctx, ev); err != nil {
		logger.Warn("publish failed", slog.String("type", ev.Type), slog.Any("err", err))
	}
}
