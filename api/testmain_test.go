package api_test

import (
	"io"
	"log/slog"
	"testing"

	"go.uber.org/goleak"

	"github.com/bcortri1/jobly/api"
)

func TestMain(m *testing.M) {
	api.SetLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	goleak.VerifyTestMain(m)
}
