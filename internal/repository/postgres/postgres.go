// Package postgres implements the repository interfaces on PostgreSQL.
//
// Statements are assembled with squirrel using $N placeholders; search and
// partial-update fragments come from internal/sqlbuild.
package postgres

import (
	"io"
	"log/slog"

	sq "github.com/Masterminds/squirrel"

	"github.com/bcortri1/jobly/internal/db"
	"github.com/bcortri1/jobly/pkg/repository"
)

// PGRepo implements repository interfaces on a db.Querier.
type PGRepo struct {
	conn   db.Querier
	logger *slog.Logger
	sb     sq.StatementBuilderType
}

// Ensure PGRepo implements the public interfaces.
var _ repository.JobRepo = (*PGRepo)(nil)
var _ repository.CompanyRepo = (*PGRepo)(nil)

func New(conn db.Querier, logger *slog.Logger) *PGRepo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &PGRepo{
		conn:   conn,
		logger: logger,
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}
