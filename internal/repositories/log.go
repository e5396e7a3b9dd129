package repositories

import (
	"strings"

	"github.com/sbilibin2017/club-polls/internal/logger"
)

// logQuery logs a query on a single line together with its outcome.
func logQuery(query string, args []any, rows int, err error) {
	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"rows", rows,
		"error", err,
	)
}
