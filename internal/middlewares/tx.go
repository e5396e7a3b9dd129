package middlewares

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/club-polls/internal/db"
	"github.com/sbilibin2017/club-polls/internal/logger"
)

// TxMiddleware runs the wrapped handler inside one database transaction.
// Repositories pick the transaction up through db.QuerierFromContext.
func TxMiddleware(conn *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := conn.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			next.ServeHTTP(w, r.WithContext(db.WithTx(r.Context(), tx)))

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
		})
	}
}
