package db

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Querier is the read surface shared by *sqlx.DB and *sqlx.Tx.
type Querier interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	Rebind(query string) string
}

type txKey struct{}

// WithTx stores a transaction in the context.
func WithTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromContext returns the transaction stored in the context, or nil.
func TxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx
}

// QuerierFromContext returns the request transaction when one is open,
// otherwise the pooled connection.
func QuerierFromContext(ctx context.Context, conn *sqlx.DB) Querier {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return conn
}
