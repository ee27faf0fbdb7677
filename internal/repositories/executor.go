package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
)

// executor returns the request transaction when one is bound to ctx, otherwise db.
func executor(ctx context.Context, db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// oneLine collapses a query so it is logged on a single line.
func oneLine(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
