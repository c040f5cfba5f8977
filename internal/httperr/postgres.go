package httperr

import (
	"context"
	"errors"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

// Classes de erro do Postgres relevantes para o serviço.
const (
	pgUniqueViolation  = "23505"
	pgClassConnection  = "08"
	pgClassOperational = "57"
)

// IsUniqueViolation identifica violação de constraint de unicidade
// (placa duplicada, slot já ocupado pelo índice parcial).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}

// IsTransient identifica falhas de conexão que valem retry com backoff.
// Violações de constraint e registros ausentes nunca são transientes.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		class := pgErr.Code
		if len(class) >= 2 {
			class = class[:2]
		}
		return class == pgClassConnection || class == pgClassOperational
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	var opErr *net.OpError
	return errors.As(err, &opErr)
}
