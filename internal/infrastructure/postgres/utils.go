package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de violación de constraint único (el índice de sku).
const uniqueViolationCode = "23505"

// isUniqueViolation detecta el choque con el constraint único de SKU para
// mapearlo a ErrDuplicateSKU en el repositorio.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
