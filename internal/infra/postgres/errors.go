package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que viram erros de domínio.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
	numericOverflow     = "22003"
)

func pgErrorCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

// isUniqueViolation checa a constraint quando informada; vazia aceita qualquer uma.
func isUniqueViolation(err error, constraint string) bool {
	code, name := pgErrorCode(err)
	return code == uniqueViolation && (constraint == "" || name == constraint)
}

func isForeignKeyViolation(err error) bool {
	code, _ := pgErrorCode(err)
	return code == foreignKeyViolation
}

func isCheckViolation(err error, constraint string) bool {
	code, name := pgErrorCode(err)
	return code == checkViolation && (constraint == "" || name == constraint)
}

func isNumericOverflow(err error) bool {
	code, _ := pgErrorCode(err)
	return code == numericOverflow
}
