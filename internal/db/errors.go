package db

import (
	"errors"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ConstraintKind classifies a store failure so services can switch on a
// stable enumeration instead of sniffing provider error codes.
type ConstraintKind int

const (
	// ConstraintNone means the error is not a recognized constraint violation.
	ConstraintNone ConstraintKind = iota
	// ConstraintUnique is a unique-index violation (duplicate key).
	ConstraintUnique
	// ConstraintCheck is a check-constraint violation.
	ConstraintCheck
	// ConstraintForeignKey is a foreign-key violation, including RESTRICT
	// rejections on delete.
	ConstraintForeignKey
)

// MySQL error numbers not covered by GORM's error translation.
const (
	mysqlErrDupEntry        = 1062
	mysqlErrRowIsReferenced = 1451
	mysqlErrNoReferencedRow = 1452
	mysqlErrCheckViolated   = 3819
)

// Classify maps a write/delete error to a ConstraintKind. It understands both
// GORM's translated sentinels and raw driver errors.
func Classify(err error) ConstraintKind {
	if err == nil {
		return ConstraintNone
	}
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ConstraintUnique
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return ConstraintCheck
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ConstraintForeignKey
	}
	var myErr *mysqldrv.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlErrDupEntry:
			return ConstraintUnique
		case mysqlErrCheckViolated:
			return ConstraintCheck
		case mysqlErrRowIsReferenced, mysqlErrNoReferencedRow:
			return ConstraintForeignKey
		}
	}
	return ConstraintNone
}
