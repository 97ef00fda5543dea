package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"starwars_api/internal/models"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrAlreadyExists    = errors.New("record already exists")
	ErrInvalidReference = errors.New("referenced record does not exist")
	ErrInvalidFavorite  = errors.New("invalid favorite")
	ErrUnhashedPassword = errors.New("password must be hashed before it is stored")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// translateError maps driver and ORM errors onto the package sentinels while
// keeping the original error in the chain.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}

	var sentinel error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, pgx.ErrNoRows):
		sentinel = ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		sentinel = ErrAlreadyExists
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		sentinel = ErrInvalidReference
	case errors.Is(err, gorm.ErrCheckConstraintViolated), errors.Is(err, models.ErrInvalidFavoriteTarget):
		sentinel = ErrInvalidFavorite
	}

	var pgErr *pgconn.PgError
	if sentinel == nil && errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			sentinel = ErrAlreadyExists
		case pgForeignKeyViolation:
			sentinel = ErrInvalidReference
		case pgCheckViolation:
			sentinel = ErrInvalidFavorite
		}
	}

	if sentinel == nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, sentinel, err)
}
