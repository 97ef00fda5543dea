package models

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidFavoriteTarget = errors.New("favorite must reference exactly one of a planet or a character")

type FavoriteKind string

const (
	FavoritePlanet    FavoriteKind = "planet"
	FavoriteCharacter FavoriteKind = "character"
)

// FavoriteTarget is the thing a user favorites: a planet or a character,
// never both.
type FavoriteTarget struct {
	Kind FavoriteKind
	ID   int64
}

func PlanetTarget(id int64) FavoriteTarget {
	return FavoriteTarget{Kind: FavoritePlanet, ID: id}
}

func CharacterTarget(id int64) FavoriteTarget {
	return FavoriteTarget{Kind: FavoriteCharacter, ID: id}
}

func (t FavoriteTarget) Validate() error {
	switch t.Kind {
	case FavoritePlanet, FavoriteCharacter:
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidFavoriteTarget, t.Kind)
	}
	if t.ID <= 0 {
		return fmt.Errorf("%w: %s id must be positive", ErrInvalidFavoriteTarget, t.Kind)
	}
	return nil
}

func (t FavoriteTarget) String() string {
	return fmt.Sprintf("%s:%d", t.Kind, t.ID)
}

// Column is the user_favorites column holding this target's id.
func (t FavoriteTarget) Column() string {
	if t.Kind == FavoriteCharacter {
		return "character_id"
	}
	return "planet_id"
}

// UserFavorite is one row of the user_favorites join table. Exactly one of
// PlanetID and CharacterID is set; the check_favorite_type constraint enforces
// the same rule in the database.
type UserFavorite struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	UserID      int64     `gorm:"not null;index" json:"user_id"`
	PlanetID    *int64    `json:"planet_id"`
	CharacterID *int64    `json:"character_id"`
	CreatedAt   time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
}

func (UserFavorite) TableName() string {
	return "user_favorites"
}

func NewUserFavorite(userID int64, target FavoriteTarget) (*UserFavorite, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	fav := &UserFavorite{UserID: userID, CreatedAt: time.Now().UTC()}
	id := target.ID
	switch target.Kind {
	case FavoritePlanet:
		fav.PlanetID = &id
	case FavoriteCharacter:
		fav.CharacterID = &id
	}
	return fav, nil
}

// Target recovers the favorited planet or character.
func (f *UserFavorite) Target() (FavoriteTarget, error) {
	switch {
	case f.PlanetID != nil && f.CharacterID == nil:
		return PlanetTarget(*f.PlanetID), nil
	case f.PlanetID == nil && f.CharacterID != nil:
		return CharacterTarget(*f.CharacterID), nil
	default:
		return FavoriteTarget{}, ErrInvalidFavoriteTarget
	}
}

func (f *UserFavorite) Validate() error {
	if f.UserID <= 0 {
		return errors.New("favorite must belong to a user")
	}
	target, err := f.Target()
	if err != nil {
		return err
	}
	return target.Validate()
}

type SerializedFavorite struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	PlanetID    *int64 `json:"planet_id"`
	CharacterID *int64 `json:"character_id"`
	CreatedAt   string `json:"created_at"`
}

func (f *UserFavorite) Serialize() SerializedFavorite {
	return SerializedFavorite{
		ID:          f.ID,
		UserID:      f.UserID,
		PlanetID:    f.PlanetID,
		CharacterID: f.CharacterID,
		CreatedAt:   FormatTimestamp(f.CreatedAt),
	}
}
