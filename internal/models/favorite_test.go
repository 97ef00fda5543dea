package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestNewUserFavoriteSetsExactlyOneTarget(t *testing.T) {
	fav, err := NewUserFavorite(1, PlanetTarget(5))
	require.NoError(t, err)
	require.NotNil(t, fav.PlanetID)
	assert.Equal(t, int64(5), *fav.PlanetID)
	assert.Nil(t, fav.CharacterID)
	assert.False(t, fav.CreatedAt.IsZero())

	fav, err = NewUserFavorite(1, CharacterTarget(9))
	require.NoError(t, err)
	assert.Nil(t, fav.PlanetID)
	require.NotNil(t, fav.CharacterID)
	assert.Equal(t, int64(9), *fav.CharacterID)
}

func TestNewUserFavoriteRejectsBadTargets(t *testing.T) {
	cases := map[string]FavoriteTarget{
		"zero id":      PlanetTarget(0),
		"negative id":  CharacterTarget(-3),
		"unknown kind": {Kind: "starship", ID: 1},
		"empty":        {},
	}
	for name, target := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewUserFavorite(1, target)
			assert.ErrorIs(t, err, ErrInvalidFavoriteTarget)
		})
	}
}

func TestUserFavoriteTarget(t *testing.T) {
	tests := []struct {
		name    string
		fav     UserFavorite
		want    FavoriteTarget
		wantErr bool
	}{
		{"planet", UserFavorite{UserID: 1, PlanetID: int64Ptr(2)}, PlanetTarget(2), false},
		{"character", UserFavorite{UserID: 1, CharacterID: int64Ptr(3)}, CharacterTarget(3), false},
		{"both", UserFavorite{UserID: 1, PlanetID: int64Ptr(2), CharacterID: int64Ptr(3)}, FavoriteTarget{}, true},
		{"neither", UserFavorite{UserID: 1}, FavoriteTarget{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fav.Target()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFavoriteTarget)
				assert.ErrorIs(t, tt.fav.Validate(), ErrInvalidFavoriteTarget)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, tt.fav.Validate())
		})
	}
}

func TestUserFavoriteValidateRequiresUser(t *testing.T) {
	fav := UserFavorite{PlanetID: int64Ptr(1)}
	assert.Error(t, fav.Validate())
}

func TestFavoriteTargetColumn(t *testing.T) {
	assert.Equal(t, "planet_id", PlanetTarget(1).Column())
	assert.Equal(t, "character_id", CharacterTarget(1).Column())
	assert.Equal(t, "character:4", CharacterTarget(4).String())
}

func TestUserFavoriteSerialize(t *testing.T) {
	fav, err := NewUserFavorite(8, CharacterTarget(4))
	require.NoError(t, err)
	fav.ID = 11

	s := fav.Serialize()
	assert.Equal(t, int64(11), s.ID)
	assert.Equal(t, int64(8), s.UserID)
	assert.Nil(t, s.PlanetID)
	assert.Equal(t, int64(4), *s.CharacterID)
	assert.Equal(t, []string{"character_id", "created_at", "id", "planet_id", "user_id"}, keysOf(t, s))
}
