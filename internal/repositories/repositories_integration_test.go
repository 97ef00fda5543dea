package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starwars_api/internal/models"
	"starwars_api/internal/testutil"
)

func intPtr(v int) *int { return &v }

const testPasswordHash = "argon2id$v=19$m=65536,t=1,p=4$c2FsdHNhbHQ$aGFzaGhhc2g"

func TestRepositoriesAgainstPostgres(t *testing.T) {
	pool, db := testutil.Postgres(t)
	ctx := context.Background()

	users := NewUserRepository(db)
	planets := NewPlanetRepository(db)
	characters := NewCharacterRepository(db)
	favorites := NewFavoriteRepository(db)
	queries := NewFavoriteQueries(pool)

	luke := models.NewUser("luke@rebellion.org", "luke", testPasswordHash)
	require.NoError(t, users.Create(ctx, luke))
	leia := models.NewUser("leia@rebellion.org", "leia", testPasswordHash)
	require.NoError(t, users.Create(ctx, leia))

	tatooine := &models.Planet{Name: "Tatooine", Climate: "arid", Terrain: "desert", Population: "200000",
		Diameter: intPtr(10465), OrbitalPeriod: intPtr(304), SwapiID: 1}
	require.NoError(t, planets.Create(ctx, tatooine))
	hoth := &models.Planet{Name: "Hoth", Climate: "frozen", Population: "unknown", SwapiID: 4}
	require.NoError(t, planets.Create(ctx, hoth))

	lukeChar := &models.Character{Name: "Luke Skywalker", Height: intPtr(172), Mass: intPtr(77),
		HomeworldID: &tatooine.ID, SwapiID: 1}
	require.NoError(t, characters.Create(ctx, lukeChar))
	yoda := &models.Character{Name: "Yoda", SwapiID: 20}
	require.NoError(t, characters.Create(ctx, yoda))

	t.Run("user defaults and lookups", func(t *testing.T) {
		got, err := users.FindByID(ctx, luke.ID)
		require.NoError(t, err)
		assert.True(t, got.IsActive)
		assert.False(t, got.CreatedAt.IsZero())

		got, err = users.FindByUsername(ctx, "leia")
		require.NoError(t, err)
		assert.Equal(t, leia.ID, got.ID)

		_, err = users.FindByEmail(ctx, "vader@empire.gov")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("uniqueness", func(t *testing.T) {
		assert.ErrorIs(t, users.Create(ctx, models.NewUser("luke@rebellion.org", "other", testPasswordHash)), ErrAlreadyExists)
		assert.ErrorIs(t, users.Create(ctx, models.NewUser("other@rebellion.org", "luke", testPasswordHash)), ErrAlreadyExists)
		assert.ErrorIs(t, planets.Create(ctx, &models.Planet{Name: "Tatooine", SwapiID: 99}), ErrAlreadyExists)
		assert.ErrorIs(t, planets.Create(ctx, &models.Planet{Name: "Dagobah", SwapiID: 1}), ErrAlreadyExists)
		assert.ErrorIs(t, characters.Create(ctx, &models.Character{Name: "Clone", SwapiID: 20}), ErrAlreadyExists)
	})

	t.Run("character homeworld is preloaded", func(t *testing.T) {
		got, err := characters.FindByID(ctx, lukeChar.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Homeworld)
		assert.Equal(t, "Tatooine", got.Homeworld.Name)

		got, err = characters.FindBySwapiID(ctx, 20)
		require.NoError(t, err)
		assert.Nil(t, got.Homeworld)
		assert.Nil(t, got.Serialize().Homeworld)
	})

	t.Run("upsert keeps ids stable", func(t *testing.T) {
		refreshed := &models.Planet{Name: "Tatooine", Climate: "arid", Terrain: "desert, dunes", Population: "200000", SwapiID: 1}
		require.NoError(t, planets.Upsert(ctx, refreshed))
		assert.Equal(t, tatooine.ID, refreshed.ID)

		got, err := planets.FindBySwapiID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "desert, dunes", got.Terrain)
	})

	t.Run("favorites", func(t *testing.T) {
		_, err := favorites.Add(ctx, luke.ID, models.PlanetTarget(tatooine.ID))
		require.NoError(t, err)
		_, err = favorites.Add(ctx, luke.ID, models.CharacterTarget(yoda.ID))
		require.NoError(t, err)
		_, err = favorites.Add(ctx, luke.ID, models.CharacterTarget(lukeChar.ID))
		require.NoError(t, err)
		_, err = favorites.Add(ctx, leia.ID, models.PlanetTarget(tatooine.ID))
		require.NoError(t, err)

		_, err = favorites.Add(ctx, luke.ID, models.PlanetTarget(tatooine.ID))
		assert.ErrorIs(t, err, ErrAlreadyExists)

		_, err = favorites.Add(ctx, luke.ID, models.PlanetTarget(424242))
		assert.ErrorIs(t, err, ErrInvalidReference)

		list, err := favorites.ListByUser(ctx, luke.ID)
		require.NoError(t, err)
		assert.Len(t, list, 3)

		favPlanets, err := queries.FavoritePlanets(ctx, luke.ID)
		require.NoError(t, err)
		require.Len(t, favPlanets, 1)
		assert.Equal(t, "Tatooine", favPlanets[0].Name)

		favCharacters, err := queries.FavoriteCharacters(ctx, luke.ID)
		require.NoError(t, err)
		require.Len(t, favCharacters, 2)
		assert.Equal(t, "Yoda", favCharacters[0].Name)
		assert.Nil(t, favCharacters[0].Homeworld)
		require.NotNil(t, favCharacters[1].Homeworld)
		assert.Equal(t, tatooine.ID, favCharacters[1].Homeworld.ID)

		fans, err := queries.PlanetFavoritedBy(ctx, tatooine.ID)
		require.NoError(t, err)
		require.Len(t, fans, 2)
		assert.Equal(t, []int64{luke.ID, leia.ID}, []int64{fans[0].ID, fans[1].ID})
		assert.Empty(t, fans[0].Password)

		count, err := queries.CountFavorites(ctx, models.CharacterTarget(yoda.ID))
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		require.NoError(t, favorites.Remove(ctx, luke.ID, models.CharacterTarget(yoda.ID)))
		assert.ErrorIs(t, favorites.Remove(ctx, luke.ID, models.CharacterTarget(yoda.ID)), ErrNotFound)
	})

	t.Run("check constraint backs up validation", func(t *testing.T) {
		both := &models.UserFavorite{UserID: luke.ID, PlanetID: &hoth.ID, CharacterID: &yoda.ID}
		err := translateError("raw insert", db.WithContext(ctx).Create(both).Error)
		assert.ErrorIs(t, err, ErrInvalidFavorite)

		neither := &models.UserFavorite{UserID: luke.ID}
		err = translateError("raw insert", db.WithContext(ctx).Create(neither).Error)
		assert.ErrorIs(t, err, ErrInvalidFavorite)
	})

	t.Run("delete policy", func(t *testing.T) {
		require.NoError(t, planets.Delete(ctx, tatooine.ID))

		got, err := characters.FindByID(ctx, lukeChar.ID)
		require.NoError(t, err)
		assert.Nil(t, got.HomeworldID)
		assert.Nil(t, got.Homeworld)

		fans, err := queries.PlanetFavoritedBy(ctx, tatooine.ID)
		require.NoError(t, err)
		assert.Empty(t, fans)

		assert.ErrorIs(t, planets.Delete(ctx, tatooine.ID), ErrNotFound)
	})
}
