package services

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starwars_api/internal/metrics"
	"starwars_api/internal/models"
	"starwars_api/internal/repositories"
)

type favoritesFixture struct {
	users     *fakeUsers
	catalog   *fakeCatalog
	favorites *fakeFavorites
	service   *FavoriteService
	catalogue *CatalogService
}

func newFavoritesFixture() *favoritesFixture {
	users := newFakeUsers()
	catalog := newCatalog()
	favorites := &fakeFavorites{catalog: catalog, users: users}
	return &favoritesFixture{
		users:     users,
		catalog:   catalog,
		favorites: favorites,
		service:   NewFavoriteService(users, favorites, favorites),
		catalogue: NewCatalogService(fakePlanets{catalog}, fakeCharacters{catalog}, favorites),
	}
}

func TestFavoritesAddAndList(t *testing.T) {
	fx := newFavoritesFixture()
	ctx := context.Background()
	user := seedUser(t, fx.users, "luke@tatooine.org", "luke")

	before := testutil.ToFloat64(metrics.FavoritesAdded.WithLabelValues("planet"))

	fav, err := fx.service.AddPlanet(ctx, user.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, fav.PlanetID)
	assert.Nil(t, fav.CharacterID)

	_, err = fx.service.AddCharacter(ctx, user.ID, 1)
	require.NoError(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.FavoritesAdded.WithLabelValues("planet")))

	favs, err := fx.service.ListFavorites(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, favs.Planets, 1)
	require.Len(t, favs.Characters, 1)
	assert.Equal(t, "Tatooine", favs.Planets[0].Name)

	out := favs.Serialize()
	require.NotNil(t, out.Characters[0].Homeworld)
	assert.Equal(t, "Tatooine", out.Characters[0].Homeworld.Name)
}

func TestFavoritesEmptyListSerializesAsArrays(t *testing.T) {
	fx := newFavoritesFixture()
	user := seedUser(t, fx.users, "luke@tatooine.org", "luke")

	favs, err := fx.service.ListFavorites(context.Background(), user.ID)
	require.NoError(t, err)
	out := favs.Serialize()
	assert.NotNil(t, out.Planets)
	assert.NotNil(t, out.Characters)
}

func TestFavoritesAddDuplicate(t *testing.T) {
	fx := newFavoritesFixture()
	ctx := context.Background()
	user := seedUser(t, fx.users, "luke@tatooine.org", "luke")

	_, err := fx.service.AddPlanet(ctx, user.ID, 2)
	require.NoError(t, err)
	_, err = fx.service.AddPlanet(ctx, user.ID, 2)
	assert.ErrorIs(t, err, repositories.ErrAlreadyExists)
}

func TestFavoritesAddUnknownTarget(t *testing.T) {
	fx := newFavoritesFixture()
	user := seedUser(t, fx.users, "luke@tatooine.org", "luke")

	_, err := fx.service.AddCharacter(context.Background(), user.ID, 404)
	assert.ErrorIs(t, err, repositories.ErrInvalidReference)
}

func TestFavoritesInactiveUserCannotAdd(t *testing.T) {
	fx := newFavoritesFixture()
	ctx := context.Background()
	user := seedUser(t, fx.users, "luke@tatooine.org", "luke")
	user.IsActive = false
	require.NoError(t, fx.users.Update(ctx, user))

	_, err := fx.service.AddPlanet(ctx, user.ID, 1)
	assert.ErrorIs(t, err, ErrUserInactive)
	assert.Empty(t, fx.favorites.rows)
}

func TestFavoritesUnknownUser(t *testing.T) {
	fx := newFavoritesFixture()
	_, err := fx.service.AddPlanet(context.Background(), 77, 1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = fx.service.ListFavorites(context.Background(), 77)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestFavoritesRemove(t *testing.T) {
	fx := newFavoritesFixture()
	ctx := context.Background()
	user := seedUser(t, fx.users, "luke@tatooine.org", "luke")

	_, err := fx.service.AddCharacter(ctx, user.ID, 2)
	require.NoError(t, err)

	require.NoError(t, fx.service.RemoveCharacter(ctx, user.ID, 2))
	assert.ErrorIs(t, fx.service.RemoveCharacter(ctx, user.ID, 2), repositories.ErrNotFound)
	assert.ErrorIs(t, fx.service.RemovePlanet(ctx, user.ID, 1), repositories.ErrNotFound)
}

func TestCatalogFavoritedBy(t *testing.T) {
	fx := newFavoritesFixture()
	ctx := context.Background()
	luke := seedUser(t, fx.users, "luke@tatooine.org", "luke")
	leia := seedUser(t, fx.users, "leia@alderaan.gov", "leia")

	_, err := fx.service.Add(ctx, luke.ID, models.PlanetTarget(1))
	require.NoError(t, err)
	_, err = fx.service.Add(ctx, leia.ID, models.PlanetTarget(1))
	require.NoError(t, err)

	fans, err := fx.catalogue.PlanetFavoritedBy(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, fans, 2)

	fans, err = fx.catalogue.CharacterFavoritedBy(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, fans)

	_, err = fx.catalogue.PlanetFavoritedBy(ctx, 404)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCatalogGetCharacterKeepsHomeworld(t *testing.T) {
	fx := newFavoritesFixture()
	character, err := fx.catalogue.GetCharacter(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, character.Homeworld)
	assert.Equal(t, int64(1), character.Homeworld.ID)

	planets, err := fx.catalogue.ListPlanets(context.Background())
	require.NoError(t, err)
	assert.Len(t, planets, 2)
}
