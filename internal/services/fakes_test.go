package services

import (
	"context"
	"sort"
	"sync"

	"starwars_api/internal/models"
	"starwars_api/internal/repositories"
)

type fakeUsers struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[int64]*models.User{}}
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == user.Email || u.Username == user.Username {
			return repositories.ErrAlreadyExists
		}
	}
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.byID[user.ID] = &stored
	return nil
}

func (f *fakeUsers) FindByID(_ context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUsers) List(_ context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := make([]models.User, 0, len(f.byID))
	for _, u := range f.byID {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (f *fakeUsers) Update(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[user.ID]; !ok {
		return repositories.ErrNotFound
	}
	stored := *user
	f.byID[user.ID] = &stored
	return nil
}

type fakeCatalog struct {
	planets    map[int64]models.Planet
	characters map[int64]models.Character
}

func (f *fakeCatalog) FindPlanet(_ context.Context, id int64) (*models.Planet, error) {
	p, ok := f.planets[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &p, nil
}

type fakePlanets struct{ *fakeCatalog }

func (f fakePlanets) FindByID(ctx context.Context, id int64) (*models.Planet, error) {
	return f.FindPlanet(ctx, id)
}

func (f fakePlanets) List(_ context.Context) ([]models.Planet, error) {
	out := make([]models.Planet, 0, len(f.planets))
	for _, p := range f.planets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeCharacters struct{ *fakeCatalog }

func (f fakeCharacters) FindByID(_ context.Context, id int64) (*models.Character, error) {
	c, ok := f.characters[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &c, nil
}

func (f fakeCharacters) List(_ context.Context) ([]models.Character, error) {
	out := make([]models.Character, 0, len(f.characters))
	for _, c := range f.characters {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// fakeFavorites keeps favorites in memory and answers the join lookups from
// the shared catalog.
type fakeFavorites struct {
	catalog *fakeCatalog
	users   *fakeUsers
	rows    []models.UserFavorite
}

func (f *fakeFavorites) Add(ctx context.Context, userID int64, target models.FavoriteTarget) (*models.UserFavorite, error) {
	fav, err := models.NewUserFavorite(userID, target)
	if err != nil {
		return nil, repositories.ErrInvalidFavorite
	}
	switch target.Kind {
	case models.FavoritePlanet:
		if _, ok := f.catalog.planets[target.ID]; !ok {
			return nil, repositories.ErrInvalidReference
		}
	case models.FavoriteCharacter:
		if _, ok := f.catalog.characters[target.ID]; !ok {
			return nil, repositories.ErrInvalidReference
		}
	}
	for _, row := range f.rows {
		existing, _ := row.Target()
		if row.UserID == userID && existing == target {
			return nil, repositories.ErrAlreadyExists
		}
	}
	fav.ID = int64(len(f.rows) + 1)
	f.rows = append(f.rows, *fav)
	return fav, nil
}

func (f *fakeFavorites) Remove(_ context.Context, userID int64, target models.FavoriteTarget) error {
	for i, row := range f.rows {
		existing, _ := row.Target()
		if row.UserID == userID && existing == target {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeFavorites) targets(userID int64, kind models.FavoriteKind) []int64 {
	var ids []int64
	for _, row := range f.rows {
		t, _ := row.Target()
		if row.UserID == userID && t.Kind == kind {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

func (f *fakeFavorites) FavoritePlanets(_ context.Context, userID int64) ([]models.Planet, error) {
	var out []models.Planet
	for _, id := range f.targets(userID, models.FavoritePlanet) {
		out = append(out, f.catalog.planets[id])
	}
	return out, nil
}

func (f *fakeFavorites) FavoriteCharacters(_ context.Context, userID int64) ([]models.Character, error) {
	var out []models.Character
	for _, id := range f.targets(userID, models.FavoriteCharacter) {
		out = append(out, f.catalog.characters[id])
	}
	return out, nil
}

func (f *fakeFavorites) favoritedBy(target models.FavoriteTarget) []models.User {
	var out []models.User
	for _, row := range f.rows {
		t, _ := row.Target()
		if t == target {
			u, _ := f.users.FindByID(context.Background(), row.UserID)
			out = append(out, *u)
		}
	}
	return out
}

func (f *fakeFavorites) PlanetFavoritedBy(_ context.Context, planetID int64) ([]models.User, error) {
	return f.favoritedBy(models.PlanetTarget(planetID)), nil
}

func (f *fakeFavorites) CharacterFavoritedBy(_ context.Context, characterID int64) ([]models.User, error) {
	return f.favoritedBy(models.CharacterTarget(characterID)), nil
}

func intPtr(v int) *int { return &v }

func newCatalog() *fakeCatalog {
	tatooine := models.Planet{ID: 1, Name: "Tatooine", Climate: "arid", Terrain: "desert", Diameter: intPtr(10465), SwapiID: 1}
	alderaan := models.Planet{ID: 2, Name: "Alderaan", Climate: "temperate", SwapiID: 2}
	homeworld := tatooine.ID
	return &fakeCatalog{
		planets: map[int64]models.Planet{1: tatooine, 2: alderaan},
		characters: map[int64]models.Character{
			1: {ID: 1, Name: "Luke Skywalker", Height: intPtr(172), HomeworldID: &homeworld, Homeworld: &tatooine, SwapiID: 1},
			2: {ID: 2, Name: "C-3PO", SwapiID: 2},
		},
	}
}
