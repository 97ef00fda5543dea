package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"starwars_api/internal/models"
)

// Querier is the subset of *pgxpool.Pool used for read-side lookups.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	planetColumns = []string{
		"p.id", "p.name", "p.climate", "p.terrain", "p.population",
		"p.diameter", "p.orbital_period", "p.swapi_id",
	}
	characterColumns = []string{
		"c.id", "c.name", "c.height", "c.mass", "c.hair_color", "c.eye_color",
		"c.birth_year", "c.gender", "c.homeworld_id", "c.swapi_id",
	}
	userColumns = []string{
		"u.id", "u.email", "u.username", "u.first_name", "u.last_name", "u.is_active", "u.created_at",
	}
)

// FavoriteQueries answers the relationship lookups (a user's favorite planets
// and characters, and who favorited a given record) with joins through
// user_favorites.
type FavoriteQueries struct {
	q Querier
}

func NewFavoriteQueries(q Querier) *FavoriteQueries {
	return &FavoriteQueries{q: q}
}

func favoritePlanetsQuery(userID int64) sq.SelectBuilder {
	return psql.Select(planetColumns...).
		From("planets p").
		Join("user_favorites uf ON uf.planet_id = p.id").
		Where(sq.Eq{"uf.user_id": userID}).
		OrderBy("uf.created_at", "uf.id")
}

func favoriteCharactersQuery(userID int64) sq.SelectBuilder {
	return psql.Select(characterColumns...).
		From("characters c").
		Join("user_favorites uf ON uf.character_id = c.id").
		Where(sq.Eq{"uf.user_id": userID}).
		OrderBy("uf.created_at", "uf.id")
}

func planetsByIDQuery(ids []int64) sq.SelectBuilder {
	return psql.Select(planetColumns...).
		From("planets p").
		Where(sq.Eq{"p.id": ids})
}

func favoritedByQuery(target models.FavoriteTarget) sq.SelectBuilder {
	return psql.Select(userColumns...).
		From("users u").
		Join("user_favorites uf ON uf.user_id = u.id").
		Where(sq.Eq{"uf." + target.Column(): target.ID}).
		OrderBy("u.id")
}

func countFavoritesQuery(target models.FavoriteTarget) sq.SelectBuilder {
	return psql.Select("COUNT(*)").
		From("user_favorites").
		Where(sq.Eq{target.Column(): target.ID})
}

func (f *FavoriteQueries) FavoritePlanets(ctx context.Context, userID int64) ([]models.Planet, error) {
	sql, args, err := favoritePlanetsQuery(userID).ToSql()
	if err != nil {
		return nil, err
	}
	return f.queryPlanets(ctx, "favorite planets", sql, args)
}

// FavoriteCharacters returns the user's favorite characters with their
// homeworlds loaded.
func (f *FavoriteQueries) FavoriteCharacters(ctx context.Context, userID int64) ([]models.Character, error) {
	sql, args, err := favoriteCharactersQuery(userID).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := f.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, translateError("favorite characters", err)
	}
	characters, err := pgx.CollectRows(rows, scanCharacter)
	if err != nil {
		return nil, translateError("favorite characters", err)
	}

	if err := f.attachHomeworlds(ctx, characters); err != nil {
		return nil, err
	}
	return characters, nil
}

func (f *FavoriteQueries) PlanetFavoritedBy(ctx context.Context, planetID int64) ([]models.User, error) {
	return f.favoritedBy(ctx, models.PlanetTarget(planetID))
}

func (f *FavoriteQueries) CharacterFavoritedBy(ctx context.Context, characterID int64) ([]models.User, error) {
	return f.favoritedBy(ctx, models.CharacterTarget(characterID))
}

func (f *FavoriteQueries) CountFavorites(ctx context.Context, target models.FavoriteTarget) (int64, error) {
	if err := target.Validate(); err != nil {
		return 0, translateError("count favorites", err)
	}
	sql, args, err := countFavoritesQuery(target).ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := f.q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, translateError("count favorites", err)
	}
	return count, nil
}

func (f *FavoriteQueries) favoritedBy(ctx context.Context, target models.FavoriteTarget) ([]models.User, error) {
	if err := target.Validate(); err != nil {
		return nil, translateError("favorited by", err)
	}
	sql, args, err := favoritedByQuery(target).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := f.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, translateError("favorited by", err)
	}
	users, err := pgx.CollectRows(rows, scanUser)
	if err != nil {
		return nil, translateError("favorited by", err)
	}
	return users, nil
}

func (f *FavoriteQueries) attachHomeworlds(ctx context.Context, characters []models.Character) error {
	seen := make(map[int64]bool)
	var ids []int64
	for _, c := range characters {
		if c.HomeworldID != nil && !seen[*c.HomeworldID] {
			seen[*c.HomeworldID] = true
			ids = append(ids, *c.HomeworldID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	sql, args, err := planetsByIDQuery(ids).ToSql()
	if err != nil {
		return err
	}
	planets, err := f.queryPlanets(ctx, "homeworlds", sql, args)
	if err != nil {
		return err
	}

	byID := make(map[int64]*models.Planet, len(planets))
	for i := range planets {
		byID[planets[i].ID] = &planets[i]
	}
	for i := range characters {
		if characters[i].HomeworldID != nil {
			characters[i].Homeworld = byID[*characters[i].HomeworldID]
		}
	}
	return nil
}

func (f *FavoriteQueries) queryPlanets(ctx context.Context, op, sql string, args []any) ([]models.Planet, error) {
	rows, err := f.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, translateError(op, err)
	}
	planets, err := pgx.CollectRows(rows, scanPlanet)
	if err != nil {
		return nil, translateError(op, err)
	}
	return planets, nil
}

func scanPlanet(row pgx.CollectableRow) (models.Planet, error) {
	var p models.Planet
	err := row.Scan(&p.ID, &p.Name, &p.Climate, &p.Terrain, &p.Population, &p.Diameter, &p.OrbitalPeriod, &p.SwapiID)
	return p, err
}

func scanCharacter(row pgx.CollectableRow) (models.Character, error) {
	var c models.Character
	err := row.Scan(&c.ID, &c.Name, &c.Height, &c.Mass, &c.HairColor, &c.EyeColor,
		&c.BirthYear, &c.Gender, &c.HomeworldID, &c.SwapiID)
	return c, err
}

func scanUser(row pgx.CollectableRow) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName, &u.IsActive, &u.CreatedAt)
	return u, err
}
