package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"starwars_api/internal/logger"
)

// Delete policy: removing a user, planet or character removes the favorites
// pointing at it; removing a planet clears homeworld_id on its characters.
var migrations = []string{
	createUsersTable,
	createPlanetsTable,
	createCharactersTable,
	createUserFavoritesTable,
	createUserFavoritesUniqueIndexes,
}

func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	log := logger.DB()
	for i, migration := range migrations {
		log.Debugf("running migration %d/%d", i+1, len(migrations))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Infof("all %d migrations completed", len(migrations))
	return nil
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
  id BIGSERIAL PRIMARY KEY,
  email VARCHAR(120) NOT NULL UNIQUE,
  password VARCHAR(255) NOT NULL,
  username VARCHAR(80) NOT NULL UNIQUE,
  first_name VARCHAR(80) NOT NULL DEFAULT '',
  last_name VARCHAR(80) NOT NULL DEFAULT '',
  is_active BOOLEAN NOT NULL DEFAULT TRUE,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);
`

const createPlanetsTable = `
CREATE TABLE IF NOT EXISTS planets (
  id BIGSERIAL PRIMARY KEY,
  name VARCHAR(120) NOT NULL UNIQUE,
  climate VARCHAR(120) NOT NULL DEFAULT '',
  terrain VARCHAR(120) NOT NULL DEFAULT '',
  population VARCHAR(120) NOT NULL DEFAULT '',
  diameter INTEGER,
  orbital_period INTEGER,
  swapi_id INTEGER NOT NULL UNIQUE
);
`

const createCharactersTable = `
CREATE TABLE IF NOT EXISTS characters (
  id BIGSERIAL PRIMARY KEY,
  name VARCHAR(120) NOT NULL,
  height INTEGER,
  mass INTEGER,
  hair_color VARCHAR(50) NOT NULL DEFAULT '',
  eye_color VARCHAR(50) NOT NULL DEFAULT '',
  birth_year VARCHAR(20) NOT NULL DEFAULT '',
  gender VARCHAR(20) NOT NULL DEFAULT '',
  homeworld_id BIGINT REFERENCES planets(id) ON DELETE SET NULL,
  swapi_id INTEGER NOT NULL UNIQUE
);

CREATE INDEX IF NOT EXISTS idx_characters_homeworld_id ON characters(homeworld_id);
`

const createUserFavoritesTable = `
CREATE TABLE IF NOT EXISTS user_favorites (
  id BIGSERIAL PRIMARY KEY,
  user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  planet_id BIGINT REFERENCES planets(id) ON DELETE CASCADE,
  character_id BIGINT REFERENCES characters(id) ON DELETE CASCADE,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  CONSTRAINT check_favorite_type CHECK (
    (planet_id IS NOT NULL AND character_id IS NULL) OR
    (planet_id IS NULL AND character_id IS NOT NULL)
  )
);

CREATE INDEX IF NOT EXISTS idx_user_favorites_user_id ON user_favorites(user_id);
CREATE INDEX IF NOT EXISTS idx_user_favorites_planet_id ON user_favorites(planet_id);
CREATE INDEX IF NOT EXISTS idx_user_favorites_character_id ON user_favorites(character_id);
`

const createUserFavoritesUniqueIndexes = `
CREATE UNIQUE INDEX IF NOT EXISTS uq_user_favorites_planet
  ON user_favorites(user_id, planet_id) WHERE planet_id IS NOT NULL;

CREATE UNIQUE INDEX IF NOT EXISTS uq_user_favorites_character
  ON user_favorites(user_id, character_id) WHERE character_id IS NOT NULL;
`
