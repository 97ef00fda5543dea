package models

// Planet is shared reference data keyed upstream by SwapiID. Population stays
// free text because the upstream dataset uses values like "unknown".
// A nil Diameter or OrbitalPeriod means the value is unknown.
type Planet struct {
	ID            int64  `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"type:varchar(120);not null;unique" json:"name"`
	Climate       string `gorm:"type:varchar(120);not null" json:"climate"`
	Terrain       string `gorm:"type:varchar(120);not null" json:"terrain"`
	Population    string `gorm:"type:varchar(120);not null" json:"population"`
	Diameter      *int   `json:"diameter"`
	OrbitalPeriod *int   `json:"orbital_period"`
	SwapiID       int    `gorm:"column:swapi_id;not null;unique" json:"swapi_id"`
}

type SerializedPlanet struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Climate       string `json:"climate"`
	Terrain       string `json:"terrain"`
	Population    string `json:"population"`
	Diameter      *int   `json:"diameter"`
	OrbitalPeriod *int   `json:"orbital_period"`
	SwapiID       int    `json:"swapi_id"`
}

func (p *Planet) Serialize() SerializedPlanet {
	return SerializedPlanet{
		ID:            p.ID,
		Name:          p.Name,
		Climate:       p.Climate,
		Terrain:       p.Terrain,
		Population:    p.Population,
		Diameter:      p.Diameter,
		OrbitalPeriod: p.OrbitalPeriod,
		SwapiID:       p.SwapiID,
	}
}

func SerializePlanets(planets []Planet) []SerializedPlanet {
	out := make([]SerializedPlanet, 0, len(planets))
	for i := range planets {
		out = append(out, planets[i].Serialize())
	}
	return out
}
