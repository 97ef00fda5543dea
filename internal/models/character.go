package models

// Character references its homeworld by HomeworldID. Homeworld is only
// populated when a repository preloads it; it is never a back-pointer.
type Character struct {
	ID          int64   `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"type:varchar(120);not null" json:"name"`
	Height      *int    `json:"height"`
	Mass        *int    `json:"mass"`
	HairColor   string  `gorm:"type:varchar(50);not null" json:"hair_color"`
	EyeColor    string  `gorm:"type:varchar(50);not null" json:"eye_color"`
	BirthYear   string  `gorm:"type:varchar(20);not null" json:"birth_year"`
	Gender      string  `gorm:"type:varchar(20);not null" json:"gender"`
	HomeworldID *int64  `json:"homeworld_id"`
	Homeworld   *Planet `gorm:"foreignKey:HomeworldID;constraint:OnDelete:SET NULL" json:"-"`
	SwapiID     int     `gorm:"column:swapi_id;not null;unique" json:"swapi_id"`
}

type SerializedCharacter struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	Height    *int              `json:"height"`
	Mass      *int              `json:"mass"`
	HairColor string            `json:"hair_color"`
	EyeColor  string            `json:"eye_color"`
	BirthYear string            `json:"birth_year"`
	Gender    string            `json:"gender"`
	Homeworld *SerializedPlanet `json:"homeworld"`
	SwapiID   int               `json:"swapi_id"`
}

// Serialize embeds the serialized homeworld when it is loaded; otherwise the
// homeworld key is null.
func (c *Character) Serialize() SerializedCharacter {
	out := SerializedCharacter{
		ID:        c.ID,
		Name:      c.Name,
		Height:    c.Height,
		Mass:      c.Mass,
		HairColor: c.HairColor,
		EyeColor:  c.EyeColor,
		BirthYear: c.BirthYear,
		Gender:    c.Gender,
		SwapiID:   c.SwapiID,
	}
	if c.Homeworld != nil {
		hw := c.Homeworld.Serialize()
		out.Homeworld = &hw
	}
	return out
}

func SerializeCharacters(characters []Character) []SerializedCharacter {
	out := make([]SerializedCharacter, 0, len(characters))
	for i := range characters {
		out = append(out, characters[i].Serialize())
	}
	return out
}
