package swapi

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"path"
	"strconv"
	"strings"

	"starwars_api/internal/models"
)

var ErrMalformedRecord = errors.New("malformed swapi record")

// PlanetRecord is a planet as published by SWAPI. Numeric fields arrive as
// strings and may read "unknown".
type PlanetRecord struct {
	Name          string `json:"name" yaml:"name"`
	Climate       string `json:"climate" yaml:"climate"`
	Terrain       string `json:"terrain" yaml:"terrain"`
	Population    string `json:"population" yaml:"population"`
	Diameter      string `json:"diameter" yaml:"diameter"`
	OrbitalPeriod string `json:"orbital_period" yaml:"orbital_period"`
	URL           string `json:"url" yaml:"url"`
}

type PersonRecord struct {
	Name      string `json:"name" yaml:"name"`
	Height    string `json:"height" yaml:"height"`
	Mass      string `json:"mass" yaml:"mass"`
	HairColor string `json:"hair_color" yaml:"hair_color"`
	EyeColor  string `json:"eye_color" yaml:"eye_color"`
	BirthYear string `json:"birth_year" yaml:"birth_year"`
	Gender    string `json:"gender" yaml:"gender"`
	Homeworld string `json:"homeworld" yaml:"homeworld"`
	URL       string `json:"url" yaml:"url"`
}

// ParseMeasure converts a SWAPI numeric string. Unknown values map to nil;
// thousands separators are dropped and decimals rounded.
func ParseMeasure(raw string) (*int, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "", "unknown", "n/a", "none":
		return nil, nil
	}
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %q is not a number", ErrMalformedRecord, raw)
	}
	f = math.Round(f)
	// Measures are stored in INTEGER columns.
	if f < math.MinInt32 || f > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %q is out of range", ErrMalformedRecord, raw)
	}
	v := int(f)
	return &v, nil
}

// IDFromURL returns the trailing numeric path segment of a resource URL,
// e.g. 1 for https://swapi.dev/api/planets/1/.
func IDFromURL(raw string) (int, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: bad url %q", ErrMalformedRecord, raw)
	}
	id, err := strconv.Atoi(path.Base(strings.TrimSuffix(u.Path, "/")))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: no id in url %q", ErrMalformedRecord, raw)
	}
	return id, nil
}

func (r PlanetRecord) Planet() (*models.Planet, error) {
	if strings.TrimSpace(r.Name) == "" {
		return nil, fmt.Errorf("%w: planet without name", ErrMalformedRecord)
	}
	swapiID, err := IDFromURL(r.URL)
	if err != nil {
		return nil, err
	}
	diameter, err := ParseMeasure(r.Diameter)
	if err != nil {
		return nil, err
	}
	orbital, err := ParseMeasure(r.OrbitalPeriod)
	if err != nil {
		return nil, err
	}

	return &models.Planet{
		Name:          strings.TrimSpace(r.Name),
		Climate:       r.Climate,
		Terrain:       r.Terrain,
		Population:    r.Population,
		Diameter:      diameter,
		OrbitalPeriod: orbital,
		SwapiID:       swapiID,
	}, nil
}

// Character converts the record. homeworlds maps planet swapi ids to local
// planet ids; an unresolved homeworld is left empty.
func (r PersonRecord) Character(homeworlds map[int]int64) (*models.Character, error) {
	if strings.TrimSpace(r.Name) == "" {
		return nil, fmt.Errorf("%w: person without name", ErrMalformedRecord)
	}
	swapiID, err := IDFromURL(r.URL)
	if err != nil {
		return nil, err
	}
	height, err := ParseMeasure(r.Height)
	if err != nil {
		return nil, err
	}
	mass, err := ParseMeasure(r.Mass)
	if err != nil {
		return nil, err
	}

	character := &models.Character{
		Name:      strings.TrimSpace(r.Name),
		Height:    height,
		Mass:      mass,
		HairColor: r.HairColor,
		EyeColor:  r.EyeColor,
		BirthYear: r.BirthYear,
		Gender:    r.Gender,
		SwapiID:   swapiID,
	}
	if r.Homeworld != "" {
		planetSwapiID, err := IDFromURL(r.Homeworld)
		if err != nil {
			return nil, err
		}
		if id, ok := homeworlds[planetSwapiID]; ok {
			character.HomeworldID = &id
		}
	}
	return character, nil
}
