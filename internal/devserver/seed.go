package devserver

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/five82/marquee/internal/movies"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is one fixture movie.
type Seed struct {
	EpisodeID   int    `yaml:"episode_id"`
	Title       string `yaml:"title"`
	OpeningText string `yaml:"opening_text"`
	ReleaseDate string `yaml:"release_date"`
}

func (s Seed) Movie() movies.NewMovie {
	return movies.NewMovie{
		Title:       s.Title,
		OpeningText: s.OpeningText,
		ReleaseDate: s.ReleaseDate,
	}
}

type seedFile struct {
	Movies []Seed `yaml:"movies"`
}

// LoadSeed reads fixtures from path, or the built-in set when path is empty.
func LoadSeed(path string) ([]Seed, error) {
	data := defaultSeed
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed: %w", err)
		}
	}
	return parseSeed(data)
}

func parseSeed(data []byte) ([]Seed, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return file.Movies, nil
}
