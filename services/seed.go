package services

import (
	"fmt"
	"io"
	"os"

	"swipe_server/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Profiles []seedProfile `yaml:"profiles"`
}

type seedProfile struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Age    int    `yaml:"age"`
	Gender string `yaml:"gender"`
	ZoneID string `yaml:"zone_id"`
}

// LoadSeedFile reads profiles from a YAML file into store.
func LoadSeedFile(path string, store *ProfileStore) ([]models.UserProfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return LoadSeed(f, store)
}

// LoadSeed decodes a document of the form
//
//	profiles:
//	  - id: 00000000-0000-0000-0000-000000000001   # optional
//	    name: Alice
//	    age: 25
//	    gender: female
//	    zone_id: NYC
//
// and adds each profile to store in document order. Loading stops at the first
// invalid entry; profiles added before it stay in the store.
func LoadSeed(r io.Reader, store *ProfileStore) ([]models.UserProfile, error) {
	var doc seedFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return []models.UserProfile{}, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	added := make([]models.UserProfile, 0, len(doc.Profiles))
	for i, sp := range doc.Profiles {
		profile := models.UserProfile{
			Name:   sp.Name,
			Age:    sp.Age,
			Gender: sp.Gender,
			ZoneID: sp.ZoneID,
		}
		if sp.ID != "" {
			id, err := uuid.Parse(sp.ID)
			if err != nil {
				return added, fmt.Errorf("seed profile %d: %w", i, &ValidationError{Field: "id", Reason: err.Error()})
			}
			profile.ID = id
		}
		stored, err := store.Add(profile)
		if err != nil {
			return added, fmt.Errorf("seed profile %d: %w", i, err)
		}
		added = append(added, stored)
	}
	return added, nil
}
