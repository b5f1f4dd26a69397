package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Saphereye/budget-tracker/internal/models"

	"gopkg.in/yaml.v3"
)

// CategoriesFileName is the optional per-user file listing extra category
// names offered alongside the built-in set in the add flow.
const CategoriesFileName = "categories.yaml"

type categoriesFile struct {
	Categories []string `yaml:"categories"`
}

// LoadCustomCategories loads extra category names from categories.yaml in
// the data directory. A missing file is not an error and yields an empty
// slice. Both the keyed form ("categories: [...]") and a bare list are
// accepted.
func (s *Store) LoadCustomCategories() ([]string, error) {
	filePath := filepath.Join(s.DataDir, CategoriesFileName)

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("file", filePath).Debug("No custom categories file")
			return nil, nil
		}
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var keyed categoriesFile
	if err := yaml.Unmarshal(data, &keyed); err == nil && len(keyed.Categories) > 0 {
		return normalizeCategoryNames(keyed.Categories), nil
	}

	// Fallback: a bare YAML list of names
	var names []string
	if err := yaml.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}

	return normalizeCategoryNames(names), nil
}

func normalizeCategoryNames(names []string) []string {
	normalized := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		normalized = append(normalized, models.Capitalize(name))
	}
	return normalized
}
