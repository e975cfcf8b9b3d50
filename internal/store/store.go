// Package store persists the fetched product catalog to a local YAML
// cache so that repeat runs can enrich without network access.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/sales-csv/internal/catalog"
	"fjacquet/sales-csv/internal/fileutils"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// cachedProduct is the YAML representation of a catalog entry. Decimal
// fields travel as strings to keep the cache round-trip exact.
type cachedProduct struct {
	ID       int    `yaml:"id"`
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
	Brand    string `yaml:"brand"`
	Price    string `yaml:"price"`
	Rating   string `yaml:"rating"`
}

type cacheFile struct {
	Products []cachedProduct `yaml:"products"`
}

// CatalogStore manages loading and saving of the catalog cache.
type CatalogStore struct {
	FilePath string
}

// NewCatalogStore creates a store backed by the given cache file path.
func NewCatalogStore(filePath string) *CatalogStore {
	return &CatalogStore{FilePath: filePath}
}

// Save writes the catalog entries to the cache file, creating parent
// directories as needed.
func (s *CatalogStore) Save(products []catalog.Product) error {
	cached := cacheFile{Products: make([]cachedProduct, 0, len(products))}
	for _, p := range products {
		cached.Products = append(cached.Products, cachedProduct{
			ID:       p.ID,
			Title:    p.Title,
			Category: p.Category,
			Brand:    p.Brand,
			Price:    p.Price.String(),
			Rating:   p.Rating.String(),
		})
	}

	data, err := yaml.Marshal(cached)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog cache: %w", err)
	}

	if err := fileutils.WriteFile(s.FilePath, data); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"file":  s.FilePath,
		"count": len(products),
	}).Info("Saved catalog cache")

	return nil
}

// Load reads catalog entries back from the cache file. A missing file
// returns an empty slice without error.
func (s *CatalogStore) Load() ([]catalog.Product, error) {
	if !fileutils.FileExists(s.FilePath) {
		log.WithField("file", s.FilePath).Debug("No catalog cache file")
		return nil, nil
	}

	data, err := os.ReadFile(s.FilePath) // #nosec G304 -- cache path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog cache %s: %w", s.FilePath, err)
	}

	var cached cacheFile
	if err := yaml.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("failed to parse catalog cache %s: %w", filepath.Base(s.FilePath), err)
	}

	products := make([]catalog.Product, 0, len(cached.Products))
	for _, c := range cached.Products {
		price, err := decimal.NewFromString(c.Price)
		if err != nil {
			return nil, fmt.Errorf("invalid price in catalog cache for product %d: %w", c.ID, err)
		}
		rating, err := decimal.NewFromString(c.Rating)
		if err != nil {
			return nil, fmt.Errorf("invalid rating in catalog cache for product %d: %w", c.ID, err)
		}
		products = append(products, catalog.Product{
			ID:       c.ID,
			Title:    c.Title,
			Category: c.Category,
			Brand:    c.Brand,
			Price:    price,
			Rating:   rating,
		})
	}

	log.WithFields(logrus.Fields{
		"file":  s.FilePath,
		"count": len(products),
	}).Info("Loaded catalog cache")

	return products, nil
}
