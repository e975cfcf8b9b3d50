// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fjacquet/sales-csv/internal/catalog"
	"fjacquet/sales-csv/internal/config"
	"fjacquet/sales-csv/internal/logging"
	"fjacquet/sales-csv/internal/models"
	"fjacquet/sales-csv/internal/salesparser"
	"fjacquet/sales-csv/internal/store"
	"fjacquet/sales-csv/internal/validation"

	"github.com/shopspring/decimal"
)

// BuildFilter parses the command-line filter flags into a Filter.
// Empty strings mean the criterion is absent; a supplied zero bound is
// a real bound.
func BuildFilter(region, minAmount, maxAmount string) (validation.Filter, error) {
	filter := validation.Filter{Region: strings.TrimSpace(region)}

	if s := strings.TrimSpace(minAmount); s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return validation.Filter{}, fmt.Errorf("invalid minimum amount %q: %w", s, err)
		}
		filter.MinAmount = &d
	}
	if s := strings.TrimSpace(maxAmount); s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return validation.Filter{}, fmt.Errorf("invalid maximum amount %q: %w", s, err)
		}
		filter.MaxAmount = &d
	}

	return filter, nil
}

// LoadRecords reads and parses the sales file, reports the pre-filter
// overview, then validates and filters the records.
func LoadRecords(inputFile string, filter validation.Filter, log logging.Logger) ([]models.TransactionRecord, models.FilterSummary, error) {
	records, err := salesparser.ParseFile(inputFile, log)
	if err != nil {
		return nil, models.FilterSummary{}, err
	}

	overview := validation.Summarize(records)
	log.Info("Filter options available",
		logging.Field{Key: "regions", Value: strings.Join(overview.Regions, ", ")},
		logging.Field{Key: "min_amount", Value: overview.MinAmount.StringFixed(2)},
		logging.Field{Key: "max_amount", Value: overview.MaxAmount.StringFixed(2)})

	valid, _, summary := validation.ValidateAndFilter(records, filter, log)
	return valid, summary, nil
}

// FetchCatalog fetches the product catalog, degrading gracefully: a
// fetch failure falls back to the local cache when enabled, and an
// empty catalog when that fails too. Enrichment then proceeds with
// universal non-match. Offline mode skips the network entirely.
func FetchCatalog(ctx context.Context, cfg *config.Config, offline bool, log logging.Logger) []catalog.Product {
	catalogStore := store.NewCatalogStore(cfg.Catalog.CacheFile)

	if offline {
		return loadCached(catalogStore, cfg, log)
	}

	client := catalog.NewClient(log,
		catalog.WithBaseURL(cfg.Catalog.BaseURL),
		catalog.WithLimit(cfg.Catalog.Limit),
		catalog.WithTimeout(time.Duration(cfg.Catalog.TimeoutSeconds)*time.Second))

	products, err := client.FetchProducts(ctx)
	if err != nil {
		log.WithError(err).Warn("Catalog fetch failed, enrichment will degrade")
		return loadCached(catalogStore, cfg, log)
	}

	if cfg.Catalog.CacheEnabled {
		if err := catalogStore.Save(products); err != nil {
			log.WithError(err).Warn("Failed to save catalog cache")
		}
	}

	return products
}

func loadCached(catalogStore *store.CatalogStore, cfg *config.Config, log logging.Logger) []catalog.Product {
	if !cfg.Catalog.CacheEnabled {
		return nil
	}
	products, err := catalogStore.Load()
	if err != nil {
		log.WithError(err).Warn("Failed to load catalog cache")
		return nil
	}
	if len(products) > 0 {
		log.Info("Using cached product catalog",
			logging.Field{Key: logging.FieldCount, Value: len(products)})
	}
	return products
}
