package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jdclothing/storefront-backend/pkg/config"
	"github.com/jdclothing/storefront-backend/pkg/logger"
	"github.com/jdclothing/storefront-backend/pkg/redis"
)

const cacheKeyName = "products"

type cacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Loader acquires the catalog document, preferring the cached copy over a
// network fetch. A successful fetch refreshes the cache.
type Loader struct {
	cfg      config.CatalogConfig
	cache    cacheStore
	client   *http.Client
	logg     *logger.Logger
	validate *validator.Validate
}

// NewLoader builds a catalog loader.
func NewLoader(cfg config.CatalogConfig, cache cacheStore, logg *logger.Logger) (*Loader, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("catalog URL is required")
	}
	if cache == nil {
		return nil, fmt.Errorf("catalog cache required")
	}
	return &Loader{
		cfg:      cfg,
		cache:    cache,
		client:   &http.Client{Timeout: cfg.FetchTimeout},
		logg:     logg,
		validate: validator.New(),
	}, nil
}

// Warm fills the store from Load. When neither the cache nor the upstream
// yields a document the store is left empty: the service stays up and every
// browse read returns no results until a later reload succeeds.
func (l *Loader) Warm(ctx context.Context, store *Store) {
	products, err := l.Load(ctx)
	if err != nil {
		if l.logg != nil {
			l.logg.Error(ctx, "catalog load failed, serving empty catalog", err)
		}
		return
	}
	store.Replace(products)
}

// Load returns the catalog products. The cache is consulted first; a miss or
// an undecodable cache entry falls through to the upstream fetch. An error is
// returned only when neither source yields a usable document.
func (l *Loader) Load(ctx context.Context) ([]Product, error) {
	key := redis.CatalogKey(cacheKeyName)

	raw, err := l.cache.Get(ctx, key)
	switch {
	case err == nil:
		products, decodeErr := l.decode(ctx, []byte(raw))
		if decodeErr == nil {
			if l.logg != nil {
				l.logg.Info(l.logg.WithField(ctx, "products", len(products)), "catalog loaded from cache")
			}
			return products, nil
		}
		if l.logg != nil {
			l.logg.Warn(l.logg.WithField(ctx, "error", decodeErr.Error()), "cached catalog is corrupt, refetching")
		}
	case errors.Is(err, redis.Nil):
		// cold cache, fetch below
	default:
		if l.logg != nil {
			l.logg.Warn(l.logg.WithField(ctx, "error", err.Error()), "catalog cache unavailable, refetching")
		}
	}

	body, err := l.fetch(ctx)
	if err != nil {
		return nil, err
	}

	products, err := l.decode(ctx, body)
	if err != nil {
		return nil, err
	}

	if err := l.cache.Set(ctx, key, string(body), l.cfg.CacheTTL); err != nil && l.logg != nil {
		l.logg.Warn(l.logg.WithField(ctx, "error", err.Error()), "failed to cache catalog")
	}

	if l.logg != nil {
		l.logg.Info(l.logg.WithField(ctx, "products", len(products)), "catalog loaded from upstream")
	}
	return products, nil
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.cfg.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching catalog: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading catalog body: %w", err)
	}
	return body, nil
}

// decode parses the document and drops records that fail validation so one
// garbage record cannot poison the whole catalog.
func (l *Loader) decode(ctx context.Context, body []byte) ([]Product, error) {
	var products []Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	valid := make([]Product, 0, len(products))
	for _, p := range products {
		if err := l.validate.Struct(p); err != nil {
			if l.logg != nil {
				fields := map[string]any{"product_id": p.ID, "error": err.Error()}
				l.logg.Warn(l.logg.WithFields(ctx, fields), "skipping invalid catalog record")
			}
			continue
		}
		if p.Price.IsNegative() {
			if l.logg != nil {
				l.logg.Warn(l.logg.WithField(ctx, "product_id", p.ID), "skipping catalog record with negative price")
			}
			continue
		}
		valid = append(valid, p)
	}
	return valid, nil
}
