package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"azpoker/pkg/catalog"
	"azpoker/pkg/models"
)

// ErrClassNotFound is returned by Lookup when the (spot, id) pair does not
// resolve. The detail page turns it into a redirect to the dashboard.
var ErrClassNotFound = errors.New("class not found")

// Service answers catalog queries. The catalog itself is immutable; the
// cache only holds derived views.
type Service struct {
	spots    []models.Spot
	featured []string
	cache    *cache.Cache
}

var (
	defaultService *Service
	once           sync.Once
)

// InitService initializes the default service over the authored catalog.
func InitService() {
	once.Do(func() {
		defaultService = NewService(catalog.Spots, catalog.FeaturedSpots)
	})
}

// NewService builds a service over an explicit catalog.
func NewService(spots []models.Spot, featured []string) *Service {
	return &Service{
		spots:    spots,
		featured: featured,
		cache:    cache.New(5*time.Minute, 10*time.Minute),
	}
}

// Default returns the service initialized by InitService.
func Default() *Service {
	return defaultService
}

// Spots returns the catalog in display order.
func Spots() []models.Spot { return defaultService.Spots() }

// Spots returns the catalog in display order.
func (s *Service) Spots() []models.Spot {
	return s.spots
}

// Entries flattens the catalog into (spot, class) pairs in catalog order.
func Entries() []models.Entry { return defaultService.Entries() }

// Entries flattens the catalog into (spot, class) pairs in catalog order.
func (s *Service) Entries() []models.Entry {
	var out []models.Entry
	for _, sp := range s.spots {
		for _, c := range sp.Classes {
			out = append(out, models.Entry{SpotKey: sp.Key, Class: c})
		}
	}
	return out
}

// Latest returns the n most recently uploaded classes across all spots,
// most recent first. Classes without a parseable upload date never appear.
// Returns fewer than n when the catalog is smaller.
func Latest(n int) []models.Entry { return defaultService.Latest(n) }

// Latest returns the n most recently uploaded classes across all spots.
func (s *Service) Latest(n int) []models.Entry {
	key := fmt.Sprintf("latest:%d", n)
	if cached, found := s.cache.Get(key); found {
		return cached.([]models.Entry)
	}

	dated := make([]models.Entry, 0)
	for _, e := range s.Entries() {
		if _, ok := e.Class.ParsedUploadDate(); ok {
			dated = append(dated, e)
		}
	}
	sorted := SortByDateDesc(dated)
	if n < len(sorted) {
		sorted = sorted[:n]
	}

	s.cache.Set(key, sorted, cache.DefaultExpiration)
	return sorted
}

// Featured returns the curated carousel entries: the first class of each
// featured spot. Validate guarantees at startup that every featured spot
// exists and is non-empty.
func Featured() []models.Entry { return defaultService.Featured() }

// Featured returns the curated carousel entries.
func (s *Service) Featured() []models.Entry {
	out := make([]models.Entry, 0, len(s.featured))
	for _, key := range s.featured {
		for _, sp := range s.spots {
			if sp.Key == key && len(sp.Classes) > 0 {
				out = append(out, models.Entry{SpotKey: sp.Key, Class: sp.Classes[0]})
				break
			}
		}
	}
	return out
}

// Lookup resolves a class by its (spot, id) pair. Ids are only unique
// within a spot, so both parts are required.
func Lookup(spotKey, id string) (models.Entry, error) { return defaultService.Lookup(spotKey, id) }

// Lookup resolves a class by its (spot, id) pair.
func (s *Service) Lookup(spotKey, id string) (models.Entry, error) {
	for _, sp := range s.spots {
		if sp.Key != spotKey {
			continue
		}
		for _, c := range sp.Classes {
			if c.ID == id {
				return models.Entry{SpotKey: sp.Key, Class: c}, nil
			}
		}
		break
	}
	return models.Entry{}, fmt.Errorf("%w: %s/%s", ErrClassNotFound, spotKey, id)
}

// Suggestions returns up to n classes drawn uniformly at random from the
// catalog minus the current class. Fisher-Yates via rand.Shuffle; a
// sort-by-random-comparator would be biased.
func Suggestions(spotKey, id string, n int) []models.Entry {
	return defaultService.Suggestions(spotKey, id, n)
}

// Suggestions returns up to n random classes excluding the current one.
func (s *Service) Suggestions(spotKey, id string, n int) []models.Entry {
	pool := make([]models.Entry, 0)
	for _, e := range s.Entries() {
		if e.SpotKey == spotKey && e.Class.ID == id {
			continue
		}
		pool = append(pool, e)
	}
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if n < len(pool) {
		pool = pool[:n]
	}
	return pool
}

// FeedJSON returns the whole catalog serialized for the JSON feed.
func FeedJSON() ([]byte, error) { return defaultService.FeedJSON() }

// FeedJSON returns the whole catalog serialized for the JSON feed.
func (s *Service) FeedJSON() ([]byte, error) {
	if cached, found := s.cache.Get("feed"); found {
		return cached.([]byte), nil
	}
	data, err := json.Marshal(s.spots)
	if err != nil {
		return nil, fmt.Errorf("marshal feed: %w", err)
	}
	s.cache.Set("feed", data, cache.DefaultExpiration)
	return data, nil
}
