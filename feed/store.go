package feed

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/autohub/site/cache"
	"github.com/autohub/site/models"
)

// ErrInvalidPage is returned for page numbers below 1.
var ErrInvalidPage = errors.New("page must be 1 or greater")

// Lister fetches one page of listings from the remote API.
type Lister interface {
	ListCars(ctx context.Context, page int) (*models.CarPage, error)
}

// Store holds live feeds in memory and loads pages into them. Feeds that sit
// idle past the TTL are dropped; nothing is persisted.
type Store struct {
	api   Lister
	feeds *cache.Cache[*Feed]

	// pages collapses concurrent upstream fetches of the same listing page,
	// across all feeds.
	pages singleflight.Group

	// mu serialises feed creation so two requests for an unknown ID share one Feed.
	mu sync.Mutex
}

func NewStore(api Lister, ttl time.Duration) (*Store, error) {
	feeds, err := cache.New[*Feed](func(*Feed) int64 { return 1 }, "Listing Feed Cache", ttl)
	if err != nil {
		return nil, fmt.Errorf("create feed cache: %w", err)
	}
	return &Store{api: api, feeds: feeds}, nil
}

// Start opens a new feed and loads its first page.
func (s *Store) Start(ctx context.Context) (*Feed, Result, error) {
	f := s.lookup(uuid.NewString())
	res, err := s.load(ctx, f, 1)
	return f, res, err
}

// Next loads page into the feed with the given ID. An unknown or expired ID
// starts a fresh feed under the same ID.
func (s *Store) Next(ctx context.Context, id string, page int) (Result, error) {
	if page < 1 {
		return Result{}, ErrInvalidPage
	}
	return s.load(ctx, s.lookup(id), page)
}

// Get returns a live feed.
func (s *Store) Get(id string) (*Feed, bool) {
	return s.feeds.Get(id)
}

// Stats exposes the feed cache statistics.
func (s *Store) Stats() map[string]interface{} {
	return s.feeds.Stats()
}

func (s *Store) lookup(id string) *Feed {
	if f, ok := s.feeds.Get(id); ok {
		return f
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.feeds.Get(id); ok {
		return f
	}
	f := newFeed(id)
	s.feeds.Set(id, f, 1)
	s.feeds.Wait()
	return f
}

// load fetches and merges a page while holding the feed lock, so a feed never
// merges the same page twice even when requests for it race.
func (s *Store) load(ctx context.Context, f *Feed, page int) (Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if page != 1 && f.loaded[page] {
		zap.S().Debugf("[FEED] feed=%s page=%d already loaded", f.ID, page)
		return f.repeatLocked(page), nil
	}

	p, err := s.fetch(ctx, page)
	if err != nil {
		return Result{Page: page, HasMore: f.hasMore, Total: len(f.cars)}, err
	}

	res := f.apply(page, p)
	zap.S().Debugf("[FEED] feed=%s page=%d new=%d total=%d more=%t", f.ID, page, len(res.Cars), res.Total, res.HasMore)
	return res, nil
}

func (s *Store) fetch(ctx context.Context, page int) (*models.CarPage, error) {
	v, err, _ := s.pages.Do(strconv.Itoa(page), func() (interface{}, error) {
		return s.api.ListCars(ctx, page)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch listing page %d: %w", page, err)
	}
	return v.(*models.CarPage), nil
}
