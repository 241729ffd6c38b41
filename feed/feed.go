// Package feed keeps the transient per-visit state behind the infinite-scroll
// car grid: which pages were loaded and which cars were already shown.
package feed

import (
	"sync"

	"github.com/autohub/site/models"
)

// Feed is the listing state of one homepage visit.
type Feed struct {
	ID string

	mu      sync.Mutex
	cars    []models.Car
	seen    map[string]struct{}
	loaded  map[int]bool
	page    int
	hasMore bool
}

func newFeed(id string) *Feed {
	return &Feed{
		ID:      id,
		seen:    make(map[string]struct{}),
		loaded:  make(map[int]bool),
		hasMore: true,
	}
}

// Result is what a single page load adds to a feed.
type Result struct {
	// Cars holds only cars not shown earlier in this feed.
	Cars    []models.Car
	Page    int
	HasMore bool
	// Total is the number of distinct cars in the feed after the load.
	Total int
	// Repeat is set when the page had already been merged by an earlier request.
	Repeat bool
}

// NextPage is the page to request after this result.
func (r Result) NextPage() int {
	return r.Page + 1
}

// apply merges page p into the feed. Page 1 starts the feed over. A page that
// was already merged adds nothing. Callers hold f.mu.
func (f *Feed) apply(page int, p *models.CarPage) Result {
	if page == 1 {
		f.cars = nil
		f.seen = make(map[string]struct{})
		f.loaded = make(map[int]bool)
		f.page = 0
	}

	if f.loaded[page] {
		return f.repeatLocked(page)
	}
	f.loaded[page] = true

	fresh := make([]models.Car, 0, len(p.Data))
	for _, car := range p.Data {
		if _, ok := f.seen[car.ID]; ok {
			continue
		}
		f.seen[car.ID] = struct{}{}
		fresh = append(fresh, car)
	}
	f.cars = append(f.cars, fresh...)

	if page > f.page {
		f.page = page
		f.hasMore = p.HasMore()
	}
	return f.resultLocked(page, fresh)
}

func (f *Feed) resultLocked(page int, fresh []models.Car) Result {
	return Result{
		Cars:    fresh,
		Page:    page,
		HasMore: f.hasMore,
		Total:   len(f.cars),
	}
}

func (f *Feed) repeatLocked(page int) Result {
	res := f.resultLocked(page, nil)
	res.Repeat = true
	return res
}

// Loaded reports whether page was already merged.
func (f *Feed) Loaded(page int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loaded[page]
}

// Cars returns a copy of every distinct car in load order.
func (f *Feed) Cars() []models.Car {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Car, len(f.cars))
	copy(out, f.cars)
	return out
}

// HasMore reports whether the last loaded page said more pages exist.
func (f *Feed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasMore
}
