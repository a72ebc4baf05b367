package memory

import (
	"context"
	"fmt"

	"github.com/jagritimaurya743-source/college-society-management/internal/domain"
	"github.com/jagritimaurya743-source/college-society-management/internal/search"
	"github.com/jagritimaurya743-source/college-society-management/internal/seed"
)

// Store serves the seeded dataset. Records are never mutated after NewStore,
// so reads need no locking. Every read returns copies, tag lists included.
type Store struct {
	societies  []domain.Society
	events     []domain.Event
	activities []domain.Activity
	stats      []domain.Stat
	monthly    []domain.ChartPoint
}

// NewStore takes ownership of a validated dataset.
func NewStore(ds seed.Dataset) *Store {
	return &Store{
		societies:  ds.Societies,
		events:     ds.Events,
		activities: ds.Activities,
		stats:      ds.Stats,
		monthly:    ds.Monthly,
	}
}

// ListSocieties returns the societies matching c in seed order.
func (s *Store) ListSocieties(_ context.Context, c search.SocietyCriteria) ([]domain.Society, error) {
	items := search.Societies(s.societies, c)
	for i := range items {
		items[i] = cloneSociety(items[i])
	}
	return items, nil
}

// GetSociety looks a society up by id.
func (s *Store) GetSociety(_ context.Context, id string) (domain.Society, error) {
	for _, soc := range s.societies {
		if soc.ID == id {
			return cloneSociety(soc), nil
		}
	}
	return domain.Society{}, fmt.Errorf("society %s: %w", id, domain.ErrNotFound)
}

// ListEvents returns the events matching c in seed order.
func (s *Store) ListEvents(_ context.Context, c search.EventCriteria) ([]domain.Event, error) {
	return search.Events(s.events, c), nil
}

// GetEvent looks an event up by id.
func (s *Store) GetEvent(_ context.Context, id string) (domain.Event, error) {
	for _, evt := range s.events {
		if evt.ID == id {
			return evt, nil
		}
	}
	return domain.Event{}, fmt.Errorf("event %s: %w", id, domain.ErrNotFound)
}

// UpcomingEvents returns at most limit upcoming events in seed order.
func (s *Store) UpcomingEvents(ctx context.Context, limit int) ([]domain.Event, error) {
	items, err := s.ListEvents(ctx, search.EventCriteria{Status: string(domain.StatusUpcoming)})
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

// Activities returns the most recent feed entries.
func (s *Store) Activities(_ context.Context, limit int) ([]domain.Activity, error) {
	if limit <= 0 || limit > len(s.activities) {
		limit = len(s.activities)
	}
	return append([]domain.Activity{}, s.activities[:limit]...), nil
}

// Stats returns the headline counters.
func (s *Store) Stats(_ context.Context) ([]domain.Stat, error) {
	return append([]domain.Stat{}, s.stats...), nil
}

// MonthlyActivity returns the chart series oldest first.
func (s *Store) MonthlyActivity(_ context.Context) ([]domain.ChartPoint, error) {
	return append([]domain.ChartPoint{}, s.monthly...), nil
}

// CategoryBreakdown counts societies per category in first-seen order.
func (s *Store) CategoryBreakdown(_ context.Context) ([]domain.CategoryShare, error) {
	index := make(map[domain.Category]int)
	shares := []domain.CategoryShare{}
	for _, soc := range s.societies {
		i, ok := index[soc.Category]
		if !ok {
			i = len(shares)
			index[soc.Category] = i
			shares = append(shares, domain.CategoryShare{Name: string(soc.Category)})
		}
		shares[i].Value++
	}
	return shares, nil
}

func cloneSociety(soc domain.Society) domain.Society {
	if soc.Tags != nil {
		soc.Tags = append([]string(nil), soc.Tags...)
	}
	return soc
}
