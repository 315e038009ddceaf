package memstore

import (
	"context"
	"sync"

	"github.com/finwatch/payments-analytics-service/internal/domain"
)

// Sink is an in-memory domain.DatasetSink with the same insert-if-absent
// contract as the postgres sink. Used for dry runs and tests.
type Sink struct {
	mu          sync.Mutex
	customers   map[string]*domain.Customer
	merchants   map[string]*domain.Merchant
	payments    map[string]*domain.Payment
	settlements map[string]*domain.Settlement
}

func NewSink() *Sink {
	return &Sink{
		customers:   make(map[string]*domain.Customer),
		merchants:   make(map[string]*domain.Merchant),
		payments:    make(map[string]*domain.Payment),
		settlements: make(map[string]*domain.Settlement),
	}
}

func (s *Sink) LoadCustomers(_ context.Context, customers []*domain.Customer) (domain.LoadStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := domain.LoadStats{Attempted: int64(len(customers))}
	for _, c := range customers {
		if _, exists := s.customers[c.ID]; exists {
			stats.Skipped++
			continue
		}
		s.customers[c.ID] = c
		stats.Inserted++
	}
	return stats, nil
}

func (s *Sink) LoadMerchants(_ context.Context, merchants []*domain.Merchant) (domain.LoadStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := domain.LoadStats{Attempted: int64(len(merchants))}
	for _, m := range merchants {
		if _, exists := s.merchants[m.ID]; exists {
			stats.Skipped++
			continue
		}
		s.merchants[m.ID] = m
		stats.Inserted++
	}
	return stats, nil
}

func (s *Sink) LoadPayments(_ context.Context, payments []*domain.Payment) (domain.LoadStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := domain.LoadStats{Attempted: int64(len(payments))}
	for _, p := range payments {
		if _, exists := s.payments[p.ID]; exists {
			stats.Skipped++
			continue
		}
		s.payments[p.ID] = p
		stats.Inserted++
	}
	return stats, nil
}

func (s *Sink) LoadSettlements(_ context.Context, settlements []*domain.Settlement) (domain.LoadStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := domain.LoadStats{Attempted: int64(len(settlements))}
	for _, st := range settlements {
		if _, exists := s.settlements[st.ID]; exists {
			stats.Skipped++
			continue
		}
		s.settlements[st.ID] = st
		stats.Inserted++
	}
	return stats, nil
}

// Counts returns the stored record count per entity type.
func (s *Sink) Counts() (customers, merchants, payments, settlements int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.customers), len(s.merchants), len(s.payments), len(s.settlements)
}
