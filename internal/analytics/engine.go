// Package analytics derives dead stock, regional demand, dealer health,
// lost sales and recommendations from the raw supply-chain collections.
//
// Every derivation is a pure function of its inputs. The engine holds no
// state between calls besides its injected clock, random source and
// recommender, so concurrent calls over different snapshots are safe.
package analytics

import (
	"errors"
	"time"

	"github.com/rogerio-castellano/paintchain/internal/clock"
	"github.com/rogerio-castellano/paintchain/internal/models"
)

// Snapshot is the full set of collections one computation reads.
type Snapshot struct {
	Paints  []models.Paint        `json:"paints"`
	Orders  []models.Order        `json:"orders"`
	Signals []models.DemandSignal `json:"demandSignals"`
	Dealers []models.Dealer       `json:"dealers"`
}

type Result struct {
	DeadStock       []models.Paint   `json:"deadStock"`
	RegionalDemand  []DemandForecast `json:"regionalDemand"`
	DealerHealth    []DealerHealth   `json:"inventoryPerformance"`
	LostSales       []LostSale       `json:"lostSales"`
	Recommendations []Recommendation `json:"recommendations"`

	// InvalidRecords lists paints skipped by dead-stock classification.
	InvalidRecords []*InvalidDateError `json:"-"`
	// UnmatchedOrders counts orders whose dealer was not found.
	UnmatchedOrders int `json:"unmatchedOrders"`
}

// DeadStockErr re-joins the invalid records, nil when there are none.
func (r *Result) DeadStockErr() error {
	if len(r.InvalidRecords) == 0 {
		return nil
	}
	errs := make([]error, len(r.InvalidRecords))
	for i, e := range r.InvalidRecords {
		errs[i] = e
	}
	return errors.Join(errs...)
}

type Engine struct {
	clock       clock.Clock
	source      Source
	recommender Recommender
}

type Option func(*Engine)

func WithClock(c clock.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

func WithSource(s Source) Option {
	return func(e *Engine) { e.source = s }
}

func WithRecommender(r Recommender) Option {
	return func(e *Engine) { e.recommender = r }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		clock:       clock.NewSystem(),
		recommender: StaticRecommender{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.source == nil {
		e.source = NewRandSource(uint64(e.clock.Now().UnixNano()))
	}
	return e
}

func (e *Engine) Now() time.Time {
	return e.clock.Now()
}

// Compute derives all five views from s. Invalid dates never abort the
// computation; they are reported in Result.InvalidRecords and the caller
// decides whether to fail.
func (e *Engine) Compute(s Snapshot) *Result {
	idx := NewIndex(s.Orders, s.Dealers)

	dead, err := DeadStock(s.Paints, e.clock.Now())
	r := &Result{
		DeadStock:       dead,
		RegionalDemand:  RegionalDemand(idx, s.Signals, e.source),
		DealerHealth:    ScoreDealers(idx, s.Dealers, e.source),
		LostSales:       LostSales(idx, s.Signals),
		InvalidRecords:  InvalidDates(err),
		UnmatchedOrders: idx.Unmatched(),
	}
	r.Recommendations = e.recommender.Recommend(r)
	return r
}
