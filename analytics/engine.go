package analytics

import (
	"time"

	"stocksense/store"
)

// Engine runs the demand forecasting and inventory risk computations over
// the ledger/inventory store. It holds no mutable state of its own; every
// method is a read-then-compute pass (RunDemandPrediction additionally
// appends snapshots).
type Engine struct {
	store store.Store
	now   func() time.Time
}

func NewEngine(st store.Store) *Engine {
	return &Engine{store: st, now: time.Now}
}
