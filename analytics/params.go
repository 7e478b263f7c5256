package analytics

// Engine parameters. Risk-tier boundaries and window sizes live here so
// they are centrally testable rather than scattered as inline literals.
const (
	// TrailingWindowDays is the default lookback used to estimate
	// recent sales velocity.
	TrailingWindowDays = 30

	// LeadTimeDays is the assumed supplier lead time; BufferDays is the
	// extra cover a reorder should include on top of it.
	LeadTimeDays = 7
	BufferDays   = 7

	// CriticalDaysLeft and LowDaysLeft are the risk-tier boundaries for
	// estimated days of stock remaining.
	CriticalDaysLeft = 7
	LowDaysLeft      = 14

	// DefaultLowStockThreshold applies when a product has no configured
	// threshold.
	DefaultLowStockThreshold = 10

	// DefaultDaysAhead is the demand-prediction horizon.
	DefaultDaysAhead = 7

	// SlowMovingMinWindow and SlowMovingMaxWindow clamp the dead-stock
	// detection window.
	SlowMovingMinWindow = 7
	SlowMovingMaxWindow = 90

	// OverstockDaysOfInventory marks inventory cover beyond which the
	// report flags an overstock.
	OverstockDaysOfInventory = 60

	// InfiniteDays is the sentinel for "stock never depletes at the
	// current rate" (demand is zero but units remain).
	InfiniteDays = 9999.0
)
