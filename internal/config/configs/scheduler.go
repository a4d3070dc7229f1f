package configs

import "time"

// Scheduler controls the periodic monitoring trigger.
type Scheduler struct {
	// Interval between monitoring cycles. Evaluation buckets and idempotency
	// keys derive from this value.
	Interval time.Duration `env:"INTERVAL" envDefault:"2h"`
	// Concurrency bounds how many campaigns are evaluated in parallel per
	// tick.
	Concurrency int `env:"CONCURRENCY" envDefault:"8"`
	// LeaseMargin extends the per-campaign lease beyond the cycle duration
	// so a slow evaluation is not overlapped by the next tick.
	LeaseMargin time.Duration `env:"LEASE_MARGIN" envDefault:"5m"`
}

// LeaseTTL is the per-campaign lease duration: one full cycle plus margin.
func (c Scheduler) LeaseTTL() time.Duration {
	return c.Interval + c.LeaseMargin
}
