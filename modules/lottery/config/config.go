package config

import "github.com/solotto/draw-engine/modules/lottery/draw"

// Config is the lottery module configuration.
type Config struct {
	// UnitTicketPrice is the price of a single ticket, in the pool currency
	// unit, as a decimal string (e.g. "0.01"). Supplied to the draw engine at
	// invocation time, never hard-coded in it.
	UnitTicketPrice string `mapstructure:"unit_ticket_price"`

	// PrizeTiers overrides the stock prize ladder. Must cover match counts
	// 1 through 5 exactly once; validated at startup.
	PrizeTiers []draw.Tier `mapstructure:"prize_tiers"`

	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// SchedulerConfig controls automatic draws.
type SchedulerConfig struct {
	Enabled bool `mapstructure:"enabled"`

	// CronSpec is a standard 5-field cron expression, e.g. "0 20 * * 6" for
	// Saturday 20:00.
	CronSpec string `mapstructure:"cron_spec"`
}

const (
	DefaultUnitTicketPrice = "0.01"

	// DefaultCronSpec draws every Saturday at 20:00.
	DefaultCronSpec = "0 20 * * 6"
)

// CronSpecOrDefault returns the configured cron expression, falling back to
// the weekly default.
func (c SchedulerConfig) CronSpecOrDefault() string {
	if c.CronSpec == "" {
		return DefaultCronSpec
	}
	return c.CronSpec
}

// UnitTicketPriceOrDefault returns the configured unit price string, falling
// back to the default.
func (c Config) UnitTicketPriceOrDefault() string {
	if c.UnitTicketPrice == "" {
		return DefaultUnitTicketPrice
	}
	return c.UnitTicketPrice
}

// PrizeTiersOrDefault returns the configured tiers, falling back to the
// stock ladder.
func (c Config) PrizeTiersOrDefault() []draw.Tier {
	if len(c.PrizeTiers) == 0 {
		return draw.DefaultTiers()
	}
	return c.PrizeTiers
}
