package signal

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rustyeddy/backtester/indicator"
	"github.com/rustyeddy/backtester/market"
)

// Generator produces labeled directional signals from a price series.
// Implementations are value objects built once per run; they hold no shared
// state between runs.
type Generator interface {
	// Name returns a stable label like "macd(12,26,9)" or "filter(0.07)".
	Name() string

	// Generate computes signals over the series using the given price field.
	// A series too short for the generator's lookback yields zero signals,
	// not an error.
	Generate(s *market.Series, f market.Field) ([]Signal, error)
}

// Builder constructs a Generator from config, validating it up front.
type Builder func(cfg Config) (Generator, error)

// Config carries the parameters a builder may need. Individual builders
// ignore fields that don't apply to them.
type Config struct {
	MACD      indicator.MACDConfig
	Threshold float64 // filter-rule fraction, e.g. 0.07
}

// Registry maps strategy-kind identifiers to typed builders. Kinds are
// resolved once at strategy construction, not per bar.
type Registry struct {
	builders map[string]Builder
}

// NewRegistry returns a registry pre-loaded with the built-in strategy
// kinds: "macd-zero-cross" and "filter-rule".
func NewRegistry() *Registry {
	r := &Registry{builders: make(map[string]Builder)}
	r.Register("macd-zero-cross", func(cfg Config) (Generator, error) {
		return NewZeroCross(cfg.MACD)
	})
	r.Register("filter-rule", func(cfg Config) (Generator, error) {
		return NewFilterRule(cfg.Threshold)
	})
	return r
}

// Register adds a builder under the given kind.
func (r *Registry) Register(kind string, b Builder) {
	r.builders[kind] = b
}

// Build resolves kind and constructs the generator.
func (r *Registry) Build(kind string, cfg Config) (Generator, error) {
	b, ok := r.builders[kind]
	if !ok {
		return nil, fmt.Errorf("signal: unknown strategy kind %q (known: %v)", kind, r.Kinds())
	}
	return b(cfg)
}

// Kinds returns the sorted registered kind names.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.builders))
	for k := range r.builders {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// ZeroCross signals when the MACD line crosses the zero level: bullish on a
// cross above, bearish on a cross below.
type ZeroCross struct {
	cfg indicator.MACDConfig
}

// NewZeroCross validates the MACD periods and returns the generator.
func NewZeroCross(cfg indicator.MACDConfig) (*ZeroCross, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ZeroCross{cfg: cfg}, nil
}

func (z *ZeroCross) Name() string {
	return fmt.Sprintf("macd(%d,%d,%d)", z.cfg.FastPeriod, z.cfg.SlowPeriod, z.cfg.SignalPeriod)
}

func (z *ZeroCross) Generate(s *market.Series, f market.Field) ([]Signal, error) {
	m, err := indicator.ComputeMACD(s.Prices(f), z.cfg)
	if err != nil {
		// Too little history means no signals, not a failed run.
		var short *indicator.InsufficientDataError
		if errors.As(err, &short) {
			return nil, nil
		}
		return nil, err
	}

	bull := DetectConst(m.Line, 0, Above)
	bear := DetectConst(m.Line, 0, Below)
	return collect(s, z.Name(), bull, bear), nil
}

// FilterRule signals when the day-over-day percent change crosses a fixed
// threshold: bullish above +threshold, bearish below -threshold. A threshold
// larger than every observed move legitimately produces zero signals.
type FilterRule struct {
	threshold float64
}

// NewFilterRule validates the threshold fraction and returns the generator.
func NewFilterRule(threshold float64) (*FilterRule, error) {
	if threshold <= 0 {
		return nil, &indicator.ConfigError{Reason: fmt.Sprintf("filter threshold must be positive, got %v", threshold)}
	}
	return &FilterRule{threshold: threshold}, nil
}

func (fr *FilterRule) Name() string {
	return fmt.Sprintf("filter(%g)", fr.threshold)
}

func (fr *FilterRule) Generate(s *market.Series, f market.Field) ([]Signal, error) {
	pct := indicator.PercentChange(s.Prices(f))
	bull := DetectConst(pct, fr.threshold, Above)
	bear := DetectConst(pct, -fr.threshold, Below)
	return collect(s, fr.Name(), bull, bear), nil
}

// collect merges per-bar event masks into a time-ordered signal slice.
func collect(s *market.Series, source string, bull, bear []bool) []Signal {
	var out []Signal
	for i := 0; i < s.Len(); i++ {
		if i < len(bull) && bull[i] {
			out = append(out, Signal{Time: s.At(i).Time, Index: i, Kind: Bullish, Source: source})
		}
		if i < len(bear) && bear[i] {
			out = append(out, Signal{Time: s.At(i).Time, Index: i, Kind: Bearish, Source: source})
		}
	}
	return out
}
