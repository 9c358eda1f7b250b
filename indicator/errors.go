package indicator

import "fmt"

// ConfigError reports invalid indicator parameters. It is fatal to the run
// that supplied them.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "indicator: bad config: " + e.Reason
}

// InsufficientDataError reports a price series shorter than the indicator's
// required lookback. Callers degrade to "no signals" rather than aborting.
type InsufficientDataError struct {
	Need int
	Have int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("indicator: insufficient data: need %d bars, have %d", e.Need, e.Have)
}
