package profitability

import (
	"errors"
	"fmt"
)

var (
	// ErrCacheMiss is returned by a tier that has nothing fresh enough.
	ErrCacheMiss = errors.New("cache miss")
	// ErrStoreUnavailable means the persistent tier is not configured or
	// could not be reached.
	ErrStoreUnavailable = errors.New("persistent store unavailable")
	// ErrNoMatch is the "not found" outcome of a resolution, it is not a
	// failure.
	ErrNoMatch = errors.New("no miner matched")
)

// TierError attributes a failure to the tier that produced it.
type TierError struct {
	Tier Tier
	Err  error
}

func (e TierError) Error() string {
	return fmt.Sprintf("%s tier: %s", e.Tier, e.Err.Error())
}

func (e TierError) Unwrap() error {
	return e.Err
}
