package settings

import (
	"errors"
	"strings"
)

// ErrNoConfig indicates no configuration file could be loaded from any
// candidate location. Nothing downstream may assume any event exists.
var ErrNoConfig = errors.New("no configuration file found")

// CycleError reports an inheritance cycle between event parents.
type CycleError struct {
	// Chain lists the event names on the cycle, starting and ending at
	// the event where the cycle was detected.
	Chain []string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return "inheritance cycle: " + strings.Join(e.Chain, " -> ")
}

// closed reports whether the chain has wound back to its starting event.
func (e *CycleError) closed() bool {
	return len(e.Chain) > 1 && e.Chain[0] == e.Chain[len(e.Chain)-1]
}
