// Package lockstate reads the keyboard Num Lock toggle state from the operating system.
package lockstate

import (
	"errors"
	"fmt"
	"log"
)

// State is the Num Lock toggle state as seen by one query.
type State int

const (
	// Unknown means no strategy could read the state this time.
	Unknown State = iota
	On
	Off
)

func (s State) String() string {
	switch s {
	case On:
		return "ON"
	case Off:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// FromBool converts a toggle reading into a State.
func FromBool(on bool) State {
	if on {
		return On
	}
	return Off
}

// Known reports whether s carries a reading.
func (s State) Known() bool {
	return s == On || s == Off
}

// Querier returns the current lock state.
type Querier interface {
	Query() State
}

// Strategy is one way of reading the toggle state.
type Strategy interface {
	Name() string
	Query() (bool, error)
}

// ErrUnavailable is returned by strategies that cannot run in the current environment.
var ErrUnavailable = errors.New("strategy unavailable")

// Chain tries each strategy in order and returns the first successful reading.
type Chain []Strategy

// Query implements Querier. Failures fall through to the next strategy; when
// every strategy fails the result is Unknown.
func (c Chain) Query() State {
	for _, s := range c {
		on, err := attempt(s)
		if err != nil {
			continue
		}
		return FromBool(on)
	}
	return Unknown
}

// Explain runs every strategy and reports each outcome, for diagnostics.
func (c Chain) Explain() []Result {
	results := make([]Result, 0, len(c))
	for _, s := range c {
		on, err := attempt(s)
		results = append(results, Result{Strategy: s.Name(), On: on, Err: err})
	}
	return results
}

// Result is the outcome of a single strategy attempt.
type Result struct {
	Strategy string
	On       bool
	Err      error
}

func attempt(s Strategy) (on bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[lockstate] %s panicked: %v", s.Name(), r)
			on, err = false, fmt.Errorf("%s: panic: %v", s.Name(), r)
		}
	}()
	return s.Query()
}

// Default returns the strategy chain for the current platform.
func Default() Chain {
	return platformChain()
}
