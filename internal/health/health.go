// Package health aggregates named dependency checks for the readiness
// endpoint.
package health

import (
	"context"
	"time"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

type CheckFunc func(ctx context.Context) error

type Check struct {
	Name  string
	Check CheckFunc
}

type Result struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

type Report struct {
	Ready  bool
	Checks map[string]Result
}

type Checker struct {
	checks  []Check
	timeout time.Duration
}

func NewChecker(timeout time.Duration, checks ...Check) *Checker {
	return &Checker{checks: checks, timeout: timeout}
}

// Run executes every check sequentially and reports ready only when all
// of them pass. Check failures carry the error text; successes do not
// expose internals.
func (c *Checker) Run(ctx context.Context) Report {
	report := Report{Ready: true, Checks: make(map[string]Result, len(c.checks))}

	for _, check := range c.checks {
		checkCtx, cancel := context.WithTimeout(ctx, c.timeout)
		err := check.Check(checkCtx)
		cancel()

		if err != nil {
			report.Ready = false
			report.Checks[check.Name] = Result{Status: StatusUnhealthy, Details: err.Error()}
			continue
		}
		report.Checks[check.Name] = Result{Status: StatusHealthy, Details: "Connection successful"}
	}
	return report
}
