package health_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/exemplar/itemsvc/internal/health"
)

var _ = Describe("Checker", func() {
	ok := func(ctx context.Context) error { return nil }

	It("should be ready when every check passes", func() {
		checker := health.NewChecker(time.Second,
			health.Check{Name: "database", Check: ok},
			health.Check{Name: "cache", Check: ok},
		)

		report := checker.Run(context.Background())
		Expect(report.Ready).To(BeTrue())
		Expect(report.Checks).To(HaveLen(2))
		Expect(report.Checks["database"].Status).To(Equal(health.StatusHealthy))
	})

	It("should not be ready when any check fails", func() {
		checker := health.NewChecker(time.Second,
			health.Check{Name: "database", Check: ok},
			health.Check{Name: "cache", Check: func(ctx context.Context) error {
				return errors.New("connection refused")
			}},
		)

		report := checker.Run(context.Background())
		Expect(report.Ready).To(BeFalse())
		Expect(report.Checks["database"].Status).To(Equal(health.StatusHealthy))
		Expect(report.Checks["cache"].Status).To(Equal(health.StatusUnhealthy))
		Expect(report.Checks["cache"].Details).To(ContainSubstring("connection refused"))
	})

	It("should cut off a check at the timeout", func() {
		checker := health.NewChecker(10*time.Millisecond,
			health.Check{Name: "slow", Check: func(ctx context.Context) error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(time.Second):
					return nil
				}
			}},
		)

		report := checker.Run(context.Background())
		Expect(report.Ready).To(BeFalse())
		Expect(report.Checks["slow"].Status).To(Equal(health.StatusUnhealthy))
	})

	It("should be ready with no checks configured", func() {
		report := health.NewChecker(time.Second).Run(context.Background())
		Expect(report.Ready).To(BeTrue())
	})
})
