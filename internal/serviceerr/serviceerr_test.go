package serviceerr_test

import (
	"errors"
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"google.golang.org/grpc/codes"

	"github.com/exemplar/itemsvc/internal/serviceerr"
)

var _ = Describe("ServiceError", func() {
	It("should format the code and message", func() {
		err := serviceerr.NotFound("item", "abc")
		Expect(err.Error()).To(ContainSubstring("RESOURCE_NOT_FOUND"))
		Expect(err.Error()).To(ContainSubstring("'item'"))
		Expect(err.Error()).To(ContainSubstring("'abc'"))
	})

	It("should include the cause in the message and unwrap to it", func() {
		cause := errors.New("connection refused")
		err := serviceerr.Internal("item operation failed", cause)

		Expect(err.Error()).To(ContainSubstring("connection refused"))
		Expect(errors.Unwrap(err)).To(Equal(cause))
		Expect(errors.Is(err, cause)).To(BeTrue())
	})

	It("should fill in the default message when none is given", func() {
		err := serviceerr.New(serviceerr.CodeRateLimitExceeded, "")
		Expect(err.Message).To(Equal("Rate limit exceeded for this operation"))
	})

	Describe("WithCorrelationID", func() {
		It("should copy the error instead of mutating it", func() {
			base := serviceerr.NotFound("item", "abc")
			tagged := base.WithCorrelationID("req-1")

			Expect(tagged.CorrelationID).To(Equal("req-1"))
			Expect(base.CorrelationID).To(BeEmpty())
		})
	})

	Describe("From", func() {
		It("should pass a service error through", func() {
			original := serviceerr.ValidationError("name is required")
			Expect(serviceerr.From(original)).To(Equal(original))
		})

		It("should unwrap a wrapped service error", func() {
			original := serviceerr.NotFound("item", "abc")
			wrapped := fmt.Errorf("handler: %w", original)
			Expect(serviceerr.From(wrapped)).To(Equal(original))
		})

		It("should convert an unknown error into an internal one", func() {
			cause := errors.New("boom")
			se := serviceerr.From(cause)

			Expect(se.Code).To(Equal(serviceerr.CodeInternalError))
			Expect(se.Cause).To(Equal(cause))
		})
	})
})

var _ = Describe("HTTPStatus", func() {
	It("should map each code family to its status", func() {
		Expect(serviceerr.HTTPStatus(serviceerr.CodeResourceNotFound)).To(Equal(http.StatusNotFound))
		Expect(serviceerr.HTTPStatus(serviceerr.CodeResourceAlreadyExists)).To(Equal(http.StatusConflict))
		Expect(serviceerr.HTTPStatus(serviceerr.CodePreconditionFailed)).To(Equal(http.StatusConflict))
		Expect(serviceerr.HTTPStatus(serviceerr.CodeInvalidRequest)).To(Equal(http.StatusBadRequest))
		Expect(serviceerr.HTTPStatus(serviceerr.CodeValidationError)).To(Equal(http.StatusBadRequest))
		Expect(serviceerr.HTTPStatus(serviceerr.CodeConstraintViolation)).To(Equal(http.StatusBadRequest))
		Expect(serviceerr.HTTPStatus(serviceerr.CodePermissionDenied)).To(Equal(http.StatusForbidden))
		Expect(serviceerr.HTTPStatus(serviceerr.CodeAuthenticationFailed)).To(Equal(http.StatusUnauthorized))
		Expect(serviceerr.HTTPStatus(serviceerr.CodeRateLimitExceeded)).To(Equal(http.StatusTooManyRequests))
		Expect(serviceerr.HTTPStatus(serviceerr.CodeServiceUnavailable)).To(Equal(http.StatusServiceUnavailable))
		Expect(serviceerr.HTTPStatus(serviceerr.CodeNotImplemented)).To(Equal(http.StatusNotImplemented))
		Expect(serviceerr.HTTPStatus(serviceerr.CodeInternalError)).To(Equal(http.StatusInternalServerError))
		Expect(serviceerr.HTTPStatus(serviceerr.CodeDatabaseError)).To(Equal(http.StatusInternalServerError))
	})
})

var _ = Describe("GRPCCode", func() {
	It("should map each code family to its gRPC code", func() {
		Expect(serviceerr.GRPCCode(serviceerr.CodeResourceNotFound)).To(Equal(codes.NotFound))
		Expect(serviceerr.GRPCCode(serviceerr.CodeResourceAlreadyExists)).To(Equal(codes.AlreadyExists))
		Expect(serviceerr.GRPCCode(serviceerr.CodePreconditionFailed)).To(Equal(codes.FailedPrecondition))
		Expect(serviceerr.GRPCCode(serviceerr.CodeConstraintViolation)).To(Equal(codes.InvalidArgument))
		Expect(serviceerr.GRPCCode(serviceerr.CodeAuthenticationFailed)).To(Equal(codes.Unauthenticated))
		Expect(serviceerr.GRPCCode(serviceerr.CodeTimeout)).To(Equal(codes.DeadlineExceeded))
		Expect(serviceerr.GRPCCode(serviceerr.CodeInternalError)).To(Equal(codes.Internal))
	})
})
