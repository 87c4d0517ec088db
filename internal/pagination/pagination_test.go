package pagination_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/exemplar/itemsvc/internal/pagination"
)

var _ = Describe("PageRequest", func() {
	Describe("Normalize", func() {
		It("should leave a valid request unchanged", func() {
			n, adjusted := pagination.PageRequest{Page: 2, Size: 20}.Normalize()
			Expect(adjusted).To(BeFalse())
			Expect(n.Page).To(Equal(2))
			Expect(n.Size).To(Equal(20))
		})

		It("should clamp a negative page to zero", func() {
			n, adjusted := pagination.PageRequest{Page: -3, Size: 10}.Normalize()
			Expect(adjusted).To(BeTrue())
			Expect(n.Page).To(Equal(0))
		})

		It("should raise a zero size to the minimum", func() {
			n, adjusted := pagination.PageRequest{Page: 0, Size: 0}.Normalize()
			Expect(adjusted).To(BeTrue())
			Expect(n.Size).To(Equal(pagination.MinPageSize))
		})

		It("should clamp an oversized page to the maximum", func() {
			n, adjusted := pagination.PageRequest{Page: 0, Size: 200}.Normalize()
			Expect(adjusted).To(BeTrue())
			Expect(n.Size).To(Equal(pagination.MaxPageSize))
		})
	})

	Describe("Offset", func() {
		It("should multiply page by size", func() {
			Expect(pagination.PageRequest{Page: 3, Size: 25}.Offset()).To(Equal(75))
			Expect(pagination.PageRequest{Page: 0, Size: 10}.Offset()).To(Equal(0))
		})
	})
})

var _ = Describe("NewPageResult", func() {
	It("should compute metadata for a first page of a two-page set", func() {
		items := make([]int, 10)
		result := pagination.NewPageResult(items, 15, 0, 10)

		Expect(result.TotalElements).To(Equal(15))
		Expect(result.TotalPages).To(Equal(2))
		Expect(result.CurrentPage).To(Equal(0))
		Expect(result.HasNext).To(BeTrue())
		Expect(result.HasPrevious).To(BeFalse())
		Expect(result.NextPage).To(Equal(1))
		Expect(result.PreviousPage).To(Equal(0))
	})

	It("should compute metadata for the last page", func() {
		items := make([]int, 5)
		result := pagination.NewPageResult(items, 15, 1, 10)

		Expect(result.TotalPages).To(Equal(2))
		Expect(result.HasNext).To(BeFalse())
		Expect(result.HasPrevious).To(BeTrue())
		Expect(result.NextPage).To(Equal(1))
		Expect(result.PreviousPage).To(Equal(0))
	})

	It("should report zero pages for an empty set", func() {
		result := pagination.NewPageResult([]int{}, 0, 0, 10)

		Expect(result.TotalPages).To(Equal(0))
		Expect(result.HasNext).To(BeFalse())
		Expect(result.HasPrevious).To(BeFalse())
		Expect(result.NextPage).To(Equal(0))
		Expect(result.PreviousPage).To(Equal(0))
	})

	It("should round total pages up for a partial last page", func() {
		result := pagination.NewPageResult(make([]int, 10), 21, 0, 10)
		Expect(result.TotalPages).To(Equal(3))
	})

	It("should report an exact multiple without an extra page", func() {
		result := pagination.NewPageResult(make([]int, 10), 20, 1, 10)
		Expect(result.TotalPages).To(Equal(2))
		Expect(result.HasNext).To(BeFalse())
	})

	It("should mark a page past the end as having no next", func() {
		result := pagination.NewPageResult([]int{}, 15, 5, 10)
		Expect(result.HasNext).To(BeFalse())
		Expect(result.HasPrevious).To(BeTrue())
	})
})
