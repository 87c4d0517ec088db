package dto_test

import (
	"encoding/json"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/exemplar/itemsvc/internal/api/rest/dto"
	"github.com/exemplar/itemsvc/internal/models"
)

var _ = Describe("Optional", func() {
	type payload struct {
		Description dto.Optional[string] `json:"description"`
	}

	It("should stay unset when the field is absent", func() {
		var p payload
		Expect(json.Unmarshal([]byte(`{}`), &p)).To(Succeed())
		Expect(p.Description.Set).To(BeFalse())
	})

	It("should record an explicit null", func() {
		var p payload
		Expect(json.Unmarshal([]byte(`{"description":null}`), &p)).To(Succeed())
		Expect(p.Description.Set).To(BeTrue())
		Expect(p.Description.Null).To(BeTrue())
	})

	It("should record a value", func() {
		var p payload
		Expect(json.Unmarshal([]byte(`{"description":"hello"}`), &p)).To(Succeed())
		Expect(p.Description.Set).To(BeTrue())
		Expect(p.Description.Null).To(BeFalse())
		Expect(p.Description.Value).To(Equal("hello"))
	})
})

var _ = Describe("CreateItemRequest", func() {
	It("should require a name", func() {
		req := dto.CreateItemRequest{}
		Expect(req.Validate()).To(HaveOccurred())
	})

	It("should cap the name at 255 characters", func() {
		req := dto.CreateItemRequest{Name: strings.Repeat("x", 256)}
		Expect(req.Validate()).To(HaveOccurred())
	})

	It("should reject an unknown status", func() {
		req := dto.CreateItemRequest{Name: "widget", Status: "BROKEN"}
		Expect(req.Validate()).To(HaveOccurred())
	})

	It("should accept a lowercase status", func() {
		req := dto.CreateItemRequest{Name: "widget", Status: "active"}
		Expect(req.Validate()).To(Succeed())
	})
})

var _ = Describe("UpdateItemRequest", func() {
	It("should reject an explicitly empty name", func() {
		name := ""
		req := dto.UpdateItemRequest{Name: &name}
		Expect(req.Validate()).To(HaveOccurred())
	})

	Describe("ToUpdate", func() {
		It("should leave absent fields unset", func() {
			var req dto.UpdateItemRequest
			Expect(json.Unmarshal([]byte(`{"status":"ARCHIVED"}`), &req)).To(Succeed())

			update := req.ToUpdate()
			Expect(update.Name.Set).To(BeFalse())
			Expect(update.Description.Set).To(BeFalse())
			Expect(update.Status.Set).To(BeTrue())
			Expect(update.Status.Value).To(Equal(models.ItemStatusArchived))
		})

		It("should turn an explicit null into a clearing update", func() {
			var req dto.UpdateItemRequest
			Expect(json.Unmarshal([]byte(`{"description":null}`), &req)).To(Succeed())

			update := req.ToUpdate()
			Expect(update.Description.Set).To(BeTrue())
			Expect(update.Description.Value).To(BeNil())
		})

		It("should carry a supplied description value", func() {
			var req dto.UpdateItemRequest
			Expect(json.Unmarshal([]byte(`{"description":"new text"}`), &req)).To(Succeed())

			update := req.ToUpdate()
			Expect(update.Description.Set).To(BeTrue())
			Expect(*update.Description.Value).To(Equal("new text"))
		})
	})
})
