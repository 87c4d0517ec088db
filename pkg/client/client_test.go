package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/exemplar/itemsvc/pkg/client"
)

var _ = Describe("Client", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("CreateItem", func() {
		It("should post the payload and decode the created item", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.Method).To(Equal(http.MethodPost))
				Expect(r.URL.Path).To(Equal("/api/v1/items"))
				Expect(r.Header.Get("Content-Type")).To(Equal("application/json"))

				var body map[string]any
				Expect(json.NewDecoder(r.Body).Decode(&body)).To(Succeed())
				Expect(body["name"]).To(Equal("widget"))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusCreated)
				json.NewEncoder(w).Encode(map[string]any{
					"id": "id-1", "name": "widget", "status": "ACTIVE", "version": 1,
				})
			}))
			defer server.Close()

			c := client.New(server.URL)
			item, err := c.CreateItem(ctx, client.CreateItemRequest{Name: "widget"})
			Expect(err).NotTo(HaveOccurred())
			Expect(item.ID).To(Equal("id-1"))
			Expect(item.Version).To(Equal(int64(1)))
		})
	})

	Describe("ListItems", func() {
		It("should encode list options as query parameters", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				Expect(q.Get("start_page")).To(Equal("2"))
				Expect(q.Get("page_size")).To(Equal("5"))
				Expect(q.Get("status")).To(Equal("ACTIVE"))
				Expect(q.Get("search")).To(Equal("wid"))

				json.NewEncoder(w).Encode(map[string]any{
					"items": []any{}, "total_elements": 0, "total_pages": 0,
					"current_page": 2, "page_size": 5,
				})
			}))
			defer server.Close()

			c := client.New(server.URL)
			page, err := c.ListItems(ctx, client.ListOptions{StartPage: 2, PageSize: 5, Status: "ACTIVE", Search: "wid"})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.CurrentPage).To(Equal(2))
		})
	})

	Describe("UpdateItem", func() {
		It("should send explicit null when clearing the description", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.Method).To(Equal(http.MethodPut))

				var body map[string]json.RawMessage
				Expect(json.NewDecoder(r.Body).Decode(&body)).To(Succeed())
				Expect(body).To(HaveKey("description"))
				Expect(string(body["description"])).To(Equal("null"))
				Expect(body).NotTo(HaveKey("name"))

				json.NewEncoder(w).Encode(map[string]any{"id": "id-1", "name": "widget", "version": 2})
			}))
			defer server.Close()

			c := client.New(server.URL)
			item, err := c.UpdateItem(ctx, "id-1", client.UpdateItemRequest{ClearDescription: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(item.Version).To(Equal(int64(2)))
		})

		It("should omit unset fields from the payload", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var body map[string]json.RawMessage
				Expect(json.NewDecoder(r.Body).Decode(&body)).To(Succeed())
				Expect(body).To(HaveLen(1))
				Expect(body).To(HaveKey("name"))

				json.NewEncoder(w).Encode(map[string]any{"id": "id-1", "name": "gadget", "version": 2})
			}))
			defer server.Close()

			name := "gadget"
			c := client.New(server.URL)
			_, err := c.UpdateItem(ctx, "id-1", client.UpdateItemRequest{Name: &name})
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("error handling", func() {
		It("should decode the error envelope", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]any{
					"error":          "RESOURCE_NOT_FOUND",
					"message":        "Resource 'item' with id 'x' not found",
					"correlation_id": "req-1",
				})
			}))
			defer server.Close()

			c := client.New(server.URL)
			_, err := c.GetItem(ctx, "x")
			Expect(err).To(HaveOccurred())

			apiErr, ok := err.(*client.APIError)
			Expect(ok).To(BeTrue())
			Expect(apiErr.StatusCode).To(Equal(http.StatusNotFound))
			Expect(apiErr.Code).To(Equal("RESOURCE_NOT_FOUND"))
			Expect(apiErr.CorrelationID).To(Equal("req-1"))
		})
	})

	Describe("credentials", func() {
		It("should send a bearer token", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.Header.Get("Authorization")).To(Equal("Bearer tok-123"))
				json.NewEncoder(w).Encode(map[string]any{"id": "id-1"})
			}))
			defer server.Close()

			c := client.New(server.URL, client.WithCredentials(client.BearerToken("tok-123")))
			_, err := c.GetItem(ctx, "id-1")
			Expect(err).NotTo(HaveOccurred())
		})

		It("should send an API key header", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.Header.Get("X-API-Key")).To(Equal("key-123"))
				json.NewEncoder(w).Encode(map[string]any{"id": "id-1"})
			}))
			defer server.Close()

			c := client.New(server.URL, client.WithCredentials(client.APIKey("key-123")))
			_, err := c.GetItem(ctx, "id-1")
			Expect(err).NotTo(HaveOccurred())
		})

		It("should log in lazily and refresh once on 401", func() {
			logins := 0
			refreshes := 0
			gets := 0

			mux := http.NewServeMux()
			mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
				logins++
				json.NewEncoder(w).Encode(map[string]any{
					"access_token": "access-1", "refresh_token": "refresh-1",
					"token_type": "bearer", "expires_in": 900,
				})
			})
			mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
				refreshes++
				var body map[string]string
				Expect(json.NewDecoder(r.Body).Decode(&body)).To(Succeed())
				Expect(body["refresh_token"]).To(Equal("refresh-1"))
				json.NewEncoder(w).Encode(map[string]any{
					"access_token": "access-2", "refresh_token": "refresh-2",
					"token_type": "bearer", "expires_in": 900,
				})
			})
			mux.HandleFunc("/api/v1/items/id-1", func(w http.ResponseWriter, r *http.Request) {
				gets++
				if r.Header.Get("Authorization") != "Bearer access-2" {
					w.WriteHeader(http.StatusUnauthorized)
					json.NewEncoder(w).Encode(map[string]any{"error": "AUTHENTICATION_FAILED"})
					return
				}
				json.NewEncoder(w).Encode(map[string]any{"id": "id-1", "name": "widget"})
			})
			server := httptest.NewServer(mux)
			defer server.Close()

			c := client.New(server.URL, client.WithCredentials(client.Password("admin", "secret")))
			item, err := c.GetItem(ctx, "id-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(item.Name).To(Equal("widget"))
			Expect(logins).To(Equal(1))
			Expect(refreshes).To(Equal(1))
			Expect(gets).To(Equal(2))
		})
	})
})
