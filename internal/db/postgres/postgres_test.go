package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/exemplar/itemsvc/internal/db"
	"github.com/exemplar/itemsvc/internal/db/postgres"
	"github.com/exemplar/itemsvc/internal/models"
)

var _ = Describe("Postgres Store", func() {
	var (
		store     *postgres.Store
		ctx       context.Context
		dbURL     string
		skipTests bool
	)

	BeforeEach(func() {
		ctx = context.Background()
		dbURL = os.Getenv("ITEMSVC_TEST_DB_URL")
		if dbURL == "" {
			skipTests = true
			Skip("ITEMSVC_TEST_DB_URL not set, skipping integration tests")
			return
		}

		cleanDatabase(dbURL)
		runMigrations(dbURL)

		var err error
		store, err = postgres.New(postgres.Config{
			URL:             dbURL,
			MaxOpenConns:    10,
			MaxIdleConns:    2,
			ConnMaxLifetime: 5 * time.Minute,
			ConnMaxIdleTime: 5 * time.Minute,
			ConnectAttempts: 1,
		})
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		if !skipTests && store != nil {
			store.Close()
		}
	})

	create := func(name string) *models.Item {
		item := &models.Item{Name: name}
		Expect(store.CreateItem(ctx, item)).To(Succeed())
		return item
	}

	Describe("CreateItem", func() {
		It("should assign an id, timestamps and version 1", func() {
			item := create("widget")
			Expect(item.ID).NotTo(BeEmpty())
			Expect(item.Version).To(Equal(int64(1)))
			Expect(item.Status).To(Equal(models.ItemStatusActive))
			Expect(item.CreatedAt).To(BeTemporally("~", time.Now(), 5*time.Second))
		})

		It("should return ErrDuplicateName for a duplicate name", func() {
			create("widget")
			err := store.CreateItem(ctx, &models.Item{Name: "widget"})
			Expect(err).To(MatchError(db.ErrDuplicateName))
		})
	})

	Describe("CreateItems", func() {
		It("should insert all items in one transaction", func() {
			items := []*models.Item{{Name: "a"}, {Name: "b"}, {Name: "c"}}
			Expect(store.CreateItems(ctx, items)).To(Succeed())

			count, err := store.CountItems(ctx, db.ItemFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(3))
		})

		It("should roll back everything when one insert fails", func() {
			create("b")
			items := []*models.Item{{Name: "a"}, {Name: "b"}}
			Expect(store.CreateItems(ctx, items)).To(MatchError(db.ErrDuplicateName))

			count, err := store.CountItems(ctx, db.ItemFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(1))
		})
	})

	Describe("GetItem", func() {
		It("should retrieve a stored item", func() {
			created := create("widget")
			got, err := store.GetItem(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Name).To(Equal("widget"))
			Expect(got.Description).To(BeNil())
		})

		It("should return ErrNotFound for an unknown id", func() {
			_, err := store.GetItem(ctx, "00000000-0000-0000-0000-000000000000")
			Expect(err).To(MatchError(db.ErrNotFound))
		})
	})

	Describe("GetItemByName", func() {
		It("should retrieve by unique name", func() {
			create("widget")
			got, err := store.GetItemByName(ctx, "widget")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Name).To(Equal("widget"))
		})
	})

	Describe("ListItems", func() {
		BeforeEach(func() {
			for i := 0; i < 5; i++ {
				create(fmt.Sprintf("item-%d", i))
			}
		})

		It("should page results newest first", func() {
			items, total, err := store.ListItems(ctx, db.ItemFilters{}, 3, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(5))
			Expect(items).To(HaveLen(3))
		})

		It("should report the total past the last page", func() {
			items, total, err := store.ListItems(ctx, db.ItemFilters{}, 3, 6)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(5))
			Expect(items).To(BeEmpty())
		})

		It("should filter by status", func() {
			archived := models.ItemStatusArchived
			item := create("archived-item")
			_, err := store.UpdateItem(ctx, item.ID, nil, &db.ItemUpdate{Status: db.Some(archived)})
			Expect(err).NotTo(HaveOccurred())

			items, total, err := store.ListItems(ctx, db.ItemFilters{Status: &archived}, 10, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(1))
			Expect(items[0].Name).To(Equal("archived-item"))
		})

		It("should filter by a case-insensitive name search", func() {
			create("Special Widget")
			search := "special"
			items, total, err := store.ListItems(ctx, db.ItemFilters{NameSearch: &search}, 10, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(1))
			Expect(items[0].Name).To(Equal("Special Widget"))
		})

		It("should filter by status membership", func() {
			filters := db.ItemFilters{
				StatusIn: []models.ItemStatus{models.ItemStatusActive, models.ItemStatusInactive},
			}
			_, total, err := store.ListItems(ctx, filters, 10, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(5))
		})
	})

	Describe("UpdateItem", func() {
		It("should apply set fields and bump the version", func() {
			item := create("widget")
			desc := "a widget"
			updated, err := store.UpdateItem(ctx, item.ID, nil, &db.ItemUpdate{
				Name:        db.Some("gadget"),
				Description: db.Some(&desc),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("gadget"))
			Expect(*updated.Description).To(Equal("a widget"))
			Expect(updated.Version).To(Equal(int64(2)))
		})

		It("should clear the description with a set nil value", func() {
			item := create("widget")
			desc := "temp"
			_, err := store.UpdateItem(ctx, item.ID, nil, &db.ItemUpdate{Description: db.Some(&desc)})
			Expect(err).NotTo(HaveOccurred())

			updated, err := store.UpdateItem(ctx, item.ID, nil, &db.ItemUpdate{Description: db.Some[*string](nil)})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Description).To(BeNil())
		})

		It("should enforce the expected version", func() {
			item := create("widget")
			_, err := store.UpdateItem(ctx, item.ID, nil, &db.ItemUpdate{Name: db.Some("gadget")})
			Expect(err).NotTo(HaveOccurred())

			stale := int64(1)
			_, err = store.UpdateItem(ctx, item.ID, &stale, &db.ItemUpdate{Name: db.Some("gizmo")})
			Expect(err).To(MatchError(db.ErrVersionConflict))
		})

		It("should accept a matching expected version", func() {
			item := create("widget")
			expected := int64(1)
			updated, err := store.UpdateItem(ctx, item.ID, &expected, &db.ItemUpdate{Name: db.Some("gadget")})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Version).To(Equal(int64(2)))
		})

		It("should return ErrNotFound for an unknown id", func() {
			_, err := store.UpdateItem(ctx, "00000000-0000-0000-0000-000000000000", nil, &db.ItemUpdate{
				Name: db.Some("gadget"),
			})
			Expect(err).To(MatchError(db.ErrNotFound))
		})

		It("should return ErrDuplicateName when renaming onto an existing name", func() {
			create("taken")
			item := create("widget")
			_, err := store.UpdateItem(ctx, item.ID, nil, &db.ItemUpdate{Name: db.Some("taken")})
			Expect(err).To(MatchError(db.ErrDuplicateName))
		})
	})

	Describe("DeleteItem", func() {
		It("should delete an existing item", func() {
			item := create("widget")
			Expect(store.DeleteItem(ctx, item.ID)).To(Succeed())

			_, err := store.GetItem(ctx, item.ID)
			Expect(err).To(MatchError(db.ErrNotFound))
		})

		It("should return ErrNotFound for an unknown id", func() {
			err := store.DeleteItem(ctx, "00000000-0000-0000-0000-000000000000")
			Expect(err).To(MatchError(db.ErrNotFound))
		})
	})

	Describe("DeleteItems", func() {
		It("should delete the existing subset and report the count", func() {
			a := create("a")
			b := create("b")

			deleted, err := store.DeleteItems(ctx, []string{a.ID, b.ID, "00000000-0000-0000-0000-000000000000"})
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(Equal(2))
		})
	})

	Describe("ItemExists", func() {
		It("should report existence", func() {
			item := create("widget")

			exists, err := store.ItemExists(ctx, item.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())

			exists, err = store.ItemExists(ctx, "00000000-0000-0000-0000-000000000000")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})
	})
})

func cleanDatabase(dbURL string) {
	conn, err := sql.Open("postgres", dbURL)
	Expect(err).NotTo(HaveOccurred())
	defer conn.Close()

	_, err = conn.Exec(`
		DROP TABLE IF EXISTS items CASCADE;
		DROP TABLE IF EXISTS schema_migrations CASCADE;
	`)
	Expect(err).NotTo(HaveOccurred())
}

func runMigrations(dbURL string) {
	m, err := migrate.New("file://../../../migrations", dbURL)
	Expect(err).NotTo(HaveOccurred())
	defer m.Close()

	err = m.Up()
	Expect(err).NotTo(HaveOccurred())
}
