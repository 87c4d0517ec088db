package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/exemplar/itemsvc/internal/db"
	"github.com/exemplar/itemsvc/internal/models"
)

const (
	sqlstateUniqueViolation = "23505"
	sqlstateClassConstraint = "23"
)

type Config struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration

	// Startup connect retry: fixed attempt count, linear backoff.
	ConnectAttempts int
	ConnectBackoff  time.Duration
}

type Store struct {
	conn *sql.DB
}

// New opens the pool and verifies connectivity, retrying the initial ping
// a fixed number of times with linearly increasing backoff. This is the
// only retry loop in the service.
func New(cfg Config) (*Store, error) {
	conn, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	attempts := cfg.ConnectAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; ; attempt++ {
		err = conn.PingContext(context.Background())
		if err == nil {
			break
		}
		if attempt >= attempts {
			conn.Close()
			return nil, fmt.Errorf("ping database after %d attempts: %w", attempt, err)
		}
		backoff := time.Duration(attempt) * cfg.ConnectBackoff
		slog.Warn("database not reachable, retrying", "attempt", attempt, "backoff", backoff, "error", err)
		time.Sleep(backoff)
	}

	return &Store{conn: conn}, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

// classify maps driver errors onto the store's sentinel errors using the
// SQLSTATE code, never the message text.
func classify(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	code := string(pqErr.Code)
	switch {
	case code == sqlstateUniqueViolation:
		return fmt.Errorf("%w: %s", db.ErrDuplicateName, pqErr.Constraint)
	case strings.HasPrefix(code, sqlstateClassConstraint):
		return fmt.Errorf("constraint violated (%s): %w", code, err)
	}
	return err
}

const itemColumns = `id, name, description, status, created_at, updated_at, version`

func scanItem(row interface{ Scan(...any) error }) (*models.Item, error) {
	item := &models.Item{}
	err := row.Scan(
		&item.ID, &item.Name, &item.Description, &item.Status,
		&item.CreatedAt, &item.UpdatedAt, &item.Version,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Store) CreateItem(ctx context.Context, item *models.Item) error {
	query := `
		INSERT INTO items (id, name, description, status, created_at, updated_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.Status == "" {
		item.Status = models.ItemStatusActive
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	item.Version = 1

	_, err := s.conn.ExecContext(ctx, query,
		item.ID, item.Name, item.Description, item.Status,
		item.CreatedAt, item.UpdatedAt, item.Version,
	)
	if err != nil {
		return fmt.Errorf("create item: %w", classify(err))
	}
	return nil
}

func (s *Store) CreateItems(ctx context.Context, items []*models.Item) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO items (id, name, description, status, created_at, updated_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	now := time.Now().UTC()
	for _, item := range items {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		if item.Status == "" {
			item.Status = models.ItemStatusActive
		}
		item.CreatedAt = now
		item.UpdatedAt = now
		item.Version = 1
		if _, err := tx.ExecContext(ctx, query,
			item.ID, item.Name, item.Description, item.Status,
			item.CreatedAt, item.UpdatedAt, item.Version,
		); err != nil {
			return fmt.Errorf("create items: %w", classify(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *Store) GetItem(ctx context.Context, id string) (*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	item, err := scanItem(s.conn.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

func (s *Store) GetItemByName(ctx context.Context, name string) (*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE name = $1`
	item, err := scanItem(s.conn.QueryRowContext(ctx, query, name))
	if err == sql.ErrNoRows {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get item by name: %w", err)
	}
	return item, nil
}

func filterClauses(filters db.ItemFilters) (string, []any) {
	var clauses []string
	var args []any

	if filters.Status != nil {
		args = append(args, *filters.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(filters.StatusIn) > 0 {
		statuses := make([]string, len(filters.StatusIn))
		for i, st := range filters.StatusIn {
			statuses[i] = string(st)
		}
		args = append(args, pq.Array(statuses))
		clauses = append(clauses, fmt.Sprintf("status = ANY($%d)", len(args)))
	}
	if filters.NameSearch != nil {
		args = append(args, "%"+*filters.NameSearch+"%")
		clauses = append(clauses, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (s *Store) ListItems(ctx context.Context, filters db.ItemFilters, limit, offset int) ([]*models.Item, int, error) {
	where, args := filterClauses(filters)

	var total int
	if err := s.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	query := `SELECT ` + itemColumns + ` FROM items` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]*models.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}

// UpdateItem applies a partial update and bumps the version. When
// expectedVersion is non-nil the write is gated on it; a mismatch against
// an existing row returns ErrVersionConflict.
func (s *Store) UpdateItem(ctx context.Context, id string, expectedVersion *int64, update *db.ItemUpdate) (*models.Item, error) {
	if update.Empty() {
		return s.GetItem(ctx, id)
	}

	var sets []string
	var args []any
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Name.Set {
		add("name", update.Name.Value)
	}
	if update.Description.Set {
		add("description", update.Description.Value)
	}
	if update.Status.Set {
		add("status", update.Status.Value)
	}
	add("updated_at", time.Now().UTC())
	sets = append(sets, "version = version + 1")

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE items SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))
	if expectedVersion != nil {
		args = append(args, *expectedVersion)
		query += fmt.Sprintf(` AND version = $%d`, len(args))
	}
	query += ` RETURNING ` + itemColumns

	item, err := scanItem(s.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		// Row missing entirely, or present at a different version.
		if expectedVersion != nil {
			if exists, existsErr := s.ItemExists(ctx, id); existsErr == nil && exists {
				return nil, db.ErrVersionConflict
			}
		}
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update item: %w", classify(err))
	}
	return item, nil
}

func (s *Store) DeleteItem(ctx context.Context, id string) error {
	result, err := s.conn.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteItems(ctx context.Context, ids []string) (int, error) {
	result, err := s.conn.ExecContext(ctx, `DELETE FROM items WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("delete items: %w", err)
	}
	rows, _ := result.RowsAffected()
	return int(rows), nil
}

func (s *Store) ItemExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.conn.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM items WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("item exists: %w", err)
	}
	return exists, nil
}

func (s *Store) CountItems(ctx context.Context, filters db.ItemFilters) (int, error) {
	where, args := filterClauses(filters)
	var total int
	if err := s.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return total, nil
}
