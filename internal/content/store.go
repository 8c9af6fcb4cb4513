// Package content provides read/write access to the CMS-authored content
// documents: pages keyed by slug and the singleton navigation document. The
// composer treats everything returned here as read-only input.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iis-mfg/precision-site/internal/types"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// NewStore wraps an existing pool. The caller retains ownership of the pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ping verifies database connectivity, for the integrations health report.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// GetPage retrieves a page by slug. Returns nil when no page exists.
func (s *Store) GetPage(ctx context.Context, slug string) (*types.Page, error) {
	var page types.Page
	var seo, sections []byte
	err := s.pool.QueryRow(ctx,
		`SELECT id, slug, title, seo, sections, updated_at FROM pages WHERE slug = $1`,
		slug,
	).Scan(&page.ID, &page.Slug, &page.Title, &seo, &sections, &page.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get page %s: %w", slug, err)
	}

	if len(seo) > 0 {
		if err := json.Unmarshal(seo, &page.SEO); err != nil {
			return nil, fmt.Errorf("failed to decode seo for page %s: %w", slug, err)
		}
	}
	page.Sections, err = DecodeSections(sections)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sections for page %s: %w", slug, err)
	}
	return &page, nil
}

// UpsertPage inserts or replaces a page document keyed by slug.
func (s *Store) UpsertPage(ctx context.Context, page types.Page) error {
	seo, err := json.Marshal(page.SEO)
	if err != nil {
		return fmt.Errorf("failed to marshal seo: %w", err)
	}
	sections, err := EncodeSections(page.Sections)
	if err != nil {
		return fmt.Errorf("failed to marshal sections: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO pages (id, slug, title, seo, sections, updated_at)
		 VALUES ($1, $2, $3, $4, $5, NOW())
		 ON CONFLICT (slug) DO UPDATE SET title = $3, seo = $4, sections = $5, updated_at = NOW()`,
		page.ID, page.Slug, page.Title, seo, sections,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert page %s: %w", page.Slug, err)
	}
	return nil
}

// ListSlugs returns the slugs of all stored pages in alphabetical order.
func (s *Store) ListSlugs(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT slug FROM pages ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("failed to scan slug: %w", err)
		}
		slugs = append(slugs, slug)
	}
	return slugs, rows.Err()
}

// GetNavigation retrieves the singleton navigation document. Returns an
// empty document when none has been seeded.
func (s *Store) GetNavigation(ctx context.Context) (*types.Navigation, error) {
	var items []byte
	var updatedAt time.Time
	err := s.pool.QueryRow(ctx,
		`SELECT items, updated_at FROM navigation WHERE singleton = TRUE`,
	).Scan(&items, &updatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return &types.Navigation{}, nil
		}
		return nil, fmt.Errorf("failed to get navigation: %w", err)
	}

	nav := types.Navigation{UpdatedAt: updatedAt}
	if err := json.Unmarshal(items, &nav.Items); err != nil {
		return nil, fmt.Errorf("failed to decode navigation: %w", err)
	}
	return &nav, nil
}

// SaveNavigation replaces the singleton navigation document.
func (s *Store) SaveNavigation(ctx context.Context, nav types.Navigation) error {
	items, err := json.Marshal(nav.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal navigation: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO navigation (singleton, items, updated_at) VALUES (TRUE, $1, NOW())
		 ON CONFLICT (singleton) DO UPDATE SET items = $1, updated_at = NOW()`,
		items,
	)
	if err != nil {
		return fmt.Errorf("failed to save navigation: %w", err)
	}
	return nil
}
