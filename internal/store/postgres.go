package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"autobloggerx/internal/models"
)

// PostgresStore writes websites straight into a PostgreSQL database that
// carries the website_data schema from the embedded migrations.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a PostgresStore with the given connection pool.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const insertWebsite = `
	INSERT INTO website_data (
		id, host_name, website_name, topic, about_us, contact_us,
		frontpage_hero_title, frontpage_hero_text, frontpage_outro_text,
		template_header, template_footer, template_blog_post, template_page, template_front_page,
		primary_color, secondary_color, accent_color, background_color, text_color,
		font_heading, font_body, container_width, border_radius, meta_description,
		show_breadcrumbs, show_related_posts, show_search_bar, show_share_buttons,
		show_table_of_contents, show_author_box, show_tags_display, show_reading_time,
		show_post_navigation, show_reading_progress_bar
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
		$18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34
	)
	RETURNING id, host_name, website_name, topic, primary_color, background_color,
	          text_color, font_heading, font_body, created_at`

// Insert writes the website with a fresh UUID and returns the stored row.
func (s *PostgresStore) Insert(ctx context.Context, w *models.Website) ([]models.WebsiteSummary, error) {
	var row models.WebsiteSummary
	err := s.db.QueryRowContext(ctx, insertWebsite,
		uuid.NewString(), w.HostName, w.WebsiteName, w.Topic, w.AboutUs, w.ContactUs,
		w.Title, w.Text, w.Outro,
		w.Header, w.Footer, w.BlogPost, w.Page, w.FrontPage,
		w.PrimaryColor, w.SecondaryColor, w.AccentColor, w.BackgroundColor, w.TextColor,
		w.FontHeading, w.FontBody, w.ContainerWidth, w.BorderRadius, w.MetaDescription,
		w.Breadcrumbs, w.RelatedPosts, w.SearchBar, w.ShareButtons,
		w.TableOfContents, w.AuthorBox, w.TagsDisplay, w.ReadingTime,
		w.PostNavigation, w.ReadingProgressBar,
	).Scan(
		&row.ID, &row.HostName, &row.WebsiteName, &row.Topic, &row.PrimaryColor,
		&row.BackgroundColor, &row.TextColor, &row.FontHeading, &row.FontBody, &row.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", TableName, err)
	}
	return []models.WebsiteSummary{row}, nil
}

// List returns websites ordered by creation date descending. A limit of
// zero or less returns every row.
func (s *PostgresStore) List(ctx context.Context, limit int) ([]models.WebsiteSummary, error) {
	query := `
		SELECT id, host_name, website_name, topic, primary_color, background_color,
		       text_color, font_heading, font_body, created_at
		FROM website_data
		ORDER BY created_at DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", TableName, err)
	}
	defer rows.Close()

	var items []models.WebsiteSummary
	for rows.Next() {
		var w models.WebsiteSummary
		if err := rows.Scan(
			&w.ID, &w.HostName, &w.WebsiteName, &w.Topic, &w.PrimaryColor,
			&w.BackgroundColor, &w.TextColor, &w.FontHeading, &w.FontBody, &w.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan website: %w", err)
		}
		items = append(items, w)
	}
	return items, rows.Err()
}
