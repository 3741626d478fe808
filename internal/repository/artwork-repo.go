package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"github.com/drdwitte/Fabritius-NG/internal/domain"
)

type artworkRepo struct {
	pool *pgxpool.Pool
}

func NewArtworkRepository(pool *pgxpool.Pool) domain.ArtworkRepository {
	return &artworkRepo{pool: pool}
}

const artworkColumns = `
	a.inventory_number, a.record_id, a.title, a.artist,
	a.artist_first_name, a.artist_family_name, a.dating,
	a.year_from, a.year_to, a.classification, a.object_type,
	a.materials, a.source, a.image_link,
	COALESCE(a.caption, '') AS caption,
	a.iconography_subject, a.iconography_terms, a.iconography_conceptual,
	(a.embedding IS NOT NULL) AS has_embedding,
	a.created_at, a.updated_at`

func (r *artworkRepo) List(ctx context.Context, filter domain.ArtworkFilter) ([]*domain.Artwork, int, error) {
	conditions := []string{"TRUE"}
	args := []interface{}{}
	argPos := 1

	if len(filter.Inventories) > 0 {
		conditions = append(conditions, fmt.Sprintf("a.inventory_number = ANY($%d)", argPos))
		args = append(args, filter.Inventories)
		argPos++
	} else if filter.Inventory != "" {
		conditions = append(conditions, fmt.Sprintf("a.inventory_number ILIKE $%d", argPos))
		args = append(args, "%"+filter.Inventory+"%")
		argPos++
	}
	if filter.Artist != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(a.artist ILIKE $%d OR a.artist_first_name ILIKE $%d OR a.artist_family_name ILIKE $%d)",
			argPos, argPos, argPos))
		args = append(args, "%"+filter.Artist+"%")
		argPos++
	}
	if filter.Title != "" {
		conditions = append(conditions, fmt.Sprintf("a.title ILIKE $%d", argPos))
		args = append(args, "%"+filter.Title+"%")
		argPos++
	}
	if filter.YearFrom != nil {
		conditions = append(conditions, fmt.Sprintf("a.year_to >= $%d", argPos))
		args = append(args, *filter.YearFrom)
		argPos++
	}
	if filter.YearTo != nil {
		conditions = append(conditions, fmt.Sprintf("a.year_from <= $%d", argPos))
		args = append(args, *filter.YearTo)
		argPos++
	}
	if len(filter.Sources) > 0 {
		conditions = append(conditions, fmt.Sprintf("a.source = ANY($%d)", argPos))
		args = append(args, filter.Sources)
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM artworks a WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count artworks: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 12
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM artworks a
		WHERE %s
		ORDER BY a.inventory_number
		LIMIT $%d OFFSET $%d
	`, artworkColumns, whereClause, argPos, argPos+1)
	args = append(args, limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list artworks: %w", err)
	}
	defer rows.Close()

	var artworks []*domain.Artwork
	for rows.Next() {
		a, err := scanArtwork(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan artwork row: %w", err)
		}
		artworks = append(artworks, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate artwork rows: %w", err)
	}

	return artworks, total, nil
}

func (r *artworkRepo) GetByInventory(ctx context.Context, inventoryNumber string) (*domain.Artwork, error) {
	query := fmt.Sprintf("SELECT %s FROM artworks a WHERE a.inventory_number = $1", artworkColumns)

	a, err := scanArtwork(r.pool.QueryRow(ctx, query, inventoryNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArtworkNotFound
		}
		return nil, fmt.Errorf("get artwork by inventory: %w", err)
	}
	return a, nil
}

func (r *artworkRepo) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM artworks").Scan(&total); err != nil {
		return 0, fmt.Errorf("count artworks: %w", err)
	}
	return total, nil
}

// SemanticSearch calls the vector_search stored procedure; the similarity
// ranking (ORDER BY cosine distance, LIMIT) runs inside Postgres.
func (r *artworkRepo) SemanticSearch(ctx context.Context, embedding []float32, limit int) ([]domain.SemanticMatch, error) {
	query := `
		SELECT inventory_number, caption, image_link, similarity
		FROM vector_search($1, $2)
	`
	rows, err := r.pool.Query(ctx, query, pgvector.NewVector(embedding), limit)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}
	defer rows.Close()

	var matches []domain.SemanticMatch
	for rows.Next() {
		var m domain.SemanticMatch
		if err := rows.Scan(&m.InventoryNumber, &m.Caption, &m.ImageLink, &m.Similarity); err != nil {
			return nil, fmt.Errorf("scan vector search row: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vector search rows: %w", err)
	}

	return matches, nil
}

func (r *artworkRepo) ListUncaptioned(ctx context.Context, limit, offset int) ([]*domain.Artwork, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM artworks a
		WHERE a.image_link <> '' AND (a.caption IS NULL OR a.caption = '')
		ORDER BY a.inventory_number
		LIMIT $1 OFFSET $2
	`, artworkColumns)

	return r.queryArtworks(ctx, query, limit, offset)
}

func (r *artworkRepo) ListUnembedded(ctx context.Context, limit int) ([]*domain.Artwork, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM artworks a
		WHERE a.caption IS NOT NULL AND a.caption <> '' AND a.embedding IS NULL
		ORDER BY a.inventory_number
		LIMIT $1
	`, artworkColumns)

	return r.queryArtworks(ctx, query, limit)
}

func (r *artworkRepo) SetCaption(ctx context.Context, inventoryNumber, caption string) error {
	result, err := r.pool.Exec(ctx,
		"UPDATE artworks SET caption = $1, updated_at = NOW() WHERE inventory_number = $2",
		caption, inventoryNumber)
	if err != nil {
		return fmt.Errorf("set caption: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrArtworkNotFound
	}
	return nil
}

func (r *artworkRepo) SetEmbedding(ctx context.Context, inventoryNumber string, embedding []float32) error {
	result, err := r.pool.Exec(ctx,
		"UPDATE artworks SET embedding = $1, updated_at = NOW() WHERE inventory_number = $2",
		pgvector.NewVector(embedding), inventoryNumber)
	if err != nil {
		return fmt.Errorf("set embedding: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrArtworkNotFound
	}
	return nil
}

func (r *artworkRepo) queryArtworks(ctx context.Context, query string, args ...interface{}) ([]*domain.Artwork, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query artworks: %w", err)
	}
	defer rows.Close()

	var artworks []*domain.Artwork
	for rows.Next() {
		a, err := scanArtwork(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artwork row: %w", err)
		}
		artworks = append(artworks, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artwork rows: %w", err)
	}
	return artworks, nil
}

func scanArtwork(row pgx.Row) (*domain.Artwork, error) {
	a := &domain.Artwork{}
	err := row.Scan(
		&a.InventoryNumber, &a.RecordID, &a.Title, &a.Artist,
		&a.ArtistFirstName, &a.ArtistFamilyName, &a.Dating,
		&a.YearFrom, &a.YearTo, &a.Classification, &a.ObjectType,
		&a.Materials, &a.Source, &a.ImageLink,
		&a.Caption,
		&a.IconSubject, &a.IconTerms, &a.IconConceptual,
		&a.HasEmbedding,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}
