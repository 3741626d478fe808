package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/drdwitte/Fabritius-NG/internal/domain"
)

type tagRepo struct {
	pool *pgxpool.Pool
}

func NewTagRepository(pool *pgxpool.Pool) domain.TagRepository {
	return &tagRepo{pool: pool}
}

func (r *tagRepo) Create(ctx context.Context, tag *domain.Tag) error {
	query := `
		INSERT INTO tags (label, definition, thesaurus_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query,
		tag.Label, tag.Definition, tag.ThesaurusID, time.Now(),
	).Scan(&tag.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrTagConflict
		}
		return fmt.Errorf("create tag: %w", err)
	}
	return nil
}

func (r *tagRepo) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	query := `SELECT id, label, COALESCE(definition, ''), thesaurus_id, created_at FROM tags WHERE id = $1`

	t := &domain.Tag{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&t.ID, &t.Label, &t.Definition, &t.ThesaurusID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTagNotFound
		}
		return nil, fmt.Errorf("get tag by id: %w", err)
	}
	return t, nil
}

// GetByLabel resolves a label to a single tag. Labels are unique per
// thesaurus, so the same label can exist in several; the oldest tag wins.
func (r *tagRepo) GetByLabel(ctx context.Context, label string) (*domain.Tag, error) {
	query := `
		SELECT id, label, COALESCE(definition, ''), thesaurus_id, created_at
		FROM tags
		WHERE label = $1
		ORDER BY id
		LIMIT 1
	`

	t := &domain.Tag{}
	err := r.pool.QueryRow(ctx, query, label).Scan(&t.ID, &t.Label, &t.Definition, &t.ThesaurusID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTagNotFound
		}
		return nil, fmt.Errorf("get tag by label: %w", err)
	}
	return t, nil
}

func (r *tagRepo) List(ctx context.Context, filter domain.TagFilter) ([]*domain.Tag, int, error) {
	conditions := []string{"TRUE"}
	args := []interface{}{}
	argPos := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("label ILIKE $%d", argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	if filter.ThesaurusID != "" {
		conditions = append(conditions, fmt.Sprintf("thesaurus_id = $%d", argPos))
		args = append(args, filter.ThesaurusID)
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tags WHERE %s", whereClause)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tags: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	query := fmt.Sprintf(`
		SELECT id, label, COALESCE(definition, ''), thesaurus_id, created_at
		FROM tags
		WHERE %s
		ORDER BY label
		LIMIT $%d OFFSET $%d
	`, whereClause, argPos, argPos+1)
	args = append(args, limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	var tags []*domain.Tag
	for rows.Next() {
		t := &domain.Tag{}
		if err := rows.Scan(&t.ID, &t.Label, &t.Definition, &t.ThesaurusID, &t.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan tag row: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate tag rows: %w", err)
	}

	return tags, total, nil
}

// Assign links an artwork to a tag and records the mutation in the
// tag_activity audit table within the same transaction.
func (r *tagRepo) Assign(ctx context.Context, link *domain.ArtworkTag, actor string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin assign tx: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	_, err = tx.Exec(ctx, `
		INSERT INTO artwork_tags (artwork_id, tag_id, provenance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
	`, link.ArtworkID, link.TagID, string(link.Provenance), now)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return domain.ErrLinkConflict
			case "23503":
				return domain.ErrTagNotFound
			}
		}
		return fmt.Errorf("assign tag: %w", err)
	}

	if err := appendActivity(ctx, tx, domain.ActionCreated, link.ArtworkID, link.TagID, actor); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *tagRepo) Unassign(ctx context.Context, ref domain.AssignmentRef, actor string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin unassign tx: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx,
		"DELETE FROM artwork_tags WHERE artwork_id = $1 AND tag_id = $2",
		ref.ArtworkID, ref.TagID)
	if err != nil {
		return fmt.Errorf("unassign tag: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrLinkNotFound
	}

	if err := appendActivity(ctx, tx, domain.ActionDeleted, ref.ArtworkID, ref.TagID, actor); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// SetProvenance moves a link from one validation level to another. The
// source level is part of the predicate so concurrent promotions of the same
// link cannot skip a tier.
func (r *tagRepo) SetProvenance(ctx context.Context, ref domain.AssignmentRef, from, to domain.Provenance, actor string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin provenance tx: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `
		UPDATE artwork_tags
		SET provenance = $1, updated_at = NOW()
		WHERE artwork_id = $2 AND tag_id = $3 AND provenance = $4
	`, string(to), ref.ArtworkID, ref.TagID, string(from))
	if err != nil {
		return fmt.Errorf("set provenance: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrLinkNotFound
	}

	action := domain.ActionPromoted
	if fromLevel, err := from.Demote(); err == nil && fromLevel == to {
		action = domain.ActionDemoted
	}
	if err := appendActivity(ctx, tx, action, ref.ArtworkID, ref.TagID, actor); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *tagRepo) ListByLabelAndProvenance(ctx context.Context, label string, provenance domain.Provenance, limit int) ([]*domain.ArtworkTag, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT at.artwork_id, at.tag_id, t.label, at.provenance, at.created_at, at.updated_at
		FROM artwork_tags at
		JOIN tags t ON t.id = at.tag_id
		WHERE t.label = $1 AND at.provenance = $2
		ORDER BY at.updated_at DESC
		LIMIT $3
	`
	rows, err := r.pool.Query(ctx, query, label, string(provenance), limit)
	if err != nil {
		return nil, fmt.Errorf("list links by label and provenance: %w", err)
	}
	defer rows.Close()

	var links []*domain.ArtworkTag
	for rows.Next() {
		l := &domain.ArtworkTag{}
		if err := rows.Scan(&l.ArtworkID, &l.TagID, &l.Label, &l.Provenance, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan link row: %w", err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate link rows: %w", err)
	}
	return links, nil
}

// TaggedSet returns which of the given artworks already carry the label,
// regardless of level. Used to dedupe bulk assignment.
func (r *tagRepo) TaggedSet(ctx context.Context, inventoryNumbers []string, label string) (map[string]bool, error) {
	tagged := make(map[string]bool)
	if len(inventoryNumbers) == 0 || label == "" {
		return tagged, nil
	}

	query := `
		SELECT DISTINCT at.artwork_id
		FROM artwork_tags at
		JOIN tags t ON t.id = at.tag_id
		WHERE at.artwork_id = ANY($1) AND t.label = $2
	`
	rows, err := r.pool.Query(ctx, query, inventoryNumbers, label)
	if err != nil {
		return nil, fmt.Errorf("query tagged set: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var inv string
		if err := rows.Scan(&inv); err != nil {
			return nil, fmt.Errorf("scan tagged set row: %w", err)
		}
		tagged[inv] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tagged set rows: %w", err)
	}
	return tagged, nil
}

func (r *tagRepo) Distribution(ctx context.Context, limit, offset int) ([]domain.TagCount, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		"SELECT COUNT(DISTINCT tag_id) FROM artwork_tags").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count distinct tags: %w", err)
	}

	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT t.label, COUNT(*) AS n
		FROM artwork_tags at
		JOIN tags t ON t.id = at.tag_id
		GROUP BY t.label
		ORDER BY n DESC, t.label
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("tag distribution: %w", err)
	}
	defer rows.Close()

	var counts []domain.TagCount
	for rows.Next() {
		var tc domain.TagCount
		if err := rows.Scan(&tc.Label, &tc.Count); err != nil {
			return nil, 0, fmt.Errorf("scan distribution row: %w", err)
		}
		counts = append(counts, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate distribution rows: %w", err)
	}
	return counts, total, nil
}

func (r *tagRepo) CountTags(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM tags").Scan(&total); err != nil {
		return 0, fmt.Errorf("count tags: %w", err)
	}
	return total, nil
}

func (r *tagRepo) CountAssignments(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM artwork_tags").Scan(&total); err != nil {
		return 0, fmt.Errorf("count assignments: %w", err)
	}
	return total, nil
}

func (r *tagRepo) Activity(ctx context.Context, days int) ([]domain.ActivityBucket, error) {
	if days <= 0 {
		days = 30
	}
	query := `
		SELECT
			to_char(occurred_at::date, 'YYYY-MM-DD') AS day,
			COUNT(*) FILTER (WHERE action = 'created')  AS created,
			COUNT(*) FILTER (WHERE action = 'deleted')  AS deleted,
			COUNT(*) FILTER (WHERE action = 'promoted') AS promoted,
			COUNT(*) FILTER (WHERE action = 'demoted')  AS demoted
		FROM tag_activity
		WHERE occurred_at >= NOW() - ($1 * INTERVAL '1 day')
		GROUP BY occurred_at::date
		ORDER BY occurred_at::date
	`
	rows, err := r.pool.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("tag activity: %w", err)
	}
	defer rows.Close()

	var buckets []domain.ActivityBucket
	for rows.Next() {
		var b domain.ActivityBucket
		if err := rows.Scan(&b.Date, &b.Created, &b.Deleted, &b.Promoted, &b.Demoted); err != nil {
			return nil, fmt.Errorf("scan activity row: %w", err)
		}
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity rows: %w", err)
	}
	return buckets, nil
}

func appendActivity(ctx context.Context, tx pgx.Tx, action, artworkID string, tagID int64, actor string) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO tag_activity (action, artwork_id, tag_id, actor, occurred_at)
		VALUES ($1, $2, $3, $4, NOW())
	`, action, artworkID, tagID, actor)
	if err != nil {
		return fmt.Errorf("append tag activity: %w", err)
	}
	return nil
}
