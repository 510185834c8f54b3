package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mediashelf/mediashelf/internal/domain"
)

// MediaRepository provides persistence helpers for media records.
type MediaRepository struct {
	pool *pgxpool.Pool
}

const mediaColumns = `
    id,
    title,
    type,
    director,
    budget,
    location,
    duration,
    year_time,
    created_at,
    updated_at
`

// MediaListParams encapsulates pagination and the optional filters.
type MediaListParams struct {
	Page   int
	Limit  int
	Search string
	Type   string
	Year   string
}

// MediaListResult returns one page of records plus pagination metadata.
type MediaListResult struct {
	Items       []domain.MediaRecord
	CurrentPage int
	TotalPages  int
	TotalCount  int64
	HasNextPage bool
}

// Create inserts a new media row and returns the stored entity with its
// assigned identifier and timestamps.
func (r *MediaRepository) Create(ctx context.Context, input domain.MediaInput) (domain.MediaRecord, error) {
	query := fmt.Sprintf(`
        INSERT INTO media (title, type, director, budget, location, duration, year_time)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING %s
    `, mediaColumns)

	row := r.pool.QueryRow(ctx, query,
		input.Title, input.Type, input.Director, input.Budget, input.Location, input.Duration, input.YearTime)
	return scanMedia(row)
}

// GetByID fetches a record by its identifier.
func (r *MediaRepository) GetByID(ctx context.Context, id int64) (domain.MediaRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM media WHERE id = $1`, mediaColumns)
	record, err := scanMedia(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.MediaRecord{}, ErrNotFound
		}
		return domain.MediaRecord{}, err
	}
	return record, nil
}

// Update replaces all mutable fields of a record and refreshes updated_at.
// The identifier and created_at are preserved.
func (r *MediaRepository) Update(ctx context.Context, id int64, input domain.MediaInput) (domain.MediaRecord, error) {
	query := fmt.Sprintf(`
        UPDATE media
        SET title = $2,
            type = $3,
            director = $4,
            budget = $5,
            location = $6,
            duration = $7,
            year_time = $8,
            updated_at = now()
        WHERE id = $1
        RETURNING %s
    `, mediaColumns)

	row := r.pool.QueryRow(ctx, query, id,
		input.Title, input.Type, input.Director, input.Budget, input.Location, input.Duration, input.YearTime)
	record, err := scanMedia(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.MediaRecord{}, ErrNotFound
		}
		return domain.MediaRecord{}, err
	}
	return record, nil
}

// Delete removes a record by identifier. Deleting a missing identifier is a
// failure, not a no-op.
func (r *MediaRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of records matching the filters in params.
// Pagination fields are ignored.
func (r *MediaRepository) Count(ctx context.Context, params MediaListParams) (int64, error) {
	where, args := buildMediaWhere(params)
	query := "SELECT COUNT(*) FROM media" + where
	var total int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// List returns one page ordered by creation time descending, newest first,
// together with the pagination metadata computed from the total count.
func (r *MediaRepository) List(ctx context.Context, params MediaListParams) (MediaListResult, error) {
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Limit <= 0 {
		params.Limit = 10
	} else if params.Limit > 100 {
		params.Limit = 100
	}

	total, err := r.Count(ctx, params)
	if err != nil {
		return MediaListResult{}, err
	}

	where, args := buildMediaWhere(params)
	offset := (params.Page - 1) * params.Limit

	queryBuilder := strings.Builder{}
	queryBuilder.WriteString("SELECT ")
	queryBuilder.WriteString(mediaColumns)
	queryBuilder.WriteString(" FROM media")
	queryBuilder.WriteString(where)
	queryBuilder.WriteString(" ORDER BY created_at DESC, id DESC")
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT %d OFFSET %d", params.Limit, offset))

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return MediaListResult{}, err
	}
	defer rows.Close()

	items := make([]domain.MediaRecord, 0)
	for rows.Next() {
		record, err := scanMedia(rows)
		if err != nil {
			return MediaListResult{}, err
		}
		items = append(items, record)
	}
	if err := rows.Err(); err != nil {
		return MediaListResult{}, err
	}

	totalPages := int((total + int64(params.Limit) - 1) / int64(params.Limit))
	return MediaListResult{
		Items:       items,
		CurrentPage: params.Page,
		TotalPages:  totalPages,
		TotalCount:  total,
		HasNextPage: params.Page < totalPages,
	}, nil
}

func buildMediaWhere(params MediaListParams) (string, []interface{}) {
	where := make([]string, 0)
	args := make([]interface{}, 0)
	arg := func(value interface{}) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if q := strings.TrimSpace(params.Search); q != "" {
		pattern := "%" + q + "%"
		p1 := arg(pattern)
		p2 := arg(pattern)
		p3 := arg(pattern)
		where = append(where, fmt.Sprintf("(title ILIKE %s OR director ILIKE %s OR location ILIKE %s)", p1, p2, p3))
	}
	if t := strings.TrimSpace(params.Type); t != "" && t != "ALL" {
		where = append(where, fmt.Sprintf("type = %s", arg(string(domain.ParseMediaType(t)))))
	}
	if y := strings.TrimSpace(params.Year); y != "" {
		where = append(where, fmt.Sprintf("year_time ILIKE %s", arg("%"+y+"%")))
	}

	if len(where) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(where, " AND "), args
}

func scanMedia(row pgx.Row) (domain.MediaRecord, error) {
	var (
		record    domain.MediaRecord
		mediaType string
		createdAt time.Time
		updatedAt time.Time
	)

	err := row.Scan(
		&record.ID,
		&record.Title,
		&mediaType,
		&record.Director,
		&record.Budget,
		&record.Location,
		&record.Duration,
		&record.YearTime,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return domain.MediaRecord{}, err
	}

	record.Type = domain.MediaType(mediaType)
	record.CreatedAt = createdAt
	record.UpdatedAt = updatedAt
	return record, nil
}
