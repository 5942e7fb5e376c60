package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"daybook/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository returns the Postgres-backed persistence collaborator
// for events and recurring series.
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventColumns = `
	id, title, date, start_time, end_time, description, location, category,
	notification_time, repeat_type, repeat_interval, repeat_end_date, series_id
`

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	var endDate sql.Null[domain.Date]
	var seriesID sql.NullString
	err := row.Scan(
		&e.ID, &e.Title, &e.Date, &e.StartTime, &e.EndTime,
		&e.Description, &e.Location, &e.Category, &e.NotificationTime,
		&e.Repeat.Type, &e.Repeat.Interval, &endDate, &seriesID,
	)
	if err != nil {
		return nil, err
	}
	if endDate.Valid {
		e.Repeat.EndDate = &endDate.V
	}
	if seriesID.Valid {
		e.Repeat.SeriesID = seriesID.String
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY date, start_time, id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

const insertEventQuery = `
	INSERT INTO events (
		title, date, start_time, end_time, description, location, category,
		notification_time, repeat_type, repeat_interval, repeat_end_date, series_id
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	RETURNING id
`

func insertArgs(e *domain.Event) []any {
	var endDate any
	if e.Repeat.EndDate != nil {
		endDate = *e.Repeat.EndDate
	}
	var seriesID any
	if e.Repeat.SeriesID != "" {
		seriesID = e.Repeat.SeriesID
	}
	repeatType := e.Repeat.Type
	if repeatType == "" {
		repeatType = domain.RepeatNone
	}
	return []any{
		e.Title, e.Date, e.StartTime, e.EndTime, e.Description,
		e.Location, e.Category, e.NotificationTime,
		repeatType, e.Repeat.Interval, endDate, seriesID,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	return r.DB.QueryRowContext(ctx, insertEventQuery, insertArgs(e)...).Scan(&e.ID)
}

// CreateBatch inserts all events in one transaction. Bulk creation of an
// expanded series is all-or-nothing, unlike the per-instance batches
// applied to legacy series.
func (r *eventRepository) CreateBatch(ctx context.Context, events []*domain.Event) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range events {
		if err := tx.QueryRowContext(ctx, insertEventQuery, insertArgs(e)...).Scan(&e.ID); err != nil {
			return fmt.Errorf("insert event %q on %s: %w", e.Title, e.Date, err)
		}
	}
	return tx.Commit()
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET title = $2, date = $3, start_time = $4, end_time = $5,
			description = $6, location = $7, category = $8,
			notification_time = $9, repeat_type = $10, repeat_interval = $11,
			repeat_end_date = $12, series_id = $13
		WHERE id = $1
	`
	args := append([]any{e.ID}, insertArgs(e)...)
	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRows(res)
}

// UpdateSeries applies the shared-field payload to every instance carrying
// the series identifier. Unset fields keep their stored values.
func (r *eventRepository) UpdateSeries(ctx context.Context, seriesID string, u domain.SeriesUpdate) error {
	query := `
		UPDATE events
		SET title = COALESCE($2, title),
			description = COALESCE($3, description),
			location = COALESCE($4, location),
			category = COALESCE($5, category),
			notification_time = COALESCE($6, notification_time)
		WHERE series_id = $1
	`
	res, err := r.DB.ExecContext(ctx, query, seriesID,
		u.Title, u.Description, u.Location, u.Category, u.NotificationTime)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func (r *eventRepository) DeleteSeries(ctx context.Context, seriesID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE series_id = $1`, seriesID)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func requireRows(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
