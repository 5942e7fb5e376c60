package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"daybook/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eventCols = []string{
	"id", "title", "date", "start_time", "end_time", "description",
	"location", "category", "notification_time", "repeat_type",
	"repeat_interval", "repeat_end_date", "series_id",
}

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		event   *domain.Event
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success",
			event: &domain.Event{
				Title:            "standup",
				Date:             domain.DateOf(date),
				StartTime:        "09:00",
				EndTime:          "09:15",
				Category:         "work",
				Repeat:           domain.RepeatInfo{Type: domain.RepeatNone, Interval: 0},
				NotificationTime: 10,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WithArgs("standup", date, "09:00", "09:15", "", "", "work", 10, "none", 0, nil, nil).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ev-uuid-1"))
			},
			wantID: "ev-uuid-1",
		},
		{
			name: "db error",
			event: &domain.Event{
				Title: "standup",
				Date:  domain.DateOf(date),
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)

			repo := NewEventRepository(db)
			err = repo.Create(ctx, tt.event)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, tt.event.ID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(eventCols).
		AddRow("ev-1", "standup", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			"09:00", "09:15", "", "", "work", 10, "daily", 1, end, "series-a").
		AddRow("ev-2", "dentist", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			"14:00", "15:00", "checkup", "clinic", "personal", 60, "none", 0, nil, nil)
	mock.ExpectQuery(`SELECT (.+) FROM events ORDER BY date, start_time, id`).
		WillReturnRows(rows)

	repo := NewEventRepository(db)
	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)

	first := events[0]
	assert.Equal(t, "ev-1", first.ID)
	assert.Equal(t, "2024-01-01", first.Date.String())
	assert.Equal(t, domain.RepeatDaily, first.Repeat.Type)
	require.NotNil(t, first.Repeat.EndDate)
	assert.Equal(t, "2024-03-31", first.Repeat.EndDate.String())
	assert.Equal(t, "series-a", first.Repeat.SeriesID)

	second := events[1]
	assert.Nil(t, second.Repeat.EndDate)
	assert.Empty(t, second.Repeat.SeriesID)
	assert.False(t, second.Repeat.Recurring())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM events WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := NewEventRepository(db)
	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_CreateBatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	events := []*domain.Event{
		{Title: "standup", Date: domain.NewDate(2024, time.January, 1),
			Repeat: domain.RepeatInfo{Type: domain.RepeatDaily, Interval: 1, SeriesID: "series-a"}},
		{Title: "standup", Date: domain.NewDate(2024, time.January, 2),
			Repeat: domain.RepeatInfo{Type: domain.RepeatDaily, Interval: 1, SeriesID: "series-a"}},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO events`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ev-1"))
	mock.ExpectQuery(`INSERT INTO events`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ev-2"))
	mock.ExpectCommit()

	repo := NewEventRepository(db)
	require.NoError(t, repo.CreateBatch(context.Background(), events))
	assert.Equal(t, "ev-1", events[0].ID)
	assert.Equal(t, "ev-2", events[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_CreateBatchRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	events := []*domain.Event{
		{Title: "a", Date: domain.NewDate(2024, time.January, 1)},
		{Title: "b", Date: domain.NewDate(2024, time.January, 2)},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO events`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ev-1"))
	mock.ExpectQuery(`INSERT INTO events`).
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	repo := NewEventRepository(db)
	require.Error(t, repo.CreateBatch(context.Background(), events))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	e := &domain.Event{
		ID:    "ev-1",
		Title: "renamed",
		Date:  domain.NewDate(2024, time.January, 1),
	}
	mock.ExpectExec(`UPDATE events`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewEventRepository(db)
	require.NoError(t, repo.Update(context.Background(), e))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_DeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewEventRepository(db)
	err = repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_UpdateSeries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	title := "team sync"
	lead := 30
	mock.ExpectExec(`UPDATE events`).
		WithArgs("series-a", title, nil, nil, nil, lead).
		WillReturnResult(sqlmock.NewResult(0, 3))

	repo := NewEventRepository(db)
	err = repo.UpdateSeries(context.Background(), "series-a", domain.SeriesUpdate{
		Title:            &title,
		NotificationTime: &lead,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_DeleteSeries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM events WHERE series_id = \$1`).
		WithArgs("series-a").
		WillReturnResult(sqlmock.NewResult(0, 4))

	repo := NewEventRepository(db)
	require.NoError(t, repo.DeleteSeries(context.Background(), "series-a"))
	require.NoError(t, mock.ExpectationsWereMet())
}
