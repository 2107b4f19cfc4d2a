package db

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/dasdy/uisnippets/model"
	"github.com/google/uuid"

	_ "github.com/mattn/go-sqlite3"
)

// Journal records user interactions with the demo UIs.
type Journal interface {
	Record(event *model.Event) error
	Count(app, kind string) (int, error)
	Recent(app string, limit int) ([]model.Event, error)
	Close()
}

type SQLiteJournal struct {
	db *sql.DB
}

func InitDBJournal(db *sql.DB) error {
	sqlStmt := `
	create table if not exists ui_events(
	    id text primary key,
	    session text not null,
	    app text not null,
	    kind text not null,
	    detail text not null,
	    ts datetime not null);`

	_, err := db.Exec(sqlStmt)
	if err != nil {
		slog.Error("Failed to create table", "statement", sqlStmt, "error", err)

		return fmt.Errorf("could not create ui_events table: %w", err)
	}

	sqlStmt = `create index if not exists ui_events_app_kind_ix on ui_events (app, kind);`

	_, err = db.Exec(sqlStmt)
	if err != nil {
		slog.Error("Failed to create index", "statement", sqlStmt, "error", err)

		return fmt.Errorf("could not create ui_events index: %w", err)
	}

	return nil
}

// ConnectDB opens the sqlite file at path (":memory:" works) and prepares the schema.
func ConnectDB(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite db %s: %w", path, err)
	}

	// in-memory databases are per connection
	db.SetMaxOpenConns(1)

	err = InitDBJournal(db)
	if err != nil {
		db.Close()

		return nil, err
	}

	return &SQLiteJournal{db}, nil
}

func (s *SQLiteJournal) Record(event *model.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}

	_, err := s.db.Exec(`insert into ui_events(id, session, app, kind, detail, ts)
	    values(?, ?, ?, ?, ?, ?)`,
		event.ID, event.Session, event.App, event.Kind, event.Detail, event.At)
	if err != nil {
		return fmt.Errorf("could not store event %s: %w", event.Kind, err)
	}

	return nil
}

func (s *SQLiteJournal) Count(app, kind string) (int, error) {
	var cnt int

	err := s.db.QueryRow(`select count(*) from ui_events where app = ? and kind = ?`, app, kind).Scan(&cnt)
	if err != nil {
		return 0, fmt.Errorf("could not count %s/%s events: %w", app, kind, err)
	}

	return cnt, nil
}

// Recent returns up to limit latest events of app, newest first.
func (s *SQLiteJournal) Recent(app string, limit int) ([]model.Event, error) {
	rows, err := s.db.Query(
		`select id, session, app, kind, detail, ts
        from ui_events
        where app = ?
        order by ts desc, rowid desc
        limit ?`, app, limit)
	if err != nil {
		return nil, fmt.Errorf("could not query events: %w", err)
	}

	defer rows.Close()

	result := make([]model.Event, 0)

	for rows.Next() {
		var e model.Event

		err = rows.Scan(&e.ID, &e.Session, &e.App, &e.Kind, &e.Detail, &e.At)
		if err != nil {
			return nil, fmt.Errorf("could not scan event: %w", err)
		}

		result = append(result, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read events: %w", err)
	}

	return result, nil
}

func (s *SQLiteJournal) Close() {
	if err := s.db.Close(); err != nil {
		slog.Error("Failed to close journal", "error", err)
	}
}

// NopJournal is used when no journal file is configured.
type NopJournal struct{}

func (NopJournal) Record(*model.Event) error { return nil }

func (NopJournal) Count(string, string) (int, error) { return 0, nil }

func (NopJournal) Recent(string, int) ([]model.Event, error) { return []model.Event{}, nil }

func (NopJournal) Close() {}

// Open returns a sqlite journal for path, or a NopJournal when path is empty.
func Open(path string) (Journal, error) {
	if path == "" {
		return NopJournal{}, nil
	}

	journal, err := ConnectDB(path)
	if err != nil {
		return nil, err
	}

	return journal, nil
}
