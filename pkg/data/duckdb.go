package data

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb/v2"
)

// View is one row of reading history.
type View struct {
	Number   int
	Title    string
	ViewedAt time.Time
}

// Favorite is a starred comic.
type Favorite struct {
	Number    int
	Title     string
	StarredAt time.Time
}

// Library records reading history and starred comics in DuckDB, next to but
// independent of the file cache.
type Library struct {
	db *sql.DB
}

func OpenLibrary(path string) (*Library, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open library db: %w", err)
	}

	schema := `
CREATE TABLE IF NOT EXISTS views (
  number INTEGER NOT NULL,
  title TEXT,
  viewed_at TIMESTAMP DEFAULT current_timestamp
);
CREATE TABLE IF NOT EXISTS favorites (
  number INTEGER PRIMARY KEY,
  title TEXT,
  starred_at TIMESTAMP DEFAULT current_timestamp
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create library schema: %w", err)
	}

	return &Library{db: db}, nil
}

func (l *Library) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}

func (l *Library) RecordView(comic *Comic) error {
	_, err := l.db.Exec(`INSERT INTO views (number, title) VALUES (?, ?)`,
		comic.Number, comic.Title)
	if err != nil {
		return fmt.Errorf("record view of %d: %w", comic.Number, err)
	}
	return nil
}

// History returns the most recent views, newest first. limit <= 0 means all.
func (l *Library) History(limit int) ([]View, error) {
	query := `SELECT number, title, viewed_at FROM views ORDER BY viewed_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := l.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var views []View
	for rows.Next() {
		var v View
		if err := rows.Scan(&v.Number, &v.Title, &v.ViewedAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

func (l *Library) Star(comic *Comic) error {
	_, err := l.db.Exec(`INSERT OR REPLACE INTO favorites (number, title) VALUES (?, ?)`,
		comic.Number, comic.Title)
	if err != nil {
		return fmt.Errorf("star %d: %w", comic.Number, err)
	}
	return nil
}

func (l *Library) Unstar(number int) error {
	_, err := l.db.Exec(`DELETE FROM favorites WHERE number = ?`, number)
	if err != nil {
		return fmt.Errorf("unstar %d: %w", number, err)
	}
	return nil
}

func (l *Library) IsStarred(number int) (bool, error) {
	var count int
	err := l.db.QueryRow(`SELECT count(*) FROM favorites WHERE number = ?`, number).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check star %d: %w", number, err)
	}
	return count > 0, nil
}

func (l *Library) Favorites() ([]Favorite, error) {
	rows, err := l.db.Query(`SELECT number, title, starred_at FROM favorites ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("query favorites: %w", err)
	}
	defer rows.Close()

	var favorites []Favorite
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(&f.Number, &f.Title, &f.StarredAt); err != nil {
			return nil, fmt.Errorf("scan favorite row: %w", err)
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}
