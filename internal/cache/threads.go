package cache

import (
	"database/sql"
	"time"
)

// ThreadEntry is one row of the session history.
type ThreadEntry struct {
	URL          string
	Title        string
	CommentCount int
	FetchedAt    int64
}

// PutThread stores a fetched thread payload, replacing any earlier fetch of
// the same URL.
func (d *DB) PutThread(url, title string, commentCount int, payload []byte) error {
	_, err := d.db.Exec(`INSERT OR REPLACE INTO threads
		(url, title, comment_count, payload, fetched_at)
		VALUES (?, ?, ?, ?, ?)`,
		url, title, commentCount, payload, time.Now().Unix())
	return err
}

// GetThread returns the cached payload for a URL, or nil on a miss.
func (d *DB) GetThread(url string) ([]byte, error) {
	var payload []byte
	err := d.db.QueryRow(`SELECT payload FROM threads WHERE url = ?`, url).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// History lists the threads fetched this session, most recent first.
func (d *DB) History() ([]ThreadEntry, error) {
	rows, err := d.db.Query(`SELECT url, title, comment_count, fetched_at
		FROM threads ORDER BY fetched_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ThreadEntry
	for rows.Next() {
		var e ThreadEntry
		if err := rows.Scan(&e.URL, &e.Title, &e.CommentCount, &e.FetchedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
