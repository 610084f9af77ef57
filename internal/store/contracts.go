package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/orqui/orqui/internal/contract"
)

// ErrNotFound is returned when no revision exists for a name.
var ErrNotFound = errors.New("contract not found")

// Revision is one stored contract revision.
type Revision struct {
	Seq       int64
	Name      string
	Hash      string
	Body      []byte
	CreatedAt string
}

// Put stores body as a new revision of name and returns it. The body
// is hashed canonically; if the newest revision of name already has
// that hash, no row is written and the existing revision is returned
// with noop set.
func (s *Store) Put(ctx context.Context, name string, body []byte) (rev Revision, noop bool, err error) {
	hash, err := contract.ComputeHash(body)
	if err != nil {
		return Revision{}, false, fmt.Errorf("hash contract: %w", err)
	}

	latest, err := s.Latest(ctx, name)
	switch {
	case err == nil:
		if latest.Hash == hash {
			return latest, true, nil
		}
	case !errors.Is(err, ErrNotFound):
		return Revision{}, false, err
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO contracts (name, hash, body) VALUES (?, ?, ?)`,
		name, hash, string(body))
	if err != nil {
		return Revision{}, false, fmt.Errorf("insert revision: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return Revision{}, false, fmt.Errorf("read revision seq: %w", err)
	}
	return s.bySeq(ctx, seq)
}

// Latest returns the newest revision of name, or ErrNotFound.
func (s *Store) Latest(ctx context.Context, name string) (Revision, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT seq, name, hash, body, created_at
		   FROM contracts WHERE name = ?
		  ORDER BY seq DESC LIMIT 1`, name)
	return scanRevision(row)
}

// History returns all revisions of name, oldest first.
func (s *Store) History(ctx context.Context, name string) ([]Revision, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, name, hash, body, created_at
		   FROM contracts WHERE name = ?
		  ORDER BY seq ASC`, name)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []Revision
	for rows.Next() {
		var rev Revision
		var body string
		if err := rows.Scan(&rev.Seq, &rev.Name, &rev.Hash, &body, &rev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan revision: %w", err)
		}
		rev.Body = []byte(body)
		out = append(out, rev)
	}
	return out, rows.Err()
}

// ListEntry summarizes the newest revision of one name.
type ListEntry struct {
	Name      string
	Hash      string
	Seq       int64
	Revisions int64
	CreatedAt string
}

// List returns one entry per stored name, ordered by name.
func (s *Store) List(ctx context.Context) ([]ListEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, hash, seq, cnt, created_at FROM (
		    SELECT name, hash, seq, created_at,
		           COUNT(*) OVER (PARTITION BY name) AS cnt,
		           ROW_NUMBER() OVER (PARTITION BY name ORDER BY seq DESC) AS rn
		      FROM contracts
		 ) WHERE rn = 1 ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("query list: %w", err)
	}
	defer rows.Close()

	var out []ListEntry
	for rows.Next() {
		var e ListEntry
		if err := rows.Scan(&e.Name, &e.Hash, &e.Seq, &e.Revisions, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) bySeq(ctx context.Context, seq int64) (Revision, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT seq, name, hash, body, created_at
		   FROM contracts WHERE seq = ?`, seq)
	rev, err := scanRevision(row)
	return rev, false, err
}

func scanRevision(row *sql.Row) (Revision, error) {
	var rev Revision
	var body string
	err := row.Scan(&rev.Seq, &rev.Name, &rev.Hash, &body, &rev.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Revision{}, ErrNotFound
	}
	if err != nil {
		return Revision{}, fmt.Errorf("scan revision: %w", err)
	}
	rev.Body = []byte(body)
	return rev, nil
}
