// Package search maintains a sqlite index of the file references in a
// project tree, so lookups by name or path don't have to walk the tree.
package search

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one indexed file reference.
type Entry struct {
	Group    string // subpath of the owning group, '/'-delimited display names
	Name     string // display name of the reference
	Path     string // stored path, relative to the source tree
	RealPath string // resolved absolute path, when resolvable
	FileType string // last known file type
	Kind     string
}

// Index manages the reference index.
type Index struct {
	db     *sql.DB
	useFTS bool
}

// NewIndex opens (or creates) the index at dbPath.
func NewIndex(dbPath string) (*Index, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	idx := &Index{db: db}
	if err := idx.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return idx, nil
}

// init creates the database schema.
func (idx *Index) init() error {
	idx.useFTS = idx.checkFTS5Support()

	schema := `
	CREATE TABLE IF NOT EXISTS refs (
		group_path TEXT,
		name TEXT,
		path TEXT,
		real_path TEXT,
		file_type TEXT,
		kind TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_refs_name ON refs(name);
	CREATE INDEX IF NOT EXISTS idx_refs_group ON refs(group_path);
	`
	if _, err := idx.db.Exec(schema); err != nil {
		return err
	}

	if idx.useFTS {
		ftsSchema := `
		CREATE VIRTUAL TABLE IF NOT EXISTS refs_fts USING fts5(
			group_path,
			name,
			path,
			file_type,
			tokenize = 'unicode61'
		);
		`
		if _, err := idx.db.Exec(ftsSchema); err != nil {
			// No FTS5 in this build of sqlite; fall back to LIKE.
			idx.useFTS = false
		}
	}
	return nil
}

// checkFTS5Support probes whether the FTS5 module is available.
func (idx *Index) checkFTS5Support() bool {
	_, err := idx.db.Exec("CREATE VIRTUAL TABLE IF NOT EXISTS fts5_test USING fts5(content)")
	if err != nil {
		return false
	}
	_, _ = idx.db.Exec("DROP TABLE IF EXISTS fts5_test")
	return true
}

// Replace rebuilds the whole index from entries. The tree is small enough
// that incremental updates aren't worth the bookkeeping.
func (idx *Index) Replace(entries []*Entry) error {
	tx, err := idx.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec("DELETE FROM refs"); err != nil {
		return err
	}
	if idx.useFTS {
		if _, err := tx.Exec("DELETE FROM refs_fts"); err != nil {
			return err
		}
	}

	for _, e := range entries {
		res, err := tx.Exec(`
			INSERT INTO refs (group_path, name, path, real_path, file_type, kind)
			VALUES (?, ?, ?, ?, ?, ?)
		`, e.Group, e.Name, e.Path, e.RealPath, e.FileType, e.Kind)
		if err != nil {
			return err
		}
		if idx.useFTS {
			// Same rowid on both sides; names need not be unique.
			rowid, err := res.LastInsertId()
			if err != nil {
				return err
			}
			_, err = tx.Exec(`
				INSERT INTO refs_fts (rowid, group_path, name, path, file_type)
				VALUES (?, ?, ?, ?, ?)
			`, rowid, e.Group, e.Name, e.Path, e.FileType)
			if err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

// Options narrows a search.
type Options struct {
	Group    string // restrict to a group subpath prefix
	FileType string
	Limit    int
}

// Search finds indexed references matching query.
func (idx *Index) Search(query string, opts *Options) ([]*Entry, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Limit == 0 {
		opts.Limit = 50
	}
	if idx.useFTS {
		return idx.searchWithFTS(query, opts)
	}
	return idx.searchWithLike(query, opts)
}

func (idx *Index) searchWithFTS(query string, opts *Options) ([]*Entry, error) {
	conditions := []string{"refs_fts MATCH ?"}
	args := []any{query}
	conditions, args = appendFilters(conditions, args, opts, "refs_fts.group_path", "refs_fts.file_type")

	searchQuery := fmt.Sprintf(`
		SELECT r.group_path, r.name, r.path, r.real_path, r.file_type, r.kind
		FROM refs_fts
		JOIN refs r ON r.rowid = refs_fts.rowid
		WHERE %s
		ORDER BY rank
		LIMIT ?
	`, strings.Join(conditions, " AND "))
	args = append(args, opts.Limit)

	return idx.collect(searchQuery, args)
}

func (idx *Index) searchWithLike(query string, opts *Options) ([]*Entry, error) {
	conditions := []string{"(name LIKE ? OR path LIKE ?)"}
	pattern := "%" + query + "%"
	args := []any{pattern, pattern}
	conditions, args = appendFilters(conditions, args, opts, "group_path", "file_type")

	searchQuery := fmt.Sprintf(`
		SELECT group_path, name, path, real_path, file_type, kind
		FROM refs
		WHERE %s
		ORDER BY group_path, name
		LIMIT ?
	`, strings.Join(conditions, " AND "))
	args = append(args, opts.Limit)

	return idx.collect(searchQuery, args)
}

func appendFilters(conditions []string, args []any, opts *Options, groupCol, typeCol string) ([]string, []any) {
	if opts.Group != "" {
		conditions = append(conditions, groupCol+" LIKE ?")
		args = append(args, opts.Group+"%")
	}
	if opts.FileType != "" {
		conditions = append(conditions, typeCol+" = ?")
		args = append(args, opts.FileType)
	}
	return conditions, args
}

func (idx *Index) collect(query string, args []any) ([]*Entry, error) {
	rows, err := idx.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		if err := rows.Scan(&e.Group, &e.Name, &e.Path, &e.RealPath, &e.FileType, &e.Kind); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of indexed references.
func (idx *Index) Count() (int, error) {
	var n int
	err := idx.db.QueryRow("SELECT COUNT(*) FROM refs").Scan(&n)
	return n, err
}

// Close releases the underlying database handle.
func (idx *Index) Close() error {
	return idx.db.Close()
}
