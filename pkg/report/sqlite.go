package report

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

//SQLiteStore persists report rows into a local SQLite database for
//downstream consumers that want something queryable instead of a CSV
type SQLiteStore struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS hacked (
    rowid INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT,
    uid TEXT,
    type TEXT,
    id_plan TEXT,
    enabled INTEGER,
    turn_on INTEGER,
    hacked INTEGER,
    traffic REAL
);
`

//OpenSQLiteStore opens (and initializes if needed) a result database
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

//Flush inserts the given rows in one transaction
func (s *SQLiteStore) Flush(rows []Row) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
        INSERT INTO hacked (
            id, uid, type, id_plan,
            enabled, turn_on, hacked, traffic
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		_, err = stmt.Exec(
			row.Id, row.UID, row.Type, row.IdPlan,
			row.Enabled, row.TurnOn.UTC().Unix(), row.Hacked, row.Traffic,
		)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

//Count returns the number of stored rows
func (s *SQLiteStore) Count() (int64, error) {
	var count int64
	err := s.db.QueryRow(`SELECT COUNT(*) FROM hacked`).Scan(&count)
	return count, err
}

//Close closes the underlying database handle
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
