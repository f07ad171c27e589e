// Package persist durably records run summaries: one row per completed
// harness invocation, holding the policy under test, its parameters, and
// its access, hit, miss and writeback counts. The per-policy victim
// counters (OPT and Shepherd statistics) are not stored.
package persist

import (
	"database/sql"
	"fmt"
	"os"

	// Registers the "sqlite3" driver used by database/sql.Open below.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// RunRecord is one row of a completed harness run.
type RunRecord struct {
	ID         string
	Policy     string
	Sets       int
	Assoc      int
	SCAssoc    int
	BlockSize  int
	Accesses   uint64
	Hits       uint64
	Misses     uint64
	Writebacks uint64
}

// SQLiteRunRecorder appends RunRecords to a SQLite database, batching
// writes and flushing on process exit so a run is never left unrecorded.
type SQLiteRunRecorder struct {
	*sql.DB

	dbName    string
	statement *sql.Stmt

	pending   []RunRecord
	batchSize int
}

// NewSQLiteRunRecorder creates a recorder backed by the database at path.
// If path is empty, a fresh file named after a generated run ID is used.
func NewSQLiteRunRecorder(path string) *SQLiteRunRecorder {
	r := &SQLiteRunRecorder{
		dbName:    path,
		batchSize: 100,
	}

	atexit.Register(func() { r.Close() })

	return r
}

// Init opens the database connection and creates the run table.
func (r *SQLiteRunRecorder) Init() {
	if r.dbName == "" {
		r.dbName = "shepherd_runs_" + xid.New().String() + ".sqlite3"
	}

	db, err := sql.Open("sqlite3", r.dbName)
	if err != nil {
		panic(fmt.Errorf("persist: opening %s: %w", r.dbName, err))
	}

	r.DB = db

	r.mustExecute(`
		CREATE TABLE IF NOT EXISTS run
		(
			id          VARCHAR(200) NOT NULL PRIMARY KEY,
			policy      VARCHAR(100) NOT NULL,
			sets        INTEGER      NOT NULL,
			assoc       INTEGER      NOT NULL,
			sc_assoc    INTEGER      NOT NULL,
			block_size  INTEGER      NOT NULL,
			accesses    INTEGER      NOT NULL,
			hits        INTEGER      NOT NULL,
			misses      INTEGER      NOT NULL,
			writebacks  INTEGER      NOT NULL
		);
	`)

	stmt, err := r.Prepare(`
		INSERT INTO run
			(id, policy, sets, assoc, sc_assoc, block_size,
			 accesses, hits, misses, writebacks)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		panic(fmt.Errorf("persist: preparing insert statement: %w", err))
	}

	r.statement = stmt
}

// Record buffers rec for the next Flush, generating an ID if rec has none.
func (r *SQLiteRunRecorder) Record(rec RunRecord) {
	if rec.ID == "" {
		rec.ID = xid.New().String()
	}

	r.pending = append(r.pending, rec)
	if len(r.pending) >= r.batchSize {
		r.Flush()
	}
}

// Flush writes every buffered record to the database.
func (r *SQLiteRunRecorder) Flush() {
	if len(r.pending) == 0 {
		return
	}

	r.mustExecute("BEGIN TRANSACTION")
	defer r.mustExecute("COMMIT TRANSACTION")

	for _, rec := range r.pending {
		_, err := r.statement.Exec(
			rec.ID, rec.Policy, rec.Sets, rec.Assoc, rec.SCAssoc, rec.BlockSize,
			rec.Accesses, rec.Hits, rec.Misses, rec.Writebacks,
		)
		if err != nil {
			panic(fmt.Errorf("persist: inserting run %s: %w", rec.ID, err))
		}
	}

	r.pending = nil
}

// Close flushes any buffered records and closes the database handle. Safe
// to call more than once (e.g. explicitly and again via atexit).
func (r *SQLiteRunRecorder) Close() {
	if r.DB == nil {
		return
	}

	r.Flush()

	if err := r.DB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "persist: closing database: %v\n", err)
	}

	r.DB = nil
}

func (r *SQLiteRunRecorder) mustExecute(query string) {
	if _, err := r.Exec(query); err != nil {
		panic(fmt.Errorf("persist: executing %q: %w", query, err))
	}
}
