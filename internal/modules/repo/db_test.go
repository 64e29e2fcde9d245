package repo

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var errNoDatabase = errors.New("dry run: no database")

// statementLog collects the SQL gorm builds plus transaction boundaries, in order.
type statementLog struct {
	mu    sync.Mutex
	lines []string
}

func (l *statementLog) add(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
}

func (l *statementLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// traceLogger records every traced statement; gorm still traces in dry run mode.
type traceLogger struct{ log *statementLog }

func (t traceLogger) LogMode(logger.LogLevel) logger.Interface    { return t }
func (traceLogger) Info(context.Context, string, ...interface{})  {}
func (traceLogger) Warn(context.Context, string, ...interface{})  {}
func (traceLogger) Error(context.Context, string, ...interface{}) {}
func (t traceLogger) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	stmt, _ := fc()
	t.log.add(stmt)
}

type noDatabase struct{}

func (noDatabase) PrepareContext(context.Context, string) (*sql.Stmt, error) {
	return nil, errNoDatabase
}

func (noDatabase) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, errNoDatabase
}

func (noDatabase) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errNoDatabase
}

func (noDatabase) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

// dryPool only marks where transactions begin.
type dryPool struct {
	noDatabase
	log *statementLog
}

func (p *dryPool) BeginTx(context.Context, *sql.TxOptions) (gorm.ConnPool, error) {
	p.log.add("BEGIN")
	return &dryTx{log: p.log}, nil
}

type dryTx struct {
	noDatabase
	log *statementLog
}

func (t *dryTx) Commit() error {
	t.log.add("COMMIT")
	return nil
}

func (t *dryTx) Rollback() error {
	t.log.add("ROLLBACK")
	return nil
}

// dryRunDB returns a postgres-dialect gorm handle that builds SQL without a server.
func dryRunDB(t *testing.T) (*gorm.DB, *statementLog) {
	t.Helper()
	log := &statementLog{}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: &dryPool{log: log}}), &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 traceLogger{log: log},
	})
	require.NoError(t, err)
	return db, log
}
