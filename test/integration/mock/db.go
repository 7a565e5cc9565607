// Package mock provides in-memory test doubles for integration tests.
package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory SQLite connection used by the test suite.
// The connection pool is capped at one connection so every repository
// sees the same memory database.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
	schema string
}

// NewDb opens the shared in-memory database and migrates the given
// models. The models map is keyed by table name for lookup in steps.
func NewDb(schema string, models map[string]any) *Db {
	dbOnce.Do(func() {
		db = open(schema, models)
	})

	return db
}

func open(schema string, models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to open test database: " + err.Error())
	}

	d := &Db{
		DbConn: dbConn,
		schema: schema,
		models: models,
	}

	if err := d.ClearDB(); err != nil {
		panic(fmt.Sprintf("failed to prepare test database: %s", err.Error()))
	}

	return d
}

// ClearDB recreates the schema from scratch. Retries cover the window
// where SQLite still holds the shared cache from a previous attach.
func (d *Db) ClearDB() (err error) {
	for attempt := 1; ; attempt++ {
		if attempt > 5 {
			return fmt.Errorf("failed to clear database after %d attempts", attempt-1)
		}

		if err = d.DbConn.Exec("ATTACH ':memory:' AS " + d.schema).Error; err != nil {
			if !strings.Contains(err.Error(), "is already in use") {
				return err
			}
		} else {
			if err = d.migrate(); err != nil {
				continue
			}

			time.Sleep(200 * time.Millisecond)
			_ = d.DbConn.Exec("PRAGMA schema_version").Error

			if err = d.checkTables(); err != nil {
				continue
			}
		}

		return d.Reset()
	}
}

// migrate drops and recreates every registered table inside an
// exclusive transaction.
func (d *Db) migrate() (err error) {
	tx := d.DbConn.Exec("BEGIN EXCLUSIVE")
	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			err = fmt.Errorf("panic while migrating test DB: %v", rec)
		} else if err != nil {
			if errTx := tx.Exec("ROLLBACK").Error; errTx != nil {
				panic(errTx)
			}
		} else {
			if errTx := tx.Exec("COMMIT").Error; errTx != nil {
				panic(errTx)
			}
		}
	}()

	modelList := make([]any, 0, len(d.models))
	for _, m := range d.models {
		modelList = append(modelList, m)

		tableName, err := d.tableName(tx, m)
		if err != nil {
			return err
		}
		if err := tx.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", tableName)).Error; err != nil {
			return err
		}
	}

	if err := tx.AutoMigrate(modelList...); err != nil {
		return err
	}

	for _, m := range modelList {
		if !tx.Migrator().HasTable(m) {
			return fmt.Errorf("table for model %T was not created", m)
		}
	}

	return nil
}

// Reset wipes all rows from every registered table. Used between
// scenarios so state does not leak.
func (d *Db) Reset() error {
	for _, m := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return err
		}

		tableName, err := d.tableName(d.DbConn, m)
		if err != nil {
			return err
		}

		err = d.DbConn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", tableName).Error
		if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
			return err
		}
	}

	return nil
}

func (d *Db) checkTables() error {
	for _, m := range d.models {
		if !d.DbConn.Migrator().HasTable(m) {
			return fmt.Errorf("table for model %T was not created", m)
		}
		if err := d.DbConn.Find(&m).Error; err != nil {
			return fmt.Errorf("failed to query table for model %T: %w", m, err)
		}
	}

	return nil
}

func (d *Db) tableName(tx *gorm.DB, model any) (string, error) {
	stmt := &gorm.Statement{DB: tx}
	if err := stmt.Parse(model); err != nil {
		return "", err
	}
	return stmt.Schema.Table, nil
}

// GetModel returns the registered model for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	m, ok := d.models[table]
	return m, ok
}
