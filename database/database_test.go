package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"

	"autoblog/config"
)

var errRefused = errors.New("connection refused")

// refusingConnector stands in for a database that is not up yet.
type refusingConnector struct{}

func (refusingConnector) Connect(context.Context) (driver.Conn, error) { return nil, errRefused }
func (refusingConnector) Driver() driver.Driver                        { return refusingDriver{} }

type refusingDriver struct{}

func (refusingDriver) Open(string) (driver.Conn, error) { return nil, errRefused }

func TestOpenDB_ClosesPoolWhenPingFails(t *testing.T) {
	sqlDB := sql.OpenDB(refusingConnector{})
	dialector := mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true})

	db, err := openDB(dialector)
	require.Error(t, err)
	assert.Nil(t, db)
	assert.ErrorIs(t, err, errRefused)

	assert.EqualError(t, sqlDB.Ping(), "sql: database is closed")
}

func TestDialectorFor(t *testing.T) {
	d, err := dialectorFor(config.DatabaseConfig{Driver: config.DatabaseDriverMySQL, Host: "db", Port: "3306"})
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())

	d, err = dialectorFor(config.DatabaseConfig{Driver: config.DatabaseDriverPostgres, URL: "postgres://u:p@db:5432/autoblog"})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	_, err = dialectorFor(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}
