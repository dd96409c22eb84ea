package dataset

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSQL(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	// every connection would otherwise get its own in-memory database
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE samples (outlook TEXT, temperature TEXT, humidity INTEGER, sell TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO samples VALUES
		('Sunny', 'Hot', 85, 'No'),
		('Overcast', NULL, 70, 'Yes')`)
	require.NoError(t, err)

	d, err := ReadSQL(context.Background(), db, `SELECT outlook AS Outlook, temperature AS Temperature, humidity AS Humidity, sell AS Sell FROM samples ORDER BY rowid`)
	require.NoError(t, err)
	assert.Equal(t, Dataset{
		{"Outlook": "Sunny", "Temperature": "Hot", "Humidity": "85", "Sell": "No"},
		{"Outlook": "Overcast", "Temperature": "", "Humidity": "70", "Sell": "Yes"},
	}, d)
}

func TestReadSQLWithArgs(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE samples (Outlook TEXT, Sell TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO samples VALUES ('Sunny', 'No'), ('Rainy', 'Yes')`)
	require.NoError(t, err)

	d, err := ReadSQL(context.Background(), db, `SELECT Outlook, Sell FROM samples WHERE Outlook = ?`, "Rainy")
	require.NoError(t, err)
	assert.Equal(t, Dataset{{"Outlook": "Rainy", "Sell": "Yes"}}, d)
}

func TestReadSQLBadQuery(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = ReadSQL(context.Background(), db, `SELECT * FROM nowhere`)
	assert.Error(t, err)
}
