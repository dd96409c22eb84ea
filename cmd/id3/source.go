package main

import (
	"database/sql"
	"os"
	"strings"

	"github.com/YuminosukeSato/id3/dataset"
	"github.com/YuminosukeSato/id3/pkg/errors"
	"github.com/YuminosukeSato/id3/pkg/log"

	// Import of postgres driver
	_ "github.com/lib/pq"
	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

// loadDataset reads examples from input, which is a path to a CSV (.csv) or
// SQLite3 (.db) file or a PostgreSQL connection URL. An empty input reads CSV
// from STDIN.
func (rcc *rootCmdConfig) loadDataset(input string) (dataset.Dataset, error) {
	logger := log.GetLoggerWithName("cli")
	var d dataset.Dataset
	var err error
	switch {
	case input == "":
		logger.Debug("Reading examples from STDIN", log.SourceKey, "stdin")
		d, err = dataset.ReadCSV(os.Stdin)
	case strings.HasPrefix(input, "postgres://"), strings.HasPrefix(input, "postgresql://"):
		logger.Debug("Reading examples from PostgreSQL", log.SourceKey, "postgres")
		d, err = rcc.loadSQL("postgres", input)
	case strings.HasSuffix(input, ".db"):
		logger.Debug("Reading examples from SQLite3", log.SourceKey, input)
		d, err = rcc.loadSQL("sqlite3", input)
	default:
		logger.Debug("Reading examples from CSV", log.SourceKey, input)
		d, err = dataset.ReadCSVFile(input)
	}
	if err != nil {
		return nil, err
	}
	logger.Info("Examples loaded",
		log.OperationKey, log.OperationLoad,
		log.SamplesKey, len(d),
	)
	return d, nil
}

func (rcc *rootCmdConfig) loadSQL(driver, dsn string) (dataset.Dataset, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s database", driver)
	}
	defer db.Close()
	return dataset.ReadSQL(rcc.Context(), db, rcc.query)
}
