package integration_tests

import (
	"cryptometrics/internal/db/models/postgres/public/model"
	"cryptometrics/internal/db/models/postgres/public/table"
	"cryptometrics/internal/util"
	"database/sql"
	"os"
	"testing"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/gocarina/gocsv"
	_ "github.com/lib/pq"
)

var seededAssets = []string{"ITEST_A", "ITEST_B", "ITEST_C"}

const createFeaturesTable = `
CREATE TABLE IF NOT EXISTS int_crypto_features (
	date date NOT NULL,
	asset text NOT NULL,
	close_price double precision,
	open_price double precision,
	high double precision,
	low double precision,
	volume double precision,
	daily_return double precision,
	log_return double precision,
	PRIMARY KEY (date, asset)
)`

// openTestDb returns the test database, skipping the test when it is not
// reachable
func openTestDb(t *testing.T) *sql.DB {
	db, err := util.NewTestDb()
	if err != nil {
		t.Skipf("test db unavailable: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("test db unavailable: %v", err)
	}
	return db
}

func seedCryptoFeatures(db *sql.DB) error {
	f, err := os.Open("sample_crypto_2024.csv")
	if err != nil {
		return err
	}
	defer f.Close()

	type Row struct {
		Date        string  `csv:"date"`
		Asset       string  `csv:"asset"`
		OpenPrice   float64 `csv:"open_price"`
		High        float64 `csv:"high"`
		Low         float64 `csv:"low"`
		ClosePrice  float64 `csv:"close_price"`
		Volume      float64 `csv:"volume"`
		DailyReturn float64 `csv:"daily_return"`
		LogReturn   float64 `csv:"log_return"`
	}
	rows := []Row{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return err
	}

	models := []model.IntCryptoFeatures{}
	for _, row := range rows {
		date, err := util.ParseDate(row.Date)
		if err != nil {
			return err
		}
		models = append(models, model.IntCryptoFeatures{
			Date:        date,
			Asset:       row.Asset,
			ClosePrice:  util.FloatPointer(row.ClosePrice),
			OpenPrice:   util.FloatPointer(row.OpenPrice),
			High:        util.FloatPointer(row.High),
			Low:         util.FloatPointer(row.Low),
			Volume:      util.FloatPointer(row.Volume),
			DailyReturn: util.FloatPointer(row.DailyReturn),
			LogReturn:   util.FloatPointer(row.LogReturn),
		})
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(createFeaturesTable); err != nil {
		return err
	}
	if err := deleteSeeded(tx); err != nil {
		return err
	}

	query := table.IntCryptoFeatures.INSERT(table.IntCryptoFeatures.AllColumns).MODELS(models)
	if _, err := query.Exec(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func deleteSeeded(tx *sql.Tx) error {
	assets := []postgres.Expression{}
	for _, a := range seededAssets {
		assets = append(assets, postgres.String(a))
	}
	query := table.IntCryptoFeatures.DELETE().WHERE(table.IntCryptoFeatures.Asset.IN(assets...))
	_, err := query.Exec(tx)
	return err
}

func cleanupSeeded(t *testing.T, db *sql.DB) {
	tx, err := db.Begin()
	if err != nil {
		t.Logf("failed to begin cleanup: %v", err)
		return
	}
	defer tx.Rollback()
	if err := deleteSeeded(tx); err != nil {
		t.Logf("failed to clean up seeded rows: %v", err)
		return
	}
	tx.Commit()
}
