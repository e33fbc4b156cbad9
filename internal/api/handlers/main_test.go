package handlers

import (
	"log"
	"os"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"

	"stoper/internal/testutil"
)

var testDB *sqlx.DB

type customValidator struct{ v *validator.Validate }

func (cv *customValidator) Validate(i interface{}) error { return cv.v.Struct(i) }

func TestMain(m *testing.M) {
	db, err := testutil.SetupTestDB("../../../.env.test", "../../../migrations")
	if err != nil {
		log.Printf("[TestMain] Test database unavailable, handler tests will be skipped: %v", err)
		testDB = nil
		os.Exit(m.Run())
	}
	testDB = db

	code := m.Run()

	testDB.Close()
	os.Exit(code)
}
