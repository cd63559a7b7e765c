package handlers_integrated_test_suite

import (
	"fmt"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	if os.Getenv("DATABASE_URL") == "" {
		fmt.Println("DATABASE_URL not set; skipping Postgres integration tests")
		os.Exit(0)
	}
	if err := setupTestRepos(); err != nil {
		fmt.Println("could not set up Postgres:", err)
		os.Exit(1)
	}
	code := m.Run()
	database.Close()
	os.Exit(code)
}
