package integration

import (
	"fmt"
	"os"
	"path"
	"sync"
	"testing"

	"github.com/QuangTung97/customer-ban/config"
	"github.com/QuangTung97/customer-ban/pkg/migration"
	"github.com/jmoiron/sqlx"

	// for integration test, must not be imported in any main.go
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// EnvKey must be set to run tests against a real MySQL
const EnvKey = "INTEGRATION_TEST"

// TestCase ...
type TestCase struct {
	DB   *sqlx.DB
	Conf config.Config
}

var initOnce sync.Once

var globalConf config.Config
var globalDB *sqlx.DB

// NewTestCase skips the test when EnvKey is not set
func NewTestCase(t *testing.T) *TestCase {
	if os.Getenv(EnvKey) == "" {
		t.Skipf("set %s to run integration tests", EnvKey)
	}

	initOnce.Do(func() {
		rootDir := findRootDir()

		conf := config.LoadTestConfig(rootDir)
		migration.MigrateUpForTesting(rootDir, conf.MySQL.DSN())

		db := conf.MySQL.MustConnect()

		globalConf = conf
		globalDB = db
	})

	return &TestCase{
		Conf: globalConf,
		DB:   globalDB,
	}
}

// Truncate ...
func (tc *TestCase) Truncate(tables ...string) {
	for _, table := range tables {
		tc.DB.MustExec(fmt.Sprintf("TRUNCATE %s", table))
	}
}

// TruncateAll truncates every table of the ban service
func (tc *TestCase) TruncateAll() {
	tc.Truncate("customer", "ban_record", "message_delivery")
}

func findRootDir() string {
	workdir, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	directory := workdir
	for {
		files, err := os.ReadDir(directory)
		if err != nil {
			panic(err)
		}
		for _, file := range files {
			if file.IsDir() {
				continue
			}
			if file.Name() == "go.mod" {
				return directory
			}
		}

		parent := path.Dir(directory)
		if parent == directory {
			panic("go.mod not found")
		}
		directory = parent
	}
}
