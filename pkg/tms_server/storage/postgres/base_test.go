package postgres_test

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/freightline/tms/pkg/util"
	"github.com/go-testfixtures/testfixtures/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/suite"
)

type BaseTestSuite struct {
	suite.Suite
	ctx    context.Context
	pgPool *pgxpool.Pool
}

func (s *BaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	dbHost := os.Getenv("DATABASE_HOST")
	if dbHost == "" {
		s.T().Skip("DATABASE_HOST is not set")
	}
	dbPort, err := strconv.Atoi(os.Getenv("DATABASE_PORT"))
	if err != nil {
		dbPort = 5432
	}
	dbName := os.Getenv("DATABASE_NAME")
	userName := os.Getenv("DATABASE_USER")
	password := os.Getenv("DATABASE_PASSWORD")

	config := util.PostgresDatabaseConfig{
		Host:     dbHost,
		Port:     dbPort,
		Database: dbName,
		User:     userName,
		Password: password,
		SSLMode:  "disable",
		PoolSize: 5,
	}

	pool, err := util.NewPostgresDBPool(config)
	s.Require().NoError(err)
	s.pgPool = pool

	tableNames := []string{
		"check_call",
		"customer_rate",
		"carrier_assignment",
		"shipment_stop",
		"shipment",
		"carrier",
		"location",
		"customer",
	}
	for _, tableName := range tableNames {
		_, err := pool.Exec(context.Background(), fmt.Sprintf(`DELETE FROM %q`, tableName))
		s.Require().NoError(err)
	}
}

func (s *BaseTestSuite) TearDownTest() {
	if s.pgPool != nil {
		s.pgPool.Close()
	}
}

func (s *BaseTestSuite) loadFixtures(dir string) {
	db := stdlib.OpenDBFromPool(s.pgPool)
	fixtures, err := testfixtures.New(
		testfixtures.Database(db),
		testfixtures.Dialect("postgres"),
		testfixtures.Directory(dir),
	)
	s.Require().NoError(err)
	s.Require().NoError(fixtures.Load())
}
