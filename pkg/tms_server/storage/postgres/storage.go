package postgres

import (
	"github.com/freightline/tms/pkg/util"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// _Storage implements every storage interface of the tms server on top of PostgreSQL.
type _Storage struct {
	dbPool *pgxpool.Pool
}

type _TxWrapper struct {
	tx pgx.Tx
}

type _RowWrapper struct {
	row pgx.Row
}

type _RowsWrapper struct {
	rows pgx.Rows
}

type _ResultWrapper struct {
	result pgconn.CommandTag
}

func NewStorageWithPool(dbPool *pgxpool.Pool) *_Storage {
	return &_Storage{
		dbPool: dbPool,
	}
}

func NewStorageWithConfig(config util.PostgresDatabaseConfig) (*_Storage, error) {
	dbPool, err := util.NewPostgresDBPool(config)
	if err != nil {
		return nil, err
	}

	return NewStorageWithPool(dbPool), nil
}

func (s *_Storage) Close() {
	s.dbPool.Close()
}
