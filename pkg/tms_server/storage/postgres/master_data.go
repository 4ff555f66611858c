package postgres

import (
	"context"
	"fmt"

	"github.com/freightline/tms/pkg/tms_server/model"
	"github.com/freightline/tms/pkg/tms_server/storage"
)

func (s *_Storage) AddCustomer(ctx context.Context, tx storage.Tx, customer model.Customer) error {
	query := `INSERT INTO customer (id, "name", email, created_at) VALUES ($1, $2, $3, $4)`
	_, err := tx.Exec(ctx, query, customer.ID, customer.Name, customer.Email, customer.CreatedAt)
	return translateError(err)
}

func (s *_Storage) ListCustomers(ctx context.Context, tx storage.Tx, req storage.ListMasterDataRequest) ([]model.Customer, error) {
	return listMasterData[model.Customer](ctx, tx, "customer", req)
}

func (s *_Storage) AddLocation(ctx context.Context, tx storage.Tx, location model.Location) error {
	query := `
INSERT INTO location (id, "name", address, city, country, lat, lng, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	_, err := tx.Exec(
		ctx,
		query,
		location.ID,
		location.Name,
		location.Address,
		location.City,
		location.Country,
		location.Lat,
		location.Lng,
		location.CreatedAt,
	)
	return translateError(err)
}

func (s *_Storage) ListLocations(ctx context.Context, tx storage.Tx, req storage.ListMasterDataRequest) ([]model.Location, error) {
	return listMasterData[model.Location](ctx, tx, "location", req)
}

func (s *_Storage) AddCarrier(ctx context.Context, tx storage.Tx, carrier model.Carrier) error {
	query := `INSERT INTO carrier (id, "name", scac, created_at) VALUES ($1, $2, $3, $4)`
	_, err := tx.Exec(ctx, query, carrier.ID, carrier.Name, carrier.SCAC, carrier.CreatedAt)
	return translateError(err)
}

func (s *_Storage) ListCarriers(ctx context.Context, tx storage.Tx, req storage.ListMasterDataRequest) ([]model.Carrier, error) {
	return listMasterData[model.Carrier](ctx, tx, "carrier", req)
}

// listMasterData reads the rows of one master data table. table is never user input.
func listMasterData[T any](ctx context.Context, tx storage.Tx, table string, req storage.ListMasterDataRequest) ([]T, error) {
	query := fmt.Sprintf(`
SELECT to_jsonb(t)
FROM %q t
WHERE
	(COALESCE(array_length($1::TEXT[], 1), 0) = 0 OR t.id = ANY($1))
ORDER BY t.rec_id ASC
`, table)
	rows, err := tx.Query(ctx, query, req.IDs)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		var record T
		if err := rows.Scan(&record); err != nil {
			return nil, translateError(err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}
	return records, nil
}
