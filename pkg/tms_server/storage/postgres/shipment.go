package postgres

import (
	"context"
	"errors"

	"github.com/freightline/tms/pkg/tms_server/model"
	"github.com/freightline/tms/pkg/tms_server/storage"
	"github.com/jackc/pgx/v5"
)

func (s *_Storage) AddShipment(ctx context.Context, tx storage.Tx, shipment model.Shipment) error {
	query := `
INSERT INTO shipment (id, customer_id, reference, "status", created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err := tx.Exec(
		ctx,
		query,
		shipment.ID,
		shipment.CustomerID,
		shipment.Reference,
		string(shipment.Status),
		shipment.CreatedAt,
		shipment.UpdatedAt,
	)
	if err != nil {
		return translateError(err)
	}

	stopQuery := `
INSERT INTO shipment_stop (id, shipment_id, "sequence", "type", location_id, window_start, window_end, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	for _, stop := range shipment.Stops {
		_, err := tx.Exec(
			ctx,
			stopQuery,
			stop.ID,
			shipment.ID,
			stop.Sequence,
			string(stop.Type),
			stop.LocationID,
			timeOrNil(stop.WindowStart),
			timeOrNil(stop.WindowEnd),
			stop.Notes,
		)
		if err != nil {
			return translateError(err)
		}
	}

	return nil
}

func (s *_Storage) ListShipments(ctx context.Context, tx storage.Tx, req storage.ListShipmentsRequest) ([]model.Shipment, error) {
	query := `
SELECT
	to_jsonb(sh) || jsonb_build_object(
		'stops', COALESCE(
			(SELECT JSONB_AGG(to_jsonb(st) ORDER BY st.rec_id ASC) FROM shipment_stop st WHERE st.shipment_id = sh.id),
			'[]'::JSONB
		),
		'customer', (SELECT to_jsonb(c) FROM customer c WHERE c.id = sh.customer_id)
	)
FROM shipment sh
WHERE
	(COALESCE(array_length($1::TEXT[], 1), 0) = 0 OR sh.id = ANY($1))
ORDER BY sh.rec_id ASC
`
	rows, err := tx.Query(ctx, query, req.IDs)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	shipments := make([]model.Shipment, 0)
	for rows.Next() {
		var shipment model.Shipment
		if err := rows.Scan(&shipment); err != nil {
			return nil, translateError(err)
		}
		shipments = append(shipments, shipment)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}

	return shipments, nil
}

func (s *_Storage) GetShipmentStatus(ctx context.Context, tx storage.Tx, shipmentID string) (model.ShipmentStatus, error) {
	query := `SELECT "status" FROM shipment WHERE id = $1 FOR UPDATE`

	var status string
	err := tx.QueryRow(ctx, query, shipmentID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", model.ErrShipmentNotFound
	}
	if err != nil {
		return "", translateError(err)
	}
	return model.ShipmentStatus(status), nil
}

func (s *_Storage) UpdateShipmentStatus(ctx context.Context, tx storage.Tx, ts int64, shipmentID string, status model.ShipmentStatus) error {
	query := `UPDATE shipment SET "status" = $2, updated_at = $3 WHERE id = $1`
	result, err := tx.Exec(ctx, query, shipmentID, string(status), ts)
	if err != nil {
		return translateError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return translateError(err)
	}
	if affected == 0 {
		return model.ErrShipmentNotFound
	}
	return nil
}

func timeOrNil(dt *model.DateTime) any {
	if dt == nil {
		return nil
	}
	return dt.Time()
}
