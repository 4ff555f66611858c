package postgres

import (
	"context"

	"github.com/freightline/tms/pkg/tms_server/model"
	"github.com/freightline/tms/pkg/tms_server/storage"
)

func (s *_Storage) AddCheckCall(ctx context.Context, tx storage.Tx, checkCall model.CheckCall) error {
	query := `
INSERT INTO check_call (id, shipment_id, code, notes, lat, lng, ts, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	_, err := tx.Exec(
		ctx,
		query,
		checkCall.ID,
		checkCall.ShipmentID,
		checkCall.Code,
		checkCall.Notes,
		checkCall.Lat,
		checkCall.Lng,
		checkCall.Ts.Time(),
		checkCall.CreatedAt,
	)
	return translateError(err)
}

func (s *_Storage) ListCheckCalls(ctx context.Context, tx storage.Tx, shipmentID string) ([]model.CheckCall, error) {
	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM shipment WHERE id = $1)`, shipmentID).Scan(&exists); err != nil {
		return nil, translateError(err)
	}
	if !exists {
		return nil, model.ErrShipmentNotFound
	}

	query := `SELECT to_jsonb(cc) FROM check_call cc WHERE cc.shipment_id = $1 ORDER BY cc.ts ASC, cc.rec_id ASC`
	rows, err := tx.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	checkCalls := make([]model.CheckCall, 0)
	for rows.Next() {
		var checkCall model.CheckCall
		if err := rows.Scan(&checkCall); err != nil {
			return nil, translateError(err)
		}
		checkCalls = append(checkCalls, checkCall)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}
	return checkCalls, nil
}
