package postgres

import (
	"context"

	"github.com/freightline/tms/pkg/tms_server/model"
	"github.com/freightline/tms/pkg/tms_server/storage"
	"github.com/goccy/go-json"
)

func (s *_Storage) UpsertCarrierAssignment(ctx context.Context, tx storage.Tx, assignment model.CarrierAssignment) (model.CarrierAssignment, error) {
	accessorials, err := json.Marshal(assignment.Accessorials)
	if err != nil {
		return model.CarrierAssignment{}, err
	}

	query := `
INSERT INTO carrier_assignment (shipment_id, carrier_id, base_rate, fuel_pct, accessorials, currency, created_at, updated_at)
VALUES ($1, $2, $3::NUMERIC, $4::NUMERIC, $5::JSONB, $6, $7, $7)
ON CONFLICT (shipment_id) DO UPDATE SET
	carrier_id = excluded.carrier_id,
	base_rate = excluded.base_rate,
	fuel_pct = excluded.fuel_pct,
	accessorials = excluded.accessorials,
	currency = excluded.currency,
	updated_at = excluded.updated_at
RETURNING to_jsonb(carrier_assignment)
`
	var result model.CarrierAssignment
	err = tx.QueryRow(
		ctx,
		query,
		assignment.ShipmentID,
		assignment.CarrierID,
		assignment.BaseRate.String(),
		assignment.FuelPct.String(),
		string(accessorials),
		assignment.Currency,
		assignment.UpdatedAt,
	).Scan(&result)
	if err != nil {
		return model.CarrierAssignment{}, translateError(err)
	}
	return result, nil
}

func (s *_Storage) UpsertCustomerRate(ctx context.Context, tx storage.Tx, rate model.CustomerRate) (model.CustomerRate, error) {
	accessorials, err := json.Marshal(rate.Accessorials)
	if err != nil {
		return model.CustomerRate{}, err
	}

	query := `
INSERT INTO customer_rate (shipment_id, base_rate, fuel_pct, accessorials, currency, created_at, updated_at)
VALUES ($1, $2::NUMERIC, $3::NUMERIC, $4::JSONB, $5, $6, $6)
ON CONFLICT (shipment_id) DO UPDATE SET
	base_rate = excluded.base_rate,
	fuel_pct = excluded.fuel_pct,
	accessorials = excluded.accessorials,
	currency = excluded.currency,
	updated_at = excluded.updated_at
RETURNING to_jsonb(customer_rate)
`
	var result model.CustomerRate
	err = tx.QueryRow(
		ctx,
		query,
		rate.ShipmentID,
		rate.BaseRate.String(),
		rate.FuelPct.String(),
		string(accessorials),
		rate.Currency,
		rate.UpdatedAt,
	).Scan(&result)
	if err != nil {
		return model.CustomerRate{}, translateError(err)
	}
	return result, nil
}

func (s *_Storage) GetShipmentRates(ctx context.Context, tx storage.Tx, shipmentID string) (model.ShipmentRates, error) {
	query := `
SELECT
	EXISTS (SELECT 1 FROM shipment WHERE id = $1),
	(SELECT to_jsonb(ca) FROM carrier_assignment ca WHERE ca.shipment_id = $1),
	(SELECT to_jsonb(cr) FROM customer_rate cr WHERE cr.shipment_id = $1)
`
	var exists bool
	var carrierAssignment *model.CarrierAssignment
	var customerRate *model.CustomerRate
	if err := tx.QueryRow(ctx, query, shipmentID).Scan(&exists, &carrierAssignment, &customerRate); err != nil {
		return model.ShipmentRates{}, translateError(err)
	}
	if !exists {
		return model.ShipmentRates{}, model.ErrShipmentNotFound
	}

	return model.ShipmentRates{
		ShipmentID:        shipmentID,
		CarrierAssignment: carrierAssignment,
		CustomerRate:      customerRate,
	}, nil
}
