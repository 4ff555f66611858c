package rate

import (
	"context"
	"database/sql"

	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/freightline/tms/pkg/tms_server/model"
	"github.com/freightline/tms/pkg/tms_server/storage"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type RateController interface {
	AssignCarrier(ctx context.Context, ts int64, req AssignCarrierRequest) (model.CarrierAssignment, error)
	SetCustomerRate(ctx context.Context, ts int64, req SetCustomerRateRequest) (model.CustomerRate, error)
	GetRates(ctx context.Context, shipmentID string) (model.ShipmentRates, error)
}

// RateRequest carries the priced fields shared by carrier assignments and customer rates.
// Omitted amounts default to zero and the currency to USD.
type RateRequest struct {
	BaseRate     *model.Decimal       `json:"base_rate"`
	FuelPct      *model.Decimal       `json:"fuel_pct"`
	Accessorials []AccessorialRequest `json:"accessorials"`
	Currency     string               `json:"currency"`
}

type AccessorialRequest struct {
	Code string         `json:"code"`
	Qty  *model.Decimal `json:"qty"`  // Defaults to 1.
	Rate *model.Decimal `json:"rate"` // Defaults to 0.
}

type AssignCarrierRequest struct {
	ShipmentID string `json:"shipment_id"`
	CarrierID  string `json:"carrier_id"`
	RateRequest
}

type SetCustomerRateRequest struct {
	ShipmentID string `json:"shipment_id"`
	RateRequest
}

type _RateController struct {
	storage storage.RateStorage
}

func NewRateController(storage storage.RateStorage) RateController {
	return &_RateController{
		storage: storage,
	}
}

func (c *_RateController) AssignCarrier(ctx context.Context, ts int64, req AssignCarrierRequest) (model.CarrierAssignment, error) {
	ctx, span := otlp_util.Start(ctx, "tms_server/rate.AssignCarrier",
		trace.WithAttributes(attribute.String("shipment_id", req.ShipmentID), attribute.String("carrier_id", req.CarrierID)),
	)
	defer span.End()

	if err := ValidateAssignCarrierRequest(req); err != nil {
		return model.CarrierAssignment{}, err
	}

	assignment := model.CarrierAssignment{
		ShipmentID: req.ShipmentID,
		CarrierID:  req.CarrierID,
		Rate:       req.RateRequest.toRate(),
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}

	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.CarrierAssignment{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	result, err := c.storage.UpsertCarrierAssignment(ctx, tx, assignment)
	if err != nil {
		return model.CarrierAssignment{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.CarrierAssignment{}, err
	}
	return result, nil
}

func (c *_RateController) SetCustomerRate(ctx context.Context, ts int64, req SetCustomerRateRequest) (model.CustomerRate, error) {
	ctx, span := otlp_util.Start(ctx, "tms_server/rate.SetCustomerRate",
		trace.WithAttributes(attribute.String("shipment_id", req.ShipmentID)),
	)
	defer span.End()

	if err := ValidateSetCustomerRateRequest(req); err != nil {
		return model.CustomerRate{}, err
	}

	rate := model.CustomerRate{
		ShipmentID: req.ShipmentID,
		Rate:       req.RateRequest.toRate(),
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}

	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.CustomerRate{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	result, err := c.storage.UpsertCustomerRate(ctx, tx, rate)
	if err != nil {
		return model.CustomerRate{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.CustomerRate{}, err
	}
	return result, nil
}

func (c *_RateController) GetRates(ctx context.Context, shipmentID string) (model.ShipmentRates, error) {
	if err := ValidateShipmentID(shipmentID); err != nil {
		return model.ShipmentRates{}, err
	}

	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return model.ShipmentRates{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rates, err := c.storage.GetShipmentRates(ctx, tx, shipmentID)
	if err != nil {
		return model.ShipmentRates{}, err
	}
	return rates.Summarize(), nil
}

func (r RateRequest) toRate() model.Rate {
	return model.Rate{
		BaseRate: lo.FromPtr(r.BaseRate),
		FuelPct:  lo.FromPtr(r.FuelPct),
		Accessorials: lo.Map(r.Accessorials, func(a AccessorialRequest, _ int) model.Accessorial {
			return model.Accessorial{
				Code: a.Code,
				Qty:  lo.FromPtrOr(a.Qty, model.NewDecimalFromInt(1)),
				Rate: lo.FromPtr(a.Rate),
			}
		}),
		Currency: lo.Ternary(r.Currency == "", model.DefaultCurrency, r.Currency),
	}
}
