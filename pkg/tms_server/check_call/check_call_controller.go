package check_call

import (
	"context"
	"database/sql"

	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/freightline/tms/pkg/tms_server/model"
	"github.com/freightline/tms/pkg/tms_server/storage"
	"github.com/freightline/tms/pkg/util"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type CheckCallController interface {
	Add(ctx context.Context, ts int64, req AddCheckCallRequest) (model.CheckCall, error)
	List(ctx context.Context, shipmentID string) ([]model.CheckCall, error)
}

type AddCheckCallRequest struct {
	ShipmentID string          `json:"shipment_id"`
	Code       string          `json:"code"`
	Notes      *string         `json:"notes"`
	Lat        *float64        `json:"lat"`
	Lng        *float64        `json:"lng"`
	Ts         *model.DateTime `json:"ts"` // When the event happened. Defaults to the time it is recorded.
}

type _CheckCallController struct {
	storage       storage.CheckCallStorage
	recordedCount metric.Int64Counter
}

func NewCheckCallController(storage storage.CheckCallStorage) CheckCallController {
	return &_CheckCallController{
		storage:       storage,
		recordedCount: otlp_util.NewInt64Counter("tms.check_call.recorded.count", metric.WithDescription("The total number of check calls recorded")),
	}
}

func (c *_CheckCallController) Add(ctx context.Context, ts int64, req AddCheckCallRequest) (model.CheckCall, error) {
	if err := ValidateAddCheckCallRequest(req); err != nil {
		return model.CheckCall{}, err
	}

	checkCall := model.CheckCall{
		ID:         util.NewUUID(),
		ShipmentID: req.ShipmentID,
		Code:       req.Code,
		Notes:      req.Notes,
		Lat:        req.Lat,
		Lng:        req.Lng,
		Ts:         model.NewDateTimeFromUnix(ts),
		CreatedAt:  ts,
	}
	if req.Ts != nil {
		checkCall.Ts = *req.Ts
	}

	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.CheckCall{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := c.storage.AddCheckCall(ctx, tx, checkCall); err != nil {
		return model.CheckCall{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.CheckCall{}, err
	}

	c.recordedCount.Add(ctx, 1, metric.WithAttributes(attribute.String("code", checkCall.Code)))
	return checkCall, nil
}

func (c *_CheckCallController) List(ctx context.Context, shipmentID string) ([]model.CheckCall, error) {
	if err := ValidateShipmentID(shipmentID); err != nil {
		return nil, err
	}

	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return c.storage.ListCheckCalls(ctx, tx, shipmentID)
}
