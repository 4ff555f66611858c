package shipment

import (
	"context"
	"database/sql"

	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/freightline/tms/pkg/tms_server/model"
	"github.com/freightline/tms/pkg/tms_server/storage"
	"github.com/freightline/tms/pkg/util"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type ShipmentController interface {
	Create(ctx context.Context, ts int64, req CreateShipmentRequest) (model.Shipment, error)
	List(ctx context.Context) ([]model.Shipment, error)
	Get(ctx context.Context, id string) (model.Shipment, error)
	SetStatus(ctx context.Context, ts int64, req SetShipmentStatusRequest) (model.Shipment, error)
}

type CreateShipmentRequest struct {
	CustomerID string               `json:"customer_id"`
	Reference  *string              `json:"reference"`
	Status     model.ShipmentStatus `json:"status"` // Defaults to DRAFT.
	Stops      []CreateStopRequest  `json:"stops"`
}

type CreateStopRequest struct {
	Sequence    *int            `json:"sequence"`
	Type        model.StopType  `json:"type"`
	LocationID  string          `json:"location_id"`
	WindowStart *model.DateTime `json:"window_start"`
	WindowEnd   *model.DateTime `json:"window_end"`
	Notes       *string         `json:"notes"`
}

type SetShipmentStatusRequest struct {
	ID     string               `json:"id"`
	Status model.ShipmentStatus `json:"status"`
}

type ShipmentControllerOption func(*_ShipmentController)

// WithStrictStatusTransitions makes SetStatus reject moves the shipment lifecycle does not allow.
func WithStrictStatusTransitions(strict bool) ShipmentControllerOption {
	return func(c *_ShipmentController) {
		c.strictTransitions = strict
	}
}

type _ShipmentController struct {
	storage           storage.ShipmentStorage
	strictTransitions bool

	createdCount metric.Int64Counter
	statusCount  metric.Int64Counter
}

func NewShipmentController(storage storage.ShipmentStorage, options ...ShipmentControllerOption) ShipmentController {
	c := &_ShipmentController{
		storage:      storage,
		createdCount: otlp_util.NewInt64Counter("tms.shipment.created.count", metric.WithDescription("The total number of shipments created")),
		statusCount:  otlp_util.NewInt64Counter("tms.shipment.status_changed.count", metric.WithDescription("The total number of shipment status changes")),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *_ShipmentController) Create(ctx context.Context, ts int64, req CreateShipmentRequest) (model.Shipment, error) {
	ctx, span := otlp_util.Start(ctx, "tms_server/shipment.Create",
		trace.WithAttributes(attribute.String("customer_id", req.CustomerID)),
	)
	defer span.End()

	if err := ValidateCreateShipmentRequest(req); err != nil {
		return model.Shipment{}, err
	}

	shipment := model.Shipment{
		ID:         util.NewUUID(),
		CustomerID: req.CustomerID,
		Reference:  req.Reference,
		Status:     lo.Ternary(req.Status == "", model.ShipmentStatusDraft, req.Status),
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}
	shipment.Stops = lo.Map(req.Stops, func(stop CreateStopRequest, _ int) model.Stop {
		return model.Stop{
			ID:          util.NewUUID(),
			ShipmentID:  shipment.ID,
			Sequence:    *stop.Sequence,
			Type:        stop.Type,
			LocationID:  stop.LocationID,
			WindowStart: stop.WindowStart,
			WindowEnd:   stop.WindowEnd,
			Notes:       stop.Notes,
		}
	})
	span.SetAttributes(attribute.String("shipment_id", shipment.ID), attribute.Int("stops", len(shipment.Stops)))

	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Shipment{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := c.storage.AddShipment(ctx, tx, shipment); err != nil {
		return model.Shipment{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Shipment{}, err
	}

	c.createdCount.Add(ctx, 1, metric.WithAttributes(attribute.String("status", string(shipment.Status))))
	return shipment, nil
}

func (c *_ShipmentController) List(ctx context.Context) ([]model.Shipment, error) {
	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	shipments, err := c.storage.ListShipments(ctx, tx, storage.ListShipmentsRequest{})
	if err != nil {
		return nil, err
	}
	return shipments, nil
}

func (c *_ShipmentController) Get(ctx context.Context, id string) (model.Shipment, error) {
	if err := ValidateShipmentID(id); err != nil {
		return model.Shipment{}, err
	}

	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return model.Shipment{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return c.getShipment(ctx, tx, id)
}

func (c *_ShipmentController) SetStatus(ctx context.Context, ts int64, req SetShipmentStatusRequest) (model.Shipment, error) {
	if err := ValidateSetShipmentStatusRequest(req); err != nil {
		return model.Shipment{}, err
	}

	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Shipment{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	current, err := c.storage.GetShipmentStatus(ctx, tx, req.ID)
	if err != nil {
		return model.Shipment{}, err
	}
	if c.strictTransitions && !current.CanTransitionTo(req.Status) {
		return model.Shipment{}, model.ErrInvalidStatusTransition
	}

	if err := c.storage.UpdateShipmentStatus(ctx, tx, ts, req.ID, req.Status); err != nil {
		return model.Shipment{}, err
	}

	shipment, err := c.getShipment(ctx, tx, req.ID)
	if err != nil {
		return model.Shipment{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Shipment{}, err
	}

	c.statusCount.Add(ctx, 1, metric.WithAttributes(attribute.String("from", string(current)), attribute.String("to", string(req.Status))))
	return shipment, nil
}

func (c *_ShipmentController) getShipment(ctx context.Context, tx storage.Tx, id string) (model.Shipment, error) {
	shipments, err := c.storage.ListShipments(ctx, tx, storage.ListShipmentsRequest{IDs: []string{id}})
	if err != nil {
		return model.Shipment{}, err
	}
	if len(shipments) == 0 {
		return model.Shipment{}, model.ErrShipmentNotFound
	}
	return shipments[0], nil
}
