// Package storage defines what the server needs from its persistence layer.
// Every operation runs inside a Tx obtained from CreateTx.
package storage

import (
	"context"
	"database/sql"

	"github.com/freightline/tms/pkg/tms_server/model"
)

type StorageContextKey string

const (
	TRANSACTION StorageContextKey = "transaction" // The context value is the Tx created by CreateTx.
)

type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (Result, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
}

type Row interface {
	Scan(dest ...any) error
}

type Result interface {
	// RowsAffected returns the number of rows affected by an
	// update, insert, or delete.
	RowsAffected() (int64, error)
}

type CreateTxOption func(*sql.TxOptions)

type TransactionInterface interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
}

func TxOptionWithWrite(write bool) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.ReadOnly = !write
	}
}

func TxOptionWithIsolationLevel(level sql.IsolationLevel) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.Isolation = level
	}
}

// ListShipmentsRequest is the request to list shipments. Stops and the customer are always attached.
type ListShipmentsRequest struct {
	IDs []string `json:"ids"` // Only return these shipments. Empty means all of them.
}

type ShipmentStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)

	// AddShipment inserts the shipment together with all of its stops.
	// model.ErrCustomerNotFound or model.ErrLocationNotFound is returned when a reference is dangling.
	AddShipment(ctx context.Context, tx Tx, shipment model.Shipment) error
	ListShipments(ctx context.Context, tx Tx, req ListShipmentsRequest) ([]model.Shipment, error)

	// GetShipmentStatus locks the shipment row and returns its status.
	GetShipmentStatus(ctx context.Context, tx Tx, shipmentID string) (model.ShipmentStatus, error)
	UpdateShipmentStatus(ctx context.Context, tx Tx, ts int64, shipmentID string, status model.ShipmentStatus) error
}

type RateStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)

	// UpsertCarrierAssignment creates the carrier assignment of a shipment or overwrites every field of the existing one.
	UpsertCarrierAssignment(ctx context.Context, tx Tx, assignment model.CarrierAssignment) (model.CarrierAssignment, error)
	// UpsertCustomerRate creates the customer rate of a shipment or overwrites every field of the existing one.
	UpsertCustomerRate(ctx context.Context, tx Tx, rate model.CustomerRate) (model.CustomerRate, error)
	GetShipmentRates(ctx context.Context, tx Tx, shipmentID string) (model.ShipmentRates, error)
}

type CheckCallStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
	AddCheckCall(ctx context.Context, tx Tx, checkCall model.CheckCall) error
	ListCheckCalls(ctx context.Context, tx Tx, shipmentID string) ([]model.CheckCall, error)
}

type ListMasterDataRequest struct {
	IDs []string `json:"ids"` // Only return these records. Empty means all of them.
}

type MasterDataStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
	AddCustomer(ctx context.Context, tx Tx, customer model.Customer) error
	ListCustomers(ctx context.Context, tx Tx, req ListMasterDataRequest) ([]model.Customer, error)
	AddLocation(ctx context.Context, tx Tx, location model.Location) error
	ListLocations(ctx context.Context, tx Tx, req ListMasterDataRequest) ([]model.Location, error)
	AddCarrier(ctx context.Context, tx Tx, carrier model.Carrier) error
	ListCarriers(ctx context.Context, tx Tx, req ListMasterDataRequest) ([]model.Carrier, error)
}
