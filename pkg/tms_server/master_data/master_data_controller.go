package master_data

import (
	"context"
	"database/sql"

	"github.com/freightline/tms/pkg/tms_server/model"
	"github.com/freightline/tms/pkg/tms_server/storage"
	"github.com/freightline/tms/pkg/util"
)

// MasterDataController manages the records shipments refer to: customers, locations and carriers.
type MasterDataController interface {
	CreateCustomer(ctx context.Context, ts int64, req CreateCustomerRequest) (model.Customer, error)
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	CreateLocation(ctx context.Context, ts int64, req CreateLocationRequest) (model.Location, error)
	ListLocations(ctx context.Context) ([]model.Location, error)
	CreateCarrier(ctx context.Context, ts int64, req CreateCarrierRequest) (model.Carrier, error)
	ListCarriers(ctx context.Context) ([]model.Carrier, error)
}

type CreateCustomerRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email"`
}

type CreateLocationRequest struct {
	Name    string   `json:"name"`
	Address *string  `json:"address"`
	City    *string  `json:"city"`
	Country *string  `json:"country"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
}

type CreateCarrierRequest struct {
	Name string  `json:"name"`
	SCAC *string `json:"scac"`
}

type _MasterDataController struct {
	storage storage.MasterDataStorage
}

func NewMasterDataController(storage storage.MasterDataStorage) MasterDataController {
	return &_MasterDataController{
		storage: storage,
	}
}

func (c *_MasterDataController) CreateCustomer(ctx context.Context, ts int64, req CreateCustomerRequest) (model.Customer, error) {
	if err := ValidateCreateCustomerRequest(req); err != nil {
		return model.Customer{}, err
	}

	customer := model.Customer{
		ID:        util.NewUUID(),
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: ts,
	}
	err := c.withWriteTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		return c.storage.AddCustomer(ctx, tx, customer)
	})
	if err != nil {
		return model.Customer{}, err
	}
	return customer, nil
}

func (c *_MasterDataController) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return c.storage.ListCustomers(ctx, tx, storage.ListMasterDataRequest{})
}

func (c *_MasterDataController) CreateLocation(ctx context.Context, ts int64, req CreateLocationRequest) (model.Location, error) {
	if err := ValidateCreateLocationRequest(req); err != nil {
		return model.Location{}, err
	}

	location := model.Location{
		ID:        util.NewUUID(),
		Name:      req.Name,
		Address:   req.Address,
		City:      req.City,
		Country:   req.Country,
		Lat:       req.Lat,
		Lng:       req.Lng,
		CreatedAt: ts,
	}
	err := c.withWriteTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		return c.storage.AddLocation(ctx, tx, location)
	})
	if err != nil {
		return model.Location{}, err
	}
	return location, nil
}

func (c *_MasterDataController) ListLocations(ctx context.Context) ([]model.Location, error) {
	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return c.storage.ListLocations(ctx, tx, storage.ListMasterDataRequest{})
}

func (c *_MasterDataController) CreateCarrier(ctx context.Context, ts int64, req CreateCarrierRequest) (model.Carrier, error) {
	if err := ValidateCreateCarrierRequest(req); err != nil {
		return model.Carrier{}, err
	}

	carrier := model.Carrier{
		ID:        util.NewUUID(),
		Name:      req.Name,
		SCAC:      req.SCAC,
		CreatedAt: ts,
	}
	err := c.withWriteTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		return c.storage.AddCarrier(ctx, tx, carrier)
	})
	if err != nil {
		return model.Carrier{}, err
	}
	return carrier, nil
}

func (c *_MasterDataController) ListCarriers(ctx context.Context) ([]model.Carrier, error) {
	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return c.storage.ListCarriers(ctx, tx, storage.ListMasterDataRequest{})
}

func (c *_MasterDataController) withWriteTx(ctx context.Context, fn func(ctx context.Context, tx storage.Tx) error) error {
	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
