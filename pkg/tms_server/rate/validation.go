package rate

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/freightline/tms/pkg/tms_server/model"
)

func ValidateAssignCarrierRequest(req AssignCarrierRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.ShipmentID, validation.Required),
		validation.Field(&req.CarrierID, validation.Required),
		validation.Field(&req.RateRequest),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateSetCustomerRateRequest(req SetCustomerRateRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.ShipmentID, validation.Required),
		validation.Field(&req.RateRequest),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateShipmentID(shipmentID string) error {
	if err := validation.Validate(shipmentID, validation.Required); err != nil {
		return fmt.Errorf("shipment_id: %s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}

func (r RateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BaseRate, validation.By(nonNegative)),
		validation.Field(&r.FuelPct, validation.By(nonNegative)),
		validation.Field(&r.Accessorials),
		validation.Field(&r.Currency, is.CurrencyCode),
	)
}

func (a AccessorialRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Code, validation.Required),
		validation.Field(&a.Qty, validation.By(nonNegative)),
		validation.Field(&a.Rate, validation.By(nonNegative)),
	)
}

func nonNegative(value any) error {
	d, _ := value.(*model.Decimal)
	if d != nil && d.IsNegative() {
		return errors.New("must not be negative")
	}
	return nil
}
