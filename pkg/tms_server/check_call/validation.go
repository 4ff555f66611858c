package check_call

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/freightline/tms/pkg/tms_server/model"
)

func ValidateAddCheckCallRequest(req AddCheckCallRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.ShipmentID, validation.Required),
		validation.Field(&req.Code, validation.Required),
		validation.Field(&req.Lat, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&req.Lng, validation.Min(-180.0), validation.Max(180.0)),
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
