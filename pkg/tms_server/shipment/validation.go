package shipment

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/freightline/tms/pkg/tms_server/model"
	"github.com/samber/lo"
)

var shipmentStatuses = lo.Map(model.ShipmentStatuses, func(s model.ShipmentStatus, _ int) any { return s })

func ValidateCreateShipmentRequest(req CreateShipmentRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.CustomerID, validation.Required),
		validation.Field(&req.Status, validation.In(shipmentStatuses...)),
		validation.Field(&req.Stops, validation.NotNil, validation.By(uniqueStopSequences)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func (r CreateStopRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Sequence, validation.NotNil),
		validation.Field(&r.Type, validation.Required, validation.In(model.StopTypePickup, model.StopTypeDelivery)),
		validation.Field(&r.LocationID, validation.Required),
		validation.Field(&r.WindowEnd, validation.By(func(any) error {
			if r.WindowStart != nil && r.WindowEnd != nil && r.WindowEnd.Before(*r.WindowStart) {
				return errors.New("must not be earlier than window_start")
			}
			return nil
		})),
	)
}

func uniqueStopSequences(value any) error {
	stops, _ := value.([]CreateStopRequest)
	seen := make(map[int]bool, len(stops))
	for _, stop := range stops {
		if stop.Sequence == nil {
			continue
		}
		if seen[*stop.Sequence] {
			return fmt.Errorf("sequence %d is used more than once", *stop.Sequence)
		}
		seen[*stop.Sequence] = true
	}
	return nil
}

func ValidateShipmentID(id string) error {
	if err := validation.Validate(id, validation.Required); err != nil {
		return fmt.Errorf("id: %s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}

func ValidateSetShipmentStatusRequest(req SetShipmentStatusRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.ID, validation.Required),
		validation.Field(&req.Status, validation.Required, validation.In(shipmentStatuses...)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}
