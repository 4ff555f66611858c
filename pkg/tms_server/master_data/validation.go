package master_data

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/freightline/tms/pkg/tms_server/model"
)

func ValidateCreateCustomerRequest(req CreateCustomerRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Email, is.EmailFormat),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateCreateLocationRequest(req CreateLocationRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Country, is.CountryCode2),
		validation.Field(&req.Lat, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&req.Lng, validation.Min(-180.0), validation.Max(180.0)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateCreateCarrierRequest(req CreateCarrierRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.SCAC, validation.Length(2, 4), is.UpperCase),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}
