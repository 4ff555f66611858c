package postgres

import (
	"errors"
	"fmt"

	"github.com/freightline/tms/pkg/tms_server/model"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// Names of the foreign key constraints created by the migrations.
var foreignKeyErrors = map[string]error{
	"shipment_customer_id_fkey":           model.ErrCustomerNotFound,
	"shipment_stop_shipment_id_fkey":      model.ErrShipmentNotFound,
	"shipment_stop_location_id_fkey":      model.ErrLocationNotFound,
	"carrier_assignment_shipment_id_fkey": model.ErrShipmentNotFound,
	"carrier_assignment_carrier_id_fkey":  model.ErrCarrierNotFound,
	"customer_rate_shipment_id_fkey":      model.ErrShipmentNotFound,
	"check_call_shipment_id_fkey":         model.ErrShipmentNotFound,
}

// translateError turns a database error into the model error the controllers understand.
// Anything that is not a broken reference or a duplicate key is a model.ErrStorage.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			if refErr, ok := foreignKeyErrors[pgErr.ConstraintName]; ok {
				return fmt.Errorf("%s: %w", pgErr.Detail, refErr)
			}
			return fmt.Errorf("%s%w", pgErr.Detail, model.ErrReferenceNotFound)
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", pgErr.Detail, model.ErrDuplicateRecord)
		}
	}
	return fmt.Errorf("%s%w", err.Error(), model.ErrStorage)
}
