package util

import (
	"github.com/freightline/tms/pkg/tms_server/model"
)

func Ptr[V string | int | float64 | bool | model.DateTime | model.Decimal | model.ShipmentStatus | model.StopType](s V) *V {
	return &s
}
