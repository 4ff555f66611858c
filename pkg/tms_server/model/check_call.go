package model

// CheckCall is a tracking event logged against a shipment. Check calls are never updated or deleted.
type CheckCall struct {
	ID         string   `json:"id"`
	ShipmentID string   `json:"shipment_id"`
	Code       string   `json:"code"` // Event or status code reported by the driver/carrier.
	Notes      *string  `json:"notes,omitempty"`
	Lat        *float64 `json:"lat,omitempty"`
	Lng        *float64 `json:"lng,omitempty"`
	Ts         DateTime `json:"ts"`         // When the event happened.
	CreatedAt  int64    `json:"created_at"` // Unix Time (in second) when the event was recorded.
}
