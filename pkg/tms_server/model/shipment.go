package model

type ShipmentStatus string

const (
	ShipmentStatusDraft     ShipmentStatus = "DRAFT"
	ShipmentStatusPlanned   ShipmentStatus = "PLANNED"
	ShipmentStatusInTransit ShipmentStatus = "IN_TRANSIT"
	ShipmentStatusDelivered ShipmentStatus = "DELIVERED"
	ShipmentStatusClosed    ShipmentStatus = "CLOSED"
	ShipmentStatusCancelled ShipmentStatus = "CANCELLED"
)

// ShipmentStatuses lists every valid ShipmentStatus in lifecycle order.
var ShipmentStatuses = []ShipmentStatus{
	ShipmentStatusDraft,
	ShipmentStatusPlanned,
	ShipmentStatusInTransit,
	ShipmentStatusDelivered,
	ShipmentStatusClosed,
	ShipmentStatusCancelled,
}

// shipmentStatusTransitions is the lifecycle DRAFT -> PLANNED -> IN_TRANSIT -> DELIVERED -> CLOSED.
// A shipment can be cancelled before it leaves the origin.
var shipmentStatusTransitions = map[ShipmentStatus][]ShipmentStatus{
	ShipmentStatusDraft:     {ShipmentStatusPlanned, ShipmentStatusCancelled},
	ShipmentStatusPlanned:   {ShipmentStatusInTransit, ShipmentStatusCancelled},
	ShipmentStatusInTransit: {ShipmentStatusDelivered},
	ShipmentStatusDelivered: {ShipmentStatusClosed},
}

func (s ShipmentStatus) Valid() bool {
	for _, status := range ShipmentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// Setting the current status again is always allowed.
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	if s == next {
		return next.Valid()
	}
	for _, allowed := range shipmentStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type StopType string

const (
	StopTypePickup   StopType = "PICKUP"
	StopTypeDelivery StopType = "DELIVERY"
)

// Shipment is a transportation order. It is the aggregate root of its Stops.
type Shipment struct {
	ID         string         `json:"id"`                  // Unique ID of the shipment.
	CustomerID string         `json:"customer_id"`         // The customer who ordered the shipment.
	Reference  *string        `json:"reference,omitempty"` // External label, e.g. the customer's PO number.
	Status     ShipmentStatus `json:"status"`              // Lifecycle status.
	CreatedAt  int64          `json:"created_at"`          // Unix Time (in second) when the shipment was created.
	UpdatedAt  int64          `json:"updated_at"`          // Unix Time (in second) when the shipment was last updated.

	Stops    []Stop    `json:"stops"`              // Route of the shipment, in the order it was given.
	Customer *Customer `json:"customer,omitempty"` // Attached when the shipment is read back from storage.
}

// Stop is a pickup or delivery location within the route of a shipment.
type Stop struct {
	ID          string    `json:"id"`
	ShipmentID  string    `json:"shipment_id"`
	Sequence    int       `json:"sequence"`
	Type        StopType  `json:"type"`
	LocationID  string    `json:"location_id"`
	WindowStart *DateTime `json:"window_start,omitempty"`
	WindowEnd   *DateTime `json:"window_end,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
}
