package model

const DefaultCurrency = "USD"

// Accessorial is an additional billable charge line (e.g. LIFTGATE) on top of the base rate and fuel surcharge.
type Accessorial struct {
	Code string  `json:"code"`
	Qty  Decimal `json:"qty"`
	Rate Decimal `json:"rate"`
}

func (a Accessorial) Amount() Decimal {
	return a.Qty.Mul(a.Rate)
}

// Rate is the priced side of a shipment. CarrierAssignment and CustomerRate share it.
type Rate struct {
	BaseRate     Decimal       `json:"base_rate"`
	FuelPct      Decimal       `json:"fuel_pct"` // Fuel surcharge as a percentage of BaseRate.
	Accessorials []Accessorial `json:"accessorials"`
	Currency     string        `json:"currency"` // ISO 4217 currency code.
}

func (r Rate) FuelSurcharge() Decimal {
	return r.BaseRate.Percent(r.FuelPct)
}

func (r Rate) AccessorialTotal() Decimal {
	total := Decimal{}
	for _, a := range r.Accessorials {
		total = total.Add(a.Amount())
	}
	return total
}

func (r Rate) Total() Decimal {
	return r.BaseRate.Add(r.FuelSurcharge()).Add(r.AccessorialTotal())
}

// CarrierAssignment is the cost side: what the carrier is paid for moving the shipment.
// There is at most one per shipment.
type CarrierAssignment struct {
	ShipmentID string `json:"shipment_id"`
	CarrierID  string `json:"carrier_id"`
	Rate
	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// CustomerRate is the revenue side: what the customer is billed for the shipment.
// There is at most one per shipment.
type CustomerRate struct {
	ShipmentID string `json:"shipment_id"`
	Rate
	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// ShipmentRates puts both sides of a shipment's pricing together.
type ShipmentRates struct {
	ShipmentID        string             `json:"shipment_id"`
	CarrierAssignment *CarrierAssignment `json:"carrier_assignment,omitempty"`
	CustomerRate      *CustomerRate      `json:"customer_rate,omitempty"`
	CarrierTotal      *Decimal           `json:"carrier_total,omitempty"`
	CustomerTotal     *Decimal           `json:"customer_total,omitempty"`
	Margin            *Decimal           `json:"margin,omitempty"` // Only when both sides exist in the same currency.
}

// Summarize fills the computed totals and the margin.
func (r ShipmentRates) Summarize() ShipmentRates {
	r.CarrierTotal, r.CustomerTotal, r.Margin = nil, nil, nil
	if r.CarrierAssignment != nil {
		total := r.CarrierAssignment.Total()
		r.CarrierTotal = &total
	}
	if r.CustomerRate != nil {
		total := r.CustomerRate.Total()
		r.CustomerTotal = &total
	}
	if r.CarrierTotal != nil && r.CustomerTotal != nil && r.CarrierAssignment.Currency == r.CustomerRate.Currency {
		margin := r.CustomerTotal.Sub(*r.CarrierTotal)
		r.Margin = &margin
	}
	return r
}
