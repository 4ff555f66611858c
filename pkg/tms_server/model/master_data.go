package model

type Customer struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	CreatedAt int64   `json:"created_at"`
}

type Location struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Address   *string  `json:"address,omitempty"`
	City      *string  `json:"city,omitempty"`
	Country   *string  `json:"country,omitempty"` // ISO 3166 alpha-2 code.
	Lat       *float64 `json:"lat,omitempty"`
	Lng       *float64 `json:"lng,omitempty"`
	CreatedAt int64    `json:"created_at"`
}

type Carrier struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	SCAC      *string `json:"scac,omitempty"` // Standard Carrier Alpha Code.
	CreatedAt int64   `json:"created_at"`
}
