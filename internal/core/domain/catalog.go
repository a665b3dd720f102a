package domain

// Client is a customer ordering repair work.
type Client struct {
	ID      string `json:"id" bson:"id,omitempty"`
	Name    string `json:"name" bson:"name"`
	Contact string `json:"contact" bson:"contact"`
}

// Contractor is a company or individual performing repair work.
type Contractor struct {
	ID      string `json:"id" bson:"id,omitempty"`
	Name    string `json:"name" bson:"name"`
	Contact string `json:"contact" bson:"contact"`
}

// Material is immutable reference data priced per order; there is no stock
// tracking, so concurrent orders may reference the same material freely.
type Material struct {
	ID   string  `json:"id" bson:"id,omitempty"`
	Name string  `json:"name" bson:"name"`
	Cost float64 `json:"cost" bson:"cost"`
}

// WorkObject is the premises where the work takes place. Area drives the
// base cost of an order.
type WorkObject struct {
	ID      string  `json:"id" bson:"id,omitempty"`
	Type    string  `json:"type" bson:"type"`
	Address string  `json:"address" bson:"address"`
	Area    float64 `json:"area" bson:"area"`
}
