package entity

import "time"

// Crop is a sellable listing. Farmer contact fields are denormalized onto the
// listing for marketplace display. Crops are never deleted; a sold crop stays
// in the collection with IsSold set.
type Crop struct {
	ID       string
	FarmerID string

	// Denormalized owner details for display.
	FarmerName     string
	FarmerPhone    string
	FarmerLocation string

	Name        string
	Price       int64 // Unit price in rupees.
	Quantity    int64
	Unit        string // Unit label, e.g. "kg".
	Description string
	Category    string
	Image       string // Image reference (URL or data URI).

	Verified              bool
	VerificationRequested bool

	// IsSold transitions false to true exactly once, atomically with the
	// transaction that buys the crop. A sold crop is never purchasable again.
	IsSold bool

	// ListedBy records the community agent that proxy-listed this crop on the
	// farmer's behalf. Empty for farmer-authored listings.
	ListedBy string

	CreatedAt time.Time
}
