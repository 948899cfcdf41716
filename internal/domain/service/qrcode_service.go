package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateListingQR generates a QR code pointing at a crop's marketplace
	// listing.
	GenerateListingQR(cropID string) ([]byte, error)
}
