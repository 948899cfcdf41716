package qrcode

import (
	"testing"

	"agriconnect/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateListingQR(t *testing.T) {
	t.Parallel()

	service := NewQRCodeService(&config.Config{})

	png, err := service.GenerateListingQR("c1")
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}

func TestGenerateListingQR_ConfiguredLevels(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"L", "M", "Q", "H"} {
		service := NewQRCodeService(&config.Config{
			QRCode: &config.QRCodeConfig{
				Size:                 128,
				ErrorCorrectionLevel: level,
				BaseURL:              "https://market.example",
			},
		})

		png, err := service.GenerateListingQR("c1")
		require.NoError(t, err)
		assert.NotEmpty(t, png)
	}
}
