package qrcode

import (
	"testing"

	"clientverse/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleClient() *entity.Client {
	return &entity.Client{
		ID:            "c1",
		ClientName:    "Asha Verma",
		ReferenceName: "Ravi; Kumar",
		Mobiles:       []entity.Mobile{{Value: "+91 98100 00000"}, {Value: "98111"}},
		Addresses: []entity.Address{
			{Type: entity.AddressPermanent, Value: "12 MG Road, Pune"},
		},
	}
}

func TestNewContactCardService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "medium"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewContactCardService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestContactCardService_GenerateContactCardQR(t *testing.T) {
	service := NewContactCardService(256, "M")

	qrBytes, err := service.GenerateContactCardQR(sampleClient())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestContactCardService_GenerateContactCardQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small", 128},
		{"Medium", 256},
		{"Large", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewContactCardService(tt.size, "M")

			qrBytes, err := service.GenerateContactCardQR(sampleClient())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestContactCardService_ContactCard(t *testing.T) {
	service := NewContactCardService(256, "M")

	card := service.ContactCard(sampleClient())

	assert.Equal(t, "BEGIN:VCARD\r\n"+
		"VERSION:3.0\r\n"+
		"FN:Asha Verma\r\n"+
		"N:Asha Verma;;;;\r\n"+
		"TEL;TYPE=CELL:+91 98100 00000\r\n"+
		"TEL;TYPE=CELL:98111\r\n"+
		"ADR;TYPE=permanent:;;12 MG Road\\, Pune;;;;\r\n"+
		"NOTE:Referred by Ravi\\; Kumar\r\n"+
		"END:VCARD\r\n", card)
}

func TestContactCardService_ContactCard_NameOnly(t *testing.T) {
	service := NewContactCardService(256, "M")

	card := service.ContactCard(&entity.Client{ClientName: "Bo"})

	assert.Equal(t, "BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Bo\r\nN:Bo;;;;\r\nEND:VCARD\r\n", card)
}
