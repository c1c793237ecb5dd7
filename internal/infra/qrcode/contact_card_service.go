package qrcode

import (
	"fmt"
	"strings"

	"clientverse/internal/domain/entity"
	"clientverse/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type contactCardService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

//nolint:gochecknoglobals
var vCardEscaper = strings.NewReplacer(`\`, `\\`, ",", `\,`, ";", `\;`, "\r\n", `\n`, "\n", `\n`)

// NewContactCardService creates a new contact card service instance
func NewContactCardService(size int, errorCorrectionLevel string) service.ContactCardService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch strings.ToLower(errorCorrectionLevel) {
	case "l", "low":
		level = qrcode.Low
	case "m", "medium":
		level = qrcode.Medium
	case "q", "high":
		level = qrcode.High
	case "h", "highest":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &contactCardService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateContactCardQR encodes the client's vCard as a PNG QR code
func (s *contactCardService) GenerateContactCardQR(client *entity.Client) ([]byte, error) {
	qrCode, err := qrcode.New(s.ContactCard(client), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ContactCard renders the client's name, phones and addresses as a vCard 3.0
func (s *contactCardService) ContactCard(client *entity.Client) string {
	name := vCardEscaper.Replace(client.ClientName)

	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:" + name,
		"N:" + name + ";;;;",
	}

	for _, mobile := range client.Mobiles {
		lines = append(lines, "TEL;TYPE=CELL:"+vCardEscaper.Replace(mobile.Value))
	}

	for _, address := range client.Addresses {
		lines = append(lines, fmt.Sprintf("ADR;TYPE=%s:;;%s;;;;",
			strings.ToLower(string(address.Type)), vCardEscaper.Replace(address.Value)))
	}

	if client.ReferenceName != "" {
		lines = append(lines, "NOTE:Referred by "+vCardEscaper.Replace(client.ReferenceName))
	}

	lines = append(lines, "END:VCARD")

	return strings.Join(lines, "\r\n") + "\r\n"
}
