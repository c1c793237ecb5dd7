package service

import (
	"clientverse/internal/domain/entity"
)

// ContactCardService renders a client's contact details as a scannable code.
type ContactCardService interface {
	// GenerateContactCardQR encodes the client as a vCard inside a PNG QR code.
	GenerateContactCardQR(client *entity.Client) ([]byte, error)

	// ContactCard returns the vCard text that GenerateContactCardQR encodes.
	ContactCard(client *entity.Client) string
}
