package entity

// AddressType tags an address entry.
type AddressType string

const (
	AddressPermanent AddressType = "Permanent"
	AddressCurrent   AddressType = "Current"
	AddressTemporary AddressType = "Temporary"
)

// AddressTypes lists every accepted tag in display order.
func AddressTypes() []AddressType {
	return []AddressType{AddressPermanent, AddressCurrent, AddressTemporary}
}

// IsValid reports whether t is one of the accepted tags.
func (t AddressType) IsValid() bool {
	switch t {
	case AddressPermanent, AddressCurrent, AddressTemporary:
		return true
	default:
		return false
	}
}
