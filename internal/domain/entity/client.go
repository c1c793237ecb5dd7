// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Client is an advisor-managed contact and everything it owns.
// A Client document is the unit of atomicity: nested data has no lifecycle of its own.
type Client struct {
	ID                 string    `json:"id"`                          // Assigned by the repository on creation.
	UserID             string    `json:"userId"`                      // Owning advisor, immutable after creation.
	ClientName         string    `json:"clientName"`                  // Display name, at least two characters.
	ReferenceName      string    `json:"referenceName"`               // Who referred the client.
	PAN                string    `json:"pan"`                         // Tax identifier.
	IncomeTaxPassword  string    `json:"incomeTaxPassword,omitempty"` // Sealed at rest.
	Aadhar             string    `json:"aadhar"`                      // National identifier.
	AadharMobile       string    `json:"aadharMobile"`                // Phone linked to the national identifier.
	PassportNo         string    `json:"passportNo"`
	PassportExpiryDate string    `json:"passportExpiryDate"`
	Remarks            string    `json:"remarks"`
	Mobiles            []Mobile  `json:"mobiles"`
	Addresses          []Address `json:"addresses"`

	HealthPolicies        []Policy               `json:"healthPolicies"`
	CarBikePolicies       []Policy               `json:"carBikePolicies"`
	LifePolicies          []Policy               `json:"lifePolicies"`
	MutualFundInvestments []MutualFundInvestment `json:"mutualFundInvestments"`
	CustomFields          []CustomField          `json:"customFields"`
	FamilyMembers         []FamilyMember         `json:"familyMembers"`

	CreatedAt time.Time `json:"createdAt"` // Server-assigned on creation.
	UpdatedAt time.Time `json:"updatedAt"` // Server-assigned on every save.
}

// FamilyMember is a relative of a Client. It has no identity outside its owner.
type FamilyMember struct {
	Name               string    `json:"name"`
	Relationship       string    `json:"relationship"`
	PAN                string    `json:"pan"`
	Aadhar             string    `json:"aadhar"`
	AadharMobile       string    `json:"aadharMobile"`
	PassportNo         string    `json:"passportNo"`
	PassportExpiryDate string    `json:"passportExpiryDate"`
	HealthInfo         string    `json:"healthInfo"`
	Mobiles            []Mobile  `json:"mobiles"`
	Addresses          []Address `json:"addresses"`

	HealthPolicies        []Policy               `json:"healthPolicies"`
	CarBikePolicies       []Policy               `json:"carBikePolicies"`
	LifePolicies          []Policy               `json:"lifePolicies"`
	MutualFundInvestments []MutualFundInvestment `json:"mutualFundInvestments"`
	CustomFields          []CustomField          `json:"customFields"`
}

// Mobile is a single phone number entry.
type Mobile struct {
	Value string `json:"value"`
}

// Address is a tagged free-text address.
type Address struct {
	Type  AddressType `json:"type"`
	Value string      `json:"value"`
}

// Policy is an insurance policy entry (health, vehicle or life).
type Policy struct {
	PolicyNo    string `json:"policyNo"`
	CompanyName string `json:"companyName"`
	HealthInfo  string `json:"healthInfo,omitempty"`
}

// MutualFundInvestment is a fund holding. All values are free text.
type MutualFundInvestment struct {
	AMC              string `json:"amc"`
	Folio            string `json:"folio"`
	Units            string `json:"units"`
	NAV              string `json:"nav"`
	InvestmentAmount string `json:"investmentAmount"`
}

// CustomField is an advisor-defined key/value pair.
type CustomField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
