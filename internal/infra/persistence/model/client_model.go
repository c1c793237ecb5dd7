package model

import (
	"time"

	"clientverse/internal/domain/entity"
)

// ClientModel is the stored form of a client document at clients/{userId}/userClients/{id}.
// The ID is the document key and is not written as a field.
type ClientModel struct {
	ID                    string                      `firestore:"-" docstore:"id"`
	UserID                string                      `firestore:"userId" docstore:"userId"`
	ClientName            string                      `firestore:"clientName" docstore:"clientName"`
	ReferenceName         string                      `firestore:"referenceName" docstore:"referenceName"`
	PAN                   string                      `firestore:"pan" docstore:"pan"`
	IncomeTaxPassword     string                      `firestore:"incomeTaxPassword" docstore:"incomeTaxPassword"`
	Aadhar                string                      `firestore:"aadhar" docstore:"aadhar"`
	AadharMobile          string                      `firestore:"aadharMobile" docstore:"aadharMobile"`
	PassportNo            string                      `firestore:"passportNo" docstore:"passportNo"`
	PassportExpiryDate    string                      `firestore:"passportExpiryDate" docstore:"passportExpiryDate"`
	Remarks               string                      `firestore:"remarks" docstore:"remarks"`
	Mobiles               []MobileModel               `firestore:"mobiles" docstore:"mobiles"`
	Addresses             []AddressModel              `firestore:"addresses" docstore:"addresses"`
	HealthPolicies        []PolicyModel               `firestore:"healthPolicies" docstore:"healthPolicies"`
	CarBikePolicies       []PolicyModel               `firestore:"carBikePolicies" docstore:"carBikePolicies"`
	LifePolicies          []PolicyModel               `firestore:"lifePolicies" docstore:"lifePolicies"`
	MutualFundInvestments []MutualFundInvestmentModel `firestore:"mutualFundInvestments" docstore:"mutualFundInvestments"`
	CustomFields          []CustomFieldModel          `firestore:"customFields" docstore:"customFields"`
	FamilyMembers         []FamilyMemberModel         `firestore:"familyMembers" docstore:"familyMembers"`
	CreatedAt             time.Time                   `firestore:"createdAt,serverTimestamp" docstore:"createdAt"`
	UpdatedAt             time.Time                   `firestore:"updatedAt,serverTimestamp" docstore:"updatedAt"`
}

// FamilyMemberModel is a family member embedded in a client document.
type FamilyMemberModel struct {
	Name                  string                      `firestore:"name" docstore:"name"`
	Relationship          string                      `firestore:"relationship" docstore:"relationship"`
	PAN                   string                      `firestore:"pan" docstore:"pan"`
	Aadhar                string                      `firestore:"aadhar" docstore:"aadhar"`
	AadharMobile          string                      `firestore:"aadharMobile" docstore:"aadharMobile"`
	PassportNo            string                      `firestore:"passportNo" docstore:"passportNo"`
	PassportExpiryDate    string                      `firestore:"passportExpiryDate" docstore:"passportExpiryDate"`
	HealthInfo            string                      `firestore:"healthInfo" docstore:"healthInfo"`
	Mobiles               []MobileModel               `firestore:"mobiles" docstore:"mobiles"`
	Addresses             []AddressModel              `firestore:"addresses" docstore:"addresses"`
	HealthPolicies        []PolicyModel               `firestore:"healthPolicies" docstore:"healthPolicies"`
	CarBikePolicies       []PolicyModel               `firestore:"carBikePolicies" docstore:"carBikePolicies"`
	LifePolicies          []PolicyModel               `firestore:"lifePolicies" docstore:"lifePolicies"`
	MutualFundInvestments []MutualFundInvestmentModel `firestore:"mutualFundInvestments" docstore:"mutualFundInvestments"`
	CustomFields          []CustomFieldModel          `firestore:"customFields" docstore:"customFields"`
}

type MobileModel struct {
	Value string `firestore:"value" docstore:"value"`
}

type AddressModel struct {
	Type  string `firestore:"type" docstore:"type"`
	Value string `firestore:"value" docstore:"value"`
}

type PolicyModel struct {
	PolicyNo    string `firestore:"policyNo" docstore:"policyNo"`
	CompanyName string `firestore:"companyName" docstore:"companyName"`
	HealthInfo  string `firestore:"healthInfo" docstore:"healthInfo"`
}

type MutualFundInvestmentModel struct {
	AMC              string `firestore:"amc" docstore:"amc"`
	Folio            string `firestore:"folio" docstore:"folio"`
	Units            string `firestore:"units" docstore:"units"`
	NAV              string `firestore:"nav" docstore:"nav"`
	InvestmentAmount string `firestore:"investmentAmount" docstore:"investmentAmount"`
}

type CustomFieldModel struct {
	Name  string `firestore:"name" docstore:"name"`
	Value string `firestore:"value" docstore:"value"`
}

// Field is one top-level document field written by an update.
type Field struct {
	Path  string
	Value any
}

// MergeFields lists every schema-owned top-level field of m in a stable order.
// Server-owned fields (id, userId, createdAt, updatedAt) are excluded.
func (m *ClientModel) MergeFields() []Field {
	return []Field{
		{Path: "clientName", Value: m.ClientName},
		{Path: "referenceName", Value: m.ReferenceName},
		{Path: "pan", Value: m.PAN},
		{Path: "incomeTaxPassword", Value: m.IncomeTaxPassword},
		{Path: "aadhar", Value: m.Aadhar},
		{Path: "aadharMobile", Value: m.AadharMobile},
		{Path: "passportNo", Value: m.PassportNo},
		{Path: "passportExpiryDate", Value: m.PassportExpiryDate},
		{Path: "remarks", Value: m.Remarks},
		{Path: "mobiles", Value: m.Mobiles},
		{Path: "addresses", Value: m.Addresses},
		{Path: "healthPolicies", Value: m.HealthPolicies},
		{Path: "carBikePolicies", Value: m.CarBikePolicies},
		{Path: "lifePolicies", Value: m.LifePolicies},
		{Path: "mutualFundInvestments", Value: m.MutualFundInvestments},
		{Path: "customFields", Value: m.CustomFields},
		{Path: "familyMembers", Value: m.FamilyMembers},
	}
}

// ToClientDomain converts a stored client into an entity. Missing collections become empty.
func ToClientDomain(data *ClientModel) *entity.Client {
	return &entity.Client{
		ID:                    data.ID,
		UserID:                data.UserID,
		ClientName:            data.ClientName,
		ReferenceName:         data.ReferenceName,
		PAN:                   data.PAN,
		IncomeTaxPassword:     data.IncomeTaxPassword,
		Aadhar:                data.Aadhar,
		AadharMobile:          data.AadharMobile,
		PassportNo:            data.PassportNo,
		PassportExpiryDate:    data.PassportExpiryDate,
		Remarks:               data.Remarks,
		Mobiles:               mapSlice(data.Mobiles, toMobileDomain),
		Addresses:             mapSlice(data.Addresses, toAddressDomain),
		HealthPolicies:        mapSlice(data.HealthPolicies, toPolicyDomain),
		CarBikePolicies:       mapSlice(data.CarBikePolicies, toPolicyDomain),
		LifePolicies:          mapSlice(data.LifePolicies, toPolicyDomain),
		MutualFundInvestments: mapSlice(data.MutualFundInvestments, toInvestmentDomain),
		CustomFields:          mapSlice(data.CustomFields, toCustomFieldDomain),
		FamilyMembers:         mapSlice(data.FamilyMembers, toFamilyMemberDomain),
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// FromClientDomain converts an entity into its stored form.
func FromClientDomain(data *entity.Client) *ClientModel {
	return &ClientModel{
		ID:                    data.ID,
		UserID:                data.UserID,
		ClientName:            data.ClientName,
		ReferenceName:         data.ReferenceName,
		PAN:                   data.PAN,
		IncomeTaxPassword:     data.IncomeTaxPassword,
		Aadhar:                data.Aadhar,
		AadharMobile:          data.AadharMobile,
		PassportNo:            data.PassportNo,
		PassportExpiryDate:    data.PassportExpiryDate,
		Remarks:               data.Remarks,
		Mobiles:               mapSlice(data.Mobiles, fromMobileDomain),
		Addresses:             mapSlice(data.Addresses, fromAddressDomain),
		HealthPolicies:        mapSlice(data.HealthPolicies, fromPolicyDomain),
		CarBikePolicies:       mapSlice(data.CarBikePolicies, fromPolicyDomain),
		LifePolicies:          mapSlice(data.LifePolicies, fromPolicyDomain),
		MutualFundInvestments: mapSlice(data.MutualFundInvestments, fromInvestmentDomain),
		CustomFields:          mapSlice(data.CustomFields, fromCustomFieldDomain),
		FamilyMembers:         mapSlice(data.FamilyMembers, fromFamilyMemberDomain),
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func toFamilyMemberDomain(data FamilyMemberModel) entity.FamilyMember {
	return entity.FamilyMember{
		Name:                  data.Name,
		Relationship:          data.Relationship,
		PAN:                   data.PAN,
		Aadhar:                data.Aadhar,
		AadharMobile:          data.AadharMobile,
		PassportNo:            data.PassportNo,
		PassportExpiryDate:    data.PassportExpiryDate,
		HealthInfo:            data.HealthInfo,
		Mobiles:               mapSlice(data.Mobiles, toMobileDomain),
		Addresses:             mapSlice(data.Addresses, toAddressDomain),
		HealthPolicies:        mapSlice(data.HealthPolicies, toPolicyDomain),
		CarBikePolicies:       mapSlice(data.CarBikePolicies, toPolicyDomain),
		LifePolicies:          mapSlice(data.LifePolicies, toPolicyDomain),
		MutualFundInvestments: mapSlice(data.MutualFundInvestments, toInvestmentDomain),
		CustomFields:          mapSlice(data.CustomFields, toCustomFieldDomain),
	}
}

func fromFamilyMemberDomain(data entity.FamilyMember) FamilyMemberModel {
	return FamilyMemberModel{
		Name:                  data.Name,
		Relationship:          data.Relationship,
		PAN:                   data.PAN,
		Aadhar:                data.Aadhar,
		AadharMobile:          data.AadharMobile,
		PassportNo:            data.PassportNo,
		PassportExpiryDate:    data.PassportExpiryDate,
		HealthInfo:            data.HealthInfo,
		Mobiles:               mapSlice(data.Mobiles, fromMobileDomain),
		Addresses:             mapSlice(data.Addresses, fromAddressDomain),
		HealthPolicies:        mapSlice(data.HealthPolicies, fromPolicyDomain),
		CarBikePolicies:       mapSlice(data.CarBikePolicies, fromPolicyDomain),
		LifePolicies:          mapSlice(data.LifePolicies, fromPolicyDomain),
		MutualFundInvestments: mapSlice(data.MutualFundInvestments, fromInvestmentDomain),
		CustomFields:          mapSlice(data.CustomFields, fromCustomFieldDomain),
	}
}

func toMobileDomain(data MobileModel) entity.Mobile {
	return entity.Mobile{Value: data.Value}
}

func fromMobileDomain(data entity.Mobile) MobileModel {
	return MobileModel{Value: data.Value}
}

func toAddressDomain(data AddressModel) entity.Address {
	return entity.Address{Type: entity.AddressType(data.Type), Value: data.Value}
}

func fromAddressDomain(data entity.Address) AddressModel {
	return AddressModel{Type: string(data.Type), Value: data.Value}
}

func toPolicyDomain(data PolicyModel) entity.Policy {
	return entity.Policy{PolicyNo: data.PolicyNo, CompanyName: data.CompanyName, HealthInfo: data.HealthInfo}
}

func fromPolicyDomain(data entity.Policy) PolicyModel {
	return PolicyModel{PolicyNo: data.PolicyNo, CompanyName: data.CompanyName, HealthInfo: data.HealthInfo}
}

func toInvestmentDomain(data MutualFundInvestmentModel) entity.MutualFundInvestment {
	return entity.MutualFundInvestment(data)
}

func fromInvestmentDomain(data entity.MutualFundInvestment) MutualFundInvestmentModel {
	return MutualFundInvestmentModel(data)
}

func toCustomFieldDomain(data CustomFieldModel) entity.CustomField {
	return entity.CustomField(data)
}

func fromCustomFieldDomain(data entity.CustomField) CustomFieldModel {
	return CustomFieldModel(data)
}

func mapSlice[In, Out any](items []In, fn func(In) Out) []Out {
	out := make([]Out, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return out
}
