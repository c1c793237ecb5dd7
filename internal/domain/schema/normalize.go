package schema

import (
	"clientverse/internal/domain/entity"
)

// normalize converts a validated input into an entity. Nil collections become empty.
func (in *ClientInput) normalize() *entity.Client {
	return &entity.Client{
		ClientName:            in.ClientName,
		ReferenceName:         in.ReferenceName,
		PAN:                   in.PAN,
		IncomeTaxPassword:     in.IncomeTaxPassword,
		Aadhar:                in.Aadhar,
		AadharMobile:          in.AadharMobile,
		PassportNo:            in.PassportNo,
		PassportExpiryDate:    in.PassportExpiryDate,
		Remarks:               in.Remarks,
		Mobiles:               convert(in.Mobiles, toMobile),
		Addresses:             convert(in.Addresses, toAddress),
		HealthPolicies:        convert(in.HealthPolicies, toPolicy),
		CarBikePolicies:       convert(in.CarBikePolicies, toPolicy),
		LifePolicies:          convert(in.LifePolicies, toPolicy),
		MutualFundInvestments: convert(in.MutualFunds, toInvestment),
		CustomFields:          convert(in.CustomFields, toCustomField),
		FamilyMembers:         convert(in.FamilyMembers, toFamilyMember),
	}
}

func convert[In, Out any](items []In, fn func(In) Out) []Out {
	out := make([]Out, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return out
}

func toMobile(in MobileInput) entity.Mobile {
	return entity.Mobile{Value: in.Value}
}

func toAddress(in AddressInput) entity.Address {
	return entity.Address{Type: in.Type, Value: in.Value}
}

func toPolicy(in PolicyInput) entity.Policy {
	return entity.Policy{
		PolicyNo:    in.PolicyNo,
		CompanyName: in.CompanyName,
		HealthInfo:  in.HealthInfo,
	}
}

func toInvestment(in InvestmentInput) entity.MutualFundInvestment {
	return entity.MutualFundInvestment{
		AMC:              in.AMC,
		Folio:            in.Folio,
		Units:            in.Units,
		NAV:              in.NAV,
		InvestmentAmount: in.InvestmentAmount,
	}
}

func toCustomField(in CustomFieldInput) entity.CustomField {
	return entity.CustomField{Name: in.Name, Value: in.Value}
}

func toFamilyMember(in FamilyMemberInput) entity.FamilyMember {
	return entity.FamilyMember{
		Name:                  in.Name,
		Relationship:          in.Relationship,
		PAN:                   in.PAN,
		Aadhar:                in.Aadhar,
		AadharMobile:          in.AadharMobile,
		PassportNo:            in.PassportNo,
		PassportExpiryDate:    in.PassportExpiryDate,
		HealthInfo:            in.HealthInfo,
		Mobiles:               convert(in.Mobiles, toMobile),
		Addresses:             convert(in.Addresses, toAddress),
		HealthPolicies:        convert(in.HealthPolicies, toPolicy),
		CarBikePolicies:       convert(in.CarBikePolicies, toPolicy),
		LifePolicies:          convert(in.LifePolicies, toPolicy),
		MutualFundInvestments: convert(in.MutualFunds, toInvestment),
		CustomFields:          convert(in.CustomFields, toCustomField),
	}
}
