package schema

import (
	"testing"

	"clientverse/internal/domain/entity"
	domainerrors "clientverse/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *ClientInput {
	return &ClientInput{
		ClientName: "Asha Verma",
		PAN:        "ABCDE1234F",
		Mobiles:    []MobileInput{{Value: "+91 98100 00000"}},
		Addresses:  []AddressInput{{Type: entity.AddressPermanent, Value: "12 MG Road, Pune"}},
		HealthPolicies: []PolicyInput{
			{PolicyNo: "HP-001", CompanyName: "Star Health", HealthInfo: "diabetic"},
		},
		MutualFunds: []InvestmentInput{
			{AMC: "HDFC", Folio: "123/45", Units: "10.5", NAV: "101.2", InvestmentAmount: "1000"},
		},
		CustomFields: []CustomFieldInput{{Name: "Risk profile", Value: "Moderate"}},
		FamilyMembers: []FamilyMemberInput{
			{Name: "Ravi Verma", Relationship: "Spouse", Mobiles: []MobileInput{{Value: "98111"}}},
		},
	}
}

func requireValidationError(t *testing.T, err error) *domainerrors.ValidationError {
	t.Helper()

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	return validationErr
}

func TestValidate_ValidInput(t *testing.T) {
	client, err := Validate(validInput())
	require.NoError(t, err)
	require.NotNil(t, client)

	assert.Equal(t, "Asha Verma", client.ClientName)
	assert.Equal(t, "ABCDE1234F", client.PAN)
	assert.Equal(t, []entity.Mobile{{Value: "+91 98100 00000"}}, client.Mobiles)
	assert.Equal(t, entity.AddressPermanent, client.Addresses[0].Type)
	assert.Equal(t, "diabetic", client.HealthPolicies[0].HealthInfo)
	assert.Equal(t, "HDFC", client.MutualFundInvestments[0].AMC)
	require.Len(t, client.FamilyMembers, 1)
	assert.Equal(t, "Spouse", client.FamilyMembers[0].Relationship)
	assert.Empty(t, client.ID)
	assert.Empty(t, client.UserID)
}

func TestValidate_NormalizesNilCollections(t *testing.T) {
	client, err := Validate(&ClientInput{
		ClientName:    "Bo",
		FamilyMembers: []FamilyMemberInput{{Name: "Kid"}},
	})
	require.NoError(t, err)

	assert.NotNil(t, client.Mobiles)
	assert.Empty(t, client.Mobiles)
	assert.NotNil(t, client.Addresses)
	assert.NotNil(t, client.CarBikePolicies)
	assert.NotNil(t, client.LifePolicies)
	assert.NotNil(t, client.CustomFields)
	assert.NotNil(t, client.FamilyMembers[0].Mobiles)
	assert.NotNil(t, client.FamilyMembers[0].MutualFundInvestments)
}

func TestValidate_ClientName(t *testing.T) {
	tests := []struct {
		name       string
		clientName string
	}{
		{name: "missing", clientName: ""},
		{name: "too short", clientName: "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			input.ClientName = tt.clientName

			client, err := Validate(input)
			assert.Nil(t, client)

			validationErr := requireValidationError(t, err)
			msg, ok := validationErr.Field("clientName")
			require.True(t, ok)
			assert.Equal(t, "Client name must be at least 2 characters.", msg)
		})
	}
}

func TestValidate_NilInput(t *testing.T) {
	client, err := Validate(nil)
	assert.Nil(t, client)

	validationErr := requireValidationError(t, err)
	_, ok := validationErr.Field("clientName")
	assert.True(t, ok)
}

func TestValidate_FieldPaths(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *ClientInput)
		path    string
		message string
	}{
		{
			name:    "empty mobile",
			mutate:  func(in *ClientInput) { in.Mobiles = append(in.Mobiles, MobileInput{}) },
			path:    "mobiles[1].value",
			message: "Cannot be empty",
		},
		{
			name:    "empty address value",
			mutate:  func(in *ClientInput) { in.Addresses[0].Value = "" },
			path:    "addresses[0].value",
			message: "Address cannot be empty",
		},
		{
			name:    "unknown address type",
			mutate:  func(in *ClientInput) { in.Addresses[0].Type = "Office" },
			path:    "addresses[0].type",
			message: "Address type must be one of Permanent, Current, Temporary",
		},
		{
			name:    "empty custom field name",
			mutate:  func(in *ClientInput) { in.CustomFields[0].Name = "" },
			path:    "customFields[0].name",
			message: "Field name cannot be empty",
		},
		{
			name:    "empty custom field value",
			mutate:  func(in *ClientInput) { in.CustomFields[0].Value = "" },
			path:    "customFields[0].value",
			message: "Field value cannot be empty",
		},
		{
			name:    "partial policy",
			mutate:  func(in *ClientInput) { in.LifePolicies = []PolicyInput{{CompanyName: "LIC"}} },
			path:    "lifePolicies[0].policyNo",
			message: "Policy number cannot be empty",
		},
		{
			name:    "partial fund",
			mutate:  func(in *ClientInput) { in.MutualFunds[0].Folio = "" },
			path:    "mutualFundInvestments[0].folio",
			message: "Folio number cannot be empty",
		},
		{
			name: "fund without units",
			mutate: func(in *ClientInput) {
				in.MutualFunds = []InvestmentInput{{AMC: "HDFC", Folio: "F1", NAV: "101.2", InvestmentAmount: "1000"}}
			},
			path:    "mutualFundInvestments[0].units",
			message: "Units cannot be empty",
		},
		{
			name:    "fund without nav",
			mutate:  func(in *ClientInput) { in.MutualFunds[0].NAV = "" },
			path:    "mutualFundInvestments[0].nav",
			message: "NAV cannot be empty",
		},
		{
			name:    "fund without amount",
			mutate:  func(in *ClientInput) { in.FamilyMembers[0].MutualFunds = []InvestmentInput{{AMC: "SBI", Folio: "9", Units: "1", NAV: "10"}} },
			path:    "familyMembers[0].mutualFundInvestments[0].investmentAmount",
			message: "Investment amount cannot be empty",
		},
		{
			name:    "policy without company",
			mutate:  func(in *ClientInput) { in.HealthPolicies[0].CompanyName = "" },
			path:    "healthPolicies[0].companyName",
			message: "Company name cannot be empty",
		},
		{
			name:    "unnamed family member",
			mutate:  func(in *ClientInput) { in.FamilyMembers[0].Name = "" },
			path:    "familyMembers[0].name",
			message: "Name is required",
		},
		{
			name: "nested family mobile",
			mutate: func(in *ClientInput) {
				in.FamilyMembers = append(in.FamilyMembers,
					FamilyMemberInput{Name: "A"},
					FamilyMemberInput{Name: "B", Mobiles: []MobileInput{{Value: ""}}},
				)
			},
			path:    "familyMembers[2].mobiles[0].value",
			message: "Cannot be empty",
		},
		{
			name: "nested family custom field",
			mutate: func(in *ClientInput) {
				in.FamilyMembers[0].CustomFields = []CustomFieldInput{{Name: "Hobby"}}
			},
			path:    "familyMembers[0].customFields[0].value",
			message: "Field value cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)

			client, err := Validate(input)
			assert.Nil(t, client)

			validationErr := requireValidationError(t, err)
			msg, ok := validationErr.Field(tt.path)
			require.True(t, ok, "expected error at %s, got %v", tt.path, validationErr.Fields())
			assert.Equal(t, tt.message, msg)
		})
	}
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	input := validInput()
	input.ClientName = ""
	input.Mobiles = []MobileInput{{}, {}}
	input.CustomFields = []CustomFieldInput{{}}

	_, err := Validate(input)
	validationErr := requireValidationError(t, err)

	paths := make([]string, 0, len(validationErr.Fields()))
	for _, f := range validationErr.Fields() {
		paths = append(paths, f.Field)
	}

	assert.ElementsMatch(t, []string{
		"clientName",
		"mobiles[0].value",
		"mobiles[1].value",
		"customFields[0].name",
		"customFields[0].value",
	}, paths)
	assert.Contains(t, validationErr.Error(), "mobiles[1].value")
}
