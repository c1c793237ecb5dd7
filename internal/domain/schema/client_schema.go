// Package schema defines the candidate shape of a client record and
// validates it before anything is persisted.
package schema

import (
	"reflect"
	"strings"
	"sync"

	"clientverse/internal/domain/entity"
	domainerrors "clientverse/internal/domain/errors"
	"clientverse/internal/errors"

	"github.com/go-playground/validator/v10"
)

// ClientInput is a client record as gathered from a form. Collections may be nil.
type ClientInput struct {
	ClientName         string              `json:"clientName" validate:"required,min=2"`
	ReferenceName      string              `json:"referenceName"`
	PAN                string              `json:"pan"`
	IncomeTaxPassword  string              `json:"incomeTaxPassword"`
	Aadhar             string              `json:"aadhar"`
	AadharMobile       string              `json:"aadharMobile"`
	PassportNo         string              `json:"passportNo"`
	PassportExpiryDate string              `json:"passportExpiryDate"`
	Remarks            string              `json:"remarks"`
	Mobiles            []MobileInput       `json:"mobiles" validate:"dive"`
	Addresses          []AddressInput      `json:"addresses" validate:"dive"`
	HealthPolicies     []PolicyInput       `json:"healthPolicies" validate:"dive"`
	CarBikePolicies    []PolicyInput       `json:"carBikePolicies" validate:"dive"`
	LifePolicies       []PolicyInput       `json:"lifePolicies" validate:"dive"`
	MutualFunds        []InvestmentInput   `json:"mutualFundInvestments" validate:"dive"`
	CustomFields       []CustomFieldInput  `json:"customFields" validate:"dive"`
	FamilyMembers      []FamilyMemberInput `json:"familyMembers" validate:"dive"`
}

// FamilyMemberInput mirrors ClientInput for a relative.
type FamilyMemberInput struct {
	Name               string             `json:"name" validate:"required"`
	Relationship       string             `json:"relationship"`
	PAN                string             `json:"pan"`
	Aadhar             string             `json:"aadhar"`
	AadharMobile       string             `json:"aadharMobile"`
	PassportNo         string             `json:"passportNo"`
	PassportExpiryDate string             `json:"passportExpiryDate"`
	HealthInfo         string             `json:"healthInfo"`
	Mobiles            []MobileInput      `json:"mobiles" validate:"dive"`
	Addresses          []AddressInput     `json:"addresses" validate:"dive"`
	HealthPolicies     []PolicyInput      `json:"healthPolicies" validate:"dive"`
	CarBikePolicies    []PolicyInput      `json:"carBikePolicies" validate:"dive"`
	LifePolicies       []PolicyInput      `json:"lifePolicies" validate:"dive"`
	MutualFunds        []InvestmentInput  `json:"mutualFundInvestments" validate:"dive"`
	CustomFields       []CustomFieldInput `json:"customFields" validate:"dive"`
}

type MobileInput struct {
	Value string `json:"value" validate:"required"`
}

type AddressInput struct {
	Type  entity.AddressType `json:"type" validate:"required,address_type"`
	Value string             `json:"value" validate:"required"`
}

type PolicyInput struct {
	PolicyNo    string `json:"policyNo" validate:"required"`
	CompanyName string `json:"companyName" validate:"required"`
	HealthInfo  string `json:"healthInfo"`
}

type InvestmentInput struct {
	AMC              string `json:"amc" validate:"required"`
	Folio            string `json:"folio" validate:"required"`
	Units            string `json:"units" validate:"required"`
	NAV              string `json:"nav" validate:"required"`
	InvestmentAmount string `json:"investmentAmount" validate:"required"`
}

type CustomFieldInput struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// Validator checks candidate records against the client schema.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports JSON field paths.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("address_type", func(fl validator.FieldLevel) bool {
		return entity.AddressType(fl.Field().String()).IsValid()
	})

	return &Validator{validate: v}
}

//nolint:gochecknoglobals
var defaultValidator = sync.OnceValue(New)

// Validate checks input with the shared Validator.
func Validate(input *ClientInput) (*entity.Client, error) {
	return defaultValidator().Validate(input)
}

// Validate returns either the normalized client or a *domainerrors.ValidationError, never both.
func (v *Validator) Validate(input *ClientInput) (*entity.Client, error) {
	if input == nil {
		input = &ClientInput{}
	}

	if err := v.validate.Struct(input); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return nil, errors.Wrap(err, "schema validation")
		}

		fields := make([]domainerrors.FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			path := fieldPath(fe.Namespace())
			fields = append(fields, domainerrors.FieldError{
				Field:   path,
				Message: messageFor(path, fe),
			})
		}

		return nil, domainerrors.NewValidationError(fields)
	}

	return input.normalize(), nil
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return namespace
}
