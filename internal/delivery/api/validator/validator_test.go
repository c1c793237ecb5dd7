package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	ClientName string `validate:"required"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleRequest{ClientName: "Asha"}))
	assert.Error(t, v.Validate(&sampleRequest{}))
}
