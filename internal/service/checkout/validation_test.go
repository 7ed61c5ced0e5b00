package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("a@b.co"))
	assert.True(t, ValidEmail("first.last@mail.example.com"))
	assert.False(t, ValidEmail("a@b"))
	assert.False(t, ValidEmail("a.com"))
	assert.False(t, ValidEmail("a b@c.d"))
	assert.False(t, ValidEmail("a@@b.co"))
	assert.False(t, ValidEmail(""))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("+91 9876543210"))
	assert.True(t, ValidPhone("9876543210"))
	assert.True(t, ValidPhone("987-654-3210"))
	assert.False(t, ValidPhone("12345"))
	assert.False(t, ValidPhone("++919876543210"))
	assert.False(t, ValidPhone("98765abc43210"))
	assert.False(t, ValidPhone(""))
}

func TestValidateContact(t *testing.T) {
	errs := ValidateContact(domain.ContactInfo{Name: "   ", Email: "a@b", Phone: "12345"})

	assert.Equal(t, FieldErrors{
		FieldName:  MsgNameRequired,
		FieldEmail: MsgInvalidEmail,
		FieldPhone: MsgInvalidPhone,
	}, errs)
}

func TestValidateContact_PromoCodeIsOptional(t *testing.T) {
	errs := ValidateContact(domain.ContactInfo{
		Name:  "Asha",
		Email: "asha@example.com",
		Phone: "+91 9876543210",
	})

	assert.True(t, errs.IsEmpty())
}

func TestValidatePromoInput(t *testing.T) {
	assert.ErrorIs(t, ValidatePromoInput(""), ErrPromoCodeRequired)
	assert.ErrorIs(t, ValidatePromoInput("   "), ErrPromoCodeRequired)
	assert.NoError(t, ValidatePromoInput("SAVE10"))
}
