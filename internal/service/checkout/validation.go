package checkout

import (
	"regexp"
	"strings"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s-]{10,}$`)
)

// FieldErrors ошибки валидации: имя поля -> сообщение
type FieldErrors map[string]string

// IsEmpty возвращает true, если ошибок нет
func (e FieldErrors) IsEmpty() bool {
	return len(e) == 0
}

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPhone необязательный "+", затем цифры, пробелы и дефисы, всего не меньше 10 символов
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidateContact проверяет обязательные поля перед отправкой
// Промокод не проверяется: он опционален и проверяется только по явному запросу
func ValidateContact(contact domain.ContactInfo) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(contact.Name) == "" {
		errs[FieldName] = MsgNameRequired
	}
	if !ValidEmail(contact.Email) {
		errs[FieldEmail] = MsgInvalidEmail
	}
	if !ValidPhone(contact.Phone) {
		errs[FieldPhone] = MsgInvalidPhone
	}

	return errs
}

// ValidatePromoInput проверяет промокод перед запросом к API
func ValidatePromoInput(code string) error {
	if strings.TrimSpace(code) == "" {
		return ErrPromoCodeRequired
	}
	return nil
}
