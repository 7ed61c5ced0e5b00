package checkout

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

// FormPatch изменения полей формы; nil - поле не меняется
type FormPatch struct {
	Name      *string
	Email     *string
	Phone     *string
	PromoCode *string
}

// FormState снимок формы
type FormState struct {
	Contact     domain.ContactInfo
	Promo       *domain.PromoOutcome
	Errors      FieldErrors
	SubmitError string
	Submitting  bool
}

// Form рабочая память формы оформления одной сессии
//
// Проверка промокода и отправка формы могут выполняться параллельно.
// Каждая проверка получает токен; результат применяется, только если токен
// все еще последний и промокод не менялся. Изменение промокода сбрасывает
// предыдущий результат и делает текущую проверку устаревшей.
type Form struct {
	mu          sync.Mutex
	selection   domain.PendingSelection
	contact     domain.ContactInfo
	promo       *domain.PromoOutcome
	promoToken  uint64
	errors      FieldErrors
	submitError string
	submitting  bool
	submitted   bool
	touchedAt   time.Time
}

func NewForm(selection domain.PendingSelection, now time.Time) *Form {
	return &Form{
		selection: selection,
		errors:    FieldErrors{},
		touchedAt: now,
	}
}

// Apply применяет изменения полей
func (f *Form) Apply(patch FormPatch) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if patch.Name != nil {
		f.contact.Name = *patch.Name
	}
	if patch.Email != nil {
		f.contact.Email = *patch.Email
	}
	if patch.Phone != nil {
		f.contact.Phone = *patch.Phone
	}
	if patch.PromoCode != nil {
		f.setPromoCodeLocked(*patch.PromoCode)
	}
}

// SetPromoCode меняет промокод; при изменении значения прежний результат проверки сбрасывается
func (f *Form) SetPromoCode(code string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setPromoCodeLocked(code)
}

func (f *Form) setPromoCodeLocked(code string) {
	if code == f.contact.PromoCode {
		return
	}
	f.contact.PromoCode = code
	f.promo = nil
	f.promoToken++
}

// BeginPromoValidation выдает токен проверки для текущего промокода
// Пустой промокод - ошибка поля, запрос к API не нужен
func (f *Form) BeginPromoValidation() (uint64, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	code := f.contact.PromoCode
	if err := ValidatePromoInput(code); err != nil {
		f.errors[FieldPromoCode] = MsgPromoCodeRequired
		return 0, code, err
	}

	f.promoToken++
	return f.promoToken, code, nil
}

// CompletePromoValidation применяет результат проверки
// fieldError пустой - ошибка поля promoCode снимается
// Возвращает false, если результат устарел и был отброшен
func (f *Form) CompletePromoValidation(token uint64, code string, outcome domain.PromoOutcome, fieldError string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if token != f.promoToken || code != f.contact.PromoCode {
		return false
	}

	f.promo = &outcome
	if fieldError == "" {
		delete(f.errors, FieldPromoCode)
	} else {
		f.errors[FieldPromoCode] = fieldError
	}
	return true
}

// Submission данные, с которыми уходит бронирование
// Итог считается по результату проверки промокода, активному в момент отправки
type Submission struct {
	Selection domain.PendingSelection
	Contact   domain.ContactInfo
	Total     float64
}

// BeginSubmit проверяет поля и фиксирует данные отправки
// Ошибки полей возвращаются вместе с ErrInvalidFields, повторная отправка - ErrSubmitInProgress,
// отправка после созданного бронирования - ErrAlreadySubmitted
func (f *Form) BeginSubmit() (*Submission, FieldErrors, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	errs := ValidateContact(f.contact)
	if !errs.IsEmpty() {
		f.submitError = ""
		f.clearContactErrorsLocked()
		for field, msg := range errs {
			f.errors[field] = msg
		}
		return nil, errs, ErrInvalidFields
	}

	if f.submitting {
		return nil, errs, ErrSubmitInProgress
	}
	if f.submitted {
		return nil, errs, ErrAlreadySubmitted
	}

	f.submitError = ""
	f.clearContactErrorsLocked()
	f.submitting = true

	return &Submission{
		Selection: f.selection,
		Contact:   f.contact,
		Total:     CalculateTotal(f.selection.Price, f.promo),
	}, errs, nil
}

// FailSubmit завершает отправку с ошибкой уровня формы
func (f *Form) FailSubmit(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	f.submitError = message
}

// FinishSubmit завершает успешную отправку
// Бронирование создано: форма больше не принимает отправку
func (f *Form) FinishSubmit() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	f.submitted = true
}

func (f *Form) clearContactErrorsLocked() {
	delete(f.errors, FieldName)
	delete(f.errors, FieldEmail)
	delete(f.errors, FieldPhone)
}

// Total итоговая цена с учетом текущего результата проверки промокода
func (f *Form) Total() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return CalculateTotal(f.selection.Price, f.promo)
}

// State возвращает копию состояния формы
func (f *Form) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := FormState{
		Contact:     f.contact,
		Errors:      make(FieldErrors, len(f.errors)),
		SubmitError: f.submitError,
		Submitting:  f.submitting,
	}
	for field, msg := range f.errors {
		state.Errors[field] = msg
	}
	if f.promo != nil {
		promo := *f.promo
		state.Promo = &promo
	}
	return state
}

// Selection выбор, для которого открыта форма
func (f *Form) Selection() domain.PendingSelection {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selection
}

func (f *Form) touch(now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touchedAt = now
}

func (f *Form) idleSince(cutoff time.Time) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.touchedAt.Before(cutoff) && !f.submitting
}
