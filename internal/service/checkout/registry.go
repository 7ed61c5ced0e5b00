package checkout

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

// FormRegistry формы оформления по ID сессии
// Формы живут только в памяти процесса, как и рабочая память формы в браузере
type FormRegistry struct {
	mu    sync.Mutex
	forms map[string]*Form
	now   func() time.Time
}

func NewFormRegistry() *FormRegistry {
	return &FormRegistry{
		forms: make(map[string]*Form),
		now:   time.Now,
	}
}

// Acquire возвращает форму сессии для данного выбора
// Если выбор изменился (другое впечатление, слот или цена), форма создается заново
func (r *FormRegistry) Acquire(sessionID string, selection domain.PendingSelection) *Form {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	form, ok := r.forms[sessionID]
	if ok && form.Selection().SameAs(selection) {
		form.touch(now)
		return form
	}

	form = NewForm(selection, now)
	r.forms[sessionID] = form
	return form
}

// Drop удаляет форму сессии
func (r *FormRegistry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.forms, sessionID)
}

// EvictIdle удаляет формы, к которым не обращались с момента cutoff
func (r *FormRegistry) EvictIdle(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for sessionID, form := range r.forms {
		if form.idleSince(cutoff) {
			delete(r.forms, sessionID)
			evicted++
		}
	}
	return evicted
}

// Len количество активных форм
func (r *FormRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms)
}
