// Package wizard реализует пошаговое создание и редактирование события.
//
// Мастер хранит накапливаемый черновик и номер шага. Каждый шаг проверяет только
// свою форму, переход назад ничего не проверяет и не меняет черновик. Отправка
// возможна только с последнего шага.
package wizard

import (
	"context"
	"fmt"
	"sync"

	"github.com/stpnv0/Tourify/internal/domain"
)

// SubmitFunc сохраняет собранный черновик.
type SubmitFunc func(ctx context.Context, draft domain.Draft) (*domain.Event, error)

type Wizard struct {
	mu     sync.Mutex
	submit SubmitFunc
	step   domain.DraftStep
	draft  domain.Draft
}

// New возвращает закрытый мастер.
func New(submit SubmitFunc) *Wizard {
	return &Wizard{submit: submit}
}

// Open переводит мастер на первый шаг. seed - пустой черновик или черновик существующего события.
func (w *Wizard) Open(seed domain.Draft) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != domain.StepClosed {
		return domain.ErrDraftAlreadyOpen
	}

	w.draft = seed.Clone()
	w.step = domain.FirstStep
	return nil
}

// Next проверяет форму активного шага, дописывает её в черновик и переходит на следующий шаг.
// При ошибке проверки шаг и черновик не меняются.
func (w *Wizard) Next(form Form) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step == domain.StepClosed {
		return domain.ErrDraftClosed
	}
	if w.step == domain.FinalStep {
		return fmt.Errorf("%w: %s is the final step, submit it instead", domain.ErrStepMismatch, w.step)
	}
	if err := w.checkStep(form); err != nil {
		return err
	}
	if err := Validate(form); err != nil {
		return err
	}

	form.Apply(&w.draft)
	w.step++
	return nil
}

// Back возвращает на предыдущий шаг без проверки.
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step == domain.StepClosed {
		return domain.ErrDraftClosed
	}
	if w.step == domain.FirstStep {
		return domain.ErrNoPreviousStep
	}

	w.step--
	return nil
}

// Submit проверяет форму последнего шага и передаёт полный черновик в SubmitFunc.
// После успешной отправки мастер закрывается. Если SubmitFunc вернула ошибку,
// черновик и шаг сохраняются, чтобы отправку можно было повторить.
func (w *Wizard) Submit(ctx context.Context, form Form) (*domain.Event, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step == domain.StepClosed {
		return nil, domain.ErrDraftClosed
	}
	if w.step != domain.FinalStep {
		return nil, fmt.Errorf("%w: active step is %s", domain.ErrNotFinalStep, w.step)
	}
	if err := w.checkStep(form); err != nil {
		return nil, err
	}
	if err := Validate(form); err != nil {
		return nil, err
	}

	form.Apply(&w.draft)

	event, err := w.submit(ctx, w.draft.Clone())
	if err != nil {
		return nil, fmt.Errorf("submit draft: %w", err)
	}

	w.reset()
	return event, nil
}

// Close закрывает мастер на любом шаге и отбрасывает черновик.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.reset()
}

// Snapshot возвращает текущий шаг и копию черновика.
func (w *Wizard) Snapshot() (domain.DraftStep, domain.Draft) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.step, w.draft.Clone()
}

func (w *Wizard) checkStep(form Form) error {
	if form == nil {
		return fmt.Errorf("%w: no form for step %s", domain.ErrStepMismatch, w.step)
	}
	if form.Step() != w.step {
		return fmt.Errorf("%w: active step is %s, got %s", domain.ErrStepMismatch, w.step, form.Step())
	}
	return nil
}

func (w *Wizard) reset() {
	w.step = domain.StepClosed
	w.draft = domain.Draft{}
}
