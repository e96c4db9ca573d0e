package wizard

import "errors"

// Step identifies one screen of the course authoring flow
type Step int

const (
	StepInformation Step = iota
	StepData
	StepContent
	StepPreview
)

// String returns the display name of the step
func (s Step) String() string {
	switch s {
	case StepInformation:
		return "Information"
	case StepData:
		return "Data"
	case StepContent:
		return "Content"
	case StepPreview:
		return "Preview"
	}
	return "Unknown"
}

var (
	// ErrStepIncomplete is returned by Next when the current step's required
	// fields are not filled. The message matches what the portal shows.
	ErrStepIncomplete = errors.New("Please fill all required fields")

	// ErrLastStep is returned by Next on the preview step; the only way
	// forward from there is Submit.
	ErrLastStep = errors.New("already on the last step")
)

// Wizard walks a CourseForm through the authoring steps. Moving forward is
// gated on the current step validating; moving back always succeeds and
// loses nothing.
type Wizard struct {
	form *CourseForm
	step Step
}

// New starts a wizard over an empty form
func New() *Wizard {
	return &Wizard{form: &CourseForm{}, step: StepInformation}
}

// NewWithForm starts a wizard over an existing draft, as when editing a
// published course.
func NewWithForm(form *CourseForm) *Wizard {
	if form == nil {
		form = &CourseForm{}
	}
	return &Wizard{form: form, step: StepInformation}
}

// Form exposes the draft for the current step's inputs to write into
func (w *Wizard) Form() *CourseForm {
	return w.form
}

// Current returns the step being shown
func (w *Wizard) Current() Step {
	return w.step
}

// StepValid reports whether the current step's fields pass validation
func (w *Wizard) StepValid() bool {
	switch w.step {
	case StepInformation:
		return validateInformation(w.form)
	case StepData:
		return validateData(w.form)
	case StepContent:
		return validateContent(w.form)
	case StepPreview:
		return true
	}
	return false
}

// Next advances to the following step if the current one validates
func (w *Wizard) Next() error {
	if w.step == StepPreview {
		return ErrLastStep
	}
	if !w.StepValid() {
		return ErrStepIncomplete
	}
	w.step++
	return nil
}

// Back returns to the previous step, keeping everything already entered
func (w *Wizard) Back() {
	if w.step > StepInformation {
		w.step--
	}
}

// Complete reports whether every step validates, i.e. the draft is ready to
// submit from the preview screen.
func (w *Wizard) Complete() bool {
	return validateInformation(w.form) && validateData(w.form) && validateContent(w.form)
}
