package dashboard

import (
	"context"
	"course_dash_backend/internal/model"
	"errors"
	"sort"
	"sync"
)

// OptionFormState has a single value per mode, so the form can never be
// creating and reordering at once.
type OptionFormState int

const (
	OptionListing OptionFormState = iota
	OptionReordering
	OptionCreating
	OptionSubmitting
)

func (s OptionFormState) String() string {
	switch s {
	case OptionReordering:
		return "reordering"
	case OptionCreating:
		return "creating"
	case OptionSubmitting:
		return "submitting"
	default:
		return "listing"
	}
}

const (
	optionsEmpty    = "No options"
	optionsDragHint = "Drag and drop to reorder the options"
	optionsLimits   = "Minimum of 3, maximum of 4"
)

type OptionView struct {
	Title      string
	Subtitle   string
	Toggle     string
	Options    []model.ExamQuestionOption
	Empty      string
	DragHint   string
	Overlay    bool
	ShowForm   bool
	FormLocked bool
}

// OptionCreate is the POST body of the create form.
type OptionCreate struct {
	Text string `json:"text" validate:"required,min=1"`
}

type OptionAPI interface {
	CreateExamOption(ctx context.Context, courseID, examID, questionID string, req OptionCreate) (*model.ExamQuestionOption, error)
	ReorderExamOptions(ctx context.Context, courseID, examID, questionID string, list []model.PositionUpdate) error
}

type OptionForm struct {
	CourseID   string
	ExamID     string
	QuestionID string

	API     OptionAPI
	Notify  Notifier
	Refresh Refresher

	mu      sync.Mutex
	state   OptionFormState
	options []model.ExamQuestionOption
}

func NewOptionForm(courseID, examID, questionID string, options []model.ExamQuestionOption, api OptionAPI, notify Notifier, refresh Refresher) *OptionForm {
	f := &OptionForm{
		CourseID:   courseID,
		ExamID:     examID,
		QuestionID: questionID,
		API:        api,
		Notify:     notify,
		Refresh:    refresh,
	}
	f.SetOptions(options)
	return f
}

// SetOptions replaces the list, e.g. after the owning view refreshed.
func (f *OptionForm) SetOptions(options []model.ExamQuestionOption) {
	sorted := append([]model.ExamQuestionOption(nil), options...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })

	f.mu.Lock()
	f.options = sorted
	f.mu.Unlock()
}

func (f *OptionForm) State() OptionFormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *OptionForm) Options() []model.ExamQuestionOption {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.ExamQuestionOption(nil), f.options...)
}

// ToggleCreating switches between listing and the create form.
func (f *OptionForm) ToggleCreating() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.state {
	case OptionListing:
		f.state = OptionCreating
	case OptionCreating:
		f.state = OptionListing
	default:
		return ErrBusy
	}
	return nil
}

func (f *OptionForm) View() OptionView {
	f.mu.Lock()
	defer f.mu.Unlock()

	v := OptionView{
		Title:    "Question Options",
		Subtitle: optionsLimits,
		Toggle:   "Add an option",
	}
	switch f.state {
	case OptionCreating, OptionSubmitting:
		v.Toggle = "Cancel"
		v.ShowForm = true
		v.FormLocked = f.state == OptionSubmitting
	default:
		v.Options = append([]model.ExamQuestionOption(nil), f.options...)
		v.DragHint = optionsDragHint
		v.Overlay = f.state == OptionReordering
		if len(f.options) == 0 {
			v.Empty = optionsEmpty
		}
	}
	return v
}

// Move drags the option at index from to index to and submits the new
// positions of every option between the two.
func (f *OptionForm) Move(ctx context.Context, from, to int) error {
	f.mu.Lock()
	updates, err := MoveUpdates(f.options, from, to)
	f.mu.Unlock()
	if err != nil {
		return err
	}
	return f.Reorder(ctx, updates)
}

// Reorder issues one bulk reorder. It is only available while listing and
// always returns to listing.
func (f *OptionForm) Reorder(ctx context.Context, list []model.PositionUpdate) error {
	f.mu.Lock()
	switch f.state {
	case OptionListing:
	case OptionReordering, OptionSubmitting:
		f.mu.Unlock()
		return ErrBusy
	default:
		f.mu.Unlock()
		return ErrInvalidState
	}
	f.state = OptionReordering
	f.mu.Unlock()

	err := f.API.ReorderExamOptions(ctx, f.CourseID, f.ExamID, f.QuestionID, list)

	f.mu.Lock()
	f.state = OptionListing
	if err == nil {
		f.applyPositions(list)
	}
	f.mu.Unlock()

	if err != nil {
		f.Notify.Error(msgSomethingWrong)
		return err
	}
	f.Notify.Success("Questions options reordered")
	refresh(f.Refresh)
	return nil
}

func (f *OptionForm) applyPositions(list []model.PositionUpdate) {
	pos := make(map[string]int, len(list))
	for _, item := range list {
		pos[item.ID] = item.Position
	}
	for i := range f.options {
		if p, ok := pos[f.options[i].ID]; ok {
			f.options[i].Position = p
		}
	}
	sort.SliceStable(f.options, func(i, j int) bool { return f.options[i].Position < f.options[j].Position })
}

// Submit creates an option from the form text. Validation failures keep the
// form open without calling the API; server failures surface the response
// body as the toast.
func (f *OptionForm) Submit(ctx context.Context, text string) error {
	req := OptionCreate{Text: text}
	if err := validate.Struct(req); err != nil {
		return err
	}

	f.mu.Lock()
	switch f.state {
	case OptionCreating:
	case OptionSubmitting:
		f.mu.Unlock()
		return ErrBusy
	default:
		f.mu.Unlock()
		return ErrInvalidState
	}
	f.state = OptionSubmitting
	f.mu.Unlock()

	option, err := f.API.CreateExamOption(ctx, f.CourseID, f.ExamID, f.QuestionID, req)

	f.mu.Lock()
	if err != nil {
		f.state = OptionCreating
	} else {
		f.state = OptionListing
		if option != nil {
			f.options = append(f.options, *option)
		}
	}
	f.mu.Unlock()

	if err != nil {
		f.Notify.Error(errorMessage(err))
		return err
	}
	f.Notify.Success("Question option created")
	refresh(f.Refresh)
	return nil
}

func errorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Body != "" {
		return apiErr.Body
	}
	return msgSomethingWrong
}

// MoveUpdates returns the positions that change when the option at from is
// dragged to to. Only the affected range is included, positioned by index.
func MoveUpdates(options []model.ExamQuestionOption, from, to int) ([]model.PositionUpdate, error) {
	if from < 0 || from >= len(options) || to < 0 || to >= len(options) {
		return nil, ErrInvalidState
	}
	if from == to {
		return []model.PositionUpdate{}, nil
	}

	items := append([]model.ExamQuestionOption(nil), options...)
	moved := items[from]
	items = append(items[:from], items[from+1:]...)
	items = append(items[:to], append([]model.ExamQuestionOption{moved}, items[to:]...)...)

	lo, hi := from, to
	if lo > hi {
		lo, hi = hi, lo
	}
	updates := make([]model.PositionUpdate, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		updates = append(updates, model.PositionUpdate{ID: items[i].ID, Position: i})
	}
	return updates, nil
}
