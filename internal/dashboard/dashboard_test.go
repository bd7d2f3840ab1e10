package dashboard

import (
	"context"
	"course_dash_backend/internal/model"
	"course_dash_backend/internal/util"
	"errors"
	"runtime"
	"testing"
)

type toasts struct {
	success []string
	errors  []string
}

func (t *toasts) Success(m string) { t.success = append(t.success, m) }
func (t *toasts) Error(m string)   { t.errors = append(t.errors, m) }

type counter struct{ n int }

func (c *counter) Refresh() { c.n++ }

type fakeLessonAPI struct {
	err   error
	calls []LessonUpdate
}

func (f *fakeLessonAPI) UpdateLesson(_ context.Context, courseID, chapterID, lessonID string, req LessonUpdate) error {
	f.calls = append(f.calls, req)
	return f.err
}

type fakeOptionAPI struct {
	createErr  error
	reorderErr error
	created    []OptionCreate
	reorders   [][]model.PositionUpdate

	// block, when set, holds a reorder until released.
	block chan struct{}
}

func (f *fakeOptionAPI) CreateExamOption(_ context.Context, courseID, examID, questionID string, req OptionCreate) (*model.ExamQuestionOption, error) {
	f.created = append(f.created, req)
	if f.createErr != nil {
		return nil, f.createErr
	}
	o := &model.ExamQuestionOption{QuestionID: questionID, Text: req.Text, Position: len(f.created) + 10}
	o.ID = "new-" + req.Text
	return o, nil
}

func (f *fakeOptionAPI) ReorderExamOptions(_ context.Context, courseID, examID, questionID string, list []model.PositionUpdate) error {
	if f.block != nil {
		<-f.block
	}
	f.reorders = append(f.reorders, list)
	return f.reorderErr
}

func TestVideoViewWithoutVideo(t *testing.T) {
	f := NewLessonVideoForm("c", "ch", "l", "", &fakeLessonAPI{}, &toasts{}, nil)

	v := f.View()
	if v.Affordance != AffordanceAdd || v.Body != BodyPlaceholder {
		t.Fatalf("view: got %+v", v)
	}
}

func TestVideoViewWithVideo(t *testing.T) {
	f := NewLessonVideoForm("c", "ch", "l", "/uploads/v.mp4", &fakeLessonAPI{}, &toasts{}, nil)

	v := f.View()
	if v.Affordance != AffordanceEdit || v.Body != BodyPlayer {
		t.Fatalf("view: got %+v", v)
	}
	if v.VideoURL != "/uploads/v.mp4" || !v.Controls || v.Playing {
		t.Fatalf("player: got %+v", v)
	}
	if v.Hint == "" {
		t.Fatalf("hint: want processing hint, got empty")
	}
}

func TestVideoToggleEdit(t *testing.T) {
	f := NewLessonVideoForm("c", "ch", "l", "", &fakeLessonAPI{}, &toasts{}, nil)

	if err := f.ToggleEdit(); err != nil {
		t.Fatalf("ToggleEdit: %v", err)
	}
	v := f.View()
	if f.State() != VideoEditing || v.Affordance != AffordanceCancel || v.Body != BodyUploader || v.UploadEndpoint != "lessonVideo" {
		t.Fatalf("editing view: got %+v", v)
	}
	if err := f.ToggleEdit(); err != nil {
		t.Fatalf("ToggleEdit: %v", err)
	}
	if f.State() != VideoViewing {
		t.Fatalf("state: want viewing got %s", f.State())
	}
}

func TestVideoUploadCompleteSuccess(t *testing.T) {
	api := &fakeLessonAPI{}
	notes := &toasts{}
	refreshed := &counter{}
	f := NewLessonVideoForm("c", "ch", "l", "", api, notes, refreshed)
	f.ToggleEdit()

	if err := f.UploadComplete(context.Background(), "/uploads/new.mp4", nil); err != nil {
		t.Fatalf("UploadComplete: %v", err)
	}
	if len(api.calls) != 1 || api.calls[0].VideoURL != "/uploads/new.mp4" {
		t.Fatalf("api calls: got %+v", api.calls)
	}
	if f.State() != VideoViewing || f.VideoURL() != "/uploads/new.mp4" {
		t.Fatalf("after success: state=%s url=%q", f.State(), f.VideoURL())
	}
	if len(notes.success) != 1 || notes.success[0] != "Lesson updated" {
		t.Fatalf("toasts: got %+v", notes)
	}
	if refreshed.n != 1 {
		t.Fatalf("refresh: want=1 got=%d", refreshed.n)
	}
}

func TestVideoUploadCompleteSendsMeta(t *testing.T) {
	api := &fakeLessonAPI{}
	f := NewLessonVideoForm("c", "ch", "l", "", api, &toasts{}, nil)
	f.ToggleEdit()

	meta := &util.VideoInfo{Duration: 12.5, Width: 1280, Height: 720, Format: "mp4"}
	if err := f.UploadComplete(context.Background(), "/uploads/new.mp4", meta); err != nil {
		t.Fatalf("UploadComplete: %v", err)
	}
	if len(api.calls) != 1 || api.calls[0].VideoMeta != meta {
		t.Fatalf("api calls: got %+v", api.calls)
	}
}

func TestVideoUploadCompleteFailure(t *testing.T) {
	api := &fakeLessonAPI{err: errors.New("boom")}
	notes := &toasts{}
	refreshed := &counter{}
	f := NewLessonVideoForm("c", "ch", "l", "/uploads/old.mp4", api, notes, refreshed)
	f.ToggleEdit()

	if err := f.UploadComplete(context.Background(), "/uploads/new.mp4", nil); err == nil {
		t.Fatalf("UploadComplete: expected error, got nil")
	}
	if f.State() != VideoEditing || f.VideoURL() != "/uploads/old.mp4" {
		t.Fatalf("after failure: state=%s url=%q", f.State(), f.VideoURL())
	}
	if len(notes.errors) != 1 || notes.errors[0] != "Something went wrong" {
		t.Fatalf("toasts: got %+v", notes)
	}
	if refreshed.n != 0 {
		t.Fatalf("refresh: want=0 got=%d", refreshed.n)
	}
}

func TestVideoUploadCompleteIgnoresEmptyURL(t *testing.T) {
	api := &fakeLessonAPI{}
	f := NewLessonVideoForm("c", "ch", "l", "", api, &toasts{}, nil)
	f.ToggleEdit()

	if err := f.UploadComplete(context.Background(), "", nil); err != nil {
		t.Fatalf("UploadComplete: %v", err)
	}
	if len(api.calls) != 0 || f.State() != VideoEditing {
		t.Fatalf("empty url: calls=%d state=%s", len(api.calls), f.State())
	}
}

func TestVideoUploadCompleteRequiresEditing(t *testing.T) {
	f := NewLessonVideoForm("c", "ch", "l", "", &fakeLessonAPI{}, &toasts{}, nil)

	if err := f.UploadComplete(context.Background(), "/uploads/x.mp4", nil); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("want ErrInvalidState got %v", err)
	}
}

func sampleOptions() []model.ExamQuestionOption {
	opts := make([]model.ExamQuestionOption, 3)
	for i, id := range []string{"c", "a", "b"} {
		opts[i].ID = id
		opts[i].Text = id
	}
	// Deliberately out of order.
	opts[0].Position = 2
	opts[1].Position = 0
	opts[2].Position = 1
	return opts
}

func TestOptionFormSortsAndLists(t *testing.T) {
	f := NewOptionForm("c", "e", "q", sampleOptions(), &fakeOptionAPI{}, &toasts{}, nil)

	v := f.View()
	if v.Title != "Question Options" || v.Subtitle != "Minimum of 3, maximum of 4" || v.Toggle != "Add an option" {
		t.Fatalf("header: got %+v", v)
	}
	if len(v.Options) != 3 || v.Options[0].ID != "a" || v.Options[1].ID != "b" || v.Options[2].ID != "c" {
		t.Fatalf("order: got %+v", v.Options)
	}
	if v.DragHint == "" || v.Empty != "" || v.Overlay || v.ShowForm {
		t.Fatalf("listing flags: got %+v", v)
	}
}

func TestOptionFormEmpty(t *testing.T) {
	f := NewOptionForm("c", "e", "q", nil, &fakeOptionAPI{}, &toasts{}, nil)
	if v := f.View(); v.Empty != "No options" {
		t.Fatalf("empty: want=%q got=%q", "No options", v.Empty)
	}
}

func TestOptionFormToggleCreating(t *testing.T) {
	f := NewOptionForm("c", "e", "q", sampleOptions(), &fakeOptionAPI{}, &toasts{}, nil)

	if err := f.ToggleCreating(); err != nil {
		t.Fatalf("ToggleCreating: %v", err)
	}
	v := f.View()
	if f.State() != OptionCreating || v.Toggle != "Cancel" || !v.ShowForm || v.FormLocked || v.Options != nil {
		t.Fatalf("creating view: got %+v", v)
	}
	if err := f.Reorder(context.Background(), nil); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("reorder while creating: want ErrInvalidState got %v", err)
	}
	if err := f.ToggleCreating(); err != nil || f.State() != OptionListing {
		t.Fatalf("cancel: err=%v state=%s", err, f.State())
	}
}

func TestOptionFormReorderSuccess(t *testing.T) {
	api := &fakeOptionAPI{}
	notes := &toasts{}
	refreshed := &counter{}
	f := NewOptionForm("c", "e", "q", sampleOptions(), api, notes, refreshed)

	// Drag "c" (index 2) to the top.
	if err := f.Move(context.Background(), 2, 0); err != nil {
		t.Fatalf("Move: %v", err)
	}
	want := []model.PositionUpdate{{ID: "c", Position: 0}, {ID: "a", Position: 1}, {ID: "b", Position: 2}}
	if len(api.reorders) != 1 || len(api.reorders[0]) != 3 {
		t.Fatalf("reorders: got %+v", api.reorders)
	}
	for i, u := range api.reorders[0] {
		if u != want[i] {
			t.Fatalf("update %d: want=%+v got=%+v", i, want[i], u)
		}
	}
	if f.State() != OptionListing {
		t.Fatalf("state: want listing got %s", f.State())
	}
	if got := f.Options(); got[0].ID != "c" {
		t.Fatalf("local order: got %+v", got)
	}
	if len(notes.success) != 1 || notes.success[0] != "Questions options reordered" || refreshed.n != 1 {
		t.Fatalf("toasts=%+v refresh=%d", notes, refreshed.n)
	}
}

func TestOptionFormReorderFailure(t *testing.T) {
	api := &fakeOptionAPI{reorderErr: &APIError{Status: 500, Body: "Internal Error"}}
	notes := &toasts{}
	f := NewOptionForm("c", "e", "q", sampleOptions(), api, notes, nil)

	if err := f.Move(context.Background(), 0, 1); err == nil {
		t.Fatalf("Move: expected error, got nil")
	}
	if f.State() != OptionListing {
		t.Fatalf("state: want listing got %s", f.State())
	}
	if got := f.Options(); got[0].ID != "a" {
		t.Fatalf("local order changed on failure: %+v", got)
	}
	if len(notes.errors) != 1 || notes.errors[0] != "Something went wrong" {
		t.Fatalf("toasts: got %+v", notes)
	}
}

func TestOptionFormBusyWhileReordering(t *testing.T) {
	api := &fakeOptionAPI{block: make(chan struct{})}
	f := NewOptionForm("c", "e", "q", sampleOptions(), api, &toasts{}, nil)

	done := make(chan error)
	go func() { done <- f.Reorder(context.Background(), []model.PositionUpdate{{ID: "a", Position: 5}}) }()

	for f.State() != OptionReordering {
		runtime.Gosched()
	}
	if v := f.View(); !v.Overlay {
		t.Fatalf("overlay: want=true while reordering")
	}
	if err := f.ToggleCreating(); !errors.Is(err, ErrBusy) {
		t.Fatalf("ToggleCreating: want ErrBusy got %v", err)
	}
	if err := f.Reorder(context.Background(), nil); !errors.Is(err, ErrBusy) {
		t.Fatalf("Reorder: want ErrBusy got %v", err)
	}

	close(api.block)
	if err := <-done; err != nil {
		t.Fatalf("Reorder: %v", err)
	}
}

func TestOptionFormSubmit(t *testing.T) {
	api := &fakeOptionAPI{}
	notes := &toasts{}
	refreshed := &counter{}
	f := NewOptionForm("c", "e", "q", sampleOptions(), api, notes, refreshed)
	f.ToggleCreating()

	if err := f.Submit(context.Background(), "d"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if f.State() != OptionListing || len(f.Options()) != 4 {
		t.Fatalf("after submit: state=%s options=%d", f.State(), len(f.Options()))
	}
	if len(notes.success) != 1 || notes.success[0] != "Question option created" || refreshed.n != 1 {
		t.Fatalf("toasts=%+v refresh=%d", notes, refreshed.n)
	}
}

func TestOptionFormSubmitValidation(t *testing.T) {
	api := &fakeOptionAPI{}
	f := NewOptionForm("c", "e", "q", nil, api, &toasts{}, nil)
	f.ToggleCreating()

	if err := f.Submit(context.Background(), ""); err == nil {
		t.Fatalf("Submit: expected validation error, got nil")
	}
	if len(api.created) != 0 || f.State() != OptionCreating {
		t.Fatalf("after invalid submit: calls=%d state=%s", len(api.created), f.State())
	}
}

func TestOptionFormSubmitShowsServerMessage(t *testing.T) {
	api := &fakeOptionAPI{createErr: &APIError{Status: 401, Body: "Unauthorized"}}
	notes := &toasts{}
	f := NewOptionForm("c", "e", "q", nil, api, notes, nil)
	f.ToggleCreating()

	if err := f.Submit(context.Background(), "d"); err == nil {
		t.Fatalf("Submit: expected error, got nil")
	}
	if f.State() != OptionCreating {
		t.Fatalf("state: want creating got %s", f.State())
	}
	if len(notes.errors) != 1 || notes.errors[0] != "Unauthorized" {
		t.Fatalf("toasts: got %+v", notes)
	}
}

func TestMoveUpdates(t *testing.T) {
	opts := NewOptionForm("c", "e", "q", sampleOptions(), &fakeOptionAPI{}, &toasts{}, nil).Options()

	got, err := MoveUpdates(opts, 0, 1)
	if err != nil {
		t.Fatalf("MoveUpdates: %v", err)
	}
	want := []model.PositionUpdate{{ID: "b", Position: 0}, {ID: "a", Position: 1}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("updates: want=%+v got=%+v", want, got)
	}

	if got, err := MoveUpdates(opts, 1, 1); err != nil || len(got) != 0 {
		t.Fatalf("no-op move: got=%+v err=%v", got, err)
	}
	if _, err := MoveUpdates(opts, 0, 3); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("out of range: want ErrInvalidState got %v", err)
	}
}
