package dashboard

import (
	"context"
	"course_dash_backend/internal/util"
	"sync"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type VideoFormState int

const (
	VideoViewing VideoFormState = iota
	VideoEditing
)

func (s VideoFormState) String() string {
	if s == VideoEditing {
		return "editing"
	}
	return "viewing"
}

// Affordance is the header button label.
type Affordance string

const (
	AffordanceAdd    Affordance = "Add a video"
	AffordanceEdit   Affordance = "Edit video"
	AffordanceCancel Affordance = "Cancel"
)

type VideoBody int

const (
	BodyPlaceholder VideoBody = iota
	BodyPlayer
	BodyUploader
)

const (
	videoProcessingHint = "Videos can take a few minutes to process. Refresh the page if video does not appear."
	videoUploadHint     = "Upload this lesson's video"
)

// VideoView is what the form renders for its current state.
type VideoView struct {
	Title          string
	Affordance     Affordance
	Body           VideoBody
	VideoURL       string
	Controls       bool
	Playing        bool
	UploadEndpoint string
	Hint           string
}

// LessonUpdate is the PATCH body sent once an upload completes. VideoMeta
// carries the probe result of the upload when there is one.
type LessonUpdate struct {
	VideoURL  string          `json:"videoUrl" validate:"required,min=1"`
	VideoMeta *util.VideoInfo `json:"videoMeta,omitempty"`
}

type LessonAPI interface {
	UpdateLesson(ctx context.Context, courseID, chapterID, lessonID string, req LessonUpdate) error
}

type LessonVideoForm struct {
	CourseID  string
	ChapterID string
	LessonID  string

	API     LessonAPI
	Notify  Notifier
	Refresh Refresher

	mu       sync.Mutex
	state    VideoFormState
	busy     bool
	videoURL string
}

func NewLessonVideoForm(courseID, chapterID, lessonID, videoURL string, api LessonAPI, notify Notifier, refresh Refresher) *LessonVideoForm {
	return &LessonVideoForm{
		CourseID:  courseID,
		ChapterID: chapterID,
		LessonID:  lessonID,
		API:       api,
		Notify:    notify,
		Refresh:   refresh,
		videoURL:  videoURL,
	}
}

func (f *LessonVideoForm) State() VideoFormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *LessonVideoForm) VideoURL() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.videoURL
}

// ToggleEdit flips between viewing and editing.
func (f *LessonVideoForm) ToggleEdit() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.busy {
		return ErrBusy
	}
	if f.state == VideoEditing {
		f.state = VideoViewing
	} else {
		f.state = VideoEditing
	}
	return nil
}

func (f *LessonVideoForm) View() VideoView {
	f.mu.Lock()
	defer f.mu.Unlock()

	v := VideoView{Title: "Lesson video"}
	switch {
	case f.state == VideoEditing:
		v.Affordance = AffordanceCancel
		v.Body = BodyUploader
		v.UploadEndpoint = util.UploadLessonVideo
		v.Hint = videoUploadHint
	case f.videoURL == "":
		v.Affordance = AffordanceAdd
		v.Body = BodyPlaceholder
	default:
		v.Affordance = AffordanceEdit
		v.Body = BodyPlayer
		v.VideoURL = f.videoURL
		v.Controls = true
		v.Playing = false
		v.Hint = videoProcessingHint
	}
	return v
}

// UploadComplete submits a finished upload's URL, and its metadata when the
// upload was probed, as the lesson video. An empty url is ignored. On failure
// the form stays in editing.
func (f *LessonVideoForm) UploadComplete(ctx context.Context, url string, meta *util.VideoInfo) error {
	if url == "" {
		return nil
	}

	f.mu.Lock()
	if f.state != VideoEditing {
		f.mu.Unlock()
		return ErrInvalidState
	}
	if f.busy {
		f.mu.Unlock()
		return ErrBusy
	}
	f.busy = true
	f.mu.Unlock()

	req := LessonUpdate{VideoURL: url, VideoMeta: meta}
	err := validate.Struct(req)
	if err == nil {
		err = f.API.UpdateLesson(ctx, f.CourseID, f.ChapterID, f.LessonID, req)
	}

	f.mu.Lock()
	f.busy = false
	if err == nil {
		f.state = VideoViewing
		f.videoURL = url
	}
	f.mu.Unlock()

	if err != nil {
		f.Notify.Error(msgSomethingWrong)
		return err
	}
	f.Notify.Success("Lesson updated")
	refresh(f.Refresh)
	return nil
}
