package dashboard

import (
	"bytes"
	"context"
	"course_dash_backend/internal/model"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIError is a non-2xx answer from the authoring API. Body is the raw text
// the server sent.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api error: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("api error: %d %s", e.Status, e.Body)
}

// Client talks to the authoring API with a bearer token.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func coursePath(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = url.PathEscape(p)
	}
	return "/api/courses/" + strings.Join(escaped, "/")
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func (c *Client) UpdateLesson(ctx context.Context, courseID, chapterID, lessonID string, req LessonUpdate) error {
	path := coursePath(courseID, "chapters", chapterID, "lessons", lessonID)
	return c.do(ctx, http.MethodPatch, path, req, nil)
}

func (c *Client) CreateExamOption(ctx context.Context, courseID, examID, questionID string, req OptionCreate) (*model.ExamQuestionOption, error) {
	var option model.ExamQuestionOption
	path := coursePath(courseID, "exam", examID, "questions", questionID, "options")
	if err := c.do(ctx, http.MethodPost, path, req, &option); err != nil {
		return nil, err
	}
	return &option, nil
}

type reorderBody struct {
	List []model.PositionUpdate `json:"list"`
}

func newReorderBody(list []model.PositionUpdate) reorderBody {
	if list == nil {
		list = []model.PositionUpdate{}
	}
	return reorderBody{List: list}
}

func (c *Client) ReorderExamOptions(ctx context.Context, courseID, examID, questionID string, list []model.PositionUpdate) error {
	path := coursePath(courseID, "exam", examID, "questions", questionID, "options", "reorder")
	return c.do(ctx, http.MethodPut, path, newReorderBody(list), nil)
}

func (c *Client) ReorderQuizOptions(ctx context.Context, courseID, chapterID, quizID, questionID string, list []model.PositionUpdate) error {
	path := coursePath(courseID, "chapters", chapterID, "quiz", quizID, "questions", questionID, "options", "reorder")
	return c.do(ctx, http.MethodPut, path, newReorderBody(list), nil)
}

// GetExamQuestion loads a question with its ordered options, the data the
// option form is built from.
func (c *Client) GetExamQuestion(ctx context.Context, courseID, examID, questionID string) (*model.ExamQuestion, error) {
	var q model.ExamQuestion
	path := coursePath(courseID, "exam", examID, "questions", questionID)
	if err := c.do(ctx, http.MethodGet, path, nil, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

var (
	_ LessonAPI = (*Client)(nil)
	_ OptionAPI = (*Client)(nil)
)
