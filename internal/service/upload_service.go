package service

import (
	"bytes"
	"context"
	"course_dash_backend/internal/config"
	"course_dash_backend/internal/util"
	"course_dash_backend/pkg/logger"
	"course_dash_backend/pkg/monitoring"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UploadResult is what the upload widget receives once a file is hosted.
type UploadResult struct {
	URL  string          `json:"url"`
	Meta *util.VideoInfo `json:"meta,omitempty"`
}

type UploadService struct {
	Storage *StorageService
	Cfg     *config.StorageConfig
}

func NewUploadService(storage *StorageService, cfg *config.StorageConfig) *UploadService {
	return &UploadService{Storage: storage, Cfg: cfg}
}

var uploadMimeTypes = map[string][]string{
	util.UploadLessonVideo:      {util.MimeVideo},
	util.UploadCourseImage:      {util.MimeImage},
	util.UploadCourseAttachment: {util.MimePDF, util.MimeText, util.MimeImage, util.MimeVideo},
}

func uploadKey(endpoint, filename string) string {
	name := strings.ReplaceAll(filepath.Base(filename), " ", "-")
	return path.Join(endpoint, time.Now().Format("20060102"), uuid.NewString()+"-"+name)
}

func (s *UploadService) Upload(ctx context.Context, endpoint string, file *multipart.FileHeader) (*UploadResult, error) {
	res, err := s.upload(ctx, endpoint, file)
	outcome := "ok"
	if err != nil {
		outcome = "rejected"
	}
	monitoring.Uploads.WithLabelValues(endpoint, outcome).Inc()
	return res, err
}

func (s *UploadService) upload(ctx context.Context, endpoint string, file *multipart.FileHeader) (*UploadResult, error) {
	allowed, ok := uploadMimeTypes[endpoint]
	if !ok {
		return nil, util.ErrUnknownUploadTarget
	}
	if file.Size > s.Cfg.MaxUploadBytes() {
		return nil, util.ErrUploadTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	mimeType, err := util.ValidateMimeType(src, allowed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrInvalidUpload, err)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	key := uploadKey(endpoint, file.Filename)
	switch endpoint {
	case util.UploadLessonVideo:
		return s.uploadVideo(ctx, key, src, mimeType)
	case util.UploadCourseImage:
		return s.uploadImage(ctx, key, src)
	}

	url, err := s.Storage.Upload(ctx, key, src, file.Size, mimeType)
	if err != nil {
		return nil, err
	}
	return &UploadResult{URL: url}, nil
}

// uploadVideo spools to a temp file so ffprobe can read it. A failed probe
// still stores the video.
func (s *UploadService) uploadVideo(ctx context.Context, key string, src io.Reader, mimeType string) (*UploadResult, error) {
	tmp, err := os.CreateTemp("", "lesson-video-*"+filepath.Ext(key))
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}

	info, err := util.ProbeVideo(tmp.Name())
	if err != nil {
		logger.Log.Warn("video probe failed", zap.String("key", key), zap.Error(err))
		info = nil
	}

	url, err := s.Storage.UploadFile(ctx, key, tmp.Name(), mimeType)
	if err != nil {
		return nil, err
	}
	return &UploadResult{URL: url, Meta: info}, nil
}

func (s *UploadService) uploadImage(ctx context.Context, key string, src io.Reader) (*UploadResult, error) {
	buf, err := ResizeCourseImage(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrInvalidUpload, err)
	}

	key = strings.TrimSuffix(key, path.Ext(key)) + ".jpg"
	url, err := s.Storage.Upload(ctx, key, buf, int64(buf.Len()), "image/jpeg")
	if err != nil {
		return nil, err
	}
	return &UploadResult{URL: url}, nil
}

// ResizeCourseImage decodes an image, caps its width at
// util.CourseImageMaxWidth and re-encodes it as JPEG.
func ResizeCourseImage(src io.Reader) (*bytes.Buffer, error) {
	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	if img.Bounds().Dx() > util.CourseImageMaxWidth {
		img = imaging.Resize(img, util.CourseImageMaxWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, err
	}
	return buf, nil
}
