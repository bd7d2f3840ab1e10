package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// Upload endpoints accepted by POST /api/uploads/:endpoint.
const (
	UploadLessonVideo      = "lessonVideo"
	UploadCourseImage      = "courseImage"
	UploadCourseAttachment = "courseAttachment"
)

const (
	MimeVideo = "video/"
	MimeImage = "image/"
	MimePDF   = "application/pdf"
	MimeText  = "text/plain"
)

// Thumbnails and course covers are scaled down to this width.
const CourseImageMaxWidth = 1280
