package util

import (
	"errors"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ValidateMimeType sniffs the content of reader and checks it against
// allowedTypes, which may be prefixes ("video/") or full types.
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	mtype, err := mimetype.DetectReader(reader)
	if err != nil {
		return "", err
	}

	for m := mtype; m != nil; m = m.Parent() {
		for _, allowed := range allowedTypes {
			if strings.HasPrefix(m.String(), allowed) || m.Is(allowed) {
				return mtype.String(), nil
			}
		}
	}

	return mtype.String(), errors.New("invalid file type: " + mtype.String())
}

func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, MimeImage)
}

func IsVideo(mimeType string) bool {
	return strings.HasPrefix(mimeType, MimeVideo) || mimeType == "application/x-mpegURL"
}
