package validation

import (
	"mime/multipart"

	"github.com/jobsphere/jobsphere/internal/pkg/apperrors"
)

// Resume upload limits
var (
	ResumeMaxSizeBytes int64 = 5 * 1024 * 1024
	ResumeContentType        = "application/pdf"
)

// ValidateResumeUpload checks the declared content type and size of an uploaded
// resume. A nil header means no file was attached.
func ValidateResumeUpload(fileHeader *multipart.FileHeader) error {
	if fileHeader == nil {
		return apperrors.ErrResumeRequired
	}
	if fileHeader.Size > ResumeMaxSizeBytes {
		return apperrors.ErrResumeTooLarge
	}
	if fileHeader.Header.Get("Content-Type") != ResumeContentType {
		return apperrors.ErrResumeNotPDF
	}
	return nil
}
