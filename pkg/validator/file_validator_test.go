package validator

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResumeValidator(t *testing.T) {
	v := ResumeValidator(2)

	assert.Equal(t, 2*MB, v.GetMaxSize())
	assert.Equal(t, []string{".docx", ".pdf", ".txt"}, v.GetAllowedTypes())

	assert.NoError(t, v.Validate(&multipart.FileHeader{Filename: "cv.PDF", Size: MB}))
	assert.NoError(t, v.Validate(&multipart.FileHeader{Filename: "cv.docx", Size: 2 * MB}))

	err := v.Validate(&multipart.FileHeader{Filename: "cv.pdf", Size: 2*MB + 1})
	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.Contains(t, err.Error(), "2 MB")

	err = v.Validate(&multipart.FileHeader{Filename: "photo.png", Size: KB})
	assert.ErrorIs(t, err, ErrFileTypeInvalid)
	assert.Contains(t, err.Error(), "docx, pdf, txt")

	assert.ErrorIs(t, v.ValidateType("resume"), ErrFileTypeInvalid)
}

func TestResumeValidatorDefaultsSize(t *testing.T) {
	assert.Equal(t, MaxSize5MB, ResumeValidator(0).GetMaxSize())
}

func TestFormatSize(t *testing.T) {
	v := NewFileValidator()
	assert.Equal(t, "512 bytes", v.formatSize(512))
	assert.Equal(t, "2 KB", v.formatSize(2*KB))
	assert.Equal(t, "1.50 GB", v.formatSize(GB+GB/2))
}

func TestNoAllowedTypesAcceptsAnything(t *testing.T) {
	assert.NoError(t, NewFileValidator().ValidateType("anything.bin"))
}
