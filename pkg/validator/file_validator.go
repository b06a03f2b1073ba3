package validator

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"sort"
	"strings"
)

const (
	KB int64 = 1024
	MB int64 = 1024 * KB
	GB int64 = 1024 * MB
)

const (
	MaxSize1MB  int64 = 1 * MB
	MaxSize5MB  int64 = 5 * MB
	MaxSize10MB int64 = 10 * MB
)

var (
	ErrFileTooLarge    = errors.New("file too large")
	ErrFileTypeInvalid = errors.New("file type not allowed")
)

type FileValidator struct {
	maxSize      int64
	allowedTypes map[string]bool
}

type FileValidatorOption func(*FileValidator)

func NewFileValidator(opts ...FileValidatorOption) *FileValidator {
	v := &FileValidator{
		maxSize:      MaxSize5MB,
		allowedTypes: make(map[string]bool),
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

func WithMaxSize(size int64) FileValidatorOption {
	return func(v *FileValidator) {
		v.maxSize = size
	}
}

func WithAllowedTypes(types []string) FileValidatorOption {
	return func(v *FileValidator) {
		v.allowedTypes = make(map[string]bool)
		for _, t := range types {
			ext := strings.ToLower(t)
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			v.allowedTypes[ext] = true
		}
	}
}

// WithResumeTypes accepts the formats the document reader can extract text from.
func WithResumeTypes() FileValidatorOption {
	return WithAllowedTypes([]string{".pdf", ".docx", ".txt"})
}

// Validate checks size and extension. Returned errors wrap ErrFileTooLarge or
// ErrFileTypeInvalid.
func (v *FileValidator) Validate(file *multipart.FileHeader) error {
	if err := v.ValidateSize(file.Size); err != nil {
		return err
	}

	if err := v.ValidateType(file.Filename); err != nil {
		return err
	}

	return nil
}

func (v *FileValidator) ValidateSize(size int64) error {
	if size > v.maxSize {
		return fmt.Errorf("%w: maximum size is %s", ErrFileTooLarge, v.formatSize(v.maxSize))
	}
	return nil
}

func (v *FileValidator) ValidateType(fileName string) error {
	if len(v.allowedTypes) == 0 {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if !v.allowedTypes[ext] {
		if ext == "" {
			ext = "(none)"
		}
		return fmt.Errorf("%w: %s, allowed types: %s", ErrFileTypeInvalid, ext, v.getAllowedTypesString())
	}
	return nil
}

func (v *FileValidator) GetMaxSize() int64 {
	return v.maxSize
}

func (v *FileValidator) GetAllowedTypes() []string {
	types := make([]string, 0, len(v.allowedTypes))
	for t := range v.allowedTypes {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func (v *FileValidator) formatSize(size int64) string {
	if size >= GB {
		return fmt.Sprintf("%.2f GB", float64(size)/float64(GB))
	}
	if size >= MB {
		return fmt.Sprintf("%.0f MB", float64(size)/float64(MB))
	}
	if size >= KB {
		return fmt.Sprintf("%.0f KB", float64(size)/float64(KB))
	}
	return fmt.Sprintf("%d bytes", size)
}

func (v *FileValidator) getAllowedTypesString() string {
	types := v.GetAllowedTypes()
	for i, t := range types {
		types[i] = strings.TrimPrefix(t, ".")
	}
	return strings.Join(types, ", ")
}

// ResumeValidator accepts PDF, DOCX and plain text uploads up to maxMB megabytes.
func ResumeValidator(maxMB int) *FileValidator {
	size := int64(maxMB) * MB
	if size <= 0 {
		size = MaxSize5MB
	}
	return NewFileValidator(
		WithMaxSize(size),
		WithResumeTypes(),
	)
}
