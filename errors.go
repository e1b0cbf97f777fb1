package easybook

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyContent = errors.New("markdown content cannot be empty")

	// Configuration errors.
	ErrInvalidAssetPath   = errors.New("invalid asset path")
	ErrInvalidLabelFormat = errors.New("invalid label format")
	ErrInvalidTemplateSet = errors.New("invalid template set")
)
