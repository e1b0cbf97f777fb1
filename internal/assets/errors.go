package assets

import "errors"

// Sentinel errors for template set loading.
var (
	ErrTemplateSetNotFound   = errors.New("template set not found")
	ErrIncompleteTemplateSet = errors.New("template set missing required template")
	ErrInvalidSetName        = errors.New("invalid template set name")
	ErrInvalidBasePath       = errors.New("invalid base path")
	ErrAssetRead             = errors.New("failed to read asset")

	// ErrPathTraversal indicates a set directory that resolves outside its
	// source, usually through a symlink.
	ErrPathTraversal = errors.New("path traversal detected")
)
