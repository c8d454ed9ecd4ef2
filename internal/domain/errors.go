package domain

import "fmt"

// ModelErrorKind categorizes structural validation failures.
type ModelErrorKind string

const (
	InvalidRoot     ModelErrorKind = "invalid_root"
	OrphanListItem  ModelErrorKind = "orphan_list_item"
	BadHeadingLevel ModelErrorKind = "bad_heading_level"
)

// ModelError reports a structural defect found by Validate. Path locates the
// offending node within the document tree (e.g. "blocks[2].children[0]").
type ModelError struct {
	Kind   ModelErrorKind
	Path   string
	Detail string
}

func (e *ModelError) Error() string {
	s := fmt.Sprintf("[%s]", e.Kind)
	if e.Path != "" {
		s += fmt.Sprintf(" %s", e.Path)
	}
	s += fmt.Sprintf(": %s", e.Detail)
	return s
}

// SyncError is the error type used outside the pure conversion core: config
// loading, file discovery, codec decoding and the file pipeline.
type SyncError struct {
	Phase   string // "config", "scan", "decode", "convert", "write"
	File    string
	Message string
	Cause   error
}

func (e *SyncError) Error() string {
	s := fmt.Sprintf("[%s]", e.Phase)
	if e.File != "" {
		s += fmt.Sprintf(" %s", e.File)
	}
	s += fmt.Sprintf(": %s", e.Message)
	if e.Cause != nil {
		s += fmt.Sprintf(": %v", e.Cause)
	}
	return s
}

func (e *SyncError) Unwrap() error {
	return e.Cause
}

// NewSyncError creates a new SyncError.
func NewSyncError(phase, file, message string, cause error) *SyncError {
	return &SyncError{Phase: phase, File: file, Message: message, Cause: cause}
}
