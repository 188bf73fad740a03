package errors

import "errors"

// ErrEmptyContent marks a document whose content is blank after trimming.
// It is handled by deleting the file and never aborts a run.
var ErrEmptyContent = errors.New("document has no content")

// Target errors

func InvalidTarget(path string, cause error) *ConvertError {
	return Wrap(cause, CategoryTarget, SeverityFatal, "not a valid target directory").
		WithContext("path", path)
}

// Config errors

func ConfigNotFound(path string) *ConvertError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *ConvertError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file could not be parsed").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *ConvertError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Filesystem errors

func FileSystem(operation, path string, cause error) *ConvertError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, operation+" failed").
		WithContext("operation", operation).
		WithContext("path", path)
}

// Internal errors

func InternalError(message string, cause error) *ConvertError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
