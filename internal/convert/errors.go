package convert

import "errors"

var (
	// ErrWalkFailed indicates filesystem traversal of the target root failed.
	ErrWalkFailed = errors.New("documentation directory walk failed")

	// ErrDestinationExists indicates a classified document would replace another one in its type directory.
	ErrDestinationExists = errors.New("destination document already exists")

	// ErrNotHTML indicates a path handed to the materializer lacks the .html suffix.
	ErrNotHTML = errors.New("not an .html document")

	// ErrIndexTemplate indicates a label or description template failed to render.
	ErrIndexTemplate = errors.New("index template rendering failed")
)
