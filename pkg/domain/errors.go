package domain

import "errors"

// ErrPageNotFound is returned when a URL has no entry in the page store.
var ErrPageNotFound = errors.New("page not found")

// ErrContainerMissing is returned when a designated container cannot be
// found, either in the fetched document or in the live one. The content
// swap is all-or-nothing: no partial swap is ever applied.
var ErrContainerMissing = errors.New("container not found")

// ErrMissingCollaborator is returned by the engine constructor when a
// required collaborator (fetcher, history, document) was not provided.
var ErrMissingCollaborator = errors.New("missing collaborator")
