package notify

import "errors"

// ErrMissingParameter when a declared parameter is not supplied
var ErrMissingParameter = errors.New("missing parameter")

// ErrUnknownParameter when a supplied parameter is not declared by the template
var ErrUnknownParameter = errors.New("unknown parameter")

// ErrUnsupportedChannel when no channel is registered for the channel id
var ErrUnsupportedChannel = errors.New("unsupported channel")

// ErrInvalidTemplate when a template breaks its invariants
var ErrInvalidTemplate = errors.New("invalid template")

// ErrTemplateNotFound ...
var ErrTemplateNotFound = errors.New("template not found")
