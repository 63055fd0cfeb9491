package session

import "errors"

var (
	ErrTooFewPoints = errors.New("session: at least 3 points are required")
	ErrMovableIndex = errors.New("session: movable index out of range")
	ErrNoRenderer   = errors.New("session: renderer is nil")
	ErrNoRecorder   = errors.New("session: recording needs a rasterizer and an exporter")
)
