package ocr

import (
	"context"
	"errors"
)

var (
	ErrInvalidRequest = errors.New("invalid ocr request")
	// ErrEmptyResponse is returned when the model answered without any
	// predictions. Not worth retrying, the model is misbehaving.
	ErrEmptyResponse = errors.New("no predictions returned from model")
	// ErrUnsupportedResponseShape means the first prediction was neither a
	// struct with a string 'text' field nor a bare string.
	ErrUnsupportedResponseShape = errors.New("unexpected prediction format from model")
	ErrTransport                = errors.New("failed to reach prediction endpoint")
	ErrFilesystem               = errors.New("failed to persist ocr result")
)

type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInvalidRequest
	KindEmptyResponse
	KindUnsupportedResponseShape
	KindTransport
	KindCancelled
	KindFilesystem
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid-request"
	case KindEmptyResponse:
		return "empty-response"
	case KindUnsupportedResponseShape:
		return "unsupported-response-shape"
	case KindTransport:
		return "transport"
	case KindCancelled:
		return "cancelled"
	case KindFilesystem:
		return "filesystem"
	default:
		return "unknown"
	}
}

// Classify the error returned by RequestOCR. A transport error caused by the
// context being cancelled or timing out is reported as KindCancelled.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrInvalidRequest):
		return KindInvalidRequest
	case errors.Is(err, ErrEmptyResponse):
		return KindEmptyResponse
	case errors.Is(err, ErrUnsupportedResponseShape):
		return KindUnsupportedResponseShape
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCancelled
	case errors.Is(err, ErrTransport):
		return KindTransport
	case errors.Is(err, ErrFilesystem):
		return KindFilesystem
	default:
		return KindUnknown
	}
}
