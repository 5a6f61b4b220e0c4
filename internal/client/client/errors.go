package client

import "errors"

var (
	ErrUnavailable     = errors.New("server unavailable")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrProtocol means the server broke the download message order or size.
	ErrProtocol = errors.New("protocol violation")
	// ErrUploadRejected carries a failed UploadStatus.
	ErrUploadRejected = errors.New("upload rejected")
)
