package domain

import (
	"errors"
)

var (
	MessageFailedGetImage      = "failed to retrieve image"
	MessageFailedImageNotFound = "image not found"

	ErrImageNotFound = errors.New("image not found")
)
