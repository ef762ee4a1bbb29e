package download

import "errors"

var (
	ErrDownloadsDisabled = errors.New("downloads are disabled for this gallery")
	ErrNoImages          = errors.New("no images to download")
	ErrImageNotFound     = errors.New("image not found in gallery")
)
