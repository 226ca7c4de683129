package domain

import "errors"

var (
	MessageMissingImageFile  = "이미지 파일이 필요합니다."
	MessageFailedBodyRequest = "요청 형식이 올바르지 않습니다."

	ErrMissingImageFile   = errors.New("image file is required")
	ErrInvalidImageFormat = errors.New("invalid image format")
	ErrParseUUID          = errors.New("failed to parse UUID")
)
