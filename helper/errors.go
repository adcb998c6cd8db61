package helper

import "errors"

// ValidationError lỗi thiếu/sai dữ liệu, kiểm tra trước khi xử lý nên không có side effect
type ValidationError struct {
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Key + ": " + e.Message
}

func newValidationError(key, message string) *ValidationError {
	return &ValidationError{Key: key, Message: message}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
