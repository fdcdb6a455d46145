package usecase

import (
	"errors"
	"fmt"
)

// セッションが無い・壊れている
var ErrUnauthorized = errors.New("unauthorized")

// 入力不正。ストアに触る前に返す。
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// 永続化への書き込み失敗。原因はそのまま持ち回る。
type StoreWriteError struct {
	Op    string
	Cause error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("store write failed: %s: %v", e.Op, e.Cause)
}

func (e *StoreWriteError) Unwrap() error {
	return e.Cause
}

func NewStoreWriteError(op string, cause error) error {
	return &StoreWriteError{Op: op, Cause: cause}
}

func AsStoreWriteError(err error) (*StoreWriteError, bool) {
	var se *StoreWriteError
	ok := errors.As(err, &se)
	return se, ok
}
