package model

import (
	"errors"
	"fmt"
)

// Код ошибки валидации ставки.
type ErrorCode string

const (
	CodeMissingField ErrorCode = "missing_field"
	CodeInvalidEnum  ErrorCode = "invalid_enum"
	CodeOutOfRange   ErrorCode = "out_of_range"
	CodeInvalidBet   ErrorCode = "invalid_bet"
)

// ValidationError — отказ до любого обращения к генератору случайности.
type ValidationError struct {
	Code  ErrorCode
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func NewMissingField(field string) *ValidationError {
	return &ValidationError{Code: CodeMissingField, Field: field, Msg: "required field is missing"}
}

func NewInvalidEnum(field string, value any) *ValidationError {
	return &ValidationError{Code: CodeInvalidEnum, Field: field, Msg: fmt.Sprintf("unknown value %q", value)}
}

func NewOutOfRange(field, msg string) *ValidationError {
	return &ValidationError{Code: CodeOutOfRange, Field: field, Msg: msg}
}

func NewInvalidBet(field, msg string) *ValidationError {
	return &ValidationError{Code: CodeInvalidBet, Field: field, Msg: msg}
}

var ErrRoundNotFound = errors.New("round not found")
