package util

import "errors"

var (
	ErrQuizNotFound        = errors.New("quiz not found")
	ErrTitleRequired       = errors.New("title and questions array are required")
	ErrInvalidQuestionType = errors.New("unknown question type")
)
