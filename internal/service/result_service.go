package service

import (
	"context"
	"encoding/json"

	"quiz_builder_backend/internal/model"
	"quiz_builder_backend/internal/repository"
)

type ResultService struct {
	Repo        *repository.ResultRepository
	QuizService *QuizService
}

func NewResultService(repo *repository.ResultRepository, quizService *QuizService) *ResultService {
	return &ResultService{Repo: repo, QuizService: quizService}
}

type SubmitRequest struct {
	Answers map[string]AnswerValue `json:"answers"`
}

// SubmitResponse 提交后返回的评分摘要
type SubmitResponse struct {
	ID           string  `json:"id"`
	QuizID       string  `json:"quizId"`
	Total        int     `json:"total"`
	CorrectCount int     `json:"correctCount"`
	Percent      float64 `json:"percent"`
}

// Submit 加载测验、评分并落库。测验不存在返回 ErrQuizNotFound。
func (s *ResultService) Submit(ctx context.Context, quizID string, req SubmitRequest) (*SubmitResponse, error) {
	quiz, err := s.QuizService.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	outcome := Grade(quiz.Questions, req.Answers)

	answers, err := json.Marshal(outcome.Records)
	if err != nil {
		return nil, err
	}

	result := &model.Result{
		QuizID:       quizID,
		Total:        outcome.Total,
		CorrectCount: outcome.CorrectCount,
		Percent:      outcome.Percent,
		Answers:      answers,
	}
	if err := s.Repo.Create(result); err != nil {
		return nil, err
	}

	return &SubmitResponse{
		ID:           result.ID,
		QuizID:       quizID,
		Total:        outcome.Total,
		CorrectCount: outcome.CorrectCount,
		Percent:      outcome.Percent,
	}, nil
}

// ListByQuiz 先确认测验存在，再列出其结果
func (s *ResultService) ListByQuiz(ctx context.Context, quizID string) ([]model.Result, error) {
	if _, err := s.QuizService.GetQuiz(ctx, quizID); err != nil {
		return nil, err
	}
	return s.Repo.ListByQuiz(quizID)
}

func (s *ResultService) ListAll() ([]model.ResultWithQuiz, error) {
	return s.Repo.ListAllWithQuiz()
}
