package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"quiz_builder_backend/internal/model"
	"quiz_builder_backend/internal/repository"
	"quiz_builder_backend/internal/util"
	"quiz_builder_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type QuizService struct {
	Repo     *repository.QuizRepository
	Redis    *redis.Client
	CacheTTL time.Duration
}

func NewQuizService(repo *repository.QuizRepository, rdb *redis.Client, cacheTTL time.Duration) *QuizService {
	return &QuizService{Repo: repo, Redis: rdb, CacheTTL: cacheTTL}
}

type QuestionRequest struct {
	Type    string   `json:"type"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Correct []string `json:"correct"`
}

type QuizRequest struct {
	Title     string             `json:"title"`
	Questions *[]QuestionRequest `json:"questions"`
}

// Validate 创建/替换共用的载荷校验：标题必填，questions 必须是数组
func (r *QuizRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" || r.Questions == nil {
		return util.ErrTitleRequired
	}
	for _, q := range *r.Questions {
		if !model.ValidQuestionType(q.Type) {
			return util.ErrInvalidQuestionType
		}
	}
	return nil
}

// normalizeQuestions 按题型归一化正确答案并压缩 order 为 1..N。
// 创建和全量替换走同一条路径，保证评分引擎的不变量在查询时成立。
func normalizeQuestions(reqs []QuestionRequest) []model.Question {
	questions := make([]model.Question, 0, len(reqs))
	for i, req := range reqs {
		q := model.Question{
			Type:    req.Type,
			Text:    req.Text,
			Options: model.StringList{},
			Correct: model.StringList{},
			Order:   i + 1,
		}

		switch req.Type {
		case model.QuestionBoolean:
			// 单元素，默认 "true"
			if len(req.Correct) > 0 {
				q.Correct = model.StringList{req.Correct[0]}
			} else {
				q.Correct = model.StringList{"true"}
			}
		case model.QuestionInput:
			// 单元素，未提供时为空串（合法但永远答不对非空提交）
			if len(req.Correct) > 0 {
				q.Correct = model.StringList{req.Correct[0]}
			} else {
				q.Correct = model.StringList{""}
			}
		case model.QuestionCheckbox:
			// 只保留出现在选项列表里的正确答案
			if req.Options != nil {
				q.Options = model.StringList(req.Options)
			}
			allowed := make(map[string]struct{}, len(req.Options))
			for _, opt := range req.Options {
				allowed[opt] = struct{}{}
			}
			for _, c := range req.Correct {
				if _, ok := allowed[c]; ok {
					q.Correct = append(q.Correct, c)
				}
			}
		}

		questions = append(questions, q)
	}
	return questions
}

func (s *QuizService) ListQuizzes() ([]model.QuizSummary, error) {
	return s.Repo.ListSummaries()
}

func (s *QuizService) GetQuiz(ctx context.Context, id string) (*model.Quiz, error) {
	cacheKey := quizCacheKey(id)
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var quiz model.Quiz
			if err := json.Unmarshal([]byte(val), &quiz); err == nil {
				return &quiz, nil
			}
		}
	}

	quiz, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(quiz); err == nil {
			if err := s.Redis.Set(ctx, cacheKey, data, s.CacheTTL).Err(); err != nil {
				logger.Log.Warn("Failed to cache quiz", zap.String("quizId", id), zap.Error(err))
			}
		}
	}
	return quiz, nil
}

func (s *QuizService) CreateQuiz(req QuizRequest) (*model.Quiz, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	quiz := &model.Quiz{
		Title:     req.Title,
		Questions: normalizeQuestions(*req.Questions),
	}
	if err := s.Repo.Create(quiz); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(quiz.ID)
}

func (s *QuizService) ReplaceQuiz(ctx context.Context, id string, req QuizRequest) (*model.Quiz, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	quiz, err := s.Repo.ReplaceQuestions(id, req.Title, normalizeQuestions(*req.Questions))
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return quiz, nil
}

func (s *QuizService) DeleteQuiz(ctx context.Context, id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *QuizService) invalidate(ctx context.Context, id string) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, quizCacheKey(id)).Err(); err != nil {
		logger.Log.Warn("Failed to invalidate quiz cache", zap.String("quizId", id), zap.Error(err))
	}
}

func quizCacheKey(id string) string {
	return "quiz:detail:" + id
}
