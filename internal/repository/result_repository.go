package repository

import (
	"quiz_builder_backend/internal/model"

	"gorm.io/gorm"
)

type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

// Create 结果只追加，创建后不再修改
func (r *ResultRepository) Create(result *model.Result) error {
	return r.DB.Create(result).Error
}

func (r *ResultRepository) ListByQuiz(quizID string) ([]model.Result, error) {
	var results []model.Result
	err := r.DB.Where("quiz_id = ?", quizID).
		Order("created_at desc").
		Find(&results).Error
	if results == nil {
		results = []model.Result{}
	}
	return results, err
}

// ListAllWithQuiz 带测验标题的全量结果列表
func (r *ResultRepository) ListAllWithQuiz() ([]model.ResultWithQuiz, error) {
	var results []model.ResultWithQuiz
	err := r.DB.Model(&model.Result{}).
		Select("results.id, results.quiz_id, quizzes.title as quiz_title, results.total, results.correct_count, results.percent, results.created_at").
		Joins("left join quizzes on quizzes.id = results.quiz_id").
		Order("results.created_at desc").
		Scan(&results).Error
	if results == nil {
		results = []model.ResultWithQuiz{}
	}
	return results, err
}
