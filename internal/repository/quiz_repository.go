package repository

import (
	"errors"

	"quiz_builder_backend/internal/model"
	"quiz_builder_backend/internal/util"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

// ListSummaries 按创建时间倒序返回测验摘要（带题目数）
func (r *QuizRepository) ListSummaries() ([]model.QuizSummary, error) {
	var summaries []model.QuizSummary
	err := r.DB.Model(&model.Quiz{}).
		Select("quizzes.id, quizzes.title, quizzes.created_at, count(questions.id) as question_count").
		Joins("left join questions on questions.quiz_id = quizzes.id and questions.deleted_at is null").
		Group("quizzes.id, quizzes.title, quizzes.created_at").
		Order("quizzes.created_at desc").
		Scan(&summaries).Error
	if summaries == nil {
		summaries = []model.QuizSummary{}
	}
	return summaries, err
}

// FindByID 返回测验及按 order 升序排列的题目
func (r *QuizRepository) FindByID(id string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.`order` asc")
	}).First(&quiz, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// Create 在一个事务里创建测验及其题目
func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(quiz).Error
	})
}

// ReplaceQuestions 全量替换：删除旧题目后按新列表重建，并更新标题。
// 题目拿到全新的ID，order 由调用方压缩为 1..N。
func (r *QuizRepository) ReplaceQuestions(id string, title string, questions []model.Question) (*model.Quiz, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var quiz model.Quiz
		if err := tx.First(&quiz, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrQuizNotFound
			}
			return err
		}

		if err := tx.Unscoped().Where("quiz_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&quiz).Update("title", title).Error; err != nil {
			return err
		}

		for i := range questions {
			questions[i].QuizID = id
		}
		if len(questions) > 0 {
			if err := tx.Create(&questions).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// Delete 删除测验并级联删除其题目和结果
func (r *QuizRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var quiz model.Quiz
		if err := tx.First(&quiz, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrQuizNotFound
			}
			return err
		}

		if err := tx.Where("quiz_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&model.Result{}).Error; err != nil {
			return err
		}
		return tx.Delete(&quiz).Error
	})
}
