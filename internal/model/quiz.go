package model

import "time"

// swagger:model Quiz
type Quiz struct {
	UUIDBase
	Title     string     `gorm:"size:255;not null" json:"title"`
	Questions []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// QuizSummary 列表页使用的摘要（不加载题目）
type QuizSummary struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	CreatedAt     time.Time `json:"createdAt"`
	QuestionCount int64     `json:"questionCount"`
}
