package model

import (
	"encoding/json"
	"time"
)

// Result 一次提交的评分记录。QuizID 是弱引用：测验删除时结果级联删除，
// 但结果本身创建后永不修改。
// swagger:model Result
type Result struct {
	UUIDBase
	QuizID       string          `gorm:"index;type:varchar(36);not null" json:"quizId"`
	Total        int             `gorm:"not null" json:"total"`
	CorrectCount int             `gorm:"not null" json:"correctCount"`
	Percent      float64         `gorm:"not null" json:"percent"` // 不四舍五入，取整交给前端
	Answers      json.RawMessage `gorm:"type:json" json:"answers"`
}

func (Result) TableName() string {
	return "results"
}

// ResultWithQuiz 全量结果列表里带上测验标题（不含答案明细）
type ResultWithQuiz struct {
	ID           string    `json:"id"`
	QuizID       string    `json:"quizId"`
	QuizTitle    string    `json:"quizTitle"`
	Total        int       `json:"total"`
	CorrectCount int       `json:"correctCount"`
	Percent      float64   `json:"percent"`
	CreatedAt    time.Time `json:"createdAt"`
}
