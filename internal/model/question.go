package model

// 题目类型标签。选项列表只对 CHECKBOX 有意义。
const (
	QuestionBoolean  = "BOOLEAN"
	QuestionInput    = "INPUT"
	QuestionCheckbox = "CHECKBOX"
)

// swagger:model Question
type Question struct {
	UUIDBase
	QuizID  string     `gorm:"index;type:varchar(36);not null" json:"quizId"`
	Type    string     `gorm:"size:20;not null" json:"type"`
	Text    string     `gorm:"type:text;not null" json:"text"`
	Options StringList `gorm:"type:json" json:"options"`
	Correct StringList `gorm:"type:json" json:"correct"`
	Order   int        `gorm:"not null;default:0" json:"order"` // 1..N，同一测验内连续且唯一
}

func (Question) TableName() string {
	return "questions"
}

func ValidQuestionType(t string) bool {
	switch t {
	case QuestionBoolean, QuestionInput, QuestionCheckbox:
		return true
	}
	return false
}
