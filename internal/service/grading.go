package service

import (
	"encoding/json"
	"strconv"
	"strings"

	"quiz_builder_backend/internal/model"
)

// AnswerValue 提交答案的归一化形式。JSON 边界上接受单个字符串、
// 字符串数组或其它标量，统一收敛为字符串序列，解析永不报错。
type AnswerValue struct {
	Values []string
}

func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.Values = []string{s}
		return nil
	}

	var arr []interface{}
	if err := json.Unmarshal(data, &arr); err == nil {
		values := make([]string, 0, len(arr))
		for _, v := range arr {
			values = append(values, coerceString(v))
		}
		a.Values = values
		return nil
	}

	var v interface{}
	if err := json.Unmarshal(data, &v); err == nil && v != nil {
		a.Values = []string{coerceString(v)}
		return nil
	}

	// null 或解析不了的内容按未作答处理
	a.Values = nil
	return nil
}

func (a AnswerValue) MarshalJSON() ([]byte, error) {
	if a.Values == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a.Values)
}

func coerceString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}

// AnswerRecord 持久化用的单题作答记录（保留原始提交值，不做trim）
type AnswerRecord struct {
	QuestionID string   `json:"questionId"`
	Submitted  []string `json:"submitted"`
}

// GradeOutcome 一次评分的完整产出
type GradeOutcome struct {
	Total        int
	CorrectCount int
	Percent      float64
	Records      []AnswerRecord
}

// Grade 对一组题目和按题目ID索引的答案评分。纯函数：缺失的答案按
// 未作答计，多余的键忽略，任何输入形状都不会失败。
func Grade(questions []model.Question, answers map[string]AnswerValue) GradeOutcome {
	outcome := GradeOutcome{
		Total:   len(questions),
		Records: make([]AnswerRecord, 0, len(questions)),
	}

	for _, q := range questions {
		submitted := answers[q.ID].Values
		if answerCorrect(q, submitted) {
			outcome.CorrectCount++
		}
		if submitted == nil {
			submitted = []string{}
		}
		outcome.Records = append(outcome.Records, AnswerRecord{
			QuestionID: q.ID,
			Submitted:  submitted,
		})
	}

	if outcome.Total > 0 {
		outcome.Percent = float64(outcome.CorrectCount) / float64(outcome.Total) * 100
	}
	return outcome
}

// answerCorrect 按题型判分。比较前统一 trim，不做大小写折叠。
func answerCorrect(q model.Question, submitted []string) bool {
	sub := trimAll(submitted)
	correct := trimAll(q.Correct)

	if q.Type == model.QuestionCheckbox {
		// 集合相等：顺序无关，重复值折叠，空集等于空集
		return setsEqual(sub, correct)
	}

	// BOOLEAN / INPUT：只看第一个元素，缺失按空串
	return firstOrEmpty(sub) == firstOrEmpty(correct)
}

func trimAll(values []string) []string {
	trimmed := make([]string, len(values))
	for i, v := range values {
		trimmed[i] = strings.TrimSpace(v)
	}
	return trimmed
}

func firstOrEmpty(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func setsEqual(a, b []string) bool {
	as := toSet(a)
	bs := toSet(b)
	if len(as) != len(bs) {
		return false
	}
	for v := range as {
		if _, ok := bs[v]; !ok {
			return false
		}
	}
	return true
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
