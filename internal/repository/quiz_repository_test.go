package repository

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"quiz_builder_backend/internal/model"
	"quiz_builder_backend/internal/util"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.Quiz{}, &model.Question{}, &model.Result{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedQuiz(t *testing.T, repo *QuizRepository, title string, questions ...model.Question) *model.Quiz {
	t.Helper()
	quiz := &model.Quiz{Title: title, Questions: questions}
	if err := repo.Create(quiz); err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	return quiz
}

func TestFindByIDOrdersQuestions(t *testing.T) {
	repo := NewQuizRepository(newTestDB(t))

	quiz := seedQuiz(t, repo, "Ordering",
		model.Question{Type: model.QuestionInput, Text: "third", Correct: model.StringList{"c"}, Order: 3},
		model.Question{Type: model.QuestionInput, Text: "first", Correct: model.StringList{"a"}, Order: 1},
		model.Question{Type: model.QuestionInput, Text: "second", Correct: model.StringList{"b"}, Order: 2},
	)

	got, err := repo.FindByID(quiz.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	for i, q := range got.Questions {
		if q.Order != i+1 {
			t.Errorf("question %d order = %d, want %d", i, q.Order, i+1)
		}
	}
	if got.Questions[0].Text != "first" || got.Questions[2].Text != "third" {
		t.Errorf("questions not sorted by order: %q, %q", got.Questions[0].Text, got.Questions[2].Text)
	}
}

func TestFindByIDNotFound(t *testing.T) {
	repo := NewQuizRepository(newTestDB(t))

	if _, err := repo.FindByID("missing"); !errors.Is(err, util.ErrQuizNotFound) {
		t.Fatalf("err = %v, want ErrQuizNotFound", err)
	}
}

func TestReplaceQuestionsDiscardsOldRows(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuizRepository(db)

	quiz := seedQuiz(t, repo, "Before",
		model.Question{Type: model.QuestionBoolean, Text: "old a", Correct: model.StringList{"true"}, Order: 1},
		model.Question{Type: model.QuestionBoolean, Text: "old b", Correct: model.StringList{"true"}, Order: 2},
	)

	oldIDs := make(map[string]bool)
	for _, q := range quiz.Questions {
		oldIDs[q.ID] = true
	}

	replaced, err := repo.ReplaceQuestions(quiz.ID, "After",
		[]model.Question{
			{Type: model.QuestionInput, Text: "new a", Correct: model.StringList{"x"}, Order: 1},
			{Type: model.QuestionInput, Text: "new b", Correct: model.StringList{"y"}, Order: 2},
			{Type: model.QuestionInput, Text: "new c", Correct: model.StringList{"z"}, Order: 3},
		})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}

	if replaced.Title != "After" {
		t.Errorf("title = %q, want %q", replaced.Title, "After")
	}
	if len(replaced.Questions) != 3 {
		t.Fatalf("question count = %d, want 3", len(replaced.Questions))
	}
	for i, q := range replaced.Questions {
		if oldIDs[q.ID] {
			t.Errorf("question %d reused old id %s", i, q.ID)
		}
		if q.Order != i+1 {
			t.Errorf("question %d order = %d, want %d", i, q.Order, i+1)
		}
	}

	// 旧行物理删除，软删除也查不到
	var count int64
	db.Unscoped().Model(&model.Question{}).Where("text like ?", "old %").Count(&count)
	if count != 0 {
		t.Errorf("old question rows remain: %d", count)
	}
}

func TestReplaceQuestionsUnknownQuiz(t *testing.T) {
	repo := NewQuizRepository(newTestDB(t))

	_, err := repo.ReplaceQuestions("missing", "t", nil)
	if !errors.Is(err, util.ErrQuizNotFound) {
		t.Fatalf("err = %v, want ErrQuizNotFound", err)
	}
}

func TestDeleteCascadesResults(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuizRepository(db)
	results := NewResultRepository(db)

	quiz := seedQuiz(t, repo, "Doomed",
		model.Question{Type: model.QuestionBoolean, Text: "q", Correct: model.StringList{"true"}, Order: 1},
	)
	if err := results.Create(&model.Result{
		QuizID:  quiz.ID,
		Total:   1,
		Answers: json.RawMessage(`[]`),
	}); err != nil {
		t.Fatalf("create result: %v", err)
	}

	if err := repo.Delete(quiz.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := repo.FindByID(quiz.ID); !errors.Is(err, util.ErrQuizNotFound) {
		t.Fatalf("quiz still findable after delete, err = %v", err)
	}
	remaining, err := results.ListByQuiz(quiz.ID)
	if err != nil {
		t.Fatalf("list results: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("results not cascaded: %d remain", len(remaining))
	}
}

func TestDeleteUnknownQuiz(t *testing.T) {
	repo := NewQuizRepository(newTestDB(t))

	if err := repo.Delete("missing"); !errors.Is(err, util.ErrQuizNotFound) {
		t.Fatalf("err = %v, want ErrQuizNotFound", err)
	}
}

func TestListSummariesCountsAndOrders(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuizRepository(db)

	older := &model.Quiz{
		UUIDBase: model.UUIDBase{CreatedAt: time.Now().Add(-time.Hour)},
		Title:    "Older",
		Questions: []model.Question{
			{Type: model.QuestionBoolean, Text: "q1", Correct: model.StringList{"true"}, Order: 1},
			{Type: model.QuestionBoolean, Text: "q2", Correct: model.StringList{"true"}, Order: 2},
		},
	}
	if err := repo.Create(older); err != nil {
		t.Fatalf("create: %v", err)
	}
	seedQuiz(t, repo, "Newer")

	summaries, err := repo.ListSummaries()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("summary count = %d, want 2", len(summaries))
	}
	if summaries[0].Title != "Newer" || summaries[1].Title != "Older" {
		t.Errorf("not ordered by createdAt desc: %q, %q", summaries[0].Title, summaries[1].Title)
	}
	if summaries[0].QuestionCount != 0 || summaries[1].QuestionCount != 2 {
		t.Errorf("question counts = %d, %d; want 0, 2", summaries[0].QuestionCount, summaries[1].QuestionCount)
	}
}
