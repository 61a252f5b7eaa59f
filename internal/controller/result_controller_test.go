package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quiz_builder_backend/internal/model"
	"quiz_builder_backend/internal/repository"
	"quiz_builder_backend/internal/service"
	"quiz_builder_backend/internal/util"
	"quiz_builder_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newResultTestRouter(t *testing.T) (*gin.Engine, *service.QuizService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.Quiz{}, &model.Question{}, &model.Result{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	quizSvc := service.NewQuizService(repository.NewQuizRepository(db), nil, 0)
	resultSvc := service.NewResultService(repository.NewResultRepository(db), quizSvc)
	ctrl := NewResultController(resultSvc)

	router := gin.New()
	router.POST("/api/quizzes/:id/submit", ctrl.Submit)
	router.GET("/api/quizzes/:id/results", ctrl.ListByQuiz)
	return router, quizSvc
}

func TestSubmitUnknownQuizReturns404(t *testing.T) {
	router, _ := newResultTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/quizzes/no-such-quiz/submit",
		strings.NewReader(`{"answers": {"q1": "true"}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var resp util.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if resp.Code != http.StatusNotFound {
		t.Errorf("error body = %+v", resp)
	}
}

func TestListResultsUnknownQuizReturns404(t *testing.T) {
	router, _ := newResultTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/quizzes/no-such-quiz/results", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestSubmitKnownQuizThroughHTTP(t *testing.T) {
	router, quizSvc := newResultTestRouter(t)

	questions := []service.QuestionRequest{
		{Type: model.QuestionBoolean, Text: "Q", Correct: []string{"false"}},
	}
	quiz, err := quizSvc.CreateQuiz(service.QuizRequest{Title: "HTTP", Questions: &questions})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	qid := quiz.Questions[0].ID

	req := httptest.NewRequest(http.MethodPost, "/api/quizzes/"+quiz.ID+"/submit",
		strings.NewReader(`{"answers": {"`+qid+`": "false"}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data service.SubmitResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Total != 1 || resp.Data.CorrectCount != 1 || resp.Data.Percent != 100 {
		t.Errorf("graded response = %+v", resp.Data)
	}
}
