package controller

import (
	"errors"

	"quiz_builder_backend/internal/service"
	"quiz_builder_backend/internal/util"
	"quiz_builder_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type ResultController struct {
	Service *service.ResultService
}

func NewResultController(svc *service.ResultService) *ResultController {
	return &ResultController{Service: svc}
}

// @Summary 提交答卷
// @Description 评分并保存结果，返回评分摘要。缺失/多余的答案键不报错。
// @Tags 结果
// @Accept json
// @Produce json
// @Param id path string true "测验ID"
// @Param body body service.SubmitRequest true "答案，按题目ID索引"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quizzes/{id}/submit [post]
func (c *ResultController) Submit(ctx *gin.Context) {
	var req service.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid request body")
		return
	}

	resp, err := c.Service.Submit(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	monitoring.SubmissionCounter.WithLabelValues(resp.QuizID).Inc()
	util.Success(ctx, resp)
}

// @Summary 获取单个测验的结果列表
// @Tags 结果
// @Produce json
// @Param id path string true "测验ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quizzes/{id}/results [get]
func (c *ResultController) ListByQuiz(ctx *gin.Context) {
	results, err := c.Service.ListByQuiz(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// @Summary 获取全部结果
// @Description 带测验标题的全量结果列表，按提交时间倒序
// @Tags 结果
// @Produce json
// @Success 200 {object} util.Response
// @Router /results [get]
func (c *ResultController) ListAll(ctx *gin.Context) {
	results, err := c.Service.ListAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}
