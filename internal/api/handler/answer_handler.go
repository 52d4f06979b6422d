package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/formworks/forms-api/internal/core/domain"
	"github.com/formworks/forms-api/internal/core/ports"
)

// AnswerHandler handles HTTP requests for answer operations.
type AnswerHandler struct {
	service ports.AnswerService
}

func NewAnswerHandler(service ports.AnswerService) *AnswerHandler {
	return &AnswerHandler{service: service}
}

type createAnswerRequest struct {
	UserID  int64  `json:"user_id" validate:"required,gt=0"`
	Content string `json:"content" validate:"required"`
}

type updateAnswerRequest struct {
	UserID  int64  `json:"user_id" validate:"required,gt=0"`
	Content string `json:"content" validate:"required"`
}

// Create handles POST /v1/questions/:question_id/answers.
//
// @Summary      Create an answer under a question
// @Tags         answers
// @Accept       json
// @Produce      json
// @Param        question_id  path      int                  true  "Question id"
// @Param        body         body      createAnswerRequest  true  "Answer details"
// @Success      201          {object}  domain.Answer
// @Failure      400          {object}  errorResponse
// @Failure      500          {object}  errorResponse
// @Router       /v1/questions/{question_id}/answers [post]
func (h *AnswerHandler) Create(c echo.Context) error {
	questionID, err := pathID(c, "question_id")
	if err != nil {
		return err
	}

	var req createAnswerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	answer, err := h.service.Create(c.Request().Context(), ports.CreateAnswerInput{
		QuestionID: questionID,
		OwnerID:    req.UserID,
		Content:    req.Content,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusCreated, answer)
}

// Update handles PUT /v1/answers/:answer_id.
//
// @Summary      Rewrite an answer's content
// @Tags         answers
// @Accept       json
// @Produce      json
// @Param        answer_id  path      int                  true  "Answer id"
// @Param        body       body      updateAnswerRequest  true  "New content"
// @Success      200        {object}  domain.Answer
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Failure      500        {object}  errorResponse
// @Router       /v1/answers/{answer_id} [put]
func (h *AnswerHandler) Update(c echo.Context) error {
	answerID, err := pathID(c, "answer_id")
	if err != nil {
		return err
	}

	var req updateAnswerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	answer, err := h.service.Update(c.Request().Context(), ports.UpdateAnswerInput{
		AnswerID: answerID,
		OwnerID:  req.UserID,
		Content:  req.Content,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAnswerNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "answer not found or userId mismatch"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, answer)
}

// Delete handles DELETE /v1/answers/:answer_id.
//
// @Summary      Delete an answer
// @Tags         answers
// @Accept       json
// @Param        answer_id  path  int  true  "Answer id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/answers/{answer_id} [delete]
func (h *AnswerHandler) Delete(c echo.Context) error {
	answerID, err := pathID(c, "answer_id")
	if err != nil {
		return err
	}

	var req ownerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if _, err := h.service.Delete(c.Request().Context(), answerID, req.UserID); err != nil {
		if errors.Is(err, domain.ErrAnswerNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "answer not found or userId mismatch"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}

// ListByQuestion handles GET /v1/questions/:question_id/answers.
//
// @Summary      List a question's answers
// @Tags         answers
// @Produce      json
// @Param        question_id  path      int  true  "Question id"
// @Success      200          {array}   domain.Answer
// @Failure      400          {object}  errorResponse
// @Failure      500          {object}  errorResponse
// @Router       /v1/questions/{question_id}/answers [get]
func (h *AnswerHandler) ListByQuestion(c echo.Context) error {
	questionID, err := pathID(c, "question_id")
	if err != nil {
		return err
	}

	answers, err := h.service.ListByQuestion(c.Request().Context(), questionID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, answers)
}

// ListByUser handles GET /v1/users/:user_id/answers.
//
// @Summary      List a user's answers across all questions
// @Tags         answers
// @Produce      json
// @Param        user_id  path      int  true  "User id"
// @Success      200      {array}   domain.Answer
// @Failure      400      {object}  errorResponse
// @Failure      500      {object}  errorResponse
// @Router       /v1/users/{user_id}/answers [get]
func (h *AnswerHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	answers, err := h.service.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, answers)
}
