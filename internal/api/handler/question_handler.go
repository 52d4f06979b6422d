package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/formworks/forms-api/internal/core/domain"
	"github.com/formworks/forms-api/internal/core/ports"
)

// QuestionHandler handles HTTP requests for question operations.
type QuestionHandler struct {
	service ports.QuestionService
}

func NewQuestionHandler(service ports.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

type createQuestionRequest struct {
	FormID  int64  `json:"form_id" validate:"required,gt=0"`
	UserID  int64  `json:"user_id" validate:"required,gt=0"`
	Content string `json:"content" validate:"required"`
}

// updateQuestionRequest requires content: an update without it is rejected
// instead of silently blanking the stored value.
type updateQuestionRequest struct {
	UserID  int64  `json:"user_id" validate:"required,gt=0"`
	Content string `json:"content" validate:"required"`
}

// Create handles POST /v1/questions.
//
// @Summary      Create a question under a form
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        body  body      createQuestionRequest  true  "Question details"
// @Success      201   {object}  domain.Question
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/questions [post]
func (h *QuestionHandler) Create(c echo.Context) error {
	var req createQuestionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	question, err := h.service.Create(c.Request().Context(), ports.CreateQuestionInput{
		FormID:  req.FormID,
		OwnerID: req.UserID,
		Content: req.Content,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusCreated, question)
}

// Update handles PUT /v1/questions/:question_id.
//
// @Summary      Rewrite a question's content
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        question_id  path      int                    true  "Question id"
// @Param        body         body      updateQuestionRequest  true  "New content"
// @Success      200          {object}  domain.Question
// @Failure      400          {object}  errorResponse
// @Failure      404          {object}  errorResponse
// @Failure      500          {object}  errorResponse
// @Router       /v1/questions/{question_id} [put]
func (h *QuestionHandler) Update(c echo.Context) error {
	questionID, err := pathID(c, "question_id")
	if err != nil {
		return err
	}

	var req updateQuestionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	question, err := h.service.Update(c.Request().Context(), ports.UpdateQuestionInput{
		QuestionID: questionID,
		OwnerID:    req.UserID,
		Content:    req.Content,
	})
	if err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "question not found or userId mismatch"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, question)
}

// Delete handles DELETE /v1/questions/:question_id.
//
// @Summary      Delete a question
// @Tags         questions
// @Accept       json
// @Param        question_id  path  int  true  "Question id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/questions/{question_id} [delete]
func (h *QuestionHandler) Delete(c echo.Context) error {
	questionID, err := pathID(c, "question_id")
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

	if _, err := h.service.Delete(c.Request().Context(), questionID, req.UserID); err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "question not found or userId mismatch"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}

// ListByForm handles GET /v1/forms/:form_id/questions.
//
// @Summary      List a form's questions
// @Tags         questions
// @Produce      json
// @Param        form_id  path      int  true  "Form id"
// @Success      200      {array}   domain.Question
// @Failure      400      {object}  errorResponse
// @Failure      500      {object}  errorResponse
// @Router       /v1/forms/{form_id}/questions [get]
func (h *QuestionHandler) ListByForm(c echo.Context) error {
	formID, err := pathID(c, "form_id")
	if err != nil {
		return err
	}

	questions, err := h.service.ListByForm(c.Request().Context(), formID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, questions)
}
