package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/formworks/forms-api/internal/core/domain"
	"github.com/formworks/forms-api/internal/core/ports"
)

// FormHandler handles HTTP requests for form operations.
type FormHandler struct {
	service ports.FormService
}

func NewFormHandler(service ports.FormService) *FormHandler {
	return &FormHandler{service: service}
}

type createFormRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      int64  `json:"user_id" validate:"required,gt=0"`
}

// updateFormRequest carries a partial update: nil fields are left untouched
// in the stored form.
type updateFormRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	UserID      int64   `json:"user_id" validate:"required,gt=0"`
}

// Create handles POST /v1/forms.
//
// @Summary      Create a new form
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body  body      createFormRequest  true  "Form details"
// @Success      201   {object}  domain.Form
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/forms [post]
func (h *FormHandler) Create(c echo.Context) error {
	var req createFormRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	form, err := h.service.Create(c.Request().Context(), ports.CreateFormInput{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     req.UserID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusCreated, form)
}

// Update handles PUT /v1/forms/:form_id.
//
// @Summary      Partially update a form
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        form_id  path      int                true  "Form id"
// @Param        body     body      updateFormRequest  true  "Fields to change"
// @Success      200      {object}  domain.Form
// @Failure      400      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Failure      500      {object}  errorResponse
// @Router       /v1/forms/{form_id} [put]
func (h *FormHandler) Update(c echo.Context) error {
	formID, err := pathID(c, "form_id")
	if err != nil {
		return err
	}

	var req updateFormRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	form, err := h.service.Update(c.Request().Context(), ports.UpdateFormInput{
		FormID:      formID,
		OwnerID:     req.UserID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyUpdate):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "at least one of title or description is required"})
		case errors.Is(err, domain.ErrFormNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "form not found or userId mismatch"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, form)
}

// Delete handles DELETE /v1/forms/:form_id.
//
// @Summary      Delete a form
// @Tags         forms
// @Accept       json
// @Param        form_id  path  int  true  "Form id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/forms/{form_id} [delete]
func (h *FormHandler) Delete(c echo.Context) error {
	formID, err := pathID(c, "form_id")
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

	if _, err := h.service.Delete(c.Request().Context(), formID, req.UserID); err != nil {
		if errors.Is(err, domain.ErrFormNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "form not found or userId mismatch"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}

// List handles GET /v1/forms.
//
// @Summary      List all forms
// @Tags         forms
// @Produce      json
// @Success      200  {array}   domain.Form
// @Failure      500  {object}  errorResponse
// @Router       /v1/forms [get]
func (h *FormHandler) List(c echo.Context) error {
	forms, err := h.service.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, forms)
}

// ownerRequest is the minimal mutation payload: the caller-supplied owner id.
// It is trusted as supplied; there is no authentication layer.
type ownerRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}
