package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bugtrack/bugtrack-api/internal/core/domain"
	"github.com/bugtrack/bugtrack-api/internal/core/ports"
)

// BugHandler handles HTTP requests for bug operations.
type BugHandler struct {
	service ports.BugService
}

func NewBugHandler(service ports.BugService) *BugHandler {
	return &BugHandler{service: service}
}

// Create handles POST /v1/bugs.
//
// @Summary      Report a new bug
// @Tags         bugs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBugRequest  true  "Bug details"
// @Success      201   {object}  bugResponse
// @Failure      400   {object}  statusResponse
// @Failure      401   {object}  statusResponse
// @Router       /v1/bugs [post]
func (h *BugHandler) Create(c echo.Context) error {
	var req createBugRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	bug, err := h.service.Create(c.Request().Context(), ports.CreateBugInput{
		Title:       req.Title,
		Description: req.Description,
		ReportedBy:  req.ReportedBy,
		Severity:    req.Severity,
		Actor:       actor,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toBugResponse(bug))
}

// List handles GET /v1/bugs.
//
// @Summary      List all bugs
// @Tags         bugs
// @Produce      json
// @Success      200  {object}  listBugsResponse
// @Router       /v1/bugs [get]
func (h *BugHandler) List(c echo.Context) error {
	bugs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]bugResponse, 0, len(bugs))
	for _, bug := range bugs {
		items = append(items, toBugResponse(bug))
	}
	return c.JSON(http.StatusOK, listBugsResponse{Data: items, Total: len(items)})
}

// Get handles GET /v1/bugs/:id.
//
// @Summary      Get a bug by id
// @Tags         bugs
// @Produce      json
// @Param        id   path      string  true  "Bug id"
// @Success      200  {object}  bugResponse
// @Failure      404  {object}  statusResponse
// @Router       /v1/bugs/{id} [get]
func (h *BugHandler) Get(c echo.Context) error {
	bug, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBugResponse(bug))
}

// Update handles PATCH /v1/bugs/:id.
//
// @Summary      Update a bug
// @Tags         bugs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Bug id"
// @Param        body  body      updateBugRequest  true  "Fields to update"
// @Success      200   {object}  bugResponse
// @Failure      400   {object}  statusResponse
// @Failure      404   {object}  statusResponse
// @Router       /v1/bugs/{id} [patch]
func (h *BugHandler) Update(c echo.Context) error {
	var req updateBugRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	bug, err := h.service.Update(c.Request().Context(), ports.UpdateBugInput{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Severity:    req.Severity,
		Actor:       actor,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBugResponse(bug))
}

// Delete handles DELETE /v1/bugs/:id (admin only).
//
// @Summary      Delete a bug
// @Tags         bugs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Bug id"
// @Success      200  {object}  statusResponse
// @Failure      403  {object}  statusResponse
// @Failure      404  {object}  statusResponse
// @Router       /v1/bugs/{id} [delete]
func (h *BugHandler) Delete(c echo.Context) error {
	actor, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), actor); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "success", Message: "bug deleted"})
}

// Assign handles POST /v1/bugs/:id/assign.
//
// @Summary      Assign a bug to a developer
// @Tags         bugs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Bug id"
// @Param        body  body      assignBugRequest  true  "Developer id"
// @Success      200   {object}  bugResponse
// @Failure      404   {object}  statusResponse
// @Router       /v1/bugs/{id}/assign [post]
func (h *BugHandler) Assign(c echo.Context) error {
	var req assignBugRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	bug, err := h.service.Assign(c.Request().Context(), c.Param("id"), req.DeveloperID, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBugResponse(bug))
}

func toBugResponse(bug *domain.Bug) bugResponse {
	return bugResponse{
		ID:          bug.ID,
		Title:       bug.Title,
		Description: bug.Description,
		ReportedBy:  bug.ReportedBy,
		Severity:    string(bug.Severity),
		DeveloperID: bug.DeveloperID,
		CreatedAt:   bug.CreatedAt,
		UpdatedAt:   bug.UpdatedAt,
	}
}
