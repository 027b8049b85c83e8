package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bugtrack/bugtrack-api/internal/core/domain"
	"github.com/bugtrack/bugtrack-api/internal/core/ports"
)

type DeveloperHandler struct {
	service ports.DeveloperService
}

func NewDeveloperHandler(service ports.DeveloperService) *DeveloperHandler {
	return &DeveloperHandler{service: service}
}

// List handles GET /v1/developers.
//
// @Summary      List developers
// @Tags         developers
// @Produce      json
// @Success      200  {array}  developerResponse
// @Router       /v1/developers [get]
func (h *DeveloperHandler) List(c echo.Context) error {
	devs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]developerResponse, 0, len(devs))
	for _, dev := range devs {
		items = append(items, toDeveloperResponse(dev))
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /v1/developers.
//
// @Summary      Add a developer
// @Tags         developers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDeveloperRequest  true  "Developer details"
// @Success      201   {object}  developerResponse
// @Failure      400   {object}  statusResponse
// @Failure      401   {object}  statusResponse
// @Router       /v1/developers [post]
func (h *DeveloperHandler) Create(c echo.Context) error {
	var req createDeveloperRequest
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

	dev, err := h.service.Create(c.Request().Context(), req.Name, actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toDeveloperResponse(dev))
}

func toDeveloperResponse(dev *domain.Developer) developerResponse {
	return developerResponse{
		ID:        dev.ID,
		Name:      dev.Name,
		CreatedAt: dev.CreatedAt,
	}
}
