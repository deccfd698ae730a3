package api

import (
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"agendapay/internal/domain/work"
	reqdto "agendapay/internal/handler/dto/request"
	resdto "agendapay/internal/handler/dto/response"
	"agendapay/internal/handler/httperr"
	"agendapay/internal/handler/middleware"
	"agendapay/internal/infra/repository"
	"agendapay/internal/pkg/money"
	"agendapay/internal/usecase/commands"
	"agendapay/internal/usecase/queries"
)

type WorkHandler struct {
	commands commands.WorkCommands
	queries  queries.WorkQueries
}

func NewWorkHandler(workCommands commands.WorkCommands, workQueries queries.WorkQueries) *WorkHandler {
	return &WorkHandler{commands: workCommands, queries: workQueries}
}

// @Summary Create work
// @Tags works
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateWorkRequest true "Work"
// @Success 201 {object} response.WorkResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /works [post]
func (h *WorkHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("user id missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.CreateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	entity, err := h.commands.CreateWork(c.Request.Context(), commands.CreateWorkInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Price:       money.FromFloat(req.Price),
	})
	if err != nil {
		if errors.Is(err, commands.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid work data", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromWork(entity))
}

// @Summary List works
// @Description List works, optionally filtered by name, description, price, or owner
// @Tags works
// @Produce json
// @Security BearerAuth
// @Param name query string false "Name contains"
// @Param description query string false "Description contains"
// @Param price query number false "Exact price"
// @Param userId query string false "Owner id"
// @Success 200 {array} response.WorkResponse
// @Router /works [get]
func (h *WorkHandler) List(c *gin.Context) {
	filter, err := workFilterFromQuery(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", nil)
		return
	}

	works, err := h.queries.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWorks(works))
}

// @Summary Get work
// @Tags works
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work id"
// @Success 200 {object} response.WorkResponse
// @Failure 404 {object} httperr.Response
// @Router /works/{id} [get]
func (h *WorkHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid work id", nil)
		return
	}

	entity, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrWorkNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Work not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWork(entity))
}

// @Summary Update work
// @Tags works
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work id"
// @Param request body request.UpdateWorkRequest true "Fields to change"
// @Success 200 {object} response.WorkResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /works/{id} [put]
func (h *WorkHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid work id", nil)
		return
	}

	var req reqdto.UpdateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	patch := workPatchFromRequest(req)
	entity, err := h.commands.UpdateWork(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrWorkNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Work not found", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid work data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromWork(entity))
}

// @Summary Delete work
// @Tags works
// @Security BearerAuth
// @Param id path string true "Work id"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /works/{id} [delete]
func (h *WorkHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid work id", nil)
		return
	}

	if err := h.commands.DeleteWork(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrWorkNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Work not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func workFilterFromQuery(c *gin.Context) (repository.WorkFilter, error) {
	var filter repository.WorkFilter

	if name := c.Query("name"); name != "" {
		filter.Name = &name
	}
	if description := c.Query("description"); description != "" {
		filter.Description = &description
	}
	if priceStr := c.Query("price"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			return filter, errors.Wrap(err, "invalid price")
		}
		cents := money.FromFloat(price).Cents()
		filter.PriceCents = &cents
	}
	if userIDStr := c.Query("userId"); userIDStr != "" {
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return filter, errors.Wrap(err, "invalid userId")
		}
		filter.UserID = &userID
	}
	return filter, nil
}

func workPatchFromRequest(req reqdto.UpdateWorkRequest) work.Patch {
	patch := work.Patch{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Price != nil {
		price := money.FromFloat(*req.Price)
		patch.Price = &price
	}
	return patch
}
