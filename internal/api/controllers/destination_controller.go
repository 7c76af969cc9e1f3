package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"desawisata/internal/models/request_models"
	"desawisata/internal/services"
	"desawisata/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{
		destinationService: destinationService,
	}
}

// ListDestinations godoc
// @Summary List destinations
// @Description Fetch a paginated list of village destinations
// @Tags Destinations
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} utils.APIResponse
// @Router /destinations [get]
func (d *DestinationController) ListDestinations(c *gin.Context) {

	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	destinations, err := d.destinationService.List(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}

// GetDestination godoc
// @Summary Get a destination
// @Tags Destinations
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} utils.APIResponse
// @Router /destinations/{id} [get]
func (d *DestinationController) GetDestination(c *gin.Context) {
	destination, err := d.destinationService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destination, "Destination fetched successfully")
}

// CreateDestination godoc
// @Summary Create a destination
// @Tags Destinations
// @Accept json
// @Produce json
// @Param request body request_models.UpsertDestinationRequest true "Destination payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/destinations [post]
func (d *DestinationController) CreateDestination(c *gin.Context) {
	var req request_models.UpsertDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	id, err := d.destinationService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Destination created successfully")
}

// UpdateDestination godoc
// @Summary Update a destination
// @Tags Destinations
// @Accept json
// @Produce json
// @Param id path string true "Destination ID"
// @Param request body request_models.UpsertDestinationRequest true "Destination payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/destinations/{id} [put]
func (d *DestinationController) UpdateDestination(c *gin.Context) {
	var req request_models.UpsertDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := d.destinationService.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Destination updated successfully")
}
