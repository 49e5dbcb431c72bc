package handlers

import (
	"net/http"

	"realestate_backend/internal/services"
	"realestate_backend/internal/services/dto"
	"realestate_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	*BaseHandler
	propertyService services.PropertyService
}

func NewPropertyHandler(base *BaseHandler, propertyService services.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		BaseHandler:     base,
		propertyService: propertyService,
	}
}

func (h *PropertyHandler) RegisterRoutes(r *gin.RouterGroup) {
	properties := r.Group("/properties")
	{
		properties.GET("", h.SearchProperties)
		properties.GET("/:id", h.GetPropertyByID)
	}
}

// SearchProperties handles the paged property search.
// @Summary      Search properties
// @Description  Paged search over the property catalog with optional name/address fragments, a price range and sorting
// @Tags         properties
// @Param        name      query  string  false  "Name fragment (case-insensitive substring)"
// @Param        address   query  string  false  "Address fragment (case-insensitive substring)"
// @Param        minPrice  query  string  false  "Minimum price (decimal)"
// @Param        maxPrice  query  string  false  "Maximum price (decimal)"
// @Param        page      query  int     false  "Page (1-based)"       default(1)
// @Param        pageSize  query  int     false  "Page size (1..100)"   default(10)
// @Param        sortBy    query  string  false  "Sort key: price, name or createdat"  default(createdat)
// @Param        sortDir   query  string  false  "Sort direction: asc or desc"         default(desc)
// @Success      200  {object}  dto.PaginatedResponse
// @Failure      400  {object}  apperrors.ErrorResponse
// @Router       /properties [get]
func (h *PropertyHandler) SearchProperties(c *gin.Context) {
	var req dto.PropertyFilterRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	result, err := h.propertyService.SearchProperties(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPropertyByID resolves a single property by its identifier.
// @Summary      Get property by id
// @Tags         properties
// @Param        id   path  string  true  "Property id (24-hex)"
// @Success      200  {object}  dto.PropertyResponse
// @Failure      400  {object}  apperrors.ErrorResponse
// @Failure      404  {object}  apperrors.ErrorResponse
// @Router       /properties/{id} [get]
func (h *PropertyHandler) GetPropertyByID(c *gin.Context) {
	result, err := h.propertyService.GetPropertyByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if result == nil {
		// Well-formed id with no matching document: a valid negative
		// result, surfaced as 404 at this boundary.
		apperrors.HandleError(c, apperrors.ErrNotFound(nil))
		return
	}

	c.JSON(http.StatusOK, result)
}
