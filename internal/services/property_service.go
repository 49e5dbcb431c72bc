package services

import (
	"context"
	"math/big"
	"strings"

	"realestate_backend/internal/models"
	"realestate_backend/internal/services/dto"
	"realestate_backend/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// PropertyRepository is the document-store boundary the service depends
// on. Search receives a normalized criteria; FindByID reports a missing
// document as (nil, nil).
type PropertyRepository interface {
	Search(ctx context.Context, criteria models.PropertySearchCriteria) ([]models.PropertyWithImage, int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.PropertyWithImage, error)
}

type PropertyService interface {
	// SearchProperties normalizes the raw request, executes the paged
	// query and assembles the page. The only rejected filter condition is
	// minPrice > maxPrice.
	SearchProperties(ctx context.Context, req *dto.PropertyFilterRequest) (*dto.PaginatedResponse, error)

	// GetPropertyByID validates the identifier encoding and resolves one
	// property with the same image enrichment as the paged path. A
	// well-formed id with no matching document returns (nil, nil).
	GetPropertyByID(ctx context.Context, id string) (*dto.PropertyResponse, error)
}

type propertyService struct {
	repo PropertyRepository
}

func NewPropertyService(repo PropertyRepository) PropertyService {
	return &propertyService{repo: repo}
}

func (s *propertyService) SearchProperties(ctx context.Context, req *dto.PropertyFilterRequest) (*dto.PaginatedResponse, error) {
	criteria, err := s.normalizeFilter(req)
	if err != nil {
		return nil, err
	}

	items, total, err := s.repo.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}

	return assemblePage(items, total, criteria.Page, criteria.PageSize), nil
}

func (s *propertyService) GetPropertyByID(ctx context.Context, id string) (*dto.PropertyResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, apperrors.ErrMalformedIdentifier
	}

	item, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	view := toPropertyResponse(*item)
	return &view, nil
}

// normalizeFilter turns the raw request into a canonical criteria:
// blank text fragments are dropped, page and pageSize are clamped
// (never rejected), sort falls back to newest-first and the price
// bounds are parsed as exact decimals. minPrice > maxPrice is the one
// condition that fails instead of being corrected, and it is detected
// before any store call.
func (s *propertyService) normalizeFilter(req *dto.PropertyFilterRequest) (models.PropertySearchCriteria, error) {
	if req == nil {
		req = &dto.PropertyFilterRequest{
			Page:     defaultPage,
			PageSize: defaultPageSize,
		}
	}

	criteria := models.PropertySearchCriteria{
		Name:     strings.TrimSpace(req.Name),
		Address:  strings.TrimSpace(req.Address),
		Page:     max(req.Page, defaultPage),
		PageSize: clamp(req.PageSize, 1, maxPageSize),
		SortBy:   normalizeSortKey(req.SortBy),
		SortDir:  normalizeSortDir(req.SortDir),
	}

	if raw := strings.TrimSpace(req.MinPrice); raw != "" {
		min, err := parsePriceBound(raw, "minPrice")
		if err != nil {
			return models.PropertySearchCriteria{}, err
		}
		criteria.MinPrice = &min
	}
	if raw := strings.TrimSpace(req.MaxPrice); raw != "" {
		max, err := parsePriceBound(raw, "maxPrice")
		if err != nil {
			return models.PropertySearchCriteria{}, err
		}
		criteria.MaxPrice = &max
	}

	if criteria.MinPrice != nil && criteria.MaxPrice != nil &&
		decimalGreaterThan(*criteria.MinPrice, *criteria.MaxPrice) {
		return models.PropertySearchCriteria{}, apperrors.ErrInvalidPriceRange
	}

	return criteria, nil
}

// parsePriceBound parses a price bound as an exact decimal. Decimal128
// also admits NaN and the infinities; those are not prices and would
// escape the range comparison, so any value big.Rat cannot represent is
// rejected here.
func parsePriceBound(raw, field string) (primitive.Decimal128, error) {
	d, err := primitive.ParseDecimal128(raw)
	if err != nil {
		return primitive.Decimal128{}, apperrors.ErrInvalidPrice(field)
	}
	if _, ok := new(big.Rat).SetString(d.String()); !ok {
		return primitive.Decimal128{}, apperrors.ErrInvalidPrice(field)
	}
	return d, nil
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

func normalizeSortKey(sortBy string) models.SortKey {
	switch models.SortKey(strings.ToLower(strings.TrimSpace(sortBy))) {
	case models.SortByPrice:
		return models.SortByPrice
	case models.SortByName:
		return models.SortByName
	default:
		return models.SortByCreatedAt
	}
}

func normalizeSortDir(sortDir string) models.SortDirection {
	if models.SortDirection(strings.ToLower(strings.TrimSpace(sortDir))) == models.SortAsc {
		return models.SortAsc
	}
	return models.SortDesc
}

// decimalGreaterThan compares two Decimal128 values through big.Rat; the
// driver does not expose an ordering.
func decimalGreaterThan(a, b primitive.Decimal128) bool {
	ra, okA := new(big.Rat).SetString(a.String())
	rb, okB := new(big.Rat).SetString(b.String())
	if !okA || !okB {
		return false
	}
	return ra.Cmp(rb) > 0
}

// assemblePage shapes the already-ordered page rows. Membership and
// ordering are frozen by the repository; this only maps views and
// computes the pagination metadata.
func assemblePage(items []models.PropertyWithImage, total int64, page, pageSize int) *dto.PaginatedResponse {
	views := make([]dto.PropertyResponse, 0, len(items))
	for _, item := range items {
		views = append(views, toPropertyResponse(item))
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &dto.PaginatedResponse{
		Items:      views,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

func toPropertyResponse(item models.PropertyWithImage) dto.PropertyResponse {
	imageURL := ""
	if item.ImageURL != nil {
		imageURL = *item.ImageURL
	}

	return dto.PropertyResponse{
		ID:       item.ID.Hex(),
		IDOwner:  item.IdOwner.Hex(),
		Name:     item.Name,
		Address:  item.Address,
		Price:    item.Price.String(),
		ImageURL: imageURL,
	}
}
