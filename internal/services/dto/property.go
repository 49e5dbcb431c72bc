package dto

// PropertyFilterRequest is the raw, untrusted search request bound from
// query parameters. Price bounds arrive as strings and are parsed into
// exact decimals by the service; page and pageSize are normalized there
// as well, so no binding rule rejects them here.
type PropertyFilterRequest struct {
	Name     string `form:"name" validate:"max=100"`
	Address  string `form:"address" validate:"max=120"`
	MinPrice string `form:"minPrice"`
	MaxPrice string `form:"maxPrice"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"pageSize,default=10"`
	SortBy   string `form:"sortBy,default=createdat"`
	SortDir  string `form:"sortDir,default=desc"`
}

// PropertyResponse is the public listing view. Price is serialized as a
// decimal string to keep it exact. ImageUrl is "" when the property has
// no enabled image.
type PropertyResponse struct {
	ID       string `json:"id"`
	IDOwner  string `json:"idOwner"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Price    string `json:"price"`
	ImageURL string `json:"imageUrl"`
}

// PaginatedResponse is one page of search results.
type PaginatedResponse struct {
	Items      []PropertyResponse `json:"items"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	Total      int64              `json:"total"`
	TotalPages int                `json:"totalPages"`
}
