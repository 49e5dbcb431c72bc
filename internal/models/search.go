package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SortKey selects the primary ordering field for a property search.
type SortKey string

const (
	SortByPrice     SortKey = "price"
	SortByName      SortKey = "name"
	SortByCreatedAt SortKey = "createdat"
)

// SortDirection is the ordering direction for a property search.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// PropertySearchCriteria is the normalized, validated form of a search
// request. It is produced by the service layer; repositories may assume
// Page >= 1, 1 <= PageSize <= 100 and MinPrice <= MaxPrice when both are
// set, and that blank text fragments have already been dropped.
type PropertySearchCriteria struct {
	Name     string
	Address  string
	MinPrice *primitive.Decimal128
	MaxPrice *primitive.Decimal128
	Page     int
	PageSize int
	SortBy   SortKey
	SortDir  SortDirection
}

// Offset returns the number of documents to skip for the requested page.
func (c PropertySearchCriteria) Offset() int {
	return (c.Page - 1) * c.PageSize
}

// PropertyWithImage is a property row enriched with the file reference of
// at most one enabled image. ImageURL is nil when the property has no
// enabled image; that is a normal result, not an error.
type PropertyWithImage struct {
	Property `bson:",inline"`
	ImageURL *string `bson:"ImageUrl"`
}
