package repositories

import (
	"context"
	"regexp"

	"realestate_backend/internal/database"
	"realestate_backend/internal/models"
	"realestate_backend/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PropertyRepository executes property queries against MongoDB. All
// methods take the caller's context so in-flight store round-trips are
// aborted on cancellation.
type PropertyRepository struct {
	properties *mongo.Collection
	images     *mongo.Collection
}

func NewPropertyRepository(db *database.Mongo) *PropertyRepository {
	return &PropertyRepository{
		properties: db.Properties,
		images:     db.PropertyImages,
	}
}

// Search runs the count and the paged fetch for an already-normalized
// criteria and returns the page rows enriched with their image reference.
func (r *PropertyRepository) Search(ctx context.Context, criteria models.PropertySearchCriteria) ([]models.PropertyWithImage, int64, error) {
	filter := buildSearchFilter(criteria)

	total, err := r.properties.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.ErrStoreUnavailable(err)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$sort", Value: buildSort(criteria.SortBy, criteria.SortDir)}},
		bson.D{{Key: "$skip", Value: criteria.Offset()}},
		bson.D{{Key: "$limit", Value: criteria.PageSize}},
	}
	pipeline = append(pipeline, imageLookupStages(r.images.Name())...)

	cursor, err := r.properties.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, apperrors.ErrStoreUnavailable(err)
	}
	defer cursor.Close(ctx)

	items := make([]models.PropertyWithImage, 0, criteria.PageSize)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, apperrors.ErrStoreUnavailable(err)
	}

	return items, total, nil
}

// FindByID resolves one property with the same image enrichment as the
// paged path. A missing document is reported as (nil, nil); absence is a
// valid result, not an error.
func (r *PropertyRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.PropertyWithImage, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		bson.D{{Key: "$limit", Value: 1}},
	}
	pipeline = append(pipeline, imageLookupStages(r.images.Name())...)

	cursor, err := r.properties.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	defer cursor.Close(ctx)

	var items []models.PropertyWithImage
	if err := cursor.All(ctx, &items); err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	return &items[0], nil
}

// buildSearchFilter folds the optional criteria fields into one
// conjunctive filter. No present field yields the match-everything
// filter.
func buildSearchFilter(criteria models.PropertySearchCriteria) bson.D {
	var clauses bson.A

	if criteria.Name != "" {
		clauses = append(clauses, bson.D{{Key: "Name", Value: containsPattern(criteria.Name)}})
	}
	if criteria.Address != "" {
		clauses = append(clauses, bson.D{{Key: "Address", Value: containsPattern(criteria.Address)}})
	}
	if criteria.MinPrice != nil {
		clauses = append(clauses, bson.D{{Key: "Price", Value: bson.D{{Key: "$gte", Value: *criteria.MinPrice}}}})
	}
	if criteria.MaxPrice != nil {
		clauses = append(clauses, bson.D{{Key: "Price", Value: bson.D{{Key: "$lte", Value: *criteria.MaxPrice}}}})
	}

	if len(clauses) == 0 {
		return bson.D{}
	}
	return bson.D{{Key: "$and", Value: clauses}}
}

// containsPattern matches the fragment as a literal, case-insensitive
// substring.
func containsPattern(fragment string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(fragment), Options: "i"}
}

// buildSort maps the sort key and direction to a single-key order.
// Unmatched combinations fall back to newest-first. No secondary key is
// added; ties keep the store's order, which is stable for identical
// queries over unchanged data.
func buildSort(sortBy models.SortKey, sortDir models.SortDirection) bson.D {
	dir := -1
	if sortDir == models.SortAsc {
		dir = 1
	}

	switch sortBy {
	case models.SortByPrice:
		return bson.D{{Key: "Price", Value: dir}}
	case models.SortByName:
		return bson.D{{Key: "Name", Value: dir}}
	case models.SortByCreatedAt:
		return bson.D{{Key: "CreatedAt", Value: dir}}
	default:
		return bson.D{{Key: "CreatedAt", Value: -1}}
	}
}

// imageLookupStages joins at most one enabled image per property in the
// same round-trip as the page fetch, then flattens its File into
// ImageUrl (null when the property has no enabled image).
func imageLookupStages(imagesCollection string) []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: imagesCollection},
			{Key: "let", Value: bson.D{{Key: "pid", Value: "$_id"}}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{
					{Key: "$and", Value: bson.A{
						bson.D{{Key: "$eq", Value: bson.A{"$IdProperty", "$$pid"}}},
						bson.D{{Key: "$eq", Value: bson.A{"$Enabled", true}}},
					}},
				}}}}},
				bson.D{{Key: "$limit", Value: 1}},
			}},
			{Key: "as", Value: "images"},
		}}},
		{{Key: "$set", Value: bson.D{{Key: "ImageUrl", Value: bson.D{
			{Key: "$ifNull", Value: bson.A{
				bson.D{{Key: "$arrayElemAt", Value: bson.A{"$images.File", 0}}},
				nil,
			}},
		}}}}},
		{{Key: "$unset", Value: "images"}},
	}
}
