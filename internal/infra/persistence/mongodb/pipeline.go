package mongodb

import (
	"regexp"
	"time"

	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/entity"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// searchPipeline builds the aggregation for a pharmacy query. With a point the
// first stage is $geoNear, which sorts by distance and writes it to "distance".
func searchPipeline(query *repository.PharmacyQuery) mongo.Pipeline {
	filter := searchFilter(query)

	if query.Near == nil {
		return mongo.Pipeline{
			{{Key: "$match", Value: filter}},
			{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		}
	}

	geoNear := bson.D{
		{Key: "near", Value: newGeoPoint(*query.Near)},
		{Key: "distanceField", Value: "distance"},
		{Key: "key", Value: "location"},
		{Key: "spherical", Value: true},
		{Key: "query", Value: filter},
	}
	if query.MaxDistance > 0 {
		geoNear = append(geoNear, bson.E{Key: "maxDistance", Value: query.MaxDistance})
	}

	return mongo.Pipeline{
		{{Key: "$geoNear", Value: geoNear}},
	}
}

// searchFilter builds the guard and text conditions shared by both pipeline shapes.
func searchFilter(query *repository.PharmacyQuery) bson.D {
	filter := bson.D{}
	if query.OnGuardOnly {
		filter = append(filter, bson.E{Key: "isOnGard", Value: true})
	}

	if query.Text != "" && len(query.TextFields) > 0 {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query.Text), Options: "i"}
		or := bson.A{}
		for _, field := range query.TextFields {
			if _, ok := entity.ParsePharmacyField(string(field)); !ok {
				continue
			}
			or = append(or, bson.D{{Key: string(field), Value: pattern}})
		}
		if len(or) > 0 {
			filter = append(filter, bson.E{Key: "$or", Value: or})
		}
	}

	return filter
}

// updatePipeline builds a pipeline-style update so the GeoJSON location is
// recomputed from the stored coordinates within the same write.
func updatePipeline(patch *entity.PharmacyPatch, now time.Time) mongo.Pipeline {
	set := bson.D{}
	addString := func(key string, v *string) {
		if v != nil {
			set = append(set, bson.E{Key: key, Value: bson.D{{Key: "$literal", Value: *v}}})
		}
	}

	addString("name", patch.Name)
	addString("email", patch.Email)
	addString("phone", patch.Phone)
	addString("city", patch.City)
	addString("detailedAddress", patch.DetailedAddress)
	if patch.Latitude != nil {
		set = append(set, bson.E{Key: "latitude", Value: *patch.Latitude})
	}
	if patch.Longitude != nil {
		set = append(set, bson.E{Key: "longitude", Value: *patch.Longitude})
	}
	if patch.IsOnDuty != nil {
		set = append(set, bson.E{Key: "isOnDuty", Value: *patch.IsOnDuty})
	}
	if patch.IsOnGard != nil {
		set = append(set, bson.E{Key: "isOnGard", Value: *patch.IsOnGard})
	}
	addString("description", patch.Description)
	addString("image", patch.Image)
	addString("imageMobile", patch.ImageMobile)
	set = append(set, bson.E{Key: "updatedAt", Value: now})

	pipeline := mongo.Pipeline{{{Key: "$set", Value: set}}}
	if patch.Latitude != nil || patch.Longitude != nil {
		pipeline = append(pipeline, bson.D{{Key: "$set", Value: bson.D{
			{Key: "location", Value: bson.D{
				{Key: "type", Value: "Point"},
				{Key: "coordinates", Value: bson.A{"$longitude", "$latitude"}},
			}},
		}}})
	}

	return pipeline
}
