package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrderProductPipeline matches orders and enriches each with the name and
// image of the product it references. Orders whose productId does not
// resolve to a product are dropped, as with an inner join.
func OrderProductPipeline(match bson.D) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "productObjectId", Value: bson.D{
				{Key: "$convert", Value: bson.D{
					{Key: "input", Value: "$productId"},
					{Key: "to", Value: "objectId"},
					{Key: "onError", Value: nil},
					{Key: "onNull", Value: nil},
				}},
			}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: ProductsCollection},
			{Key: "localField", Value: "productObjectId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "products"},
		}}},
		{{Key: "$unwind", Value: "$products"}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "name", Value: "$products.productName"},
			{Key: "image", Value: "$products.image"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "products", Value: 0},
			{Key: "productObjectId", Value: 0},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "orderDate", Value: -1}}}},
	}
}

// RevenuePipeline sums order prices over the matched orders into one
// document {_id: nil, total: <sum>, count: <n>}.
func RevenuePipeline(match bson.D) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$price"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
}

// OrdersByStatusPipeline counts matched orders per status.
func OrdersByStatusPipeline(match bson.D) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
}
