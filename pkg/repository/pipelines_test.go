package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func stageNames(t *testing.T, stages []bson.D) []string {
	t.Helper()
	names := make([]string, 0, len(stages))
	for _, stage := range stages {
		require.Len(t, stage, 1, "a pipeline stage has exactly one operator")
		names = append(names, stage[0].Key)
	}
	return names
}

func TestOrderProductPipeline(t *testing.T) {
	match := bson.D{{Key: "customer.email", Value: "a@x.com"}}
	pipeline := OrderProductPipeline(match)

	assert.Equal(t,
		[]string{"$match", "$addFields", "$lookup", "$unwind", "$addFields", "$project", "$sort"},
		stageNames(t, pipeline))
	assert.Equal(t, match, pipeline[0][0].Value)

	lookup, ok := pipeline[2][0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, bson.D{
		{Key: "from", Value: "products"},
		{Key: "localField", Value: "productObjectId"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "products"},
	}, lookup)

	enrich, ok := pipeline[4][0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "$products.productName", enrich.Map()["name"])
	assert.Equal(t, "$products.image", enrich.Map()["image"])
}

func TestRevenuePipeline(t *testing.T) {
	pipeline := RevenuePipeline(bson.D{{Key: "seller", Value: "s@x.com"}})
	assert.Equal(t, []string{"$match", "$group"}, stageNames(t, pipeline))

	group, ok := pipeline[1][0].Value.(bson.D)
	require.True(t, ok)
	assert.Nil(t, group.Map()["_id"])
	assert.Equal(t, bson.D{{Key: "$sum", Value: "$price"}}, group.Map()["total"])
}

func TestOrdersByStatusPipeline(t *testing.T) {
	pipeline := OrdersByStatusPipeline(bson.D{})
	assert.Equal(t, []string{"$match", "$group"}, stageNames(t, pipeline))

	group, ok := pipeline[1][0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "$status", group.Map()["_id"])
}
