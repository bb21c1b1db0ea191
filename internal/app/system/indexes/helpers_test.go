package indexes_test

import (
	"testing"

	"github.com/dalemusser/mediaindex/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func mongoIndex(name string) mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
		Options: options.Index().SetName(name),
	}
}

func hasIndex(t *testing.T, coll *mongo.Collection, name string) bool {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		t.Fatalf("list indexes: %v", err)
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			t.Fatalf("decode index: %v", err)
		}
		if idx["name"] == name {
			return true
		}
	}
	return false
}
