package repository

import (
	"testing"

	"athos-learning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreatedDocumentsReachableByID(t *testing.T) {
	// Create stores _id as the generated hex string, so the lookup filter
	// must match the string representation of a hex id, not only the
	// typed ObjectID.
	item := models.ContentItem{ID: primitive.NewObjectID().Hex(), ModuleID: 1, Type: models.ContentText}

	raw, err := bson.Marshal(item)
	if err != nil {
		t.Fatalf("Failed to marshal content item: %v", err)
	}
	stored := bson.Raw(raw).Lookup("_id")
	if stored.Type != bson.TypeString {
		t.Fatalf("Expected string _id in stored document, got %s", stored.Type)
	}

	filter, ok := idFilter(item.ID)["_id"].(bson.M)
	if !ok {
		t.Fatalf("Expected an $in filter for a hex id, got %v", idFilter(item.ID)["_id"])
	}
	in, ok := filter["$in"].(bson.A)
	if !ok {
		t.Fatalf("Expected $in clause, got %v", filter)
	}

	matchesString := false
	matchesObjectID := false
	for _, v := range in {
		switch val := v.(type) {
		case string:
			if val == item.ID {
				matchesString = true
			}
		case primitive.ObjectID:
			if val.Hex() == item.ID {
				matchesObjectID = true
			}
		}
	}
	if !matchesString {
		t.Error("Filter for a hex id does not match the stored string _id")
	}
	if !matchesObjectID {
		t.Error("Filter for a hex id does not match the typed ObjectID form")
	}
}

func TestIDFilterPlainStringID(t *testing.T) {
	filter := idFilter("hist-lavra")
	if filter["_id"] != "hist-lavra" {
		t.Errorf("Expected exact string match for a non-hex id, got %v", filter["_id"])
	}
}
