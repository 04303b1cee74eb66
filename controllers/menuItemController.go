package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	database "github.com/lequochuy12012k4/ChillingCoffee/config"
	"github.com/lequochuy12012k4/ChillingCoffee/models"
)

var menuItemCollection *mongo.Collection = database.OpenCollection(database.Client, "menuitems")

// GetMenuItems lists menu items, optionally filtered by category.
func GetMenuItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	filter := bson.M{}
	if category := r.URL.Query().Get("category"); category != "" {
		if !models.MenuItemCategories[category] {
			http.Error(w, `{"success": false, "message": "Invalid category, must be drink or cake"}`, http.StatusBadRequest)
			return
		}
		filter["category"] = category
	}

	cursor, err := menuItemCollection.Find(ctx, filter)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error occurred while listing menu items"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	allItems := []models.MenuItem{}
	if err = cursor.All(ctx, &allItems); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding menu item data"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"result": allItems,
		"meta": map[string]interface{}{
			"total": len(allItems),
		},
	})
}

func GetMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	itemId := mux.Vars(r)["item_id"]

	var item models.MenuItem
	if err := menuItemCollection.FindOne(ctx, bson.M{"item_id": itemId}).Decode(&item); err != nil {
		http.Error(w, `{"success": false, "message": "Menu item not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// CreateMenuItem validates and stores a new menu item.
func CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(item); validationErr != nil {
		http.Error(w, `{"success": false, "message": "`+validationErr.Error()+`"}`, http.StatusBadRequest)
		return
	}

	item.Created_at = time.Now()
	item.Updated_at = time.Now()
	item.ID = primitive.NewObjectID()
	item.Item_id = item.ID.Hex()

	if _, insertErr := menuItemCollection.InsertOne(ctx, item); insertErr != nil {
		http.Error(w, `{"success": false, "message": "Menu item was not created"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

// UpdateMenuItem applies a partial patch, last write wins.
func UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	itemId := mux.Vars(r)["item_id"]

	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	updateObj := bson.D{}

	if item.Title != nil {
		updateObj = append(updateObj, bson.E{Key: "title", Value: item.Title})
	}
	if item.Description != nil {
		updateObj = append(updateObj, bson.E{Key: "description", Value: item.Description})
	}
	if item.Base_price != nil {
		updateObj = append(updateObj, bson.E{Key: "base_price", Value: item.Base_price})
	}
	if item.Image != nil {
		updateObj = append(updateObj, bson.E{Key: "image", Value: item.Image})
	}
	if item.Category != nil {
		if !models.MenuItemCategories[*item.Category] {
			http.Error(w, `{"success": false, "message": "Invalid category, must be drink or cake"}`, http.StatusBadRequest)
			return
		}
		updateObj = append(updateObj, bson.E{Key: "category", Value: item.Category})
	}

	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

	result, err := menuItemCollection.UpdateOne(ctx, bson.M{"item_id": itemId}, bson.D{{Key: "$set", Value: updateObj}})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Menu item update failed"}`, http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, `{"success": false, "message": "Menu item not found"}`, http.StatusNotFound)
		return
	}

	var updatedItem models.MenuItem
	if err := menuItemCollection.FindOne(ctx, bson.M{"item_id": itemId}).Decode(&updatedItem); err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving updated menu item"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updatedItem)
}

// DeleteMenuItem removes the item only. Reviews and options referencing it are
// left untouched; readers degrade instead.
func DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	itemId := mux.Vars(r)["item_id"]

	result, err := menuItemCollection.DeleteOne(ctx, bson.M{"item_id": itemId})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Menu item deletion failed"}`, http.StatusInternalServerError)
		return
	}
	if result.DeletedCount == 0 {
		http.Error(w, `{"success": false, "message": "Menu item not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Menu item deleted successfully",
	})
}
