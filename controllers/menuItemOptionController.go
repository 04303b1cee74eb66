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

var menuItemOptionCollection *mongo.Collection = database.OpenCollection(database.Client, "menuitemoptions")

// GetMenuItemOptions lists options, optionally for a single menu item.
func GetMenuItemOptions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	filter := bson.M{}
	if menuItem := r.URL.Query().Get("menu_item"); menuItem != "" {
		filter["menu_item"] = menuItem
	}

	cursor, err := menuItemOptionCollection.Find(ctx, filter)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error occurred while listing options"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	allOptions := []models.MenuItemOption{}
	if err = cursor.All(ctx, &allOptions); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding option data"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"result": allOptions,
		"meta": map[string]interface{}{
			"total": len(allOptions),
		},
	})
}

func GetMenuItemOption(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	optionId := mux.Vars(r)["option_id"]

	var option models.MenuItemOption
	if err := menuItemOptionCollection.FindOne(ctx, bson.M{"option_id": optionId}).Decode(&option); err != nil {
		http.Error(w, `{"success": false, "message": "Option not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(option)
}

// CreateMenuItemOption stores an option after checking its parent item exists.
func CreateMenuItemOption(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var option models.MenuItemOption
	if err := json.NewDecoder(r.Body).Decode(&option); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(option); validationErr != nil {
		http.Error(w, `{"success": false, "message": "`+validationErr.Error()+`"}`, http.StatusBadRequest)
		return
	}

	count, err := menuItemCollection.CountDocuments(ctx, bson.M{"item_id": option.Menu_item})
	if err != nil || count == 0 {
		http.Error(w, `{"success": false, "message": "Invalid menu item ID, item not found"}`, http.StatusNotFound)
		return
	}

	option.Created_at = time.Now()
	option.Updated_at = time.Now()
	option.ID = primitive.NewObjectID()
	option.Option_id = option.ID.Hex()

	if _, insertErr := menuItemOptionCollection.InsertOne(ctx, option); insertErr != nil {
		http.Error(w, `{"success": false, "message": "Option was not created"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(option)
}

func UpdateMenuItemOption(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	optionId := mux.Vars(r)["option_id"]

	var option models.MenuItemOption
	if err := json.NewDecoder(r.Body).Decode(&option); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	updateObj := bson.D{}

	if option.Menu_item != nil {
		count, err := menuItemCollection.CountDocuments(ctx, bson.M{"item_id": option.Menu_item})
		if err != nil || count == 0 {
			http.Error(w, `{"success": false, "message": "Invalid menu item ID, item not found"}`, http.StatusNotFound)
			return
		}
		updateObj = append(updateObj, bson.E{Key: "menu_item", Value: option.Menu_item})
	}
	if option.Title != nil {
		updateObj = append(updateObj, bson.E{Key: "title", Value: option.Title})
	}
	if option.Additional_price != nil {
		updateObj = append(updateObj, bson.E{Key: "additional_price", Value: option.Additional_price})
	}
	if option.Optional_description != nil {
		updateObj = append(updateObj, bson.E{Key: "optional_description", Value: option.Optional_description})
	}

	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

	result, err := menuItemOptionCollection.UpdateOne(ctx, bson.M{"option_id": optionId}, bson.D{{Key: "$set", Value: updateObj}})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Option update failed"}`, http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, `{"success": false, "message": "Option not found"}`, http.StatusNotFound)
		return
	}

	var updatedOption models.MenuItemOption
	if err := menuItemOptionCollection.FindOne(ctx, bson.M{"option_id": optionId}).Decode(&updatedOption); err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving updated option"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updatedOption)
}

func DeleteMenuItemOption(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	optionId := mux.Vars(r)["option_id"]

	result, err := menuItemOptionCollection.DeleteOne(ctx, bson.M{"option_id": optionId})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Option deletion failed"}`, http.StatusInternalServerError)
		return
	}
	if result.DeletedCount == 0 {
		http.Error(w, `{"success": false, "message": "Option not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Option deleted successfully",
	})
}
