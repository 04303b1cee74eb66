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
	"github.com/lequochuy12012k4/ChillingCoffee/identity"
	middleware "github.com/lequochuy12012k4/ChillingCoffee/middlewares"
	"github.com/lequochuy12012k4/ChillingCoffee/models"
)

var reviewCollection *mongo.Collection = database.OpenCollection(database.Client, "reviews")

// lookupUserIdByEmail backs the identity resolver with the users collection.
func lookupUserIdByEmail(ctx context.Context, email string) (string, error) {
	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return "", err
	}
	return user.User_id, nil
}

// reviewResponse shapes one review for listing: the user reference is
// replaced with name/email and the menu item reference with its title, the
// same way the storefront renders them. Missing references degrade instead of
// failing the whole list.
func reviewResponse(ctx context.Context, review models.Review) map[string]interface{} {
	entry := map[string]interface{}{
		"review_id":  review.Review_id,
		"rating":     review.Rating,
		"created_at": review.Created_at,
	}
	if review.Comment != nil {
		entry["comment"] = review.Comment
	}
	if review.Image != nil {
		entry["image"] = review.Image
	}
	if review.Product_text != nil {
		entry["productText"] = review.Product_text
	}

	if review.User != nil {
		var user models.User
		if err := userCollection.FindOne(ctx, bson.M{"user_id": review.User}).Decode(&user); err == nil {
			entry["user"] = map[string]interface{}{
				"user_id": user.User_id,
				"name":    user.Name,
				"email":   user.Email,
			}
		}
	}

	menuItemID := ""
	productText := ""
	if review.Menu_item != nil {
		menuItemID = *review.Menu_item
	}
	if review.Product_text != nil {
		productText = *review.Product_text
	}
	ref := identity.NewProductRef(menuItemID, productText)

	if ref.Kind == identity.ProductCatalog {
		var item models.MenuItem
		if err := menuItemCollection.FindOne(ctx, bson.M{"item_id": ref.ItemID}).Decode(&item); err == nil {
			entry["menuItem"] = map[string]interface{}{
				"item_id": item.Item_id,
				"title":   item.Title,
			}
		}
	}

	entry["productTitle"] = ref.DisplayTitle(func(id string) (string, bool) {
		var item models.MenuItem
		if err := menuItemCollection.FindOne(ctx, bson.M{"item_id": id}).Decode(&item); err != nil || item.Title == nil {
			return "", false
		}
		return *item.Title, true
	})

	return entry
}

// GetReviews lists reviews, optionally filtered by menu item, with user and
// product references resolved per document.
func GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	filter := bson.M{}
	if menuItem := r.URL.Query().Get("menuItem"); menuItem != "" {
		filter["menu_item"] = menuItem
	}

	cursor, err := reviewCollection.Find(ctx, filter)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error occurred while listing reviews"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var allReviews []models.Review
	if err = cursor.All(ctx, &allReviews); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding review data"}`, http.StatusInternalServerError)
		return
	}

	result := []map[string]interface{}{}
	for _, review := range allReviews {
		result = append(result, reviewResponse(ctx, review))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"result": result,
		"meta": map[string]interface{}{
			"total": len(result),
		},
	})
}

func GetReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	reviewId := mux.Vars(r)["review_id"]

	var review models.Review
	if err := reviewCollection.FindOne(ctx, bson.M{"review_id": reviewId}).Decode(&review); err != nil {
		http.Error(w, `{"success": false, "message": "Review not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reviewResponse(ctx, review))
}

// CreateReview stores customer feedback. The submitting user comes from the
// request body when present, otherwise from the authenticated session: a
// locally-issued token carries the user id directly, a provider session only
// carries an email that is looked up best-effort.
func CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	email, _, uid := middleware.GetSessionFromContext(r)

	bodyUser := ""
	if review.User != nil {
		bodyUser = *review.User
	}

	userId := identity.ResolveUserID(ctx,
		&identity.LocalSession{UserID: firstNonEmpty(bodyUser, uid)},
		&identity.ProviderSession{Email: email},
		lookupUserIdByEmail,
	)
	if userId == "" {
		http.Error(w, `{"success": false, "message": "A valid user is required to submit feedback"}`, http.StatusUnauthorized)
		return
	}

	count, err := userCollection.CountDocuments(ctx, bson.M{"user_id": userId})
	if err != nil || count == 0 {
		http.Error(w, `{"success": false, "message": "Invalid user ID, user not found"}`, http.StatusBadRequest)
		return
	}
	review.User = &userId

	if validationErr := validate.Struct(review); validationErr != nil {
		http.Error(w, `{"success": false, "message": "`+validationErr.Error()+`"}`, http.StatusBadRequest)
		return
	}

	applyProductRef(&review)

	review.Created_at = time.Now()
	review.Updated_at = time.Now()
	review.ID = primitive.NewObjectID()
	review.Review_id = review.ID.Hex()

	if _, insertErr := reviewCollection.InsertOne(ctx, review); insertErr != nil {
		http.Error(w, `{"success": false, "message": "Review creation failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(review)
}

// applyProductRef normalizes the two product fields through the tagged
// variant so that a catalog id and free text never coexist in storage.
func applyProductRef(review *models.Review) {
	menuItemID := ""
	productText := ""
	if review.Menu_item != nil {
		menuItemID = *review.Menu_item
	}
	if review.Product_text != nil {
		productText = *review.Product_text
	}

	switch ref := identity.NewProductRef(menuItemID, productText); ref.Kind {
	case identity.ProductCatalog:
		review.Menu_item = &ref.ItemID
		review.Product_text = nil
	case identity.ProductFreeText:
		review.Menu_item = nil
		review.Product_text = &ref.Text
	default:
		review.Menu_item = nil
		review.Product_text = nil
	}
}

func UpdateReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	reviewId := mux.Vars(r)["review_id"]

	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	updateObj := bson.D{}

	if review.Rating != nil {
		if *review.Rating < 1 || *review.Rating > 5 {
			http.Error(w, `{"success": false, "message": "Rating must be between 1 and 5"}`, http.StatusBadRequest)
			return
		}
		updateObj = append(updateObj, bson.E{Key: "rating", Value: review.Rating})
	}
	if review.Comment != nil {
		updateObj = append(updateObj, bson.E{Key: "comment", Value: review.Comment})
	}
	if review.Image != nil {
		updateObj = append(updateObj, bson.E{Key: "image", Value: review.Image})
	}
	if review.Menu_item != nil || review.Product_text != nil {
		applyProductRef(&review)
		updateObj = append(updateObj, bson.E{Key: "menu_item", Value: review.Menu_item})
		updateObj = append(updateObj, bson.E{Key: "product_text", Value: review.Product_text})
	}

	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

	result, err := reviewCollection.UpdateOne(ctx, bson.M{"review_id": reviewId}, bson.D{{Key: "$set", Value: updateObj}})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Review update failed"}`, http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, `{"success": false, "message": "Review not found"}`, http.StatusNotFound)
		return
	}

	var updatedReview models.Review
	if err := reviewCollection.FindOne(ctx, bson.M{"review_id": reviewId}).Decode(&updatedReview); err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving updated review"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updatedReview)
}

func DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	reviewId := mux.Vars(r)["review_id"]

	result, err := reviewCollection.DeleteOne(ctx, bson.M{"review_id": reviewId})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Review deletion failed"}`, http.StatusInternalServerError)
		return
	}
	if result.DeletedCount == 0 {
		http.Error(w, `{"success": false, "message": "Review not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Review deleted successfully",
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
