package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	database "github.com/lequochuy12012k4/ChillingCoffee/config"
	"github.com/lequochuy12012k4/ChillingCoffee/models"
)

var userCollection *mongo.Collection = database.OpenCollection(database.Client, "users")
var validate = validator.New()

// GetUsers lists users with optional exact-match email filtering and
// current/pageSize pagination. Passwords are never projected.
func GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}

	current, err := strconv.Atoi(r.URL.Query().Get("current"))
	if err != nil || current < 1 {
		current = 1
	}

	startIndex := (current - 1) * pageSize

	filter := bson.D{}
	if email := r.URL.Query().Get("email"); email != "" {
		filter = append(filter, bson.E{Key: "email", Value: email})
	}

	matchStage := bson.D{{Key: "$match", Value: filter}}
	skipStage := bson.D{{Key: "$skip", Value: startIndex}}
	limitStage := bson.D{{Key: "$limit", Value: int64(pageSize)}}
	projectStage := bson.D{
		{Key: "$project", Value: bson.D{
			{Key: "password", Value: 0},
		}},
	}

	cursor, err := userCollection.Aggregate(ctx, mongo.Pipeline{matchStage, skipStage, limitStage, projectStage})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error occurred while listing users"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	allUsers := []bson.M{}
	if err = cursor.All(ctx, &allUsers); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding user data"}`, http.StatusInternalServerError)
		return
	}

	totalUsers, err := userCollection.CountDocuments(ctx, filter)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving total user count"}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"result": allUsers,
		"meta": map[string]interface{}{
			"current":  current,
			"pageSize": pageSize,
			"total":    totalUsers,
			"pages":    (totalUsers + int64(pageSize) - 1) / int64(pageSize),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	userId := mux.Vars(r)["user_id"]

	var user models.User
	err := userCollection.FindOne(ctx, bson.M{"user_id": userId}).Decode(&user)
	if err != nil {
		http.Error(w, `{"success": false, "message": "User not found"}`, http.StatusNotFound)
		return
	}

	user.Password = nil

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// CreateUser registers a user record from the admin dashboard.
func CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(user); validationErr != nil {
		http.Error(w, `{"success": false, "message": "`+validationErr.Error()+`"}`, http.StatusBadRequest)
		return
	}

	count, err := userCollection.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error checking email"}`, http.StatusInternalServerError)
		return
	}
	if count > 0 {
		http.Error(w, `{"success": false, "message": "Email already exists"}`, http.StatusConflict)
		return
	}

	password := HashPassword(*user.Password)
	user.Password = &password

	user.Created_at = time.Now()
	user.Updated_at = time.Now()
	user.ID = primitive.NewObjectID()
	user.User_id = user.ID.Hex()

	if _, insertErr := userCollection.InsertOne(ctx, user); insertErr != nil {
		http.Error(w, `{"success": false, "message": "User creation failed"}`, http.StatusInternalServerError)
		return
	}

	user.Password = nil

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
}

// UpdateUser patches a user identified by the user_id embedded in the body.
// The admin dashboard submits its edit form this way.
func UpdateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if user.User_id == "" {
		http.Error(w, `{"success": false, "message": "user_id is required"}`, http.StatusBadRequest)
		return
	}

	patchUser(w, r, user.User_id, user)
}

// UpdateUserById patches a user identified by the path parameter.
func UpdateUserById(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	patchUser(w, r, mux.Vars(r)["user_id"], user)
}

func patchUser(w http.ResponseWriter, r *http.Request, userId string, user models.User) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	updateObj := bson.D{}

	if user.Name != nil {
		updateObj = append(updateObj, bson.E{Key: "name", Value: user.Name})
	}
	if user.Email != nil {
		count, err := userCollection.CountDocuments(ctx, bson.M{"email": user.Email, "user_id": bson.M{"$ne": userId}})
		if err != nil {
			http.Error(w, `{"success": false, "message": "Error checking email"}`, http.StatusInternalServerError)
			return
		}
		if count > 0 {
			http.Error(w, `{"success": false, "message": "Email already exists"}`, http.StatusConflict)
			return
		}
		updateObj = append(updateObj, bson.E{Key: "email", Value: user.Email})
	}
	if user.Password != nil {
		password := HashPassword(*user.Password)
		updateObj = append(updateObj, bson.E{Key: "password", Value: password})
	}
	if user.Phone != nil {
		updateObj = append(updateObj, bson.E{Key: "phone", Value: user.Phone})
	}
	if user.Address != nil {
		updateObj = append(updateObj, bson.E{Key: "address", Value: user.Address})
	}
	if user.Image != nil {
		updateObj = append(updateObj, bson.E{Key: "image", Value: user.Image})
	}
	if user.Role != nil {
		updateObj = append(updateObj, bson.E{Key: "role", Value: user.Role})
	}
	if user.Account_type != nil {
		updateObj = append(updateObj, bson.E{Key: "account_type", Value: user.Account_type})
	}
	if user.Is_active != nil {
		updateObj = append(updateObj, bson.E{Key: "is_active", Value: user.Is_active})
	}
	if user.Code_id != nil {
		updateObj = append(updateObj, bson.E{Key: "code_id", Value: user.Code_id})
	}
	if user.Code_expired != nil {
		updateObj = append(updateObj, bson.E{Key: "code_expired", Value: user.Code_expired})
	}

	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

	result, err := userCollection.UpdateOne(ctx, bson.M{"user_id": userId}, bson.D{{Key: "$set", Value: updateObj}})
	if err != nil {
		http.Error(w, `{"success": false, "message": "User update failed"}`, http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, `{"success": false, "message": "User not found"}`, http.StatusNotFound)
		return
	}

	var updatedUser models.User
	if err := userCollection.FindOne(ctx, bson.M{"user_id": userId}).Decode(&updatedUser); err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving updated user"}`, http.StatusInternalServerError)
		return
	}
	updatedUser.Password = nil

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updatedUser)
}

func DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	userId := mux.Vars(r)["user_id"]

	result, err := userCollection.DeleteOne(ctx, bson.M{"user_id": userId})
	if err != nil {
		http.Error(w, `{"success": false, "message": "User deletion failed"}`, http.StatusInternalServerError)
		return
	}
	if result.DeletedCount == 0 {
		http.Error(w, `{"success": false, "message": "User not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "User deleted successfully",
	})
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		panic(err)
	}
	return string(bytes)
}

func VerifyPassword(userPassword string, providedPassword string) (bool, string) {
	if err := bcrypt.CompareHashAndPassword([]byte(providedPassword), []byte(userPassword)); err != nil {
		return false, "Incorrect password"
	}
	return true, ""
}
