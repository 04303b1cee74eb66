package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lequochuy12012k4/ChillingCoffee/helper"
	"github.com/lequochuy12012k4/ChillingCoffee/models"
)

// SignUp registers a customer account and issues a session token carrying the
// backend user id.
func SignUp(w http.ResponseWriter, r *http.Request) {
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

	if user.Role == nil {
		role := "customer"
		user.Role = &role
	}
	if user.Account_type == nil {
		accountType := "local"
		user.Account_type = &accountType
	}

	user.Created_at = time.Now()
	user.Updated_at = time.Now()
	user.ID = primitive.NewObjectID()
	user.User_id = user.ID.Hex()

	token, refreshToken, err := helper.GenerateAllTokens(*user.Email, *user.Name, user.User_id)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Token generation failed"}`, http.StatusInternalServerError)
		return
	}

	if _, insertErr := userCollection.InsertOne(ctx, user); insertErr != nil {
		http.Error(w, `{"success": false, "message": "User creation failed"}`, http.StatusInternalServerError)
		return
	}

	response := struct {
		Email        string `json:"email"`
		Name         string `json:"name"`
		UserID       string `json:"user_id"`
		Token        string `json:"token"`
		RefreshToken string `json:"refresh_token"`
	}{
		Email:        *user.Email,
		Name:         *user.Name,
		UserID:       user.User_id,
		Token:        token,
		RefreshToken: refreshToken,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(response)
}

// Login verifies credentials and issues a session token.
func Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var user models.User
	var foundUser models.User

	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if user.Email == nil || user.Password == nil {
		http.Error(w, `{"success": false, "message": "Email and password are required"}`, http.StatusBadRequest)
		return
	}

	err := userCollection.FindOne(ctx, bson.M{"email": user.Email}).Decode(&foundUser)
	if err != nil {
		http.Error(w, `{"success": false, "message": "User not found"}`, http.StatusUnauthorized)
		return
	}

	passwordIsValid, msg := VerifyPassword(*user.Password, *foundUser.Password)
	if !passwordIsValid {
		http.Error(w, `{"success": false, "message": "`+msg+`"}`, http.StatusUnauthorized)
		return
	}

	token, refreshToken, err := helper.GenerateAllTokens(*foundUser.Email, *foundUser.Name, foundUser.User_id)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Token generation failed"}`, http.StatusInternalServerError)
		return
	}

	response := struct {
		Email        string `json:"email"`
		Name         string `json:"name"`
		UserID       string `json:"user_id"`
		Token        string `json:"token"`
		RefreshToken string `json:"refresh_token"`
	}{
		Email:        *foundUser.Email,
		Name:         *foundUser.Name,
		UserID:       foundUser.User_id,
		Token:        token,
		RefreshToken: refreshToken,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
