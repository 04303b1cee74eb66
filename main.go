package main

import (
	"log"
	"net/http"
	"os"

	database "github.com/lequochuy12012k4/ChillingCoffee/config"
	controller "github.com/lequochuy12012k4/ChillingCoffee/controllers"
	middleware "github.com/lequochuy12012k4/ChillingCoffee/middlewares"
	routes "github.com/lequochuy12012k4/ChillingCoffee/routes"

	"github.com/gorilla/mux"
)

func main() {
	database.LoadEnv()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	router := mux.NewRouter()

	// Versioned API surface
	api := router.PathPrefix("/api/v1").Subrouter()

	// Public routes (storefront reads, auth, feedback submission, uploads)
	routes.AuthRoutes(api)
	routes.UserPublicRoutes(api)
	routes.MenuItemPublicRoutes(api)
	routes.MenuItemOptionPublicRoutes(api)
	routes.ReviewPublicRoutes(api)
	routes.UploadRoutes(api)
	routes.CharityRoutes(api)

	// Admin mutations behind authentication
	securedRoutes := api.PathPrefix("/").Subrouter()
	securedRoutes.Use(middleware.Authentication)
	routes.UserProtectedRoutes(securedRoutes)
	routes.MenuItemProtectedRoutes(securedRoutes)
	routes.MenuItemOptionProtectedRoutes(securedRoutes)
	routes.ReviewProtectedRoutes(securedRoutes)

	// Uploaded images are served by the same process
	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(controller.UploadDir()))))

	log.Printf("Server running on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal(err)
	}
}
