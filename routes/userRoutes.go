package routes

import (
	"net/http"

	controller "github.com/lequochuy12012k4/ChillingCoffee/controllers"
	"github.com/gorilla/mux"
)

// UserPublicRoutes covers the read side; the storefront looks users up by
// email here when resolving a provider session.
func UserPublicRoutes(router *mux.Router) {
	router.HandleFunc("/users", controller.GetUsers).Methods(http.MethodGet)
	router.HandleFunc("/users/{user_id}", controller.GetUser).Methods(http.MethodGet)
}

func UserProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/users", controller.CreateUser).Methods(http.MethodPost)
	router.HandleFunc("/users", controller.UpdateUser).Methods(http.MethodPatch)
	router.HandleFunc("/users/{user_id}", controller.UpdateUserById).Methods(http.MethodPatch)
	router.HandleFunc("/users/{user_id}", controller.DeleteUser).Methods(http.MethodDelete)
}
