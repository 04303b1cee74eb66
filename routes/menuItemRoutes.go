package routes

import (
	"net/http"

	controller "github.com/lequochuy12012k4/ChillingCoffee/controllers"
	"github.com/gorilla/mux"
)

func MenuItemPublicRoutes(router *mux.Router) {
	router.HandleFunc("/menu.items", controller.GetMenuItems).Methods(http.MethodGet)
	router.HandleFunc("/menu.items/{item_id}", controller.GetMenuItem).Methods(http.MethodGet)
}

func MenuItemProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/menu.items", controller.CreateMenuItem).Methods(http.MethodPost)
	router.HandleFunc("/menu.items/{item_id}", controller.UpdateMenuItem).Methods(http.MethodPatch)
	router.HandleFunc("/menu.items/{item_id}", controller.DeleteMenuItem).Methods(http.MethodDelete)
}
