package routes

import (
	"net/http"

	controller "github.com/lequochuy12012k4/ChillingCoffee/controllers"
	"github.com/gorilla/mux"
)

func MenuItemOptionPublicRoutes(router *mux.Router) {
	router.HandleFunc("/menu.item.options", controller.GetMenuItemOptions).Methods(http.MethodGet)
	router.HandleFunc("/menu.item.options/{option_id}", controller.GetMenuItemOption).Methods(http.MethodGet)
}

func MenuItemOptionProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/menu.item.options", controller.CreateMenuItemOption).Methods(http.MethodPost)
	router.HandleFunc("/menu.item.options/{option_id}", controller.UpdateMenuItemOption).Methods(http.MethodPatch)
	router.HandleFunc("/menu.item.options/{option_id}", controller.DeleteMenuItemOption).Methods(http.MethodDelete)
}
