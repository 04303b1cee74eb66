package routes

import (
	"net/http"

	controller "github.com/lequochuy12012k4/ChillingCoffee/controllers"
	"github.com/gorilla/mux"
)

func CharityRoutes(router *mux.Router) {
	router.HandleFunc("/charity", controller.GetCharityInfo).Methods(http.MethodGet)
}
