package routes

import (
	"net/http"

	controller "github.com/lequochuy12012k4/ChillingCoffee/controllers"
	"github.com/gorilla/mux"
)

func UploadRoutes(router *mux.Router) {
	router.HandleFunc("/uploads", controller.UploadFile).Methods(http.MethodPost)
}
