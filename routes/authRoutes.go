package routes

import (
	"net/http"

	controller "github.com/lequochuy12012k4/ChillingCoffee/controllers"
	"github.com/gorilla/mux"
)

func AuthRoutes(router *mux.Router) {
	router.HandleFunc("/auth/signup", controller.SignUp).Methods(http.MethodPost)
	router.HandleFunc("/auth/login", controller.Login).Methods(http.MethodPost)
}
