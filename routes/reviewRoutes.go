package routes

import (
	"net/http"

	controller "github.com/lequochuy12012k4/ChillingCoffee/controllers"
	middleware "github.com/lequochuy12012k4/ChillingCoffee/middlewares"
	"github.com/gorilla/mux"
)

func ReviewPublicRoutes(router *mux.Router) {
	router.HandleFunc("/reviews", controller.GetReviews).Methods(http.MethodGet)
	router.HandleFunc("/reviews/{review_id}", controller.GetReview).Methods(http.MethodGet)

	// Submission is open but the handler still requires a resolvable user;
	// the optional middleware surfaces session claims when a token is sent.
	router.Handle("/reviews",
		middleware.OptionalAuthentication(http.HandlerFunc(controller.CreateReview))).
		Methods(http.MethodPost)
}

func ReviewProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/reviews/{review_id}", controller.UpdateReview).Methods(http.MethodPatch)
	router.HandleFunc("/reviews/{review_id}", controller.DeleteReview).Methods(http.MethodDelete)
}
