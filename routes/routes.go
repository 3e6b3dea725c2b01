package routes

import (
	"github.com/abdurrahmanmahmud5981/SoleAmhere/auth"
	"github.com/abdurrahmanmahmud5981/SoleAmhere/bids"
	"github.com/abdurrahmanmahmud5981/SoleAmhere/jobs"
	"github.com/abdurrahmanmahmud5981/SoleAmhere/middleware"

	"github.com/julienschmidt/httprouter"
)

func AddSessionRoutes(router *httprouter.Router, h *auth.Handler) {
	router.POST("/session", h.CreateSession)
	router.GET("/session/logout", h.Logout)
}

func AddJobRoutes(router *httprouter.Router, h *jobs.Handler, authmw *middleware.Auth) {
	router.POST("/add-job", h.CreateJob)
	router.GET("/jobs", h.GetJobs)
	router.GET("/jobs/:email", authmw.OwnerOnly("email", h.GetJobsByOwner))
	router.GET("/job/:id", h.GetJob)
	router.DELETE("/job/:id", authmw.Authenticate(h.DeleteJob))
	router.PUT("/update-job/:id", h.UpdateJob)
	router.GET("/all-jobs", h.SearchJobs)
}

func AddBidRoutes(router *httprouter.Router, h *bids.Handler, authmw *middleware.Auth) {
	router.POST("/add-bid", h.PlaceBid)
	router.GET("/bids/:email", authmw.OwnerOnly("email", h.GetBidsForUser))
	router.PATCH("/bid-status-update/:id", authmw.Authenticate(h.UpdateBidStatus))
}
