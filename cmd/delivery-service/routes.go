package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/ordenes-delivery/docs"
	"github.com/MikeMC777/ordenes-delivery/internal/delivery"
	"github.com/MikeMC777/ordenes-delivery/internal/dispatch"
	"github.com/MikeMC777/ordenes-delivery/internal/httpx"
	"github.com/MikeMC777/ordenes-delivery/internal/identity"
	"github.com/MikeMC777/ordenes-delivery/internal/order"
	"github.com/MikeMC777/ordenes-delivery/internal/rider"
)

type deps struct {
	verifier           httpx.TokenVerifier
	orders             *order.Service
	riders             *rider.Service
	ledger             *delivery.Service
	dispatch           *dispatch.Dispatcher
	stream             eventStream
	integrationKeyHash string
}

func newRouter(d deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	internal := api.Group("/internal", httpx.IntegrationKey(d.integrationKeyHash))
	internal.POST("/orders/:id/delivery", createDeliveryForOrderHandler(d.dispatch))

	authed := api.Group("", httpx.Auth(d.verifier))
	customer := httpx.RequireRole(identity.RoleCustomer)
	riderOnly := httpx.RequireRole(identity.RoleRider)
	party := httpx.RequireRole(identity.RoleCustomer, identity.RoleRider)

	authed.POST("/orders", customer, checkoutHandler(d.orders, d.dispatch))
	authed.GET("/orders/mine", customer, listMyOrdersHandler(d.orders))
	authed.GET("/orders/:id", httpx.RequireRole(identity.RoleCustomer, identity.RoleAdmin), getOrderHandler(d.orders))

	authed.POST("/riders", riderOnly, registerRiderHandler(d.riders))
	authed.GET("/riders/me", riderOnly, riderMeHandler(d.riders))

	dl := authed.Group("/deliveries")
	dl.GET("/mine", customer, myDeliveriesHandler(d.ledger))
	dl.GET("/assigned", riderOnly, assignedDeliveriesHandler(d.ledger, d.riders))
	dl.GET("/offers", riderOnly, offersHandler(d.dispatch, d.riders))
	dl.GET("/offers/stream", riderOnly, offersStreamHandler(d.riders, d.stream))
	dl.POST("/:id/accept", riderOnly, acceptHandler(d.dispatch, d.riders))
	dl.POST("/:id/pickup", riderOnly, pickupHandler(d.ledger, d.riders))
	dl.POST("/:id/dropoff", party, dropoffHandler(d.ledger, d.riders))
	dl.POST("/:id/cancel", riderOnly, cancelHandler(d.ledger, d.riders))
	dl.GET("/:id/confirmation-qr", customer, confirmationQRHandler(d.ledger))
	dl.GET("/:id/rider", customer, riderProfileHandler(d.ledger, d.riders))
	dl.GET("/:id/events", httpx.RequireRole(identity.RoleCustomer, identity.RoleRider, identity.RoleAdmin),
		deliveryEventsHandler(d.ledger, d.riders, d.stream))

	admin := authed.Group("/admin", httpx.RequireRole(identity.RoleAdmin))
	admin.GET("/deliveries", adminListDeliveriesHandler(d.ledger))
	admin.POST("/deliveries/:id/offer", adminOfferHandler(d.dispatch))
	admin.POST("/deliveries/:id/assign", adminAssignHandler(d.dispatch))
	admin.POST("/deliveries/:id/force-pickup", adminForcePickupHandler(d.ledger))
	admin.POST("/deliveries/:id/force-complete", adminForceCompleteHandler(d.ledger))
	admin.POST("/deliveries/:id/cancel", adminCancelHandler(d.ledger))
	admin.GET("/deliveries/:id/events", adminEventsHandler(d.ledger))
	admin.GET("/riders", listRidersHandler(d.riders))
	admin.POST("/riders/:id/approve", riderStatusHandler(d.riders.Approve))
	admin.POST("/riders/:id/suspend", riderStatusHandler(d.riders.Suspend))
	admin.DELETE("/riders/:id", riderStatusHandler(d.riders.Delete))
	admin.PUT("/orders/:id/status", updateOrderStatusHandler(d.orders))
	admin.GET("/reports/earnings.xlsx", earningsReportHandler(d.ledger))

	return r
}
