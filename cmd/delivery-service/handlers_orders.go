package main

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ordenes-delivery/internal/dispatch"
	"github.com/MikeMC777/ordenes-delivery/internal/httpx"
	"github.com/MikeMC777/ordenes-delivery/internal/identity"
	"github.com/MikeMC777/ordenes-delivery/internal/order"
)

// checkoutHandler godoc
// @Summary      Place an order
// @Description  Prices the items against the catalog. Delivery orders get a delivery right away.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      order.CheckoutRequest  true  "checkout"
// @Success      201   {object}  checkoutResponse
// @Failure      400   {object}  map[string]string
// @Security     BearerAuth
// @Router       /orders [post]
func checkoutHandler(orders *order.Service, disp *dispatch.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := httpx.CurrentPrincipal(c)
		var req order.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		o, err := orders.Checkout(c.Request.Context(), p.AccountID, req)
		if err != nil {
			writeErr(c, err)
			return
		}
		resp := checkoutResponse{Order: o}
		if o.DeliveryType == order.DeliveryTypeDelivery {
			d, err := disp.CreateFromOrder(c.Request.Context(), o)
			if err != nil {
				// The order stands; the dispatch sweep picks it up.
				log.Printf("[dispatch] create delivery for order %s: %v", o.ID, err)
			} else {
				resp.DeliveryID = d.ID
			}
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// getOrderHandler godoc
// @Summary  Get an order with its items
// @Tags     orders
// @Produce  json
// @Param    id   path      string  true  "order id"
// @Success  200  {object}  order.Order
// @Failure  404  {object}  map[string]string
// @Security BearerAuth
// @Router   /orders/{id} [get]
func getOrderHandler(orders *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := httpx.CurrentPrincipal(c)
		o, err := orders.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeErr(c, err)
			return
		}
		// Other customers' orders do not exist as far as the caller knows.
		if p.Role != identity.RoleAdmin && o.CustomerID != p.AccountID {
			writeErr(c, order.ErrNotFound)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// listMyOrdersHandler godoc
// @Summary  List the caller's orders
// @Tags     orders
// @Produce  json
// @Param    limit   query  int  false  "page size"
// @Param    offset  query  int  false  "offset"
// @Success  200  {array}  order.Order
// @Security BearerAuth
// @Router   /orders/mine [get]
func listMyOrdersHandler(orders *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := httpx.CurrentPrincipal(c)
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		list, err := orders.ListByCustomer(c.Request.Context(), p.AccountID, limit, offset)
		if err != nil {
			writeErr(c, err)
			return
		}
		if list == nil {
			list = []order.Order{}
		}
		c.JSON(http.StatusOK, list)
	}
}

// updateOrderStatusHandler godoc
// @Summary      Move an order along the kitchen workflow
// @Description  Delivery orders reach in_transit, delivered and cancelled only through their delivery.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "order id"
// @Param        body  body      order.UpdateStatusRequest  true  "new status"
// @Success      200   {object}  order.Order
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Security     BearerAuth
// @Router       /admin/orders/{id}/status [put]
func updateOrderStatusHandler(orders *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		o, err := orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// createDeliveryForOrderHandler godoc
// @Summary      Create the delivery for an existing order
// @Description  Idempotent: an order that already has a delivery gets it back.
// @Tags         integration
// @Produce      json
// @Param        id  path  string  true  "order id"
// @Param        X-Integration-Key  header  string  true  "shared key"
// @Success      200  {object}  delivery.Delivery
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /internal/orders/{id}/delivery [post]
func createDeliveryForOrderHandler(disp *dispatch.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := disp.CreateForOrderID(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}
