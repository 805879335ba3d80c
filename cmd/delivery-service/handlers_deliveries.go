package main

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"github.com/MikeMC777/ordenes-delivery/internal/delivery"
	"github.com/MikeMC777/ordenes-delivery/internal/dispatch"
	"github.com/MikeMC777/ordenes-delivery/internal/events"
	"github.com/MikeMC777/ordenes-delivery/internal/httpx"
	"github.com/MikeMC777/ordenes-delivery/internal/identity"
	"github.com/MikeMC777/ordenes-delivery/internal/rider"
)

// eventStream is the subscribe side of the event bus.
type eventStream interface {
	Subscribe(ctx context.Context, channel string) (<-chan events.Event, error)
}

// currentRider resolves the calling account's rider profile.
func currentRider(c *gin.Context, riders *rider.Service) (*rider.Rider, bool) {
	p, _ := httpx.CurrentPrincipal(c)
	rd, err := riders.GetByAccount(c.Request.Context(), p.AccountID)
	if err != nil {
		if errors.Is(err, rider.ErrNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"error": "no rider profile for this account"})
			return nil, false
		}
		writeErr(c, err)
		return nil, false
	}
	return rd, true
}

// currentActor is the caller as the ledger records it: riders by rider id,
// everyone else by account id.
func currentActor(c *gin.Context, riders *rider.Service) (delivery.Actor, bool) {
	p, _ := httpx.CurrentPrincipal(c)
	if p.Role != identity.RoleRider {
		return delivery.Actor{ID: p.AccountID, Role: p.Role}, true
	}
	rd, ok := currentRider(c, riders)
	if !ok {
		return delivery.Actor{}, false
	}
	return delivery.Actor{ID: rd.ID, Role: identity.RoleRider}, true
}

func canWatch(a delivery.Actor, d *delivery.Delivery) bool {
	switch a.Role {
	case identity.RoleAdmin:
		return true
	case identity.RoleCustomer:
		return d.CustomerID == a.ID
	case identity.RoleRider:
		return d.RiderID != nil && *d.RiderID == a.ID
	}
	return false
}

// myDeliveriesHandler godoc
// @Summary  The customer's deliveries, with confirmation codes
// @Tags     deliveries
// @Produce  json
// @Success  200  {array}  customerDelivery
// @Security BearerAuth
// @Router   /deliveries/mine [get]
func myDeliveriesHandler(ledger *delivery.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := httpx.CurrentPrincipal(c)
		views, err := ledger.List(c.Request.Context(), delivery.Filter{CustomerID: p.AccountID})
		if err != nil {
			writeErr(c, err)
			return
		}
		out := make([]customerDelivery, 0, len(views))
		for _, v := range views {
			out = append(out, customerDelivery{View: v, ConfirmationCode: v.ConfirmationCode})
		}
		c.JSON(http.StatusOK, out)
	}
}

// assignedDeliveriesHandler godoc
// @Summary  The rider's deliveries, with verification codes
// @Tags     deliveries
// @Produce  json
// @Success  200  {array}  riderDelivery
// @Security BearerAuth
// @Router   /deliveries/assigned [get]
func assignedDeliveriesHandler(ledger *delivery.Service, riders *rider.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rd, ok := currentRider(c, riders)
		if !ok {
			return
		}
		views, err := ledger.List(c.Request.Context(), delivery.Filter{RiderID: rd.ID})
		if err != nil {
			writeErr(c, err)
			return
		}
		out := make([]riderDelivery, 0, len(views))
		for _, v := range views {
			out = append(out, riderDelivery{View: v, VerificationCode: v.VerificationCode})
		}
		c.JSON(http.StatusOK, out)
	}
}

// offersHandler godoc
// @Summary  Deliveries open for acceptance
// @Tags     deliveries
// @Produce  json
// @Success  200  {array}   delivery.View
// @Failure  409  {object}  map[string]string
// @Security BearerAuth
// @Router   /deliveries/offers [get]
func offersHandler(disp *dispatch.Dispatcher, riders *rider.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rd, ok := currentRider(c, riders)
		if !ok {
			return
		}
		if rd.Status != rider.StatusActive {
			writeErr(c, delivery.ErrRiderNotActive)
			return
		}
		views, err := disp.OpenOffers(c.Request.Context())
		if err != nil {
			writeErr(c, err)
			return
		}
		if views == nil {
			views = []delivery.View{}
		}
		c.JSON(http.StatusOK, views)
	}
}

// acceptHandler godoc
// @Summary      Accept an offered delivery
// @Description  First active rider wins; everyone after gets 409.
// @Tags         deliveries
// @Produce      json
// @Param        id  path  string  true  "delivery id"
// @Success      200  {object}  riderDelivery
// @Failure      409  {object}  map[string]string
// @Security     BearerAuth
// @Router       /deliveries/{id}/accept [post]
func acceptHandler(disp *dispatch.Dispatcher, riders *rider.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rd, ok := currentRider(c, riders)
		if !ok {
			return
		}
		d, err := disp.Accept(c.Request.Context(), c.Param("id"), rd.ID)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, riderDelivery{View: delivery.View{Delivery: *d}, VerificationCode: d.VerificationCode})
	}
}

// pickupHandler godoc
// @Summary  Confirm pickup with the verification code
// @Tags     deliveries
// @Accept   json
// @Produce  json
// @Param    id    path  string       true  "delivery id"
// @Param    body  body  codeRequest  true  "verification code"
// @Success  200  {object}  delivery.Delivery
// @Failure  400  {object}  map[string]string
// @Failure  403  {object}  map[string]string
// @Failure  409  {object}  map[string]string
// @Security BearerAuth
// @Router   /deliveries/{id}/pickup [post]
func pickupHandler(ledger *delivery.Service, riders *rider.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req codeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rd, ok := currentRider(c, riders)
		if !ok {
			return
		}
		d, err := ledger.ConfirmPickup(c.Request.Context(), c.Param("id"), rd.ID, req.Code)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// dropoffHandler godoc
// @Summary      Confirm drop-off with the confirmation code
// @Description  Either the customer or the assigned rider may confirm. Completes the delivery and posts the rider's earning.
// @Tags         deliveries
// @Accept       json
// @Produce      json
// @Param        id    path  string       true  "delivery id"
// @Param        body  body  codeRequest  true  "confirmation code"
// @Success      200  {object}  delivery.Delivery
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Security     BearerAuth
// @Router       /deliveries/{id}/dropoff [post]
func dropoffHandler(ledger *delivery.Service, riders *rider.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req codeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		actor, ok := currentActor(c, riders)
		if !ok {
			return
		}
		d, err := ledger.ConfirmDropoff(c.Request.Context(), c.Param("id"), actor, req.Code)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// cancelHandler godoc
// @Summary      Abandon an assigned delivery
// @Description  The delivery is offered to other riders again.
// @Tags         deliveries
// @Accept       json
// @Produce      json
// @Param        id    path  string         true  "delivery id"
// @Param        body  body  reasonRequest  true  "reason"
// @Success      200  {object}  delivery.Delivery
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Security     BearerAuth
// @Router       /deliveries/{id}/cancel [post]
func cancelHandler(ledger *delivery.Service, riders *rider.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req reasonRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rd, ok := currentRider(c, riders)
		if !ok {
			return
		}
		d, err := ledger.Cancel(c.Request.Context(), c.Param("id"), rd.ID, req.Reason)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// confirmationQRHandler godoc
// @Summary  Confirmation code as a QR image
// @Tags     deliveries
// @Produce  png
// @Param    id  path  string  true  "delivery id"
// @Success  200
// @Failure  404  {object}  map[string]string
// @Security BearerAuth
// @Router   /deliveries/{id}/confirmation-qr [get]
func confirmationQRHandler(ledger *delivery.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := httpx.CurrentPrincipal(c)
		d, err := ledger.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeErr(c, err)
			return
		}
		if d.CustomerID != p.AccountID {
			writeErr(c, delivery.ErrNotFound)
			return
		}
		img, err := qrPNG(d.ConfirmationCode, 256)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.Header("Cache-Control", "no-store")
		c.Data(http.StatusOK, "image/png", img)
	}
}

func qrPNG(content string, size int) ([]byte, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, qr.Image(size)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// riderProfileHandler godoc
// @Summary  Public profile of the rider carrying a delivery
// @Tags     deliveries
// @Produce  json
// @Param    id  path  string  true  "delivery id"
// @Success  200  {object}  rider.PublicProfile
// @Failure  404  {object}  map[string]string
// @Security BearerAuth
// @Router   /deliveries/{id}/rider [get]
func riderProfileHandler(ledger *delivery.Service, riders *rider.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := httpx.CurrentPrincipal(c)
		d, err := ledger.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeErr(c, err)
			return
		}
		if d.CustomerID != p.AccountID {
			writeErr(c, delivery.ErrNotFound)
			return
		}
		if d.RiderID == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no rider assigned yet"})
			return
		}
		rd, err := riders.GetByID(c.Request.Context(), *d.RiderID)
		if err != nil {
			writeErr(c, err)
			return
		}
		prof, err := rider.Profile(rd)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, prof)
	}
}

// deliveryEventsHandler godoc
// @Summary      Live status of one delivery
// @Description  Server-sent events, one per transition, until the client disconnects.
// @Tags         deliveries
// @Produce      text/event-stream
// @Param        id  path  string  true  "delivery id"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Security     BearerAuth
// @Router       /deliveries/{id}/events [get]
func deliveryEventsHandler(ledger *delivery.Service, riders *rider.Service, stream eventStream) gin.HandlerFunc {
	return func(c *gin.Context) {
		if stream == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "live updates are not configured"})
			return
		}
		actor, ok := currentActor(c, riders)
		if !ok {
			return
		}
		d, err := ledger.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeErr(c, err)
			return
		}
		if !canWatch(actor, d) {
			writeErr(c, delivery.ErrNotFound)
			return
		}
		ctx := c.Request.Context()
		ch, err := stream.Subscribe(ctx, events.Channel(d.ID))
		if err != nil {
			writeErr(c, err)
			return
		}
		c.Header("Cache-Control", "no-cache")
		c.Header("X-Accel-Buffering", "no")
		c.SSEvent("status", gin.H{"delivery_id": d.ID, "status": d.Status})
		c.Stream(func(io.Writer) bool {
			select {
			case e, ok := <-ch:
				if !ok {
					return false
				}
				c.SSEvent(e.Type, e)
				return true
			case <-ctx.Done():
				return false
			}
		})
	}
}

// offersStreamHandler godoc
// @Summary      Live offers for riders
// @Description  Server-sent events for every delivery that opens for acceptance, until the client disconnects.
// @Tags         deliveries
// @Produce      text/event-stream
// @Success      200
// @Failure      409  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Security     BearerAuth
// @Router       /deliveries/offers/stream [get]
func offersStreamHandler(riders *rider.Service, stream eventStream) gin.HandlerFunc {
	return func(c *gin.Context) {
		if stream == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "live updates are not configured"})
			return
		}
		rd, ok := currentRider(c, riders)
		if !ok {
			return
		}
		if rd.Status != rider.StatusActive {
			writeErr(c, delivery.ErrRiderNotActive)
			return
		}
		ctx := c.Request.Context()
		ch, err := stream.Subscribe(ctx, events.OffersChannel)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.Header("Cache-Control", "no-cache")
		c.Header("X-Accel-Buffering", "no")
		c.Stream(func(io.Writer) bool {
			select {
			case e, ok := <-ch:
				if !ok {
					return false
				}
				c.SSEvent("offer", gin.H{"delivery_id": e.DeliveryID, "order_id": e.OrderID, "at": e.At})
				return true
			case <-ctx.Done():
				return false
			}
		})
	}
}
