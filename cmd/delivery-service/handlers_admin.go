package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ordenes-delivery/internal/delivery"
	"github.com/MikeMC777/ordenes-delivery/internal/dispatch"
	"github.com/MikeMC777/ordenes-delivery/internal/httpx"
	"github.com/MikeMC777/ordenes-delivery/internal/identity"
	"github.com/MikeMC777/ordenes-delivery/internal/report"
)

func adminActor(c *gin.Context) delivery.Actor {
	p, _ := httpx.CurrentPrincipal(c)
	return delivery.Actor{ID: p.AccountID, Role: identity.RoleAdmin}
}

// adminListDeliveriesHandler godoc
// @Summary  Search deliveries
// @Tags     admin
// @Produce  json
// @Param    riderId     query  string  false  "rider id"
// @Param    customerId  query  string  false  "customer account id"
// @Param    orderId     query  string  false  "order id"
// @Param    status      query  string  false  "delivery status"
// @Success  200  {array}   adminDelivery
// @Failure  400  {object}  map[string]string
// @Security BearerAuth
// @Router   /admin/deliveries [get]
func adminListDeliveriesHandler(ledger *delivery.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := delivery.Status(c.Query("status"))
		if st != "" && !st.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown status %q", st)})
			return
		}
		views, err := ledger.List(c.Request.Context(), delivery.Filter{
			RiderID:    c.Query("riderId"),
			CustomerID: c.Query("customerId"),
			OrderID:    c.Query("orderId"),
			Status:     st,
		})
		if err != nil {
			writeErr(c, err)
			return
		}
		out := make([]adminDelivery, 0, len(views))
		for _, v := range views {
			out = append(out, adminDelivery{View: v, VerificationCode: v.VerificationCode, ConfirmationCode: v.ConfirmationCode})
		}
		c.JSON(http.StatusOK, out)
	}
}

// adminOfferHandler godoc
// @Summary  Offer a pending delivery to riders
// @Tags     admin
// @Produce  json
// @Param    id  path  string  true  "delivery id"
// @Success  200  {object}  delivery.Delivery
// @Failure  409  {object}  map[string]string
// @Security BearerAuth
// @Router   /admin/deliveries/{id}/offer [post]
func adminOfferHandler(disp *dispatch.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := disp.Offer(c.Request.Context(), c.Param("id"), adminActor(c))
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// adminAssignHandler godoc
// @Summary      Assign a rider directly
// @Description  Skips the offer and the rider eligibility check. Audited as admin_assign.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string         true  "delivery id"
// @Param        body  body  assignRequest  true  "rider"
// @Success      200  {object}  delivery.Delivery
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Security     BearerAuth
// @Router       /admin/deliveries/{id}/assign [post]
func adminAssignHandler(disp *dispatch.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req assignRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		d, err := disp.AssignManually(c.Request.Context(), c.Param("id"), req.RiderID, adminActor(c))
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// adminForcePickupHandler godoc
// @Summary  Mark picked up without the verification code
// @Tags     admin
// @Produce  json
// @Param    id  path  string  true  "delivery id"
// @Success  200  {object}  delivery.Delivery
// @Failure  409  {object}  map[string]string
// @Security BearerAuth
// @Router   /admin/deliveries/{id}/force-pickup [post]
func adminForcePickupHandler(ledger *delivery.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := ledger.AdminForcePickup(c.Request.Context(), c.Param("id"), adminActor(c))
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// adminForceCompleteHandler godoc
// @Summary      Complete without the confirmation code
// @Description  Posts the earning to the given rider. An earning in the body overrides the rider's share.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "delivery id"
// @Param        body  body  forceCompleteRequest  true  "rider and optional earning"
// @Success      200  {object}  delivery.Delivery
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Security     BearerAuth
// @Router       /admin/deliveries/{id}/force-complete [post]
func adminForceCompleteHandler(ledger *delivery.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req forceCompleteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		d, err := ledger.AdminForceComplete(c.Request.Context(), c.Param("id"), req.RiderID, req.Earning, adminActor(c))
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// adminCancelHandler godoc
// @Summary  Cancel a delivery and its order for good
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    id    path  string         true  "delivery id"
// @Param    body  body  reasonRequest  true  "reason"
// @Success  200  {object}  delivery.Delivery
// @Failure  400  {object}  map[string]string
// @Failure  409  {object}  map[string]string
// @Security BearerAuth
// @Router   /admin/deliveries/{id}/cancel [post]
func adminCancelHandler(ledger *delivery.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req reasonRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		d, err := ledger.AdminCancel(c.Request.Context(), c.Param("id"), req.Reason, adminActor(c))
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// adminEventsHandler godoc
// @Summary  Audit trail of a delivery
// @Tags     admin
// @Produce  json
// @Param    id  path  string  true  "delivery id"
// @Success  200  {array}   delivery.Event
// @Failure  404  {object}  map[string]string
// @Security BearerAuth
// @Router   /admin/deliveries/{id}/events [get]
func adminEventsHandler(ledger *delivery.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		evs, err := ledger.Events(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeErr(c, err)
			return
		}
		if evs == nil {
			evs = []delivery.Event{}
		}
		c.JSON(http.StatusOK, evs)
	}
}

// earningsReportHandler godoc
// @Summary      Rider earnings workbook
// @Description  Delivered deliveries in [from, to), dates as YYYY-MM-DD. Defaults to the last 30 days.
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        from  query  string  false  "first day"
// @Param        to    query  string  false  "day after the last"
// @Success      200
// @Failure      400  {object}  map[string]string
// @Security     BearerAuth
// @Router       /admin/reports/earnings.xlsx [get]
func earningsReportHandler(ledger *delivery.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		to := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
		from := to.AddDate(0, 0, -30)
		var err error
		if v := c.Query("from"); v != "" {
			if from, err = time.Parse(time.DateOnly, v); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
				return
			}
		}
		if v := c.Query("to"); v != "" {
			if to, err = time.Parse(time.DateOnly, v); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
				return
			}
		}
		if !from.Before(to) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be before to"})
			return
		}

		views, err := ledger.List(c.Request.Context(), delivery.Filter{
			Status:        delivery.StatusDelivered,
			DeliveredFrom: &from,
			DeliveredTo:   &to,
			Limit:         500,
		})
		if err != nil {
			writeErr(c, err)
			return
		}
		f, err := report.Earnings(views, from, to)
		if err != nil {
			writeErr(c, err)
			return
		}
		defer f.Close()

		name := fmt.Sprintf("earnings_%s_%s.xlsx", from.Format(time.DateOnly), to.Format(time.DateOnly))
		c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Status(http.StatusOK)
		if err := f.Write(c.Writer); err != nil {
			c.Error(err)
		}
	}
}
