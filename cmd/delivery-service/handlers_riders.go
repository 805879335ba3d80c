package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ordenes-delivery/internal/httpx"
	"github.com/MikeMC777/ordenes-delivery/internal/rider"
)

// registerRiderHandler godoc
// @Summary      Register the calling account as a rider
// @Description  New riders start pending until an admin approves them.
// @Tags         riders
// @Accept       json
// @Produce      json
// @Param        body  body      rider.RegisterInput  true  "rider profile"
// @Success      201   {object}  rider.Rider
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Security     BearerAuth
// @Router       /riders [post]
func registerRiderHandler(riders *rider.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := httpx.CurrentPrincipal(c)
		var in rider.RegisterInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rd, err := riders.Register(c.Request.Context(), p.AccountID, in)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, rd)
	}
}

// riderMeHandler godoc
// @Summary  The caller's rider profile, totals and balance
// @Tags     riders
// @Produce  json
// @Success  200  {object}  rider.Rider
// @Failure  403  {object}  map[string]string
// @Security BearerAuth
// @Router   /riders/me [get]
func riderMeHandler(riders *rider.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rd, ok := currentRider(c, riders)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, rd)
	}
}

// listRidersHandler godoc
// @Summary  List riders
// @Tags     admin
// @Produce  json
// @Param    status  query  string  false  "pending, active, suspended or deleted"
// @Success  200  {array}  rider.Rider
// @Security BearerAuth
// @Router   /admin/riders [get]
func listRidersHandler(riders *rider.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := riders.List(c.Request.Context(), rider.Status(c.Query("status")))
		if err != nil {
			writeErr(c, err)
			return
		}
		if list == nil {
			list = []rider.Rider{}
		}
		c.JSON(http.StatusOK, list)
	}
}

// riderStatusHandler godoc
// @Summary  Approve, suspend or soft-delete a rider
// @Tags     admin
// @Produce  json
// @Param    id  path  string  true  "rider id"
// @Success  200  {object}  rider.Rider
// @Failure  404  {object}  map[string]string
// @Failure  409  {object}  map[string]string
// @Security BearerAuth
// @Router   /admin/riders/{id}/approve [post]
// @Router   /admin/riders/{id}/suspend [post]
// @Router   /admin/riders/{id} [delete]
func riderStatusHandler(move func(ctx context.Context, id string) (*rider.Rider, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		rd, err := move(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, rd)
	}
}
