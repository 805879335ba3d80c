package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ordenes-delivery/internal/delivery"
	"github.com/MikeMC777/ordenes-delivery/internal/dispatch"
	"github.com/MikeMC777/ordenes-delivery/internal/order"
	"github.com/MikeMC777/ordenes-delivery/internal/rider"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, delivery.ErrMalformedCode),
		errors.Is(err, delivery.ErrReasonRequired),
		errors.Is(err, delivery.ErrInvalidAmount),
		errors.Is(err, delivery.ErrInvalidInput),
		errors.Is(err, order.ErrInvalidOrder),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, rider.ErrInvalidInput),
		errors.Is(err, rider.ErrAccountInvalid),
		errors.Is(err, dispatch.ErrNotDeliveryOrder):
		return http.StatusBadRequest
	case errors.Is(err, delivery.ErrNotParticipant):
		return http.StatusForbidden
	case errors.Is(err, delivery.ErrNotFound),
		errors.Is(err, delivery.ErrRiderNotFound),
		errors.Is(err, order.ErrNotFound),
		errors.Is(err, rider.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, delivery.ErrAlreadyAssigned),
		errors.Is(err, delivery.ErrInvalidState),
		errors.Is(err, delivery.ErrCodeMismatch),
		errors.Is(err, delivery.ErrRiderNotActive),
		errors.Is(err, delivery.ErrDuplicateOrder),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, rider.ErrAlreadyRegistered),
		errors.Is(err, rider.ErrInvalidTransition):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// writeErr maps domain errors to a status and the {"error": ...} body.
// Unclassified errors are logged and hidden from the client.
func writeErr(c *gin.Context, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		rid, _ := c.Get("rid")
		log.Printf("[http] rid=%v internal error: %v", rid, err)
		c.JSON(code, gin.H{"error": "internal error"})
		return
	}
	c.JSON(code, gin.H{"error": err.Error()})
}
