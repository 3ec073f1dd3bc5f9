package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mitchstreats/treats-backend/internal/app/model"
	"github.com/mitchstreats/treats-backend/internal/app/service"
	"github.com/mitchstreats/treats-backend/internal/middleware"
)

// fallbackMessage is what the customer sees when order processing fails for
// reasons they cannot fix themselves.
const fallbackMessage = "Error processing order. Please try again or call 281.236.3047"

type OrderController struct {
	orderService service.OrderService
}

func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

// SubmitOrder accepts a submitted order
// POST /api/submit-order
//
// Every response, success or not, uses the {success, message} wire shape the
// storefront client expects.
func (ctrl *OrderController) SubmitOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var order model.OrderSubmission
	if err := c.ShouldBindJSON(&order); err != nil {
		log.Warn("Invalid order submission body", map[string]interface{}{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, model.SubmitResponse{
			Success: false,
			Message: "Invalid order data",
		})
		return
	}

	orderID, err := ctrl.orderService.Accept(c.Request.Context(), order)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOrder) {
			log.Warn("Order rejected by intake checks", map[string]interface{}{
				"customer": order.Customer.Name,
			})
			c.JSON(http.StatusBadRequest, model.SubmitResponse{
				Success: false,
				Message: "Invalid order data",
			})
			return
		}
		log.Error("Failed to process order", err, nil)
		c.JSON(http.StatusInternalServerError, model.SubmitResponse{
			Success: false,
			Message: fallbackMessage,
		})
		return
	}

	log.Info("Order accepted", map[string]interface{}{
		"order_id": orderID,
	})
	c.JSON(http.StatusOK, model.SubmitResponse{
		Success: true,
		Message: "Order received successfully!",
	})
}
