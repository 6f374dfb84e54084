package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	shippingusecases "github.com/Hardik-Dharmik/shipping-b/internal/application/shipping/usecases"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/utils"
)

// QuoteRequest mirrors the quote form. Numeric fields arrive as strings from
// some clients, so they are accepted as raw JSON values and parsed leniently.
type QuoteRequest struct {
	PickupCountry      string      `json:"pickupCountry"`
	PickupPincode      string      `json:"pickupPincode"`
	DestinationCountry string      `json:"destinationCountry"`
	DestinationPincode string      `json:"destinationPincode"`
	ActualWeight       interface{} `json:"actualWeight"`
	Length             interface{} `json:"length"`
	Breadth            interface{} `json:"breadth"`
	Height             interface{} `json:"height"`
	ShipmentValue      interface{} `json:"shipmentValue"`
}

type ShippingHandler struct {
	quoteUC *shippingusecases.QuoteUseCase
	logger  logger.Interface
}

func NewShippingHandler(quoteUC *shippingusecases.QuoteUseCase, logger logger.Interface) *ShippingHandler {
	return &ShippingHandler{quoteUC: quoteUC, logger: logger}
}

// Quote handles POST /api/shipping/quote
func (h *ShippingHandler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(
			"Missing required fields: pickupCountry, pickupPincode, destinationCountry, destinationPincode, actualWeight"))
		return
	}

	weight, ok := parseNumber(req.ActualWeight)
	if req.ActualWeight != nil && !ok {
		utils.ErrorResponseWithError(c, errors.NewValidationError("actualWeight must be a positive number"))
		return
	}

	cmd := shippingusecases.QuoteCommand{
		PickupCountry:      req.PickupCountry,
		PickupPincode:      req.PickupPincode,
		DestinationCountry: req.DestinationCountry,
		DestinationPincode: req.DestinationPincode,
		ActualWeightKg:     weight,
	}

	if v, ok := parseNumber(req.Length); ok && v > 0 {
		cmd.LengthCm = v
	}
	if v, ok := parseNumber(req.Breadth); ok && v > 0 {
		cmd.BreadthCm = v
	}
	if v, ok := parseNumber(req.Height); ok && v > 0 {
		cmd.HeightCm = v
	}
	if req.ShipmentValue != nil {
		v, ok := parseNumber(req.ShipmentValue)
		if !ok {
			utils.ErrorResponseWithError(c, errors.NewValidationError("shipmentValue must be a non-negative number"))
			return
		}
		cmd.ShipmentValue = v
		cmd.HasValue = true
	}

	result, err := h.quoteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// parseNumber accepts JSON numbers and numeric strings.
func parseNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
