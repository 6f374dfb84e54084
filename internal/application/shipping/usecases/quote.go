package usecases

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
)

// Per-kg carrier rates in AED. The quotes are synthetic; there is no real
// carrier integration behind them.
var carrierRates = []struct {
	Carrier string
	Rate    float64
}{
	{"DHL", 10},
	{"FedEx", 8},
	{"UPS", 6},
}

const (
	minDeliveryDays = 3
	maxDeliveryDays = 7
)

type QuoteCommand struct {
	PickupCountry      string
	PickupPincode      string
	DestinationCountry string
	DestinationPincode string
	ActualWeightKg     float64

	// Optional parcel details, echoed back when positive.
	LengthCm      float64
	BreadthCm     float64
	HeightCm      float64
	ShipmentValue float64
	HasValue      bool
}

type LocationDTO struct {
	Country string `json:"country"`
	Pincode string `json:"pincode"`
}

type WeightDTO struct {
	ActualWeight float64 `json:"actualWeight"`
	Unit         string  `json:"unit"`
}

type DimensionsDTO struct {
	Length  float64 `json:"length,omitempty"`
	Breadth float64 `json:"breadth,omitempty"`
	Height  float64 `json:"height,omitempty"`
	Unit    string  `json:"unit"`
}

type ShipmentValueDTO struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

type CarrierQuoteDTO struct {
	Carrier               string  `json:"carrier"`
	Cost                  float64 `json:"cost"`
	Currency              string  `json:"currency"`
	EstimatedDeliveryDays int     `json:"estimatedDeliveryDays"`
	EstimatedDelivery     string  `json:"estimatedDelivery"`
	EstimatedDeliveryDate string  `json:"estimatedDeliveryDate"`
	EstimatedDeliveryTime string  `json:"estimatedDeliveryTime"`
	EstimatedDeliveryAt   string  `json:"estimatedDeliveryDateTime"`
}

type QuoteResult struct {
	Pickup        LocationDTO       `json:"pickup"`
	Destination   LocationDTO       `json:"destination"`
	Weight        WeightDTO         `json:"weight"`
	Dimensions    *DimensionsDTO    `json:"dimensions"`
	ShipmentValue *ShipmentValueDTO `json:"shipmentValue"`
	Quotes        []CarrierQuoteDTO `json:"quotes"`
	CalculatedAt  string            `json:"calculatedAt"`
}

// QuoteUseCase produces synthetic shipping quotes: fixed per-kg carrier rates
// with randomized business-day delivery estimates. The clock and the random
// source are injected so tests can pin them down.
type QuoteUseCase struct {
	currency string
	now      func() time.Time
	rng      *rand.Rand
	logger   logger.Interface
}

func NewQuoteUseCase(currency string, now func() time.Time, rng *rand.Rand, logger logger.Interface) *QuoteUseCase {
	if now == nil {
		now = time.Now
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &QuoteUseCase{
		currency: currency,
		now:      now,
		rng:      rng,
		logger:   logger,
	}
}

func (uc *QuoteUseCase) Execute(ctx context.Context, cmd QuoteCommand) (*QuoteResult, error) {
	if cmd.PickupCountry == "" || cmd.PickupPincode == "" ||
		cmd.DestinationCountry == "" || cmd.DestinationPincode == "" || cmd.ActualWeightKg == 0 {
		return nil, errors.NewValidationError(
			"Missing required fields: pickupCountry, pickupPincode, destinationCountry, destinationPincode, actualWeight")
	}
	if cmd.ActualWeightKg <= 0 {
		return nil, errors.NewValidationError("actualWeight must be a positive number")
	}
	if cmd.HasValue && cmd.ShipmentValue < 0 {
		return nil, errors.NewValidationError("shipmentValue must be a non-negative number")
	}

	result := &QuoteResult{
		Pickup:       LocationDTO{Country: cmd.PickupCountry, Pincode: cmd.PickupPincode},
		Destination:  LocationDTO{Country: cmd.DestinationCountry, Pincode: cmd.DestinationPincode},
		Weight:       WeightDTO{ActualWeight: cmd.ActualWeightKg, Unit: "kg"},
		Quotes:       make([]CarrierQuoteDTO, 0, len(carrierRates)),
		CalculatedAt: uc.now().UTC().Format(time.RFC3339),
	}

	if cmd.LengthCm > 0 || cmd.BreadthCm > 0 || cmd.HeightCm > 0 {
		result.Dimensions = &DimensionsDTO{
			Length:  cmd.LengthCm,
			Breadth: cmd.BreadthCm,
			Height:  cmd.HeightCm,
			Unit:    "cm",
		}
	}
	if cmd.HasValue {
		result.ShipmentValue = &ShipmentValueDTO{Value: cmd.ShipmentValue, Currency: uc.currency}
	}

	for _, carrier := range carrierRates {
		days := minDeliveryDays + uc.rng.Intn(maxDeliveryDays-minDeliveryDays+1)
		deliveryAt := uc.estimateDelivery(days)

		result.Quotes = append(result.Quotes, CarrierQuoteDTO{
			Carrier:               carrier.Carrier,
			Cost:                  cmd.ActualWeightKg * carrier.Rate,
			Currency:              uc.currency,
			EstimatedDeliveryDays: days,
			EstimatedDelivery:     fmt.Sprintf("%d business days", days),
			EstimatedDeliveryDate: deliveryAt.Format("2006-01-02"),
			EstimatedDeliveryTime: deliveryAt.Format("15:04:05"),
			EstimatedDeliveryAt:   deliveryAt.Format(time.RFC3339),
		})
	}

	uc.logger.Debugw("shipping quote calculated",
		"weight_kg", cmd.ActualWeightKg,
		"pickup", cmd.PickupCountry,
		"destination", cmd.DestinationCountry,
	)

	return result, nil
}

// estimateDelivery walks forward the given number of business days, skipping
// weekends, and lands on a random time within business hours.
func (uc *QuoteUseCase) estimateDelivery(businessDays int) time.Time {
	deliveryDate := uc.now()
	added := 0
	for added < businessDays {
		deliveryDate = deliveryDate.AddDate(0, 0, 1)
		if deliveryDate.Weekday() != time.Saturday && deliveryDate.Weekday() != time.Sunday {
			added++
		}
	}

	hour := 9 + uc.rng.Intn(9)
	minute := uc.rng.Intn(60)
	return time.Date(
		deliveryDate.Year(), deliveryDate.Month(), deliveryDate.Day(),
		hour, minute, 0, 0, deliveryDate.Location(),
	)
}
