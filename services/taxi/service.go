package taxi

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	taxiRepo "casaherenia/database/repository/taxi"
	"casaherenia/models"
	"casaherenia/services/availability"
	"casaherenia/services/notification"
)

// Fixed route pricing, Havana to the house.
const (
	colectivoPerSeat = 25
	privadoFlat      = 120

	maxColectivoSeats = 8
	maxPrivadoSeats   = 4
)

var (
	ErrInvalidServiceType = errors.New("service type must be colectivo or privado")
	ErrInvalidPassengers  = errors.New("passenger count out of range for this service")
	ErrMissingContact     = errors.New("client name and whatsapp are required")
	ErrInvalidPickupDate  = errors.New("pickup date must be a valid calendar day")
)

// RequestInput is the guest-facing transport request.
type RequestInput struct {
	ClientName      string `json:"client_name"`
	ClientWhatsapp  string `json:"client_whatsapp"`
	PickupAddress   string `json:"pickup_address"`
	PickupDate      string `json:"pickup_date"`
	ServiceType     string `json:"service_type"`
	PassengersCount int    `json:"passengers_count"`
	PayOnline       bool   `json:"pay_online"`
}

// Service validates, prices and records transport requests.
type Service struct {
	Repo     taxiRepo.TaxiRepository
	Notifier notification.NotificationService
	Logger   *zap.Logger
}

// Price returns the route price for a service type and party size.
func Price(serviceType string, passengers int) (float64, error) {
	switch serviceType {
	case models.TaxiColectivo:
		if passengers < 1 || passengers > maxColectivoSeats {
			return 0, fmt.Errorf("%w: colectivo seats 1-%d", ErrInvalidPassengers, maxColectivoSeats)
		}
		return float64(colectivoPerSeat * passengers), nil
	case models.TaxiPrivado:
		if passengers < 1 || passengers > maxPrivadoSeats {
			return 0, fmt.Errorf("%w: privado seats 1-%d", ErrInvalidPassengers, maxPrivadoSeats)
		}
		return privadoFlat, nil
	default:
		return 0, ErrInvalidServiceType
	}
}

// Request prices and stores a transport request and alerts the owner. The
// owner alert is sent even when the store write fails: a missed pickup is
// worse than a missing row.
func (s *Service) Request(ctx context.Context, in RequestInput) (*models.TaxiRequest, error) {
	serviceType := strings.ToLower(strings.TrimSpace(in.ServiceType))
	price, err := Price(serviceType, in.PassengersCount)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.ClientName) == "" || strings.TrimSpace(in.ClientWhatsapp) == "" {
		return nil, ErrMissingContact
	}
	if _, err := availability.ParseDay(in.PickupDate); err != nil {
		return nil, ErrInvalidPickupDate
	}

	req := models.TaxiRequest{
		ClientName:      strings.TrimSpace(in.ClientName),
		ClientWhatsapp:  strings.TrimSpace(in.ClientWhatsapp),
		PickupAddress:   strings.TrimSpace(in.PickupAddress),
		PickupDate:      in.PickupDate,
		ServiceType:     serviceType,
		PassengersCount: in.PassengersCount,
		TotalPrice:      price,
		PayOnline:       in.PayOnline,
		CreatedAt:       time.Now(),
	}

	id, err := s.Repo.Create(ctx, req)
	if err != nil {
		s.Logger.Error("taxi request not stored, notifying owner anyway", zap.Error(err))
	} else {
		req.ID = id
	}

	s.Notifier.TaxiRequested(ctx, req)
	s.Logger.Info("taxi requested",
		zap.String("service", serviceType),
		zap.Int("passengers", in.PassengersCount),
		zap.Float64("price", price))
	return &req, nil
}

// List returns every stored transport request, newest first per the store
// ordering.
func (s *Service) List(ctx context.Context) ([]models.TaxiRequest, error) {
	return s.Repo.All(ctx)
}
