package handlers

import (
	rateRepo "counselhub/database/repository/rate"
	slotRepo "counselhub/database/repository/slot"
	"counselhub/services/booking"
	"counselhub/services/reservation"
	"counselhub/services/storage"
)

// HandlerBundle aggregates every handler group so route registration can
// receive one wired object from main.
type HandlerBundle struct {
	Auth         *AuthHandler
	Reservations *ReservationHandler
	Slots        *SlotHandler
	Bookings     *BookingHandler
	Rates        *RateHandler
	Storage      *StorageHandler
}

// NewHandlerBundle wires the handler groups onto their services.
func NewHandlerBundle(
	reservationSvc reservation.ReservationService,
	slots slotRepo.SlotRepository,
	orch booking.ScheduleOrchestrator,
	ledger booking.BookingPaymentLedger,
	rates rateRepo.RateRepository,
	storageSvc storage.StorageService,
) *HandlerBundle {
	return &HandlerBundle{
		Auth:         &AuthHandler{},
		Reservations: &ReservationHandler{Service: reservationSvc},
		Slots:        &SlotHandler{Repo: slots},
		Bookings:     &BookingHandler{Orchestrator: orch, Ledger: ledger},
		Rates:        &RateHandler{Repo: rates},
		Storage:      NewStorageHandler(storageSvc),
	}
}
