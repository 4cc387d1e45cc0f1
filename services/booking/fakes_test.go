package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"counselhub/models"
)

// In-memory fakes for the repositories and collaborators the booking flow
// touches. They mirror the Mongo implementations' observable behavior,
// including not-found sentinels and the booked:false guard on holds.

type fakeSlotRepo struct {
	slots map[string]*models.ScheduleSlot
	seq   int
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: map[string]*models.ScheduleSlot{}}
}

func (f *fakeSlotRepo) Create(ctx context.Context, slot models.ScheduleSlot) (*models.ScheduleSlot, error) {
	f.seq++
	if slot.ID == "" {
		slot.ID = fmt.Sprintf("slot-%d", f.seq)
	}
	slot.CreatedAt = time.Now()
	f.slots[slot.ID] = &slot
	out := slot
	return &out, nil
}

func (f *fakeSlotRepo) GetByID(ctx context.Context, id string) (*models.ScheduleSlot, error) {
	slot, ok := f.slots[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	out := *slot
	return &out, nil
}

func (f *fakeSlotRepo) GetByMeetingBookingID(ctx context.Context, meetingBookingID string) (*models.ScheduleSlot, error) {
	for _, slot := range f.slots {
		if slot.MeetingBookingID == meetingBookingID {
			out := *slot
			return &out, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeSlotRepo) GetByPaymentID(ctx context.Context, bookingPaymentID string) (*models.ScheduleSlot, error) {
	for _, slot := range f.slots {
		if slot.BookingPaymentID == bookingPaymentID {
			out := *slot
			return &out, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeSlotRepo) List(ctx context.Context, filter models.SlotFilter) ([]models.ScheduleSlot, int64, error) {
	var out []models.ScheduleSlot
	for _, slot := range f.slots {
		out = append(out, *slot)
	}
	return out, int64(len(out)), nil
}

func (f *fakeSlotRepo) DeleteByID(ctx context.Context, id string) error {
	if _, ok := f.slots[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.slots, id)
	return nil
}

func (f *fakeSlotRepo) AttachHold(ctx context.Context, slotID, meetingBookingID string, expiresIn time.Time) error {
	slot, ok := f.slots[slotID]
	if !ok || slot.Booked {
		return mongo.ErrNoDocuments
	}
	slot.MeetingBookingID = meetingBookingID
	slot.ExpiresIn = &expiresIn
	return nil
}

func (f *fakeSlotRepo) AttachClientAndPayment(ctx context.Context, slotID, clientID, bookingPaymentID string) error {
	slot, ok := f.slots[slotID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	slot.ClientID = clientID
	slot.BookingPaymentID = bookingPaymentID
	return nil
}

func (f *fakeSlotRepo) MarkBooked(ctx context.Context, slotID string) error {
	slot, ok := f.slots[slotID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	slot.Booked = true
	slot.ExpiresIn = nil
	return nil
}

func (f *fakeSlotRepo) ReleaseHold(ctx context.Context, slotID string) error {
	slot, ok := f.slots[slotID]
	if !ok || slot.Booked {
		return mongo.ErrNoDocuments
	}
	slot.MeetingBookingID = ""
	slot.BookingPaymentID = ""
	slot.ClientID = ""
	slot.ExpiresIn = nil
	return nil
}

func (f *fakeSlotRepo) ListExpiredHolds(ctx context.Context, now time.Time) ([]models.ScheduleSlot, error) {
	var out []models.ScheduleSlot
	for _, slot := range f.slots {
		if !slot.Booked && slot.MeetingBookingID != "" && slot.ExpiresIn != nil && slot.ExpiresIn.Before(now) {
			out = append(out, *slot)
		}
	}
	return out, nil
}

type fakeMeetingRepo struct {
	meetings map[string]*models.MeetingBooking
	seq      int
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{meetings: map[string]*models.MeetingBooking{}}
}

func (f *fakeMeetingRepo) Create(ctx context.Context, booking models.MeetingBooking) (*models.MeetingBooking, error) {
	f.seq++
	if booking.ID == "" {
		booking.ID = fmt.Sprintf("mb-%d", f.seq)
	}
	booking.CreatedAt = time.Now()
	f.meetings[booking.ID] = &booking
	out := booking
	return &out, nil
}

func (f *fakeMeetingRepo) GetByID(ctx context.Context, id string) (*models.MeetingBooking, error) {
	m, ok := f.meetings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	out := *m
	return &out, nil
}

func (f *fakeMeetingRepo) UpdateStatus(ctx context.Context, id string, status models.MeetingBookingStatus) error {
	m, ok := f.meetings[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	m.Status = status
	return nil
}

func (f *fakeMeetingRepo) SetBookingPaymentID(ctx context.Context, id, bookingPaymentID string) error {
	m, ok := f.meetings[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	m.BookingPaymentID = bookingPaymentID
	return nil
}

func (f *fakeMeetingRepo) SetClientID(ctx context.Context, id, clientID string) error {
	m, ok := f.meetings[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	m.ClientID = clientID
	return nil
}

func (f *fakeMeetingRepo) SetServiceID(ctx context.Context, id, serviceID string) error {
	m, ok := f.meetings[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	m.ServiceID = serviceID
	return nil
}

func (f *fakeMeetingRepo) SetCalendarEventID(ctx context.Context, id, eventID string) error {
	m, ok := f.meetings[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	m.CalendarEventID = eventID
	return nil
}

func (f *fakeMeetingRepo) DeleteByID(ctx context.Context, id string) error {
	if _, ok := f.meetings[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.meetings, id)
	return nil
}

type fakePaymentRepo struct {
	payments map[string]models.BookingPayment
	seq      int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[string]models.BookingPayment{}}
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment models.BookingPayment) (*models.BookingPayment, error) {
	f.seq++
	if payment.ID == "" {
		payment.ID = fmt.Sprintf("pay-%d", f.seq)
	}
	payment.CreatedAt = time.Now()
	f.payments[payment.ID] = payment
	out := payment
	return &out, nil
}

func (f *fakePaymentRepo) GetByID(ctx context.Context, id string) (*models.BookingPayment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	out := p
	return &out, nil
}

func (f *fakePaymentRepo) Update(ctx context.Context, payment *models.BookingPayment) error {
	if _, ok := f.payments[payment.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	f.payments[payment.ID] = *payment
	return nil
}

type fakeClientRepo struct {
	clients map[string]*models.Client // keyed by id
	seq     int
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[string]*models.Client{}}
}

func (f *fakeClientRepo) UpsertByEmail(ctx context.Context, client models.Client) (*models.Client, error) {
	email := strings.ToLower(strings.TrimSpace(client.Email))
	for _, existing := range f.clients {
		if existing.Email == email {
			existing.FirstName = client.FirstName
			existing.LastName = client.LastName
			existing.Country = client.Country
			existing.Nationality = client.Nationality
			out := *existing
			return &out, nil
		}
	}
	f.seq++
	client.ID = fmt.Sprintf("client-%d", f.seq)
	client.Email = email
	f.clients[client.ID] = &client
	out := client
	return &out, nil
}

func (f *fakeClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	out := *c
	return &out, nil
}

func (f *fakeClientRepo) GetByEmail(ctx context.Context, email string) (*models.Client, error) {
	for _, c := range f.clients {
		if c.Email == strings.ToLower(strings.TrimSpace(email)) {
			out := *c
			return &out, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeClientRepo) MarkExisting(ctx context.Context, id string) error {
	c, ok := f.clients[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	c.Existing = true
	return nil
}

type fakeCounsellorRepo struct {
	counsellors map[string]*models.Counsellor
}

func newFakeCounsellorRepo(counsellors ...models.Counsellor) *fakeCounsellorRepo {
	repo := &fakeCounsellorRepo{counsellors: map[string]*models.Counsellor{}}
	for i := range counsellors {
		repo.counsellors[counsellors[i].ID] = &counsellors[i]
	}
	return repo
}

func (f *fakeCounsellorRepo) GetByID(ctx context.Context, id string) (*models.Counsellor, error) {
	c, ok := f.counsellors[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	out := *c
	return &out, nil
}

type fakeGateway struct {
	orders      map[string]*models.GatewayOrder
	seq         int
	createCalls int
	getCalls    int
	captures    int
	cancels     int
	failGet     error
	failCapture error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{orders: map[string]*models.GatewayOrder{}}
}

func (g *fakeGateway) CreateOrder(ctx context.Context, account string, amount float64, currency string) (*models.GatewayOrder, error) {
	g.createCalls++
	g.seq++
	order := &models.GatewayOrder{
		OrderID:   fmt.Sprintf("ord-%d", g.seq),
		Status:    models.GatewayOrderCreated,
		Amount:    amount,
		Currency:  currency,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	g.orders[order.OrderID] = order
	out := *order
	return &out, nil
}

func (g *fakeGateway) CaptureOrder(ctx context.Context, orderID string) (*models.GatewayOrder, error) {
	if g.failCapture != nil {
		return nil, g.failCapture
	}
	order, ok := g.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("unknown order %s", orderID)
	}
	g.captures++
	order.Status = models.GatewayOrderCompleted
	order.UpdatedAt = time.Now()
	out := *order
	return &out, nil
}

func (g *fakeGateway) CancelOrder(ctx context.Context, orderID string) (*models.GatewayOrder, error) {
	order, ok := g.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("unknown order %s", orderID)
	}
	g.cancels++
	order.Status = models.GatewayOrderCancelled
	out := *order
	return &out, nil
}

func (g *fakeGateway) GetOrder(ctx context.Context, orderID string) (*models.GatewayOrder, error) {
	if g.failGet != nil {
		return nil, g.failGet
	}
	g.getCalls++
	order, ok := g.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("unknown order %s", orderID)
	}
	out := *order
	return &out, nil
}

type fakeResolver struct {
	amount   float64
	currency string
	err      error
}

func (r *fakeResolver) Resolve(ctx context.Context, counsellorID, serviceID string, durationHours int, country, nationality string) (*models.ResolvedRate, error) {
	if r.err != nil {
		return nil, r.err
	}
	return &models.ResolvedRate{
		Record:   models.RateRecord{ID: "rate-1", CounsellorID: counsellorID},
		Amount:   r.amount,
		Currency: r.currency,
	}, nil
}

type fakeEnqueuer struct {
	payloads []models.NotificationPayload
}

func (e *fakeEnqueuer) EnqueueBookingConfirmed(ctx context.Context, payload models.NotificationPayload) error {
	e.payloads = append(e.payloads, payload)
	return nil
}
