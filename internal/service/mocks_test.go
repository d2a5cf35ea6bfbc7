package service

import (
	"context"
	"strings"
	"sync"

	"github.com/hobbist2102/rsvp-app/internal/domain"
	"github.com/hobbist2102/rsvp-app/internal/repository"
)

// In-memory repositories backing the service tests. Each one implements the
// corresponding repository interface over a map guarded by a mutex.

type mockEventRepo struct {
	mu     sync.Mutex
	nextID int64
	events map[int64]*domain.Event
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{nextID: 1, events: make(map[int64]*domain.Event)}
}

func (r *mockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event.ID = r.nextID
	r.nextID++
	cp := *event
	r.events[event.ID] = &cp
	return nil
}

func (r *mockEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	cp := *event
	return &cp, nil
}

func (r *mockEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Event
	for id := int64(1); id < r.nextID; id++ {
		if event, ok := r.events[id]; ok {
			cp := *event
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *mockEventRepo) ListByCreator(ctx context.Context, userID int64) ([]*domain.Event, error) {
	all, _ := r.List(ctx)
	var out []*domain.Event
	for _, event := range all {
		if event.CreatedBy == userID {
			out = append(out, event)
		}
	}
	return out, nil
}

func (r *mockEventRepo) Update(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *event
	r.events[event.ID] = &cp
	return nil
}

func (r *mockEventRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.events, id)
	return nil
}

type mockGuestRepo struct {
	mu     sync.Mutex
	nextID int64
	guests map[int64]*domain.Guest
}

func newMockGuestRepo() *mockGuestRepo {
	return &mockGuestRepo{nextID: 1, guests: make(map[int64]*domain.Guest)}
}

func (r *mockGuestRepo) Create(ctx context.Context, guest *domain.Guest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	guest.ID = r.nextID
	r.nextID++
	cp := *guest
	r.guests[guest.ID] = &cp
	return nil
}

func (r *mockGuestRepo) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	guest, ok := r.guests[id]
	if !ok {
		return nil, nil
	}
	cp := *guest
	return &cp, nil
}

func (r *mockGuestRepo) ListByEvent(ctx context.Context, eventID int64, filter repository.GuestFilter) ([]*domain.Guest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Guest
	for id := int64(1); id < r.nextID; id++ {
		guest, ok := r.guests[id]
		if !ok || guest.EventID != eventID {
			continue
		}
		if filter.RSVPStatus != "" && guest.RSVPStatus != filter.RSVPStatus {
			continue
		}
		if filter.Side != "" && guest.Side != filter.Side {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(guest.FirstName), strings.ToLower(filter.Search)) &&
			!strings.Contains(strings.ToLower(guest.LastName), strings.ToLower(filter.Search)) {
			continue
		}
		cp := *guest
		out = append(out, &cp)
	}
	return out, nil
}

func (r *mockGuestRepo) CountByEventAndStatus(ctx context.Context, eventID int64) (map[domain.RSVPStatus]int, error) {
	guests, _ := r.ListByEvent(ctx, eventID, repository.GuestFilter{})
	counts := make(map[domain.RSVPStatus]int)
	for _, guest := range guests {
		counts[guest.RSVPStatus]++
	}
	return counts, nil
}

func (r *mockGuestRepo) Update(ctx context.Context, guest *domain.Guest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Mirrors the SQL UPDATE, which never touches event_id
	existing, ok := r.guests[guest.ID]
	if !ok {
		return nil
	}
	cp := *guest
	cp.EventID = existing.EventID
	r.guests[guest.ID] = &cp
	return nil
}

func (r *mockGuestRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.guests, id)
	return nil
}

type mockCeremonyRepo struct {
	mu         sync.Mutex
	nextID     int64
	ceremonies map[int64]*domain.Ceremony
	attendance map[int64]*domain.CeremonyAttendance
	nextAttID  int64
}

func newMockCeremonyRepo() *mockCeremonyRepo {
	return &mockCeremonyRepo{
		nextID:     1,
		nextAttID:  1,
		ceremonies: make(map[int64]*domain.Ceremony),
		attendance: make(map[int64]*domain.CeremonyAttendance),
	}
}

func (r *mockCeremonyRepo) Create(ctx context.Context, ceremony *domain.Ceremony) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ceremony.ID = r.nextID
	r.nextID++
	cp := *ceremony
	r.ceremonies[ceremony.ID] = &cp
	return nil
}

func (r *mockCeremonyRepo) GetByID(ctx context.Context, id int64) (*domain.Ceremony, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ceremony, ok := r.ceremonies[id]
	if !ok {
		return nil, nil
	}
	cp := *ceremony
	return &cp, nil
}

func (r *mockCeremonyRepo) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Ceremony, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Ceremony
	for id := int64(1); id < r.nextID; id++ {
		if ceremony, ok := r.ceremonies[id]; ok && ceremony.EventID == eventID {
			cp := *ceremony
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *mockCeremonyRepo) Update(ctx context.Context, ceremony *domain.Ceremony) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *ceremony
	r.ceremonies[ceremony.ID] = &cp
	return nil
}

func (r *mockCeremonyRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.ceremonies, id)
	return nil
}

func (r *mockCeremonyRepo) UpsertAttendance(ctx context.Context, attendance *domain.CeremonyAttendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.attendance {
		if existing.GuestID == attendance.GuestID && existing.CeremonyID == attendance.CeremonyID {
			existing.Attending = attendance.Attending
			attendance.ID = existing.ID
			return nil
		}
	}
	attendance.ID = r.nextAttID
	r.nextAttID++
	cp := *attendance
	r.attendance[attendance.ID] = &cp
	return nil
}

func (r *mockCeremonyRepo) ListAttendanceByCeremony(ctx context.Context, ceremonyID int64) ([]*domain.CeremonyAttendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.CeremonyAttendance
	for id := int64(1); id < r.nextAttID; id++ {
		if a, ok := r.attendance[id]; ok && a.CeremonyID == ceremonyID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *mockCeremonyRepo) ListAttendanceByGuest(ctx context.Context, guestID int64) ([]*domain.CeremonyAttendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.CeremonyAttendance
	for id := int64(1); id < r.nextAttID; id++ {
		if a, ok := r.attendance[id]; ok && a.GuestID == guestID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

type mockAccommodationRepo struct {
	mu             sync.Mutex
	nextID         int64
	nextAllocID    int64
	accommodations map[int64]*domain.Accommodation
	allocations    map[int64]*domain.RoomAllocation
}

func newMockAccommodationRepo() *mockAccommodationRepo {
	return &mockAccommodationRepo{
		nextID:         1,
		nextAllocID:    1,
		accommodations: make(map[int64]*domain.Accommodation),
		allocations:    make(map[int64]*domain.RoomAllocation),
	}
}

func (r *mockAccommodationRepo) Create(ctx context.Context, accommodation *domain.Accommodation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	accommodation.ID = r.nextID
	r.nextID++
	cp := *accommodation
	r.accommodations[accommodation.ID] = &cp
	return nil
}

func (r *mockAccommodationRepo) GetByID(ctx context.Context, id int64) (*domain.Accommodation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	accommodation, ok := r.accommodations[id]
	if !ok {
		return nil, nil
	}
	cp := *accommodation
	return &cp, nil
}

func (r *mockAccommodationRepo) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Accommodation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Accommodation
	for id := int64(1); id < r.nextID; id++ {
		if a, ok := r.accommodations[id]; ok && a.EventID == eventID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *mockAccommodationRepo) Update(ctx context.Context, accommodation *domain.Accommodation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.accommodations[accommodation.ID]
	if ok {
		accommodation.AllocatedRooms = existing.AllocatedRooms
	}
	cp := *accommodation
	r.accommodations[accommodation.ID] = &cp
	return nil
}

func (r *mockAccommodationRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.accommodations, id)
	return nil
}

func (r *mockAccommodationRepo) CreateAllocation(ctx context.Context, allocation *domain.RoomAllocation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	accommodation, ok := r.accommodations[allocation.AccommodationID]
	if !ok || !accommodation.HasVacancy() {
		return domain.ErrAllocationNoRoomsLeft
	}
	accommodation.AllocatedRooms++
	allocation.ID = r.nextAllocID
	r.nextAllocID++
	cp := *allocation
	r.allocations[allocation.ID] = &cp
	return nil
}

func (r *mockAccommodationRepo) GetAllocationByID(ctx context.Context, id int64) (*domain.RoomAllocation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	allocation, ok := r.allocations[id]
	if !ok {
		return nil, nil
	}
	cp := *allocation
	return &cp, nil
}

func (r *mockAccommodationRepo) ListAllocationsByAccommodation(ctx context.Context, accommodationID int64) ([]*domain.RoomAllocation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.RoomAllocation
	for id := int64(1); id < r.nextAllocID; id++ {
		if a, ok := r.allocations[id]; ok && a.AccommodationID == accommodationID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *mockAccommodationRepo) GetAllocationByGuest(ctx context.Context, guestID int64) (*domain.RoomAllocation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id := int64(1); id < r.nextAllocID; id++ {
		if a, ok := r.allocations[id]; ok && a.GuestID == guestID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *mockAccommodationRepo) UpdateAllocation(ctx context.Context, allocation *domain.RoomAllocation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *allocation
	r.allocations[allocation.ID] = &cp
	return nil
}

func (r *mockAccommodationRepo) DeleteAllocation(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	allocation, ok := r.allocations[id]
	if !ok {
		return nil
	}
	if accommodation, ok := r.accommodations[allocation.AccommodationID]; ok && accommodation.AllocatedRooms > 0 {
		accommodation.AllocatedRooms--
	}
	delete(r.allocations, id)
	return nil
}

type mockMealRepo struct {
	mu         sync.Mutex
	nextOptID  int64
	nextSelID  int64
	options    map[int64]*domain.MealOption
	selections map[int64]*domain.MealSelection
}

func newMockMealRepo() *mockMealRepo {
	return &mockMealRepo{
		nextOptID:  1,
		nextSelID:  1,
		options:    make(map[int64]*domain.MealOption),
		selections: make(map[int64]*domain.MealSelection),
	}
}

func (r *mockMealRepo) CreateOption(ctx context.Context, option *domain.MealOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	option.ID = r.nextOptID
	r.nextOptID++
	cp := *option
	r.options[option.ID] = &cp
	return nil
}

func (r *mockMealRepo) GetOptionByID(ctx context.Context, id int64) (*domain.MealOption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	option, ok := r.options[id]
	if !ok {
		return nil, nil
	}
	cp := *option
	return &cp, nil
}

func (r *mockMealRepo) ListOptionsByCeremony(ctx context.Context, ceremonyID int64) ([]*domain.MealOption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.MealOption
	for id := int64(1); id < r.nextOptID; id++ {
		if o, ok := r.options[id]; ok && o.CeremonyID == ceremonyID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *mockMealRepo) UpdateOption(ctx context.Context, option *domain.MealOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *option
	r.options[option.ID] = &cp
	return nil
}

func (r *mockMealRepo) DeleteOption(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.options, id)
	return nil
}

func (r *mockMealRepo) UpsertSelection(ctx context.Context, selection *domain.MealSelection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.selections {
		if existing.GuestID == selection.GuestID && existing.CeremonyID == selection.CeremonyID {
			existing.MealOptionID = selection.MealOptionID
			existing.Notes = selection.Notes
			selection.ID = existing.ID
			return nil
		}
	}
	selection.ID = r.nextSelID
	r.nextSelID++
	cp := *selection
	r.selections[selection.ID] = &cp
	return nil
}

func (r *mockMealRepo) GetSelectionByID(ctx context.Context, id int64) (*domain.MealSelection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	selection, ok := r.selections[id]
	if !ok {
		return nil, nil
	}
	cp := *selection
	return &cp, nil
}

func (r *mockMealRepo) ListSelectionsByGuest(ctx context.Context, guestID int64) ([]*domain.MealSelection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.MealSelection
	for id := int64(1); id < r.nextSelID; id++ {
		if s, ok := r.selections[id]; ok && s.GuestID == guestID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *mockMealRepo) ListSelectionsByCeremony(ctx context.Context, ceremonyID int64) ([]*domain.MealSelection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.MealSelection
	for id := int64(1); id < r.nextSelID; id++ {
		if s, ok := r.selections[id]; ok && s.CeremonyID == ceremonyID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *mockMealRepo) DeleteSelection(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.selections, id)
	return nil
}

type mockTravelRepo struct {
	mu      sync.Mutex
	nextID  int64
	byGuest map[int64]*domain.TravelInfo
	guests  *mockGuestRepo
}

func newMockTravelRepo(guests *mockGuestRepo) *mockTravelRepo {
	return &mockTravelRepo{nextID: 1, byGuest: make(map[int64]*domain.TravelInfo), guests: guests}
}

func (r *mockTravelRepo) Upsert(ctx context.Context, info *domain.TravelInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byGuest[info.GuestID]; ok {
		info.ID = existing.ID
	} else {
		info.ID = r.nextID
		r.nextID++
	}
	cp := *info
	r.byGuest[info.GuestID] = &cp
	return nil
}

func (r *mockTravelRepo) GetByGuest(ctx context.Context, guestID int64) (*domain.TravelInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	info, ok := r.byGuest[guestID]
	if !ok {
		return nil, nil
	}
	cp := *info
	return &cp, nil
}

func (r *mockTravelRepo) ListByEvent(ctx context.Context, eventID int64) ([]*domain.TravelInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.TravelInfo
	for guestID, info := range r.byGuest {
		guest, _ := r.guests.GetByID(ctx, guestID)
		if guest != nil && guest.EventID == eventID {
			cp := *info
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *mockTravelRepo) DeleteByGuest(ctx context.Context, guestID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byGuest, guestID)
	return nil
}

type mockMessageRepo struct {
	mu        sync.Mutex
	nextTplID int64
	nextMsgID int64
	templates map[int64]*domain.MessageTemplate
	messages  map[int64]*domain.GuestMessage
}

func newMockMessageRepo() *mockMessageRepo {
	return &mockMessageRepo{
		nextTplID: 1,
		nextMsgID: 1,
		templates: make(map[int64]*domain.MessageTemplate),
		messages:  make(map[int64]*domain.GuestMessage),
	}
}

func (r *mockMessageRepo) CreateTemplate(ctx context.Context, template *domain.MessageTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	template.ID = r.nextTplID
	r.nextTplID++
	cp := *template
	r.templates[template.ID] = &cp
	return nil
}

func (r *mockMessageRepo) GetTemplateByID(ctx context.Context, id int64) (*domain.MessageTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	template, ok := r.templates[id]
	if !ok {
		return nil, nil
	}
	cp := *template
	return &cp, nil
}

func (r *mockMessageRepo) ListTemplatesByEvent(ctx context.Context, eventID int64) ([]*domain.MessageTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.MessageTemplate
	for id := int64(1); id < r.nextTplID; id++ {
		if t, ok := r.templates[id]; ok && t.EventID == eventID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *mockMessageRepo) UpdateTemplate(ctx context.Context, template *domain.MessageTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *template
	r.templates[template.ID] = &cp
	return nil
}

func (r *mockMessageRepo) DeleteTemplate(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.templates, id)
	return nil
}

func (r *mockMessageRepo) CreateMessage(ctx context.Context, message *domain.GuestMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	message.ID = r.nextMsgID
	r.nextMsgID++
	cp := *message
	r.messages[message.ID] = &cp
	return nil
}

func (r *mockMessageRepo) GetMessageByID(ctx context.Context, id int64) (*domain.GuestMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	message, ok := r.messages[id]
	if !ok {
		return nil, nil
	}
	cp := *message
	return &cp, nil
}

func (r *mockMessageRepo) GetMessageByDedupKey(ctx context.Context, eventID int64, dedupKey string) (*domain.GuestMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, message := range r.messages {
		if message.EventID == eventID && message.DedupKey == dedupKey {
			cp := *message
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *mockMessageRepo) ListMessagesByEvent(ctx context.Context, eventID int64) ([]*domain.GuestMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.GuestMessage
	for id := r.nextMsgID - 1; id >= 1; id-- {
		if m, ok := r.messages[id]; ok && m.EventID == eventID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *mockMessageRepo) ListMessagesByGuest(ctx context.Context, guestID int64) ([]*domain.GuestMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.GuestMessage
	for id := r.nextMsgID - 1; id >= 1; id-- {
		if m, ok := r.messages[id]; ok && m.GuestID == guestID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *mockMessageRepo) UpdateMessageStatus(ctx context.Context, id int64, status domain.MessageStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if message, ok := r.messages[id]; ok {
		message.Status = status
	}
	return nil
}
