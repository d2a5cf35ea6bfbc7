package domain

import (
	"errors"
	"time"
)

var (
	ErrGuestNameRequired  = errors.New("guest first and last name are required")
	ErrGuestEventRequired = errors.New("guest event is required")
)

// GuestSide indicates which side of the wedding invited the guest
type GuestSide string

const (
	SideBride  GuestSide = "bride"
	SideGroom  GuestSide = "groom"
	SideMutual GuestSide = "mutual"
)

// IsValid checks if the side is one of the defined sides
func (s GuestSide) IsValid() bool {
	switch s {
	case SideBride, SideGroom, SideMutual:
		return true
	default:
		return false
	}
}

// RSVPStatus is the guest's attendance confirmation state
type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "pending"
	RSVPConfirmed RSVPStatus = "confirmed"
	RSVPDeclined  RSVPStatus = "declined"
)

// IsValid checks if the status is one of the defined statuses
func (s RSVPStatus) IsValid() bool {
	switch s {
	case RSVPPending, RSVPConfirmed, RSVPDeclined:
		return true
	default:
		return false
	}
}

// Guest represents an invited guest, scoped to exactly one event.
// EventID is set at creation and never reassigned by updates.
type Guest struct {
	ID                  int64      `json:"id"`
	EventID             int64      `json:"event_id"`
	FirstName           string     `json:"first_name"`
	LastName            string     `json:"last_name"`
	Email               string     `json:"email,omitempty"`
	Phone               string     `json:"phone,omitempty"`
	Side                GuestSide  `json:"side"`
	Relationship        string     `json:"relationship,omitempty"`
	RSVPStatus          RSVPStatus `json:"rsvp_status"`
	PlusOneAllowed      bool       `json:"plus_one_allowed"`
	PlusOneConfirmed    bool       `json:"plus_one_confirmed"`
	PlusOneName         string     `json:"plus_one_name,omitempty"`
	PlusOneEmail        string     `json:"plus_one_email,omitempty"`
	PlusOnePhone        string     `json:"plus_one_phone,omitempty"`
	NumberOfChildren    int        `json:"number_of_children"`
	DietaryRestrictions string     `json:"dietary_restrictions,omitempty"`
	SpecialRequirements string     `json:"special_requirements,omitempty"`
	TableAssignment     string     `json:"table_assignment,omitempty"`
	NeedsAccommodation  bool       `json:"needs_accommodation"`
	Notes               string     `json:"notes,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// NewGuest builds a validated guest under the given event
func NewGuest(eventID int64, firstName, lastName string) (*Guest, error) {
	if eventID <= 0 {
		return nil, ErrGuestEventRequired
	}
	if firstName == "" || lastName == "" {
		return nil, ErrGuestNameRequired
	}

	now := time.Now()
	return &Guest{
		EventID:    eventID,
		FirstName:  firstName,
		LastName:   lastName,
		Side:       SideMutual,
		RSVPStatus: RSVPPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// FullName returns the guest's display name
func (g *Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}

// ContactInfo is a resolved communication target for a guest
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	// ViaPlusOne is true when the contact details were borrowed from the
	// guest's confirmed plus-one
	ViaPlusOne bool `json:"via_plus_one"`
}

// EffectiveContact resolves where messages for this guest should go.
// A guest without their own email or phone falls back to the confirmed
// plus-one's contact details; a guest with no reachable contact at all
// returns ok=false.
func (g *Guest) EffectiveContact() (ContactInfo, bool) {
	if g.Email != "" || g.Phone != "" {
		return ContactInfo{
			Name:  g.FullName(),
			Email: g.Email,
			Phone: g.Phone,
		}, true
	}

	if g.PlusOneConfirmed && (g.PlusOneEmail != "" || g.PlusOnePhone != "") {
		name := g.PlusOneName
		if name == "" {
			name = g.FullName()
		}
		return ContactInfo{
			Name:       name,
			Email:      g.PlusOneEmail,
			Phone:      g.PlusOnePhone,
			ViaPlusOne: true,
		}, true
	}

	return ContactInfo{}, false
}
