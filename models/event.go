// File: /models/event.go
package models

import (
	"strconv"
	"sync"
	"time"

	"sportmate-api/utils"
)

// EventStatus is the derived state of an event. Full is never stored;
// it is computed from the participant count at read time.
type EventStatus string

const (
	EventStatusActive    EventStatus = "active"
	EventStatusFull      EventStatus = "full"
	EventStatusCancelled EventStatus = "cancelled"
)

type Event struct {
	ID            string          `json:"id" gorm:"primaryKey;size:191"`
	Title         string          `json:"title" gorm:"not null;size:50"`
	Sport         int             `json:"sport" gorm:"not null"`
	StartDate     string          `json:"start_date" gorm:"not null;size:10"`
	StartTime     string          `json:"start_time" gorm:"not null;size:10"`
	MaxPlayers    int             `json:"max_players" gorm:"not null"`
	OrganizerID   string          `json:"organizer_id" gorm:"not null;size:191;index"`
	OrganizerName string          `json:"organizer_name" gorm:"not null;size:101"`
	Location      string          `json:"location" gorm:"not null;size:100"`
	Requests      ParticipantList `json:"requests" gorm:"type:json"`

	// Cancellation bookkeeping. While cancelled, StartDate/StartTime
	// hold a sentinel "today at midnight" so the event reads as elapsed
	// in listings; the real schedule survives in the snapshot fields.
	IsCancelledByOrganizer bool       `json:"is_cancelled_by_organizer" gorm:"default:false"`
	CancelledAt            *time.Time `json:"cancelled_at,omitempty"`
	OriginalStartDate      string     `json:"original_start_date,omitempty" gorm:"size:10"`
	OriginalStartTime      string     `json:"original_start_time,omitempty" gorm:"size:10"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Organizer User `json:"-" gorm:"foreignKey:OrganizerID"`
}

var (
	eventIDMutex sync.Mutex
	lastEventID  int64
)

// NewEventID returns a millisecond-timestamp id, bumped when two events
// are created within the same millisecond so ids stay unique and
// monotonic for the life of the process.
func NewEventID() string {
	eventIDMutex.Lock()
	defer eventIDMutex.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastEventID {
		id = lastEventID + 1
	}
	lastEventID = id

	return strconv.FormatInt(id, 10)
}

// HasParticipant reports whether the user has a request entry.
func (e *Event) HasParticipant(userID string) bool {
	return e.Requests.Contains(userID)
}

// IsFull reports whether the event is at capacity.
func (e *Event) IsFull() bool {
	return len(e.Requests) >= e.MaxPlayers
}

// Join appends an unaccepted participant entry. Joining twice or
// joining a full event is a no-op.
func (e *Event) Join(userID, fullName string) {
	if e.HasParticipant(userID) || e.IsFull() {
		return
	}
	e.Requests = append(e.Requests, Participant{UserID: userID, FullName: fullName})
}

// RemoveParticipant drops the user's entry if present; no-op otherwise.
func (e *Event) RemoveParticipant(userID string) {
	e.Requests = e.Requests.Remove(userID)
}

// AcceptParticipant marks the user's entry as accepted. Acceptance is
// a status flag only; it does not affect capacity or expiry.
func (e *Event) AcceptParticipant(userID string) {
	for i := range e.Requests {
		if e.Requests[i].UserID == userID {
			e.Requests[i].IsAccepted = true
			return
		}
	}
}

// Cancel suspends the event. The real schedule is snapshotted for a
// later reactivation and replaced with today at midnight, which makes
// the event classify as elapsed everywhere without deleting it. The
// organizer's own entry is removed.
func (e *Event) Cancel(now time.Time) {
	cancelledAt := now
	e.IsCancelledByOrganizer = true
	e.CancelledAt = &cancelledAt
	e.OriginalStartDate = e.StartDate
	e.OriginalStartTime = e.StartTime
	e.StartDate = now.Format("2006-01-02")
	e.StartTime = "00:00"
	e.Requests = e.Requests.Remove(e.OrganizerID)
}

// Reactivate re-opens a cancelled event: the snapshotted schedule is
// restored when present and the organizer is re-added as a participant
// if absent. New joins are possible again up to capacity.
func (e *Event) Reactivate() {
	e.IsCancelledByOrganizer = false
	e.CancelledAt = nil

	if e.OriginalStartDate != "" && e.OriginalStartTime != "" {
		e.StartDate = e.OriginalStartDate
		e.StartTime = e.OriginalStartTime
	}

	if !e.HasParticipant(e.OrganizerID) {
		e.Requests = append(e.Requests, Participant{
			UserID:   e.OrganizerID,
			FullName: e.OrganizerName,
		})
	}
}

// AvailableSpots returns the remaining capacity.
func (e *Event) AvailableSpots() int {
	spots := e.MaxPlayers - len(e.Requests)
	if spots < 0 {
		return 0
	}
	return spots
}

// Classify derives the event's status and expiry at the given instant.
// Cancelled wins over Full; expiry is orthogonal to both.
func (e *Event) Classify(now time.Time) (EventStatus, bool) {
	expired := utils.IsEventExpiredAt(e.StartDate, e.StartTime, now)

	switch {
	case e.IsCancelledByOrganizer:
		return EventStatusCancelled, expired
	case e.IsFull():
		return EventStatusFull, expired
	default:
		return EventStatusActive, expired
	}
}
