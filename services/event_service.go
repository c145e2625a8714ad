// File: /services/event_service.go
package services

import (
	"sort"
	"time"

	"sportmate-api/models"
	"sportmate-api/repositories"
	"sportmate-api/utils"
)

// EventService owns the event lifecycle: it loads the record, applies
// the in-memory transition and writes the result back. Policy checks
// that belong to the caller (expiry, organizer identity) live in the
// controllers; the transitions themselves only enforce the structural
// invariants on the record.
type EventService struct {
	eventRepo *repositories.EventRepository
}

func NewEventService(eventRepo *repositories.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// Create builds a new active event with the organizer as its sole
// initial participant.
func (s *EventService) Create(event *models.Event, organizer *models.User) (*models.Event, error) {
	event.ID = models.NewEventID()
	event.OrganizerID = organizer.ID
	event.OrganizerName = organizer.FullName()
	event.Requests = models.ParticipantList{
		{UserID: organizer.ID, FullName: organizer.FullName()},
	}
	event.IsCancelledByOrganizer = false
	event.CancelledAt = nil

	if err := s.eventRepo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) Get(eventID string) (*models.Event, error) {
	return s.eventRepo.FindByID(eventID)
}

// Join appends the user to the event's requests. Already-joined and
// at-capacity joins leave the record unchanged.
func (s *EventService) Join(eventID, userID, fullName string) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(eventID)
	if err != nil {
		return nil, err
	}

	event.Join(userID, fullName)
	return event, s.eventRepo.Save(event)
}

// CancelJoin withdraws the user's request. Usable at any time,
// including on a cancelled event.
func (s *EventService) CancelJoin(eventID, userID string) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(eventID)
	if err != nil {
		return nil, err
	}

	event.RemoveParticipant(userID)
	return event, s.eventRepo.Save(event)
}

// Cancel suspends the event, keeping it visible and rejoinable until
// its real schedule elapses.
func (s *EventService) Cancel(eventID string) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(eventID)
	if err != nil {
		return nil, err
	}

	event.Cancel(time.Now())
	return event, s.eventRepo.Save(event)
}

// Reactivate restores a cancelled event's schedule and re-admits the
// organizer.
func (s *EventService) Reactivate(eventID string) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(eventID)
	if err != nil {
		return nil, err
	}

	event.Reactivate()
	return event, s.eventRepo.Save(event)
}

func (s *EventService) AcceptParticipant(eventID, userID string) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(eventID)
	if err != nil {
		return nil, err
	}

	event.AcceptParticipant(userID)
	return event, s.eventRepo.Save(event)
}

// RejectParticipant removes the user entirely; the organizer-side
// counterpart of CancelJoin.
func (s *EventService) RejectParticipant(eventID, userID string) (*models.Event, error) {
	return s.CancelJoin(eventID, userID)
}

// Upcoming returns events whose scheduled instant has not elapsed,
// soonest first.
func (s *EventService) Upcoming(now time.Time) ([]models.Event, error) {
	events, err := s.eventRepo.All()
	if err != nil {
		return nil, err
	}

	upcoming := make([]models.Event, 0, len(events))
	for _, event := range events {
		if !utils.IsEventExpiredAt(event.StartDate, event.StartTime, now) {
			upcoming = append(upcoming, event)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		if upcoming[i].StartDate != upcoming[j].StartDate {
			return upcoming[i].StartDate < upcoming[j].StartDate
		}
		return upcoming[i].StartTime < upcoming[j].StartTime
	})

	return upcoming, nil
}

// Expired returns elapsed events, most recent first. Cancelled events
// land here immediately because cancellation rewrites their schedule
// to today at midnight.
func (s *EventService) Expired(now time.Time) ([]models.Event, error) {
	events, err := s.eventRepo.All()
	if err != nil {
		return nil, err
	}

	expired := make([]models.Event, 0, len(events))
	for _, event := range events {
		if utils.IsEventExpiredAt(event.StartDate, event.StartTime, now) {
			expired = append(expired, event)
		}
	}

	sort.SliceStable(expired, func(i, j int) bool {
		if expired[i].StartDate != expired[j].StartDate {
			return expired[i].StartDate > expired[j].StartDate
		}
		return expired[i].StartTime > expired[j].StartTime
	})

	return expired, nil
}

func (s *EventService) CreatedBy(organizerID string) ([]models.Event, error) {
	return s.eventRepo.FindByOrganizer(organizerID)
}

// JoinedBy returns events holding a request entry for the user.
func (s *EventService) JoinedBy(userID string) ([]models.Event, error) {
	events, err := s.eventRepo.All()
	if err != nil {
		return nil, err
	}

	joined := make([]models.Event, 0, len(events))
	for _, event := range events {
		if event.HasParticipant(userID) {
			joined = append(joined, event)
		}
	}
	return joined, nil
}
