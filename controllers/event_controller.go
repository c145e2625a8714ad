// File: /controllers/event_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sportmate-api/models"
	"sportmate-api/repositories"
	"sportmate-api/services"
	"sportmate-api/utils"
)

// EventController is the boundary the old screens used to be: it runs
// the pre-flight policy checks (expiry, capacity, organizer identity)
// and only then dispatches into the lifecycle engine.
type EventController struct {
	eventService *services.EventService
	userRepo     *repositories.UserRepository
}

func NewEventController(eventService *services.EventService, userRepo *repositories.UserRepository) *EventController {
	return &EventController{
		eventService: eventService,
		userRepo:     userRepo,
	}
}

type CreateEventRequest struct {
	Title      string `json:"title" binding:"required"`
	Sport      int    `json:"sport" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"`
	MaxPlayers int    `json:"max_players" binding:"required"`
	Location   string `json:"location" binding:"required"`
}

// EventView decorates an event with the derived state every caller
// needs: status, expiry and the resolved sport label.
type EventView struct {
	models.Event
	Status         models.EventStatus `json:"status"`
	IsExpired      bool               `json:"is_expired"`
	SportLabel     string             `json:"sport_label"`
	AvailableSpots int                `json:"available_spots"`
}

func newEventView(event models.Event, now time.Time) EventView {
	status, expired := event.Classify(now)

	label := models.SportLabel(event.Sport)

	return EventView{
		Event:          event,
		Status:         status,
		IsExpired:      expired,
		SportLabel:     label,
		AvailableSpots: event.AvailableSpots(),
	}
}

func newEventViews(events []models.Event, now time.Time) []EventView {
	views := make([]EventView, 0, len(events))
	for _, event := range events {
		views = append(views, newEventView(event, now))
	}
	return views
}

func (ec *EventController) CreateEvent(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Field validation mirrors the create-event form rules
	if !utils.IsValidEventTitle(req.Title) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event name must be 3-50 characters"})
		return
	}
	if models.SportLabel(req.Sport) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a valid sport"})
		return
	}
	if !utils.IsValidStartDate(req.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event start date must be today or in the future"})
		return
	}
	if !utils.IsValidTimeString(req.StartTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event start time is invalid"})
		return
	}
	if !utils.IsValidMaxPlayers(req.MaxPlayers) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Number of players must be between 1 and 1000"})
		return
	}
	if !utils.IsValidLocation(req.Location) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Location must be 3-100 characters"})
		return
	}

	organizer, err := ec.userRepo.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	event := models.Event{
		Title:      req.Title,
		Sport:      req.Sport,
		StartDate:  req.StartDate,
		StartTime:  req.StartTime,
		MaxPlayers: req.MaxPlayers,
		Location:   req.Location,
	}

	created, err := ec.eventService.Create(&event, organizer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, newEventView(*created, time.Now()))
}

// GetEvents returns upcoming events, soonest first.
func (ec *EventController) GetEvents(c *gin.Context) {
	events, err := ec.eventService.Upcoming(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": newEventViews(events, time.Now())})
}

// GetExpiredEvents returns elapsed events, most recent first.
func (ec *EventController) GetExpiredEvents(c *gin.Context) {
	events, err := ec.eventService.Expired(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": newEventViews(events, time.Now())})
}

func (ec *EventController) GetEvent(c *gin.Context) {
	event, err := ec.eventService.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, newEventView(*event, time.Now()))
}

func (ec *EventController) JoinEvent(c *gin.Context) {
	userID := c.GetString("user_id")
	eventID := c.Param("id")

	event, err := ec.eventService.Get(eventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if event.OrganizerID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organizers cannot join their own event"})
		return
	}

	if utils.IsEventExpired(event.StartDate, event.StartTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot join expired events"})
		return
	}

	if event.HasParticipant(userID) {
		c.JSON(http.StatusConflict, gin.H{"error": "Already joined this event"})
		return
	}

	if event.IsFull() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event is full"})
		return
	}

	user, err := ec.userRepo.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	updated, err := ec.eventService.Join(eventID, userID, user.FullName())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Successfully joined event",
		"event":   newEventView(*updated, time.Now()),
	})
}

// LeaveEvent withdraws the caller's participation. Allowed at any
// time, including on cancelled events.
func (ec *EventController) LeaveEvent(c *gin.Context) {
	userID := c.GetString("user_id")
	eventID := c.Param("id")

	event, err := ec.eventService.Get(eventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if event.OrganizerID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organizers cannot leave their own event"})
		return
	}

	if !event.HasParticipant(userID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not a participant of this event"})
		return
	}

	updated, err := ec.eventService.CancelJoin(eventID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Successfully cancelled participation",
		"event":   newEventView(*updated, time.Now()),
	})
}

func (ec *EventController) CancelEvent(c *gin.Context) {
	userID := c.GetString("user_id")
	eventID := c.Param("id")

	event, err := ec.eventService.Get(eventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if event.OrganizerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the organizer can cancel this event"})
		return
	}

	if event.IsCancelledByOrganizer {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event is already cancelled"})
		return
	}

	if utils.IsEventStarted(event.StartDate, event.StartTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot cancel an event that has already started"})
		return
	}

	updated, err := ec.eventService.Cancel(eventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event cancelled! Users can still rejoin until it expires.",
		"event":   newEventView(*updated, time.Now()),
	})
}

func (ec *EventController) ReactivateEvent(c *gin.Context) {
	userID := c.GetString("user_id")
	eventID := c.Param("id")

	event, err := ec.eventService.Get(eventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if event.OrganizerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the organizer can reactivate this event"})
		return
	}

	if !event.IsCancelledByOrganizer {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event is not cancelled"})
		return
	}

	// The sentinel schedule always reads as elapsed, so expiry is
	// checked against the snapshotted real schedule.
	if event.OriginalStartDate != "" && utils.IsEventExpired(event.OriginalStartDate, event.OriginalStartTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot reactivate an expired event"})
		return
	}

	updated, err := ec.eventService.Reactivate(eventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reactivate event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event is now active again!",
		"event":   newEventView(*updated, time.Now()),
	})
}

func (ec *EventController) AcceptParticipant(c *gin.Context) {
	userID := c.GetString("user_id")
	eventID := c.Param("id")
	participantID := c.Param("userId")

	event, err := ec.eventService.Get(eventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if event.OrganizerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the organizer can accept participants"})
		return
	}

	if !event.HasParticipant(participantID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
		return
	}

	updated, err := ec.eventService.AcceptParticipant(eventID, participantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept participant"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Participant has been accepted!",
		"event":   newEventView(*updated, time.Now()),
	})
}

func (ec *EventController) RejectParticipant(c *gin.Context) {
	userID := c.GetString("user_id")
	eventID := c.Param("id")
	participantID := c.Param("userId")

	event, err := ec.eventService.Get(eventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if event.OrganizerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the organizer can reject participants"})
		return
	}

	if !event.HasParticipant(participantID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
		return
	}

	updated, err := ec.eventService.RejectParticipant(eventID, participantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject participant"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Participant has been removed!",
		"event":   newEventView(*updated, time.Now()),
	})
}

func (ec *EventController) GetCreatedEvents(c *gin.Context) {
	userID := c.GetString("user_id")

	events, err := ec.eventService.CreatedBy(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch created events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": newEventViews(events, time.Now())})
}

func (ec *EventController) GetJoinedEvents(c *gin.Context) {
	userID := c.GetString("user_id")

	events, err := ec.eventService.JoinedBy(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch joined events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": newEventViews(events, time.Now())})
}
