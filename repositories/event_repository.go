// File: /repositories/event_repository.go
package repositories

import (
	"gorm.io/gorm"

	"sportmate-api/models"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *EventRepository) FindByID(id string) (*models.Event, error) {
	var event models.Event
	if err := r.db.First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// Save writes the full event record back, including the participant
// list column.
func (r *EventRepository) Save(event *models.Event) error {
	return r.db.Save(event).Error
}

func (r *EventRepository) All() ([]models.Event, error) {
	var events []models.Event
	if err := r.db.Order("created_at ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) FindByOrganizer(organizerID string) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.Where("organizer_id = ?", organizerID).Order("created_at ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
