package service

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"keepnote/internal/constant"
	"keepnote/internal/dto"
	"keepnote/internal/entity"
	"keepnote/internal/repository"
)

type IReminderService interface {
	Create(ctx context.Context, req *dto.ReminderPayload) (*dto.ReminderPayload, error)
	Show(ctx context.Context, id string) (*dto.ReminderPayload, error)
	GetAll(ctx context.Context) ([]*dto.ReminderPayload, error)
	Update(ctx context.Context, id string, req *dto.ReminderPayload) (*dto.ReminderPayload, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type reminderService struct {
	reminderRepository repository.IReminderRepository
	publisherService   IPublisherService
	logger             *log.Entry
}

func NewReminderService(
	reminderRepository repository.IReminderRepository,
	publisherService IPublisherService,
	logger *log.Entry,
) IReminderService {
	return &reminderService{
		reminderRepository: reminderRepository,
		publisherService:   publisherService,
		logger:             logger.WithField("resource", constant.ResourceReminder),
	}
}

// Create stores a new reminder, generating an id when the caller left it
// empty. Uniqueness is enforced by the repository.
func (c *reminderService) Create(ctx context.Context, req *dto.ReminderPayload) (*dto.ReminderPayload, error) {
	reminder := reminderFromRequest(req)
	reminder.Id = req.ReminderId
	if reminder.Id == "" {
		reminder.Id = uuid.NewString()
	}
	reminder.CreatedAt = now()

	err := c.reminderRepository.Create(ctx, reminder)
	if err != nil {
		return nil, createError(c.logger, err)
	}

	c.logger.WithField("reminder_id", reminder.Id).Debug("reminder created")
	publishEvent(ctx, c.publisherService, c.logger, constant.ResourceReminder, constant.ActionCreated, reminder.Id)

	return reminderResponse(reminder), nil
}

func (c *reminderService) Show(ctx context.Context, id string) (*dto.ReminderPayload, error) {
	reminder, err := c.reminderRepository.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	return reminderResponse(reminder), nil
}

func (c *reminderService) GetAll(ctx context.Context) ([]*dto.ReminderPayload, error) {
	reminders, err := c.reminderRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ReminderPayload, 0, len(reminders))
	for _, reminder := range reminders {
		res = append(res, reminderResponse(reminder))
	}
	return res, nil
}

// Update persists the caller's data under the path id. The stored creation
// date is kept.
func (c *reminderService) Update(ctx context.Context, id string, req *dto.ReminderPayload) (*dto.ReminderPayload, error) {
	existing, err := c.reminderRepository.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	reminder := reminderFromRequest(req)
	reminder.Id = existing.Id
	reminder.CreatedAt = existing.CreatedAt

	err = c.reminderRepository.Update(ctx, reminder)
	if err != nil {
		return nil, err
	}

	c.logger.WithField("reminder_id", id).Debug("reminder updated")
	publishEvent(ctx, c.publisherService, c.logger, constant.ResourceReminder, constant.ActionUpdated, id)

	return reminderResponse(reminder), nil
}

func (c *reminderService) Delete(ctx context.Context, id string) (bool, error) {
	_, err := c.reminderRepository.GetById(ctx, id)
	if err != nil {
		return false, err
	}

	err = c.reminderRepository.DeleteById(ctx, id)
	if err != nil {
		return false, err
	}

	c.logger.WithField("reminder_id", id).Debug("reminder deleted")
	publishEvent(ctx, c.publisherService, c.logger, constant.ResourceReminder, constant.ActionDeleted, id)

	return true, nil
}

func reminderFromRequest(req *dto.ReminderPayload) *entity.Reminder {
	return &entity.Reminder{
		Name:        req.ReminderName,
		Description: req.ReminderDescription,
		Type:        req.ReminderType,
		CreatedBy:   req.ReminderCreatedBy,
	}
}

// reminderAssociation copies a reminder embedded in a note as is, including
// its id and creation date.
func reminderAssociation(req *dto.ReminderPayload) entity.Reminder {
	reminder := reminderFromRequest(req)
	reminder.Id = req.ReminderId
	if req.ReminderCreationDate != nil {
		reminder.CreatedAt = *req.ReminderCreationDate
	}
	return *reminder
}

func reminderResponse(reminder *entity.Reminder) *dto.ReminderPayload {
	res := &dto.ReminderPayload{
		ReminderId:          reminder.Id,
		ReminderName:        reminder.Name,
		ReminderDescription: reminder.Description,
		ReminderType:        reminder.Type,
		ReminderCreatedBy:   reminder.CreatedBy,
	}
	if !reminder.CreatedAt.IsZero() {
		createdAt := reminder.CreatedAt
		res.ReminderCreationDate = &createdAt
	}
	return res
}
