package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"

	"keepnote/internal/constant"
	"keepnote/internal/dto"
	"keepnote/internal/entity"
	"keepnote/internal/pkg/serverutils"
	"keepnote/internal/repository"
)

type INoteService interface {
	Create(ctx context.Context, req *dto.NoteRequest) (*dto.NoteResponse, error)
	Show(ctx context.Context, id int) (*dto.NoteResponse, error)
	GetAll(ctx context.Context) ([]*dto.NoteResponse, error)
	Update(ctx context.Context, id int, req *dto.NoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type noteService struct {
	noteRepository   repository.INoteRepository
	publisherService IPublisherService
	logger           *log.Entry
}

func NewNoteService(
	noteRepository repository.INoteRepository,
	publisherService IPublisherService,
	logger *log.Entry,
) INoteService {
	return &noteService{
		noteRepository:   noteRepository,
		publisherService: publisherService,
		logger:           logger.WithField("resource", constant.ResourceNote),
	}
}

// Create stores a new note. The creation date always comes from the clock;
// whatever the caller sent in noteCreationDate is dropped.
func (c *noteService) Create(ctx context.Context, req *dto.NoteRequest) (*dto.NoteResponse, error) {
	note := noteFromRequest(req)
	note.Id = req.NoteId
	note.CreatedAt = now()

	err := c.noteRepository.Create(ctx, note)
	if err != nil {
		return nil, createError(c.logger, err)
	}

	c.logger.WithField("note_id", note.Id).Debug("note created")
	publishEvent(ctx, c.publisherService, c.logger, constant.ResourceNote, constant.ActionCreated, strconv.Itoa(note.Id))

	return noteResponse(note), nil
}

func (c *noteService) Show(ctx context.Context, id int) (*dto.NoteResponse, error) {
	note, err := c.noteRepository.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	return noteResponse(note), nil
}

func (c *noteService) GetAll(ctx context.Context) ([]*dto.NoteResponse, error) {
	notes, err := c.noteRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		res = append(res, noteResponse(note))
	}
	return res, nil
}

// Update replaces the mutable fields of an existing note with the caller's
// data. The id comes from the path and the creation date from the store.
func (c *noteService) Update(ctx context.Context, id int, req *dto.NoteRequest) (*dto.NoteResponse, error) {
	existing, err := c.noteRepository.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	note := noteFromRequest(req)
	note.Id = existing.Id
	note.CreatedAt = existing.CreatedAt

	err = c.noteRepository.Update(ctx, note)
	if err != nil {
		return nil, err
	}

	c.logger.WithField("note_id", id).Debug("note updated")
	publishEvent(ctx, c.publisherService, c.logger, constant.ResourceNote, constant.ActionUpdated, strconv.Itoa(id))

	return noteResponse(note), nil
}

func (c *noteService) Delete(ctx context.Context, id int) (bool, error) {
	_, err := c.noteRepository.GetById(ctx, id)
	if err != nil {
		return false, err
	}

	err = c.noteRepository.DeleteById(ctx, id)
	if err != nil {
		return false, err
	}

	c.logger.WithField("note_id", id).Debug("note deleted")
	publishEvent(ctx, c.publisherService, c.logger, constant.ResourceNote, constant.ActionDeleted, strconv.Itoa(id))

	return true, nil
}

// createError keeps collisions and outages as they are and reports any other
// refusal to persist as ErrCreationFailed.
func createError(logger *log.Entry, err error) error {
	switch {
	case errors.Is(err, serverutils.ErrAlreadyExists),
		errors.Is(err, serverutils.ErrCreationFailed),
		errors.Is(err, serverutils.ErrStorageUnavailable),
		errors.Is(err, serverutils.ErrBadRequest):
		return err
	}
	logger.WithError(err).Error("create rejected by storage")
	return fmt.Errorf("%w: %w", serverutils.ErrCreationFailed, err)
}

func noteFromRequest(req *dto.NoteRequest) *entity.Note {
	note := &entity.Note{
		Title:     req.NoteTitle,
		Content:   req.NoteContent,
		Status:    req.NoteStatus,
		CreatedBy: req.NoteCreatedBy,
		Reminders: make([]entity.Reminder, 0, len(req.Reminders)),
	}
	if req.Category != nil {
		note.Category = &entity.Category{
			Id:          req.Category.CategoryId,
			Name:        req.Category.CategoryName,
			Description: req.Category.CategoryDescription,
			CreatedBy:   req.Category.CategoryCreatedBy,
			CreatedAt:   req.Category.CategoryCreationDate,
		}
	}
	for i := range req.Reminders {
		note.Reminders = append(note.Reminders, reminderAssociation(&req.Reminders[i]))
	}
	return note
}

func noteResponse(note *entity.Note) *dto.NoteResponse {
	res := &dto.NoteResponse{
		NoteId:           note.Id,
		NoteTitle:        note.Title,
		NoteContent:      note.Content,
		NoteStatus:       note.Status,
		NoteCreationDate: note.CreatedAt,
		NoteCreatedBy:    note.CreatedBy,
		Reminders:        make([]dto.ReminderPayload, 0, len(note.Reminders)),
	}
	if note.Category != nil {
		res.Category = &dto.CategoryPayload{
			CategoryId:           note.Category.Id,
			CategoryName:         note.Category.Name,
			CategoryDescription:  note.Category.Description,
			CategoryCreatedBy:    note.Category.CreatedBy,
			CategoryCreationDate: note.Category.CreatedAt,
		}
	}
	for i := range note.Reminders {
		res.Reminders = append(res.Reminders, *reminderResponse(&note.Reminders[i]))
	}
	return res
}
