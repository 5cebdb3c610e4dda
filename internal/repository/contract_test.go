package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keepnote/internal/entity"
	"keepnote/internal/pkg/serverutils"
)

// largeNoteId does not fit in 32 bits.
const largeNoteId = 1 << 33

func fixedTime() time.Time {
	return time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
}

func testNoteRepository(t *testing.T, repo INoteRepository) {
	ctx := context.Background()

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, all)

	note := &entity.Note{
		Id:        7,
		Title:     randomdata.SillyName(),
		Content:   randomdata.Paragraph(),
		Status:    "open",
		CreatedAt: fixedTime(),
		CreatedBy: randomdata.Email(),
		Category:  &entity.Category{Id: "c1", Name: "work"},
		Reminders: []entity.Reminder{{Id: "r1", Name: "call mom"}},
	}
	require.NoError(t, repo.Create(ctx, note))
	require.Equal(t, 7, note.Id)

	got, err := repo.GetById(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, note.Title, got.Title)
	assert.Equal(t, note.Content, got.Content)
	assert.Equal(t, note.CreatedBy, got.CreatedBy)
	assert.True(t, got.CreatedAt.Equal(note.CreatedAt))
	require.NotNil(t, got.Category)
	assert.Equal(t, "work", got.Category.Name)
	require.Len(t, got.Reminders, 1)
	assert.Equal(t, "r1", got.Reminders[0].Id)

	dup := &entity.Note{Id: 7, Title: "other", CreatedAt: fixedTime()}
	err = repo.Create(ctx, dup)
	require.ErrorIs(t, err, serverutils.ErrAlreadyExists)

	got, err = repo.GetById(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, note.Title, got.Title)

	generated := &entity.Note{Title: "generated", CreatedAt: fixedTime()}
	require.NoError(t, repo.Create(ctx, generated))
	assert.NotZero(t, generated.Id)
	assert.NotEqual(t, 7, generated.Id)

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got.Title = "renamed"
	got.Category = nil
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetById(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)
	assert.Nil(t, got.Category)

	err = repo.Update(ctx, &entity.Note{Id: 999, Title: "ghost"})
	require.ErrorIs(t, err, serverutils.ErrNotFound)
	_, err = repo.GetById(ctx, 999)
	require.ErrorIs(t, err, serverutils.ErrNotFound)

	require.NoError(t, repo.DeleteById(ctx, 7))
	_, err = repo.GetById(ctx, 7)
	require.ErrorIs(t, err, serverutils.ErrNotFound)
	require.ErrorIs(t, repo.DeleteById(ctx, 7), serverutils.ErrNotFound)

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = repo.GetById(ctx, largeNoteId)
	require.ErrorIs(t, err, serverutils.ErrNotFound)
	require.ErrorIs(t, repo.DeleteById(ctx, largeNoteId), serverutils.ErrNotFound)

	large := &entity.Note{Id: largeNoteId, Title: "beyond int32", CreatedAt: fixedTime()}
	require.NoError(t, repo.Create(ctx, large))
	got, err = repo.GetById(ctx, largeNoteId)
	require.NoError(t, err)
	assert.Equal(t, "beyond int32", got.Title)
	require.NoError(t, repo.DeleteById(ctx, largeNoteId))

	require.NoError(t, repo.Ping(ctx))
}

func testReminderRepository(t *testing.T, repo IReminderRepository) {
	ctx := context.Background()

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, all)

	reminder := &entity.Reminder{
		Id:          "r1",
		Name:        "call mom",
		Description: randomdata.Paragraph(),
		Type:        "daily",
		CreatedBy:   randomdata.Email(),
		CreatedAt:   fixedTime(),
	}
	require.NoError(t, repo.Create(ctx, reminder))

	got, err := repo.GetById(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, reminder.Name, got.Name)
	assert.Equal(t, reminder.Description, got.Description)
	assert.True(t, got.CreatedAt.Equal(reminder.CreatedAt))

	err = repo.Create(ctx, &entity.Reminder{Id: "r1", Name: "other", CreatedAt: fixedTime()})
	require.ErrorIs(t, err, serverutils.ErrAlreadyExists)
	got, err = repo.GetById(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "call mom", got.Name)

	require.NoError(t, repo.Create(ctx, &entity.Reminder{Id: "r2", Name: "water plants", CreatedAt: fixedTime()}))
	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got.Name = "call dad"
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetById(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "call dad", got.Name)

	require.ErrorIs(t, repo.Update(ctx, &entity.Reminder{Id: "r404"}), serverutils.ErrNotFound)
	_, err = repo.GetById(ctx, "r404")
	require.ErrorIs(t, err, serverutils.ErrNotFound)

	require.NoError(t, repo.DeleteById(ctx, "r1"))
	_, err = repo.GetById(ctx, "r1")
	require.ErrorIs(t, err, serverutils.ErrNotFound)
	require.ErrorIs(t, repo.DeleteById(ctx, "r1"), serverutils.ErrNotFound)

	require.NoError(t, repo.Ping(ctx))
}

func testUserRepository(t *testing.T, repo IUserRepository) {
	ctx := context.Background()

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, all)

	user := &entity.User{
		Id:        "u1",
		Name:      randomdata.FullName(randomdata.RandomGender),
		Password:  "hash",
		Mobile:    randomdata.PhoneNumber(),
		CreatedAt: fixedTime(),
	}
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetById(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, user.Name, got.Name)
	assert.Equal(t, user.Mobile, got.Mobile)
	assert.Equal(t, "hash", got.Password)

	err = repo.Create(ctx, &entity.User{Id: "u1", Name: "impostor", CreatedAt: fixedTime()})
	require.ErrorIs(t, err, serverutils.ErrAlreadyExists)
	got, err = repo.GetById(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, user.Name, got.Name)

	got.Mobile = "555-0100"
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetById(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "555-0100", got.Mobile)

	require.ErrorIs(t, repo.Update(ctx, &entity.User{Id: "u404"}), serverutils.ErrNotFound)

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.DeleteById(ctx, "u1"))
	_, err = repo.GetById(ctx, "u1")
	require.ErrorIs(t, err, serverutils.ErrNotFound)
	require.ErrorIs(t, repo.DeleteById(ctx, "u1"), serverutils.ErrNotFound)

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
