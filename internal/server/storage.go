package server

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"keepnote/internal/config"
	"keepnote/internal/repository"
	"keepnote/pkg/database"
)

type Repositories struct {
	Note     repository.INoteRepository
	Reminder repository.IReminderRepository
	User     repository.IUserRepository

	close func()
}

func (r *Repositories) Close() {
	if r.close != nil {
		r.close()
	}
}

// OpenRepositories connects the configured storage driver and builds one
// repository per resource on top of it.
func OpenRepositories(ctx context.Context, cfg config.StorageConfig) (*Repositories, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		if cfg.Migrate {
			if err := database.Migrate(cfg.ConnectionString); err != nil {
				return nil, err
			}
			log.Info("database migrations applied")
		}
		db, err := database.ConnectDB(ctx, cfg.ConnectionString)
		if err != nil {
			return nil, err
		}
		return &Repositories{
			Note:     repository.NewNoteRepository(db),
			Reminder: repository.NewReminderRepository(db),
			User:     repository.NewUserRepository(db),
			close:    db.Close,
		}, nil

	case config.DriverBolt:
		db, err := repository.OpenBolt(cfg.BoltPath)
		if err != nil {
			return nil, err
		}
		return &Repositories{
			Note:     repository.NewBoltNoteRepository(db),
			Reminder: repository.NewBoltReminderRepository(db),
			User:     repository.NewBoltUserRepository(db),
			close: func() {
				if err := db.Close(); err != nil {
					log.WithError(err).Warn("close bolt")
				}
			},
		}, nil

	case config.DriverMemory:
		return NewMemoryRepositories(), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}

func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Note:     repository.NewMemoryNoteRepository(),
		Reminder: repository.NewMemoryReminderRepository(),
		User:     repository.NewMemoryUserRepository(),
	}
}
