package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ClassPoint_Go/internal/database/postgres"
	"github.com/osse101/ClassPoint_Go/internal/repository"
)

// Repositories holds the postgres implementations of every repository port.
// The classroom repository backs both the ledger and the statistics reads.
type Repositories struct {
	Ledger   repository.Ledger
	Stats    repository.Stats
	Reward   repository.Reward
	Settings repository.Settings
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	classroom := postgres.NewClassroomRepository(dbPool)
	return &Repositories{
		Ledger:   classroom,
		Stats:    classroom,
		Reward:   postgres.NewRewardRepository(dbPool),
		Settings: postgres.NewSettingsRepository(dbPool),
	}
}
