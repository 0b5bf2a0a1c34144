package host

import (
	"github.com/google/uuid"

	"github.com/feral-file/ff-market/internal/config"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/environment"
)

type adminList struct {
	economy config.EconomyProvider
}

// NewAdminPrivileges grants privileges to the actors listed in the economy admins.
// The list is read on every check so config reloads apply immediately.
func NewAdminPrivileges(economy config.EconomyProvider) environment.Privileges {
	return &adminList{economy: economy}
}

func (a *adminList) IsPrivileged(actor domain.ActorID) bool {
	if actor == uuid.Nil {
		return false
	}

	for _, admin := range a.economy.Economy().Admins {
		id, err := uuid.Parse(admin)
		if err == nil && id == actor {
			return true
		}
	}
	return false
}
