// internal/service/activity.go
package service

import (
	"context"

	"github.com/Braham27/churchflow-sub002/internal/model"
	"github.com/Braham27/churchflow-sub002/internal/repository"
	"github.com/Braham27/churchflow-sub002/internal/tenant"
)

type ActivityService struct {
	repo repository.ActivityLogRepositoryIface
}

func NewActivityService(repo repository.ActivityLogRepositoryIface) *ActivityService {
	return &ActivityService{repo: repo}
}

func (s *ActivityService) List(ctx context.Context, id tenant.Identity, offset, limit int) ([]*model.ActivityLogEntry, int64, error) {
	return s.repo.FindAllPaginated(ctx, id.Scope(), offset, limit)
}
