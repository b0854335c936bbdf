package usecase

import (
	"time"

	"health-tracker/internal/classifier"
	"health-tracker/internal/health"
	"health-tracker/internal/health/repository"
	"health-tracker/pkg/log"
)

// implUseCase is the private implementation of health.UseCase.
type implUseCase struct {
	l    log.Logger
	repo repository.Repository
	clf  classifier.Classifier
	loc  *time.Location
	now  func() time.Time
}

var _ health.UseCase = (*implUseCase)(nil)

// New creates the health UseCase. Report dates are rendered in loc (UTC when nil).
func New(l log.Logger, repo repository.Repository, clf classifier.Classifier, loc *time.Location) *implUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &implUseCase{
		l:    l,
		repo: repo,
		clf:  clf,
		loc:  loc,
		now:  time.Now,
	}
}
