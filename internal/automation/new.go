package automation

import (
	"github-workflow-automation/internal/notify"
	"github-workflow-automation/internal/reviewer"
	pkgLog "github-workflow-automation/pkg/log"
)

type usecase struct {
	gh       GitHub
	rotator  reviewer.Rotator
	notifier notify.Notifier
	cfg      Config
	routes   map[route]handlerFunc
	l        pkgLog.Logger
}

func New(
	gh GitHub,
	rotator reviewer.Rotator,
	notifier notify.Notifier,
	cfg Config,
	l pkgLog.Logger,
) UseCase {
	if cfg.ReviewLabel == "" {
		cfg.ReviewLabel = DefaultReviewLabel
	}
	if cfg.AssignCommand == "" {
		cfg.AssignCommand = DefaultAssignCommand
	}

	uc := &usecase{
		gh:       gh,
		rotator:  rotator,
		notifier: notifier,
		cfg:      cfg,
		l:        l,
	}
	uc.routes = uc.routeTable()
	return uc
}
