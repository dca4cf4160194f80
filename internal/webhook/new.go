package webhook

import (
	"time"

	"github-workflow-automation/internal/automation"
	pkgLog "github-workflow-automation/pkg/log"
)

type Handler struct {
	automationUC automation.UseCase
	security     *SecurityValidator
	l            pkgLog.Logger
	now          func() time.Time
}

func NewHandler(
	automationUC automation.UseCase,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		automationUC: automationUC,
		security:     NewSecurityValidator(securityConfig),
		l:            l,
		now:          time.Now,
	}
}
