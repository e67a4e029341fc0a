package worker

import (
	"github.com/spec-kit/storefront-service/internal/service"
)

// StartAuditWorker registers cart audit handlers.
func StartAuditWorker(auditService *service.AuditService) {
	if auditService == nil {
		return
	}
	auditService.RegisterHandlers()
}
