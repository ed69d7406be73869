package scan

import (
	scanhttp "ecoshopper-backend/internal/scan/adapter/http"
	"ecoshopper-backend/internal/scan/adapter/persistence/mongodb"
	"ecoshopper-backend/internal/scan/config"
	"ecoshopper-backend/internal/scan/domain/repository"
	"ecoshopper-backend/internal/scan/domain/service"
	"ecoshopper-backend/internal/scan/usecase"
	"ecoshopper-backend/internal/shared/database"
	"ecoshopper-backend/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
)

// ScanModule represents the complete scan pipeline module
type ScanModule struct {
	repository repository.ScanRepository
	usecase    usecase.ScanUsecase
	handler    *scanhttp.ScanHTTPHandler
	config     *config.Config
}

// NewScanModule creates a new scan module instance
func NewScanModule(store *database.Store, cfg *config.Config, log logger.Logger) *ScanModule {
	repo := mongodb.NewScanRepository(store, cfg.Collection)

	uc := usecase.NewScanUsecase(repo, service.NewSource(), log.WithComponent("scan"), cfg.HistoryLimit)

	handler := scanhttp.NewScanHTTPHandler(uc, cfg.HistoryLimit)

	return &ScanModule{
		repository: repo,
		usecase:    uc,
		handler:    handler,
		config:     cfg,
	}
}

// RegisterRoutes registers scan routes with the provided router
func (sm *ScanModule) RegisterRoutes(router fiber.Router) {
	sm.handler.SetupScanRoutes(router)
}

// GetUsecase returns the scan usecase for external access
func (sm *ScanModule) GetUsecase() usecase.ScanUsecase {
	return sm.usecase
}
