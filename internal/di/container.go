package di

import (
	"context"
	"fmt"
	"sync"

	"ecoshopper-backend/internal/auth"
	authconfig "ecoshopper-backend/internal/auth/config"
	"ecoshopper-backend/internal/scan"
	scanconfig "ecoshopper-backend/internal/scan/config"
	"ecoshopper-backend/internal/shared/database"
	"ecoshopper-backend/internal/shared/logger"
)

// Container wires the application modules and owns shared resources with
// proper lifecycle management.
type Container struct {
	mu sync.RWMutex

	// Module instances
	ScanModule *scan.ScanModule
	AuthModule *auth.AuthModule

	// Shared store handle
	Store *database.Store

	// Configuration
	ScanConfig *scanconfig.Config
	AuthConfig *authconfig.Config

	// Logger
	Logger logger.Logger
}

// NewContainer creates a new DI container
func NewContainer(log logger.Logger) *Container {
	return &Container{
		Logger: log,
	}
}

// InitializeScan initializes the scan module over the shared store handle
func (c *Container) InitializeScan(store *database.Store, cfg *scanconfig.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Store = store
	c.ScanConfig = cfg
	c.ScanModule = scan.NewScanModule(store, cfg, c.Logger)
	return nil
}

// InitializeAuth initializes the authentication module
func (c *Container) InitializeAuth(cfg *authconfig.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	authModule, err := auth.NewAuthModule(cfg, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to create auth module: %w", err)
	}

	c.AuthConfig = cfg
	c.AuthModule = authModule
	return nil
}

// GetScanModule returns the scan module instance
func (c *Container) GetScanModule() *scan.ScanModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ScanModule
}

// GetAuthModule returns the auth module instance
func (c *Container) GetAuthModule() *auth.AuthModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.AuthModule
}

// HealthCheck verifies the shared store connection
func (c *Container) HealthCheck(ctx context.Context) error {
	c.mu.RLock()
	store := c.Store
	c.mu.RUnlock()

	if store == nil {
		return fmt.Errorf("store not initialized")
	}
	if err := store.Ping(ctx); err != nil {
		return fmt.Errorf("store ping failed: %w", err)
	}
	return nil
}

// Close releases shared resources
func (c *Container) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Store != nil {
		return c.Store.Close(context.Background())
	}
	return nil
}
