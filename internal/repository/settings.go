package repository

import (
	"context"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
)

// SettingsRepository resolves sync settings.
type SettingsRepository struct {
	resolver SettingsResolver
	log      logger.Logger
}

// NewSettingsRepository creates a settings repository.
func NewSettingsRepository(resolver SettingsResolver, log logger.Logger) *SettingsRepository {
	return &SettingsRepository{resolver: resolver, log: orNop(log)}
}

// ResolveSettings returns the settings of packageName.
func (r *SettingsRepository) ResolveSettings(ctx context.Context, packageName string) Result[domain.DataSyncSettings] {
	return Guard(ctx, r.log, "resolve_settings", func(ctx context.Context) (domain.DataSyncSettings, error) {
		s, err := r.resolver.Resolve(ctx, packageName)
		if err != nil {
			return domain.DataSyncSettings{}, err
		}
		return *s, nil
	})
}
