package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
)

// PackageStore records locally installed packages.
type PackageStore struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewPackageStore creates a new package store.
func NewPackageStore(db *sqlx.DB) *PackageStore {
	return &PackageStore{db: db, now: time.Now}
}

type packageRow struct {
	PackageName string    `db:"package_name"`
	Label       string    `db:"label"`
	VersionCode int64     `db:"version_code"`
	VersionName string    `db:"version_name"`
	ApkURL      string    `db:"apk_url"`
	InstalledAt time.Time `db:"installed_at"`
}

func (r packageRow) toDomain() domain.PackageInfo {
	return domain.PackageInfo{
		PackageName: r.PackageName,
		Label:       r.Label,
		VersionCode: r.VersionCode,
		VersionName: r.VersionName,
		ApkURL:      r.ApkURL,
	}
}

// FindAll lists every registered package ordered by name.
func (s *PackageStore) FindAll(ctx context.Context) ([]domain.PackageInfo, error) {
	var rows []packageRow
	query := `
		SELECT package_name, label, version_code, version_name, apk_url, installed_at
		FROM packages
		ORDER BY package_name
	`
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}

	infos := make([]domain.PackageInfo, 0, len(rows))
	for _, r := range rows {
		infos = append(infos, r.toDomain())
	}
	return infos, nil
}

// Find returns the registration of packageName.
func (s *PackageStore) Find(ctx context.Context, packageName string) (*domain.PackageInfo, error) {
	var row packageRow
	query := `
		SELECT package_name, label, version_code, version_name, apk_url, installed_at
		FROM packages
		WHERE package_name = ?
	`
	err := s.db.GetContext(ctx, &row, query, packageName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(EntityPackage, packageName)
	}
	if err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}

	info := row.toDomain()
	return &info, nil
}

// MarkInstalled registers pkg as the installed version of its package.
func (s *PackageStore) MarkInstalled(ctx context.Context, pkg domain.PackageInfo) error {
	query := `
		INSERT INTO packages (package_name, label, version_code, version_name, apk_url, installed_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (package_name) DO UPDATE SET
			label = excluded.label,
			version_code = excluded.version_code,
			version_name = excluded.version_name,
			apk_url = excluded.apk_url,
			installed_at = excluded.installed_at
	`
	_, err := s.db.ExecContext(ctx, query,
		pkg.PackageName, pkg.Label, pkg.VersionCode, pkg.VersionName, pkg.ApkURL, s.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("mark package %s installed: %w", pkg.PackageName, err)
	}
	return nil
}
