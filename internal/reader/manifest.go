package reader

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
)

type manifestEntry struct {
	PackageName *string         `json:"packageName"`
	Label       string          `json:"label"`
	VersionCode json.Number     `json:"versionCode"`
	VersionName string          `json:"versionName"`
	ApkURL      *string         `json:"apkUrl"`
	Settings    json.RawMessage `json:"settings"`
}

// ReadPackageInfos parses a package manifest that is either a single object or
// an array of objects. Blank or null input yields an empty list. Entries
// without a packageName or apkUrl, or that are not objects, are dropped. An
// error is returned only when data is not valid JSON.
func ReadPackageInfos(data []byte) ([]domain.PackageInfo, error) {
	if isBlank(data) {
		return []domain.PackageInfo{}, nil
	}

	items, err := splitObjects(data)
	if err != nil {
		return nil, fmt.Errorf("parse package manifest: %w", err)
	}

	infos := make([]domain.PackageInfo, 0, len(items))
	for _, item := range items {
		var e manifestEntry
		if err := json.Unmarshal(item, &e); err != nil {
			continue
		}
		if e.PackageName == nil || strings.TrimSpace(*e.PackageName) == "" {
			continue
		}
		if e.ApkURL == nil || strings.TrimSpace(*e.ApkURL) == "" {
			continue
		}

		info := domain.PackageInfo{
			PackageName: *e.PackageName,
			Label:       e.Label,
			VersionName: e.VersionName,
			ApkURL:      *e.ApkURL,
		}
		if code, err := e.VersionCode.Int64(); err == nil {
			info.VersionCode = code
		}
		if len(e.Settings) > 0 && string(e.Settings) != "null" {
			info.Settings = e.Settings
		}
		infos = append(infos, info)
	}
	return infos, nil
}
