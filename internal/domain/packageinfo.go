package domain

import (
	"encoding/json"
	"strings"
)

// PackageInfo describes an installable package from the remote manifest or
// from local registrations.
type PackageInfo struct {
	PackageName string `json:"packageName"`
	Label       string `json:"label,omitempty"`
	VersionCode int64  `json:"versionCode"`
	VersionName string `json:"versionName,omitempty"`
	ApkURL      string `json:"apkUrl"`
	// Settings is the bundled settings payload, kept raw until resolved.
	Settings json.RawMessage `json:"settings,omitempty"`
}

// HasSettings reports whether a non-null settings payload is attached.
func (p PackageInfo) HasSettings() bool {
	s := strings.TrimSpace(string(p.Settings))
	return s != "" && s != "null"
}

// Suffix returns the part of the package name after the last '.'.
func (p PackageInfo) Suffix() string {
	return PackageSuffix(p.PackageName)
}

// PackageSuffix returns the part of name after the last '.'.
func PackageSuffix(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}
