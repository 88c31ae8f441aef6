package failure

import "fmt"

// Feature area names.
const (
	FeatureDataset      = "dataset"
	FeatureTaxon        = "taxon"
	FeatureNomenclature = "nomenclature"
	FeatureInput        = "input"
	FeaturePackageInfo  = "package_info"
	FeatureSettings     = "settings"
	FeatureAuth         = "auth"
)

// DatasetNotFoundFailure reports a missing dataset.
type DatasetNotFoundFailure struct {
	ID     int64
	Module string
}

func (f DatasetNotFoundFailure) Error() string {
	return fmt.Sprintf("no dataset found with id %d in module %q", f.ID, f.Module)
}

func (DatasetNotFoundFailure) Kind() Kind { return KindFeature }

func (DatasetNotFoundFailure) Feature() string { return FeatureDataset }

// TaxonNotFoundFailure reports a missing taxon.
type TaxonNotFoundFailure struct {
	ID int64
}

func (f TaxonNotFoundFailure) Error() string {
	return fmt.Sprintf("no taxon found with id %d", f.ID)
}

func (TaxonNotFoundFailure) Kind() Kind { return KindFeature }

func (TaxonNotFoundFailure) Feature() string { return FeatureTaxon }

// NomenclatureNotFoundFailure reports an unknown nomenclature type.
type NomenclatureNotFoundFailure struct {
	Mnemonic string
}

func (f NomenclatureNotFoundFailure) Error() string {
	return fmt.Sprintf("no nomenclature found for type %q", f.Mnemonic)
}

func (NomenclatureNotFoundFailure) Kind() Kind { return KindFeature }

func (NomenclatureNotFoundFailure) Feature() string { return FeatureNomenclature }

// InputNotFoundFailure reports a missing input.
type InputNotFoundFailure struct {
	ID int64
}

func (f InputNotFoundFailure) Error() string {
	return fmt.Sprintf("no input found with id %d", f.ID)
}

func (InputNotFoundFailure) Kind() Kind { return KindFeature }

func (InputNotFoundFailure) Feature() string { return FeatureInput }

// InputIOFailure reports a file I/O error while reading or exporting inputs.
type InputIOFailure struct {
	Cause error
}

func (f InputIOFailure) Error() string {
	return fmt.Sprintf("input I/O failure: %v", f.Cause)
}

func (InputIOFailure) Kind() Kind { return KindFeature }

func (InputIOFailure) Feature() string { return FeatureInput }

func (f InputIOFailure) Unwrap() error { return f.Cause }

// NoPackageInfoFoundFromRemoteFailure reports an absent or empty remote manifest.
type NoPackageInfoFoundFromRemoteFailure struct{}

func (NoPackageInfoFoundFromRemoteFailure) Error() string {
	return "no package info found from remote"
}

func (NoPackageInfoFoundFromRemoteFailure) Kind() Kind { return KindFeature }

func (NoPackageInfoFoundFromRemoteFailure) Feature() string { return FeaturePackageInfo }

// PackageInfoNotFoundFromRemoteFailure reports a package missing from an
// otherwise non-empty remote manifest.
type PackageInfoNotFoundFromRemoteFailure struct {
	PackageName string
}

func (f PackageInfoNotFoundFromRemoteFailure) Error() string {
	return fmt.Sprintf("package %q not found from remote", f.PackageName)
}

func (PackageInfoNotFoundFromRemoteFailure) Kind() Kind { return KindFeature }

func (PackageInfoNotFoundFromRemoteFailure) Feature() string { return FeaturePackageInfo }

// NoPackageInfoFoundFailure reports that no package is registered locally.
type NoPackageInfoFoundFailure struct{}

func (NoPackageInfoFoundFailure) Error() string { return "no package info found" }

func (NoPackageInfoFoundFailure) Kind() Kind { return KindFeature }

func (NoPackageInfoFoundFailure) Feature() string { return FeaturePackageInfo }

// PackageInfoNotFoundFailure reports a package missing from local registrations.
type PackageInfoNotFoundFailure struct {
	PackageName string
}

func (f PackageInfoNotFoundFailure) Error() string {
	return fmt.Sprintf("package %q not found", f.PackageName)
}

func (PackageInfoNotFoundFailure) Kind() Kind { return KindFeature }

func (PackageInfoNotFoundFailure) Feature() string { return FeaturePackageInfo }

// Settings sources.
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
)

// SettingsNotFoundFailure reports that a source holds no sync configuration.
type SettingsNotFoundFailure struct {
	Source string
	// RemoteBaseURL hints which server was asked, empty for local lookups
	// made without a configured server.
	RemoteBaseURL string
}

func (f SettingsNotFoundFailure) Error() string {
	if f.RemoteBaseURL == "" {
		return fmt.Sprintf("no settings found from %s source", f.Source)
	}
	return fmt.Sprintf("no settings found from %s source (server %s)", f.Source, f.RemoteBaseURL)
}

func (SettingsNotFoundFailure) Kind() Kind { return KindFeature }

func (SettingsNotFoundFailure) Feature() string { return FeatureSettings }

// SettingsJSONParseFailure reports a malformed settings payload.
type SettingsJSONParseFailure struct {
	Source string
	Cause  error
}

func (f SettingsJSONParseFailure) Error() string {
	return fmt.Sprintf("failed to parse %s settings: %v", f.Source, f.Cause)
}

func (SettingsJSONParseFailure) Kind() Kind { return KindFeature }

func (SettingsJSONParseFailure) Feature() string { return FeatureSettings }

func (f SettingsJSONParseFailure) Unwrap() error { return f.Cause }

// AuthNotConnectedFailure reports that no valid login session exists.
type AuthNotConnectedFailure struct{}

func (AuthNotConnectedFailure) Error() string { return "not connected" }

func (AuthNotConnectedFailure) Kind() Kind { return KindFeature }

func (AuthNotConnectedFailure) Feature() string { return FeatureAuth }
