package bootstrap

import (
	"context"
	"net/http"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/failure"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/remote"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/repository"
)

// remoteFactory builds API clients for the servers named by the resolved
// settings. Every client sends the current session token.
type remoteFactory struct {
	httpClient *http.Client
	token      remote.TokenFunc
	log        logger.Logger
}

func (f remoteFactory) GeoNature(baseURL string) repository.GeoNatureSource {
	return remote.NewGeoNatureClient(baseURL, f.httpClient, f.token, f.log)
}

func (f remoteFactory) TaxHub(baseURL string) repository.TaxHubSource {
	return remote.NewTaxHubClient(baseURL, f.httpClient, f.token, f.log)
}

// unconfiguredRemote stands in for the bootstrap server when none is
// configured.
type unconfiguredRemote struct{}

var errNoServer = failure.NetworkFailure{Reason: "no GeoNature server configured"}

func (unconfiguredRemote) BaseURL() string { return "" }

func (unconfiguredRemote) FetchPackageManifest(context.Context) ([]byte, error) {
	return nil, errNoServer
}

func (unconfiguredRemote) Login(context.Context, string, string, int64) (*domain.AuthLogin, error) {
	return nil, errNoServer
}
