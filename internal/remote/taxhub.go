package remote

import (
	"context"
	"net/http"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
)

// PathTaxa is the TaxHub taxa listing.
const PathTaxa = "/api/taxref/allnamebylist"

// TaxHubClient reads the taxonomic reference from TaxHub.
type TaxHubClient struct {
	client
}

// NewTaxHubClient creates a client for the TaxHub server at baseURL.
func NewTaxHubClient(baseURL string, httpClient *http.Client, token TokenFunc, log logger.Logger) *TaxHubClient {
	return &TaxHubClient{client: newClient(baseURL, httpClient, token, log)}
}

type taxonDTO struct {
	ID         int64  `json:"cd_nom"`
	Name       string `json:"lb_nom"`
	CommonName string `json:"nom_vern"`
	Rank       string `json:"id_rang"`
	Heritage   bool   `json:"patrimonial"`
}

// FetchTaxa returns one page of taxa.
func (c *TaxHubClient) FetchTaxa(ctx context.Context, limit, offset int) ([]domain.Taxon, error) {
	var dtos []taxonDTO
	if err := c.getJSON(ctx, PathTaxa, pageQuery(limit, offset), &dtos); err != nil {
		return nil, err
	}

	taxa := make([]domain.Taxon, 0, len(dtos))
	for _, d := range dtos {
		taxa = append(taxa, domain.Taxon{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.CommonName,
			Rank:        d.Rank,
			Heritage:    d.Heritage,
		})
	}
	return taxa, nil
}
