package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/reader"
)

// GeoNature API paths.
const (
	PathMobileApps    = "/api/gn_commons/t_mobile_apps"
	PathDatasets      = "/api/meta/datasets"
	PathNomenclatures = "/api/nomenclatures/nomenclatures/taxonomy"
	PathLogin         = "/api/auth/login"
	PathTaxaAreas     = "/api/synthese/color_taxon"
)

// TokenCookie is the cookie carrying the GeoNature session token.
const TokenCookie = "token"

// GeoNatureClient reads from and writes to a GeoNature server.
type GeoNatureClient struct {
	client
}

// NewGeoNatureClient creates a client for the server at baseURL.
func NewGeoNatureClient(baseURL string, httpClient *http.Client, token TokenFunc, log logger.Logger) *GeoNatureClient {
	return &GeoNatureClient{client: newClient(baseURL, httpClient, token, log)}
}

// BaseURL returns the server root.
func (c *GeoNatureClient) BaseURL() string { return c.baseURL }

// FetchPackageManifest returns the raw package manifest. A 404 or an empty
// body yields nil data and no error.
func (c *GeoNatureClient) FetchPackageManifest(ctx context.Context) ([]byte, error) {
	data, err := c.do(ctx, http.MethodGet, PathMobileApps, nil, nil)
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// FetchDatasets returns the datasets available for module.
func (c *GeoNatureClient) FetchDatasets(ctx context.Context, module string) ([]domain.Dataset, error) {
	query := url.Values{}
	query.Set("fields", "modules")
	if module != "" {
		query.Set("module_code", strings.ToUpper(module))
	}

	data, err := c.do(ctx, http.MethodGet, PathDatasets, query, nil)
	if err != nil {
		return nil, err
	}

	datasets := reader.ReadDatasets(data)
	for i := range datasets {
		if datasets[i].Module == "" {
			datasets[i].Module = module
		}
	}
	return datasets, nil
}

type nomenclatureTypeDTO struct {
	ID            int64             `json:"id_type"`
	Mnemonic      string            `json:"mnemonique"`
	LabelDefault  string            `json:"label_default"`
	Nomenclatures []nomenclatureDTO `json:"nomenclatures"`
}

type nomenclatureDTO struct {
	ID           int64  `json:"id_nomenclature"`
	Code         string `json:"cd_nomenclature"`
	Hierarchy    string `json:"hierarchy"`
	LabelDefault string `json:"label_default"`
}

// FetchNomenclatures returns every nomenclature type with its values.
func (c *GeoNatureClient) FetchNomenclatures(ctx context.Context) ([]domain.NomenclatureType, []domain.Nomenclature, error) {
	var dtos []nomenclatureTypeDTO
	if err := c.getJSON(ctx, PathNomenclatures, nil, &dtos); err != nil {
		return nil, nil, err
	}

	types := make([]domain.NomenclatureType, 0, len(dtos))
	var values []domain.Nomenclature
	for _, t := range dtos {
		types = append(types, domain.NomenclatureType{ID: t.ID, Mnemonic: t.Mnemonic, DefaultLabel: t.LabelDefault})
		for _, n := range t.Nomenclatures {
			values = append(values, domain.Nomenclature{
				ID:           n.ID,
				Code:         n.Code,
				Hierarchy:    n.Hierarchy,
				DefaultLabel: n.LabelDefault,
				TypeID:       t.ID,
			})
		}
	}
	return types, values, nil
}

type taxonAreaDTO struct {
	TaxonID           int64  `json:"cd_nom"`
	AreaID            int64  `json:"id_area"`
	Color             string `json:"color"`
	NumberOfObservers int    `json:"nb_obs"`
	LastDate          string `json:"last_date"`
}

// FetchTaxaAreas returns one page of per-area taxon statistics.
func (c *GeoNatureClient) FetchTaxaAreas(ctx context.Context, limit, offset int) ([]domain.TaxonArea, error) {
	var dtos []taxonAreaDTO
	if err := c.getJSON(ctx, PathTaxaAreas, pageQuery(limit, offset), &dtos); err != nil {
		return nil, err
	}

	areas := make([]domain.TaxonArea, 0, len(dtos))
	for _, d := range dtos {
		area := domain.TaxonArea{
			TaxonID:           d.TaxonID,
			AreaID:            d.AreaID,
			Color:             d.Color,
			NumberOfObservers: d.NumberOfObservers,
		}
		if t, err := time.Parse(time.DateTime, d.LastDate); err == nil {
			area.LastUpdatedAt = &t
		}
		areas = append(areas, area)
	}
	return areas, nil
}

// SendInput uploads input to the module's releve endpoint.
func (c *GeoNatureClient) SendInput(ctx context.Context, input domain.Input) error {
	if input.Module == "" {
		return errors.New("send input: module is required")
	}
	_, err := c.do(ctx, http.MethodPost, "/api/"+url.PathEscape(input.Module)+"/releve", nil, input)
	return err
}

type loginRequest struct {
	Login         string `json:"login"`
	Password      string `json:"password"`
	ApplicationID int64  `json:"id_application"`
}

type loginResponse struct {
	User struct {
		ID    int64  `json:"id_role"`
		Login string `json:"identifiant"`
	} `json:"user"`
	Token   string `json:"token"`
	Expires string `json:"expires"`
}

// Login authenticates against GeoNature and returns the session.
func (c *GeoNatureClient) Login(ctx context.Context, login, password string, applicationID int64) (*domain.AuthLogin, error) {
	data, err := c.do(ctx, http.MethodPost, PathLogin, nil, loginRequest{
		Login:         login,
		Password:      password,
		ApplicationID: applicationID,
	})
	if err != nil {
		return nil, err
	}

	var resp loginResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, &DecodeError{URL: c.endpoint(PathLogin, nil), Err: err}
	}
	if resp.Token == "" {
		return nil, &DecodeError{URL: c.endpoint(PathLogin, nil), Err: errors.New("missing token")}
	}

	expiresAt, err := tokenExpiry(resp.Token)
	if err != nil {
		if t, parseErr := time.Parse(time.RFC3339, resp.Expires); parseErr == nil {
			expiresAt = t
		}
	}

	return &domain.AuthLogin{
		UserID:    resp.User.ID,
		Login:     resp.User.Login,
		Token:     resp.Token,
		ExpiresAt: expiresAt,
	}, nil
}

// tokenExpiry reads the exp claim of a JWT. The signature is not verified:
// the server that issued it is the one that checks it.
func tokenExpiry(token string) (time.Time, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, errors.New("token has no expiry")
	}
	return claims.ExpiresAt.Time, nil
}

func pageQuery(limit, offset int) url.Values {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))
	return query
}
