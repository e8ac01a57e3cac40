package holiday

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

// APIProvider fetches public holidays from a Nager.Date compatible HTTP API
// (GET {base_url}/{year}/{country}) and caches the result per year.
type APIProvider struct {
	baseURL     string
	country     string
	subdivision string
	cacheTTL    time.Duration
	httpClient  *http.Client
	logger      *zap.Logger
	cache       map[int]*cachedYear
	cacheMu     sync.RWMutex
}

type cachedYear struct {
	data      Set
	fetchedAt time.Time
}

// apiHoliday represents a single holiday in the API response
type apiHoliday struct {
	Date      string   `json:"date"`
	LocalName string   `json:"localName"`
	Name      string   `json:"name"`
	Counties  []string `json:"counties"` // null means nationwide
}

// NewAPIProvider creates a new APIProvider instance
func NewAPIProvider(baseURL, country, subdivision string, cacheTTL time.Duration, logger *zap.Logger) *APIProvider {
	return &APIProvider{
		baseURL:     strings.TrimRight(baseURL, "/"),
		country:     country,
		subdivision: subdivision,
		cacheTTL:    cacheTTL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
		cache:  make(map[int]*cachedYear),
	}
}

// Year returns the holiday set for the given calendar year.
func (p *APIProvider) Year(year int) (Set, error) {
	p.cacheMu.RLock()
	if cached, ok := p.cache[year]; ok {
		if time.Since(cached.fetchedAt) < p.cacheTTL {
			p.cacheMu.RUnlock()
			p.logger.Debug("Using cached holiday set", zap.Int("year", year))
			return cached.data, nil
		}
	}
	p.cacheMu.RUnlock()

	set, err := p.fetchYear(year)
	if err != nil {
		return nil, err
	}

	p.cacheMu.Lock()
	p.cache[year] = &cachedYear{
		data:      set,
		fetchedAt: time.Now(),
	}
	p.cacheMu.Unlock()

	p.logger.Info("Holiday set fetched and cached",
		zap.Int("year", year),
		zap.Int("holidays", len(set)))

	return set, nil
}

// fetchYear fetches the holiday list from the API
func (p *APIProvider) fetchYear(year int) (Set, error) {
	url := fmt.Sprintf("%s/%d/%s", p.baseURL, year, p.country)

	p.logger.Debug("Fetching holiday data",
		zap.String("url", url),
		zap.Int("year", year))

	resp, err := p.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holiday data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday API returned status %d", resp.StatusCode)
	}

	var holidays []apiHoliday
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	set := make(Set)
	for _, h := range holidays {
		if !p.appliesHere(h.Counties) {
			continue
		}
		name := h.LocalName
		if name == "" {
			name = h.Name
		}
		set[h.Date] = name
	}

	return set, nil
}

// appliesHere reports whether a holiday restricted to the given counties
// applies to the configured subdivision. A nil county list means nationwide.
func (p *APIProvider) appliesHere(counties []string) bool {
	if len(counties) == 0 {
		return true
	}
	if p.subdivision == "" {
		return false
	}

	// The API uses ISO 3166-2 codes ("DE-BY"); config may hold either form.
	code := p.subdivision
	if !strings.Contains(code, "-") {
		code = p.country + "-" + code
	}

	for _, c := range counties {
		if c == code {
			return true
		}
	}

	return false
}

// ClearCache clears the per-year cache
func (p *APIProvider) ClearCache() {
	p.cacheMu.Lock()
	defer p.cacheMu.Unlock()

	p.cache = make(map[int]*cachedYear)
	p.logger.Info("Holiday cache cleared")
}
