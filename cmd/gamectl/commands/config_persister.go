package commands

import (
	"context"
	"fmt"
	"sync"

	"github.com/fivetwenty-io/gameadmin/internal/constants"
	"github.com/fivetwenty-io/gameadmin/pkg/admin"
)

// ConfigPersister stores the per-API state kept between runs in the config
// file: the session, the session cookies and the list cursors. It implements
// admin.SessionPersister.
type ConfigPersister struct {
	apiName string
	mutex   sync.Mutex
}

// NewConfigPersister creates a persister for the named API.
func NewConfigPersister(apiName string) *ConfigPersister {
	return &ConfigPersister{apiName: apiName}
}

// LoadSession implements admin.SessionPersister.
func (p *ConfigPersister) LoadSession(_ context.Context) (*admin.SessionSnapshot, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	apiConfig, err := p.apiConfig(loadConfig())
	if err != nil {
		return nil, err
	}

	return &admin.SessionSnapshot{LoggedIn: apiConfig.LoggedIn, User: apiConfig.User}, nil
}

// SaveSession implements admin.SessionPersister. Logging out drops the stored
// cookies along with the session.
func (p *ConfigPersister) SaveSession(_ context.Context, snapshot *admin.SessionSnapshot) error {
	return p.update(func(apiConfig *APIConfig) {
		apiConfig.LoggedIn = snapshot.LoggedIn
		apiConfig.User = snapshot.User

		if !snapshot.LoggedIn {
			apiConfig.Cookies = nil
		}
	})
}

// SaveCookies replaces the stored session cookies.
func (p *ConfigPersister) SaveCookies(cookies []StoredCookie) error {
	return p.update(func(apiConfig *APIConfig) {
		apiConfig.Cookies = cookies
	})
}

// LoadCursor returns the stored list cursor of resource, or nil.
func (p *ConfigPersister) LoadCursor(resource string) *admin.PageState {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	apiConfig, err := p.apiConfig(loadConfig())
	if err != nil || apiConfig.Cursors == nil {
		return nil
	}

	return apiConfig.Cursors[resource]
}

// SaveCursor stores the list cursor of resource.
func (p *ConfigPersister) SaveCursor(resource string, state admin.PageState) error {
	return p.update(func(apiConfig *APIConfig) {
		if apiConfig.Cursors == nil {
			apiConfig.Cursors = make(map[string]*admin.PageState)
		}

		apiConfig.Cursors[resource] = &state
	})
}

func (p *ConfigPersister) update(mutate func(apiConfig *APIConfig)) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	config := loadConfig()

	apiConfig, err := p.apiConfig(config)
	if err != nil {
		return err
	}

	mutate(apiConfig)

	return saveConfigStruct(config)
}

func (p *ConfigPersister) apiConfig(config *Config) (*APIConfig, error) {
	apiConfig, exists := config.APIs[p.apiName]
	if !exists {
		return nil, fmt.Errorf("API configuration for '%s': %w", p.apiName, constants.ErrAPIConfigNotFound)
	}

	return apiConfig, nil
}

var _ admin.SessionPersister = (*ConfigPersister)(nil)
