package services

import (
	"context"
	"encoding/json"

	"github.com/ondoapp/ondo-cli/internal/client/api"
	"github.com/ondoapp/ondo-cli/internal/client/models"
)

// fakeClient implements api.Client for unit tests.
type fakeClient struct {
	LoginRet    *api.TokenResponse
	LoginErr    error
	RegisterRet *api.TokenResponse
	RegisterErr error

	RadarRet *api.RadarResponse
	RadarErr error

	CategoriesRet []models.Category
	CategoriesErr error
	PersonasRet   []models.Persona
	PersonasErr   error

	CreateCategoryRet *models.Category
	CreateCategoryErr error

	HealthErr error
	AITestRet json.RawMessage
	AITestErr error
	AIChatRet *api.ChatResponse
	AIChatErr error

	// recorded arguments / call counts
	LastLoginEmail    string
	LastLoginPassword string
	CategoriesCalls   int
	PersonasCalls     int
	LastCategoryName  string
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*api.TokenResponse, error) {
	f.LastLoginEmail = email
	f.LastLoginPassword = password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, email, password string) (*api.TokenResponse, error) {
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Radar(ctx context.Context) (*api.RadarResponse, error) {
	return f.RadarRet, f.RadarErr
}

func (f *fakeClient) Categories(ctx context.Context) ([]models.Category, error) {
	f.CategoriesCalls++
	return f.CategoriesRet, f.CategoriesErr
}

func (f *fakeClient) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	f.LastCategoryName = name
	return f.CreateCategoryRet, f.CreateCategoryErr
}

func (f *fakeClient) Personas(ctx context.Context) ([]models.Persona, error) {
	f.PersonasCalls++
	return f.PersonasRet, f.PersonasErr
}

func (f *fakeClient) Health(ctx context.Context) error { return f.HealthErr }

func (f *fakeClient) AITest(ctx context.Context) (json.RawMessage, error) {
	return f.AITestRet, f.AITestErr
}

func (f *fakeClient) AIChat(ctx context.Context, prompt string, maxTokens int) (*api.ChatResponse, error) {
	return f.AIChatRet, f.AIChatErr
}
