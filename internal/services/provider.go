package services

import (
	"github.com/incorpora/onboarding-api/internal/clients/hubspot"
	"github.com/incorpora/onboarding-api/internal/domain/onboarding"
	"github.com/incorpora/onboarding-api/internal/repositories/applications"
	"github.com/incorpora/onboarding-api/internal/repositories/drafts"
	onboardingService "github.com/incorpora/onboarding-api/internal/services/onboarding"
)

// Provider holds all service instances
type Provider struct {
	OnboardingService onboardingService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	CRMClient             hubspot.Client
	DraftRepository       drafts.Repository
	ApplicationRepository applications.Repository
	FlowPolicy            onboarding.FlowPolicy
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	// Use in-memory repositories if none provided
	draftRepo := cfg.DraftRepository
	if draftRepo == nil {
		draftRepo = drafts.NewInMemoryRepository()
	}

	applicationRepo := cfg.ApplicationRepository
	if applicationRepo == nil {
		applicationRepo = applications.NewInMemoryRepository()
	}

	svc, err := onboardingService.NewService(&onboardingService.ServiceConfig{
		DraftRepository:       draftRepo,
		ApplicationRepository: applicationRepo,
		CRMClient:             cfg.CRMClient,
		FlowPolicy:            cfg.FlowPolicy,
	})
	if err != nil {
		return nil, err
	}

	return &Provider{
		OnboardingService: svc,
	}, nil
}
