package syncing

import (
	"github.com/vfg2006/taboola-extractor/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

// Integrator é a visão que a sincronização tem da API da Taboola: troca de
// credenciais, verificação de escopo e busca já normalizada dos dois
// recursos.
type Integrator interface {
	GenerateToken() (string, error)
	VerifyAccountAccess(accessToken string) error
	GetCampaigns(accessToken string) ([]*domain.Campaign, error)
	GetCampaignPerformance(accessToken, startDate, endDate string) ([]*domain.CampaignPerformance, error)
}
