package taboola

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/taboola-extractor/infrastructure/integrator/taboola/taboolaclient"
	"github.com/vfg2006/taboola-extractor/internal/config"
	"github.com/vfg2006/taboola-extractor/internal/domain"
)

type TaboolaIntegrator struct {
	cfg    *config.Config
	Client taboolaclient.Client
	logger logrus.FieldLogger
}

func New(cfg *config.Config, client taboolaclient.Client, logger logrus.FieldLogger) *TaboolaIntegrator {
	return &TaboolaIntegrator{
		cfg:    cfg,
		Client: client,
		logger: logger,
	}
}

// GenerateToken delega a troca de credenciais ao cliente da API.
func (s *TaboolaIntegrator) GenerateToken() (string, error) {
	return s.Client.GenerateToken()
}

// VerifyAccountAccess confirma que o token emitido pertence à conta
// configurada antes de qualquer busca de dados, evitando vazamento de
// dados entre contas.
func (s *TaboolaIntegrator) VerifyAccountAccess(accessToken string) error {
	details, err := s.Client.GetTokenDetails(accessToken)
	if err != nil {
		return err
	}

	if details.AccountID != s.cfg.Taboola.AccountID {
		s.logger.WithFields(logrus.Fields{
			"token_account_id": details.AccountID,
			"account_id":       s.cfg.Taboola.AccountID,
		}).Error("As credenciais fornecidas não têm acesso à conta configurada")

		return domain.NewSyncError(domain.ErrAccessDenied, "account_mismatch",
			fmt.Sprintf("token emitido para a conta %q, configurada %q",
				details.AccountID, s.cfg.Taboola.AccountID))
	}

	s.logger.Info("Acesso à conta verificado via endpoint de token-details")
	return nil
}

// GetCampaigns busca e normaliza as campanhas da conta. Um registro que não
// normaliza aborta a execução inteira: o sink nunca recebe um lote parcial
// silenciosamente.
func (s *TaboolaIntegrator) GetCampaigns(accessToken string) ([]*domain.Campaign, error) {
	results, err := s.Client.GetCampaigns(accessToken)
	if err != nil {
		return nil, err
	}

	campaigns := make([]*domain.Campaign, 0, len(results))
	for _, raw := range results {
		campaign, err := FactoryCampaign(raw)
		if err != nil {
			s.logger.WithError(err).Error("Falha ao normalizar campanha")
			return nil, err
		}

		campaigns = append(campaigns, campaign)
	}

	return campaigns, nil
}

// GetCampaignPerformance busca e normaliza o relatório diário por campanha.
func (s *TaboolaIntegrator) GetCampaignPerformance(accessToken, startDate, endDate string) ([]*domain.CampaignPerformance, error) {
	results, err := s.Client.GetCampaignPerformance(accessToken, startDate, endDate)
	if err != nil {
		return nil, err
	}

	performance := make([]*domain.CampaignPerformance, 0, len(results))
	for _, raw := range results {
		row, err := FactoryCampaignPerformance(raw)
		if err != nil {
			s.logger.WithError(err).Error("Falha ao normalizar registro de desempenho")
			return nil, err
		}

		performance = append(performance, row)
	}

	return performance, nil
}
