package syncing

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/taboola-extractor/infrastructure/emitter/singer"
	"github.com/vfg2006/taboola-extractor/internal/config"
	"github.com/vfg2006/taboola-extractor/internal/state"
)

// Nomes dos streams emitidos para o sink.
const (
	CampaignsStream           = "campaigns"
	CampaignPerformanceStream = "campaign_performance"
)

// Service orquestra uma execução completa de sincronização. A ordem dos
// passos é fixa e nenhum é pulado: token → declaração de schemas →
// verificação de acesso → campanhas → desempenho diário.
type Service struct {
	cfg        *config.Config
	integrator Integrator
	emitter    singer.Emitter
	logger     logrus.FieldLogger
	now        func() time.Time
}

func NewService(cfg *config.Config, integrator Integrator, emitter singer.Emitter, logger logrus.FieldLogger) *Service {
	return &Service{
		cfg:        cfg,
		integrator: integrator,
		emitter:    emitter,
		logger:     logger,
		now:        time.Now,
	}
}

// Run executa a sincronização. Qualquer erro aborta a execução inteira; não
// há retry nem sucesso parcial. O núcleo não grava checkpoint: o avanço do
// cursor é responsabilidade do chamador após o sucesso da execução.
func (s *Service) Run(st *state.State) error {
	s.logger.Info("Iniciando sincronização")

	accessToken, err := s.integrator.GenerateToken()
	if err != nil {
		return err
	}

	err = s.emitter.WriteSchema(CampaignsStream, singer.CampaignSchema, []string{"id"})
	if err != nil {
		return err
	}

	err = s.emitter.WriteSchema(CampaignPerformanceStream, singer.CampaignPerformanceSchema, []string{"campaign_id", "date"})
	if err != nil {
		return err
	}

	if err := s.integrator.VerifyAccountAccess(accessToken); err != nil {
		return err
	}

	if err := s.syncCampaigns(accessToken); err != nil {
		return err
	}

	if err := s.syncCampaignPerformance(accessToken, st); err != nil {
		return err
	}

	s.logger.Info("Sincronização concluída")
	return nil
}

func (s *Service) syncCampaigns(accessToken string) error {
	campaigns, err := s.integrator.GetCampaigns(accessToken)
	if err != nil {
		return err
	}

	s.logger.WithField("count", len(campaigns)).Info("Campanhas recebidas")

	records := make([]any, 0, len(campaigns))
	for _, campaign := range campaigns {
		records = append(records, campaign)
	}

	if err := s.emitter.WriteRecords(CampaignsStream, records); err != nil {
		return err
	}

	s.logger.Info("Sincronização de campanhas concluída")
	return nil
}

// syncCampaignPerformance usa o checkpoint da execução anterior como limite
// inferior da janela, quando presente, e o start_date configurado caso
// contrário. O limite superior é sempre a data de hoje no relógio local.
func (s *Service) syncCampaignPerformance(accessToken string, st *state.State) error {
	startDate := s.cfg.Taboola.StartDate
	if st != nil && st.StartDate != "" {
		startDate = st.StartDate
	}

	endDate := s.now().Format(time.DateOnly)

	s.logger.WithFields(logrus.Fields{
		"start_date": startDate,
		"end_date":   endDate,
	}).Info("Período do relatório de desempenho")

	performance, err := s.integrator.GetCampaignPerformance(accessToken, startDate, endDate)
	if err != nil {
		return err
	}

	s.logger.WithField("count", len(performance)).Info("Registros de desempenho recebidos")

	records := make([]any, 0, len(performance))
	for _, row := range performance {
		records = append(records, row)
	}

	if err := s.emitter.WriteRecords(CampaignPerformanceStream, records); err != nil {
		return err
	}

	s.logger.Info("Sincronização de desempenho de campanhas concluída")
	return nil
}
