package taboolaclient

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	tabooladomain "github.com/vfg2006/taboola-extractor/infrastructure/integrator/taboola/domain"
	"github.com/vfg2006/taboola-extractor/internal/config"
)

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GenerateToken() (string, error)
	GetTokenDetails(accessToken string) (*tabooladomain.TokenDetails, error)
	GetCampaigns(accessToken string) ([]tabooladomain.RawRecord, error)
	GetCampaignPerformance(accessToken, startDate, endDate string) ([]tabooladomain.RawRecord, error)
}

type TaboolaClient struct {
	httpClient *http.Client
	cfg        *config.Config
	logger     logrus.FieldLogger
}

func NewClient(cfg *config.Config, logger logrus.FieldLogger) Client {
	return &TaboolaClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg:    cfg,
		logger: logger,
	}
}
