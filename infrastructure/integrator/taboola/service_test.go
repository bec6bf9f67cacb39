package taboola

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	tabooladomain "github.com/vfg2006/taboola-extractor/infrastructure/integrator/taboola/domain"
	"github.com/vfg2006/taboola-extractor/infrastructure/integrator/taboola/taboolaclient/mocks"
	"github.com/vfg2006/taboola-extractor/internal/config"
	"github.com/vfg2006/taboola-extractor/internal/domain"
)

func newTestIntegrator(client *mocks.MockClient) *TaboolaIntegrator {
	cfg := &config.Config{
		Taboola: config.Taboola{
			AccountID: "demo-account",
		},
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return New(cfg, client, logger)
}

func TestVerifyAccountAccess(t *testing.T) {
	tests := []struct {
		name    string
		details *tabooladomain.TokenDetails
		wantErr error
	}{
		{
			name:    "Token escopado à conta configurada",
			details: &tabooladomain.TokenDetails{AccountID: "demo-account"},
		},
		{
			name:    "Token de outra conta é recusado antes de qualquer busca",
			details: &tabooladomain.TokenDetails{AccountID: "other-account"},
			wantErr: domain.ErrAccessDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mocks.NewMockClient(ctrl)
			integrator := newTestIntegrator(mockClient)

			mockClient.EXPECT().GetTokenDetails("token-123").Return(tt.details, nil)

			err := integrator.VerifyAccountAccess("token-123")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestGetCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := newTestIntegrator(mockClient)

	mockClient.EXPECT().GetCampaigns("token-123").Return([]tabooladomain.RawRecord{
		{"id": float64(42), "name": "Demo Campaign", "spent": 2.23},
		{"id": "77"},
	}, nil)

	campaigns, err := integrator.GetCampaigns("token-123")
	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, 42, campaigns[0].ID)
	assert.Equal(t, "Demo Campaign", campaigns[0].Name)
	assert.Equal(t, 2.23, campaigns[0].Spent)
	assert.Equal(t, 77, campaigns[1].ID)
	assert.Equal(t, domain.OpenEndedDate, campaigns[1].EndDate)
}

func TestGetCampaignsAbortsOnBadRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := newTestIntegrator(mockClient)

	// Um único registro sem identidade invalida o lote inteiro.
	mockClient.EXPECT().GetCampaigns("token-123").Return([]tabooladomain.RawRecord{
		{"id": float64(42)},
		{"name": "sem id"},
	}, nil)

	campaigns, err := integrator.GetCampaigns("token-123")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
	assert.Nil(t, campaigns)
}

func TestGetCampaignPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := newTestIntegrator(mockClient)

	mockClient.EXPECT().
		GetCampaignPerformance("token-123", "2021-01-01", "2021-03-20").
		Return([]tabooladomain.RawRecord{
			{
				"campaign":    float64(42),
				"date":        "2021-01-02 00:00:00.000000",
				"impressions": float64(1000),
				"spent":       4.2,
				"currency":    "USD",
			},
		}, nil)

	performance, err := integrator.GetCampaignPerformance("token-123", "2021-01-01", "2021-03-20")
	require.NoError(t, err)
	require.Len(t, performance, 1)
	assert.Equal(t, 42, performance[0].CampaignID)
	assert.Equal(t, "2021-01-02", performance[0].Date)
	assert.Equal(t, 1000, performance[0].Impressions)
	assert.Equal(t, 4.2, performance[0].Spent)
}
