package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vfg2006/taboola-extractor/internal/domain"
	"github.com/vfg2006/taboola-extractor/pkg/utils"
)

type Config struct {
	App     App     `mapstructure:",squash"`
	Taboola Taboola `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Taboola struct {
	BaseURL      string `mapstructure:"base_url"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	AccountID    string `mapstructure:"account_id"`
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	StartDate    string `mapstructure:"start_date"`
}

func SetDefaults() {
	viper.SetDefault("BASE_URL", "https://backstage.taboola.com")

	viper.SetDefault("LOG_LEVEL", "debug")
}

// NewConfig carrega o arquivo de configuração JSON indicado na linha de
// comando, com sobrescrita por variáveis de ambiente TABOOLA_*.
func NewConfig(path string) (*Config, error) {
	// Carregar o arquivo .env usando godotenv // ONLY LOCAL
	loadEnvFile()

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("json")
	viper.SetConfigFile(path)
	viper.SetEnvPrefix("taboola")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, domain.NewSyncError(domain.ErrConfigInvalid, "config_read",
			fmt.Sprintf("não foi possível ler %s como JSON: %v", path, err))
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, domain.NewSyncError(domain.ErrConfigInvalid, "config_decode", err.Error())
	}

	if err := config.Taboola.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate confere as chaves obrigatórias da configuração. Todas as chaves
// ausentes ou nulas são acumuladas em um único erro fatal, para que uma
// execução mal configurada aponte todos os problemas de uma vez.
func (t Taboola) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"username", t.Username},
		{"password", t.Password},
		{"account_id", t.AccountID},
		{"client_id", t.ClientID},
		{"client_secret", t.ClientSecret},
		{"start_date", t.StartDate},
	}

	missing := make([]string, 0)
	for _, field := range required {
		if field.value == "" {
			missing = append(missing, field.key)
		}
	}

	if len(missing) > 0 {
		return domain.NewSyncError(domain.ErrConfigInvalid, "config_missing_keys",
			fmt.Sprintf("chaves obrigatórias ausentes ou nulas: %s", strings.Join(missing, ", ")))
	}

	if _, err := utils.ParseDate(t.StartDate); err != nil {
		return domain.NewSyncError(domain.ErrConfigInvalid, "config_start_date",
			fmt.Sprintf("start_date %q não é uma data ISO (YYYY-MM-DD)", t.StartDate))
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("Nenhum arquivo .env carregado: ", err)
	}
}
