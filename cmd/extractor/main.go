package main

import (
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/taboola-extractor/infrastructure/emitter/singer"
	"github.com/vfg2006/taboola-extractor/infrastructure/integrator/taboola"
	"github.com/vfg2006/taboola-extractor/infrastructure/integrator/taboola/taboolaclient"
	"github.com/vfg2006/taboola-extractor/internal/config"
	"github.com/vfg2006/taboola-extractor/internal/state"
	"github.com/vfg2006/taboola-extractor/internal/usecases/syncing"
	"github.com/vfg2006/taboola-extractor/pkg/log"
)

type options struct {
	Config string `short:"c" long:"config" description:"Arquivo de configuração (JSON)" required:"true"`
	State  string `short:"s" long:"state" description:"Arquivo de estado com o checkpoint da execução anterior"`
}

func main() {
	// Inicializa configuração de logs
	log.Setup()

	opts := &options{}
	if _, err := flags.Parse(opts); err != nil {
		os.Exit(1)
	}

	cfg, err := config.NewConfig(opts.Config)
	if err != nil {
		logrus.WithError(err).Fatal("Configuração inválida")
	}

	// Define o nível de log com base na configuração
	log.SetLevel(cfg.App.LogLevel)

	logger := log.NewRunLogger()

	st, err := state.Load(opts.State)
	if err != nil {
		logger.WithError(err).Fatal("Erro ao carregar o arquivo de estado")
	}

	emitter := singer.NewStreamEmitter(os.Stdout)
	client := taboolaclient.NewClient(cfg, logger)
	integrator := taboola.New(cfg, client, logger)
	service := syncing.NewService(cfg, integrator, emitter, logger)

	if err := service.Run(st); err != nil {
		logger.WithError(err).Fatal("Execução falhou")
	}

	// O avanço do checkpoint é responsabilidade deste wrapper, nunca do
	// núcleo da sincronização: só acontece depois de uma execução completa.
	checkpoint := &state.State{StartDate: time.Now().Format(time.DateOnly)}
	if err := emitter.WriteState(checkpoint); err != nil {
		logger.WithError(err).Fatal("Erro ao emitir a mensagem de estado")
	}

	if opts.State != "" {
		if err := state.Save(opts.State, checkpoint); err != nil {
			logger.WithError(err).Fatal("Erro ao gravar o novo checkpoint")
		}

		logger.WithField("start_date", checkpoint.StartDate).Info("Checkpoint atualizado")
	}
}
