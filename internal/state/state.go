package state

import (
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/taboola-extractor/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// State é o cursor de checkpoint entre execuções: o limite inferior da
// janela do relatório de desempenho da próxima execução.
type State struct {
	StartDate string `json:"start_date,omitempty"`
}

// Load lê o arquivo de estado da execução anterior. Caminho vazio ou
// arquivo inexistente não é erro: a janela parte do start_date configurado.
// Um arquivo presente mas ilegível aborta a execução.
func Load(path string) (*State, error) {
	if path == "" {
		return &State{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &State{}, nil
		}
		return nil, domain.NewSyncError(domain.ErrConfigInvalid, "state_read", err.Error())
	}

	st := &State{}
	if err := json.Unmarshal(data, st); err != nil {
		return nil, domain.NewSyncError(domain.ErrConfigInvalid, "state_decode",
			"arquivo de estado não é um JSON válido: "+err.Error())
	}

	return st, nil
}

// Save grava o novo checkpoint. O avanço do cursor é responsabilidade do
// wrapper do processo, nunca do núcleo da sincronização.
func Save(path string, st *State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
