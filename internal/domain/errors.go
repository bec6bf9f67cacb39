package domain

import (
	"errors"
	"fmt"
)

// Variantes fatais de erro da sincronização. Toda condição que aborta a
// execução carrega uma delas, e o tratamento acontece em um único ponto
// no processo (cmd/extractor).
var (
	// Erros de configuração e estado
	ErrConfigInvalid = errors.New("configuração inválida")

	// Erros de acesso à API
	ErrAuthFailed   = errors.New("falha na autenticação")
	ErrAccessDenied = errors.New("credenciais sem acesso à conta configurada")
	ErrHTTPRequest  = errors.New("requisição HTTP falhou")

	// Erros de normalização
	ErrParse = errors.New("registro inválido")
)

// SyncError é um erro com contexto adicional da sincronização
type SyncError struct {
	Err     error  // Erro base (uma das variantes acima)
	Code    string // Código curto para logs
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *SyncError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError cria um novo erro de sincronização
func NewSyncError(baseErr error, code string, details string) *SyncError {
	return &SyncError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// IsAccessError verifica se o erro impede qualquer acesso à API
func IsAccessError(err error) bool {
	return errors.Is(err, ErrAuthFailed) ||
		errors.Is(err, ErrAccessDenied)
}
