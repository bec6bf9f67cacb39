package tabooladomain

// ResultsEnvelope é o envelope padrão das respostas de listagem e de
// relatório da API Backstage. A paginação indicada em metadata não é
// seguida.
type ResultsEnvelope struct {
	Results []RawRecord `json:"results"`
}

// TokenResponse representa a resposta da troca de credenciais por token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ErrorResponse é a estrutura de erro retornada pelo endpoint de token
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// TokenDetails descreve o escopo do token emitido
type TokenDetails struct {
	AccountID string `json:"account_id"`
	Username  string `json:"username"`
	ExpiresIn int64  `json:"expires_in"`
}
