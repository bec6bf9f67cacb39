package tabooladomain

import (
	"fmt"
	"strconv"

	"github.com/vfg2006/taboola-extractor/internal/domain"
)

// RawRecord é um registro cru do array "results" da API, antes da
// normalização. Os acessores aplicam a política de coerção: campo opcional
// ausente vira o valor padrão, mas um campo presente com tipo incompatível
// é sempre erro fatal. Métrica financeira nunca sofre coerção silenciosa.
type RawRecord map[string]any

// RequireInt retorna um campo de identidade numérico. Ausência ou valor
// nulo é fatal: sem identidade o registro não existe.
func (r RawRecord) RequireInt(key string) (int, error) {
	value, ok := r[key]
	if !ok || value == nil {
		return 0, domain.NewSyncError(domain.ErrParse, "missing_field",
			fmt.Sprintf("campo obrigatório %q ausente", key))
	}

	return coerceInt(key, value)
}

// RequireString retorna um campo textual obrigatório.
func (r RawRecord) RequireString(key string) (string, error) {
	value, ok := r[key]
	if !ok || value == nil {
		return "", domain.NewSyncError(domain.ErrParse, "missing_field",
			fmt.Sprintf("campo obrigatório %q ausente", key))
	}

	return coerceString(key, value)
}

// Int retorna um campo inteiro opcional, com padrão zero quando ausente.
func (r RawRecord) Int(key string) (int, error) {
	value, ok := r[key]
	if !ok {
		return 0, nil
	}

	return coerceInt(key, value)
}

// Float retorna um campo decimal opcional, com padrão zero quando ausente.
func (r RawRecord) Float(key string) (float64, error) {
	value, ok := r[key]
	if !ok {
		return 0, nil
	}

	return coerceFloat(key, value)
}

// String retorna um campo textual opcional, com padrão vazio quando ausente
// ou nulo.
func (r RawRecord) String(key string) (string, error) {
	value, ok := r[key]
	if !ok || value == nil {
		return "", nil
	}

	return coerceString(key, value)
}

// StringOr retorna um campo textual opcional com o padrão dado quando
// ausente ou nulo. Usado pelas datas de campanha com o sentinela de data
// aberta.
func (r RawRecord) StringOr(key, defaultValue string) (string, error) {
	value, ok := r[key]
	if !ok || value == nil {
		return defaultValue, nil
	}

	return coerceString(key, value)
}

// Bool retorna um campo booleano opcional, com padrão false quando ausente
// ou nulo.
func (r RawRecord) Bool(key string) (bool, error) {
	value, ok := r[key]
	if !ok || value == nil {
		return false, nil
	}

	parsed, isBool := value.(bool)
	if !isBool {
		return false, wrongTypeError(key, value)
	}

	return parsed, nil
}

// coerceInt aceita números JSON e strings numéricas ("42"); qualquer outro
// tipo, inclusive nulo presente, é fatal.
func coerceInt(key string, value any) (int, error) {
	switch v := value.(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, wrongTypeError(key, value)
		}
		return parsed, nil
	}

	return 0, wrongTypeError(key, value)
}

// coerceFloat aceita números JSON e strings numéricas ("3.5").
func coerceFloat(key string, value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, wrongTypeError(key, value)
		}
		return parsed, nil
	}

	return 0, wrongTypeError(key, value)
}

func coerceString(key string, value any) (string, error) {
	parsed, isString := value.(string)
	if !isString {
		return "", wrongTypeError(key, value)
	}

	return parsed, nil
}

func wrongTypeError(key string, value any) error {
	return domain.NewSyncError(domain.ErrParse, "wrong_type",
		fmt.Sprintf("campo %q com tipo incompatível (%T: %v)", key, value, value))
}
