package adapters

import (
	"fmt"
	"sort"
	"strconv"
)

// Options são os parâmetros opcionais compartilhados pelos decoders.
type Options struct {
	Location string // caminho do manifesto auditado (vira URI no SARIF)
}

// stringField devolve o primeiro campo presente e não vazio entre os
// nomes candidatos, na ordem dada.
func stringField(obj map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if s, ok := obj[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// scalarField aceita também números (ids de advisory do npm chegam como
// número JSON) e formata sem expoente nem casa decimal.
func scalarField(obj map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		switch v := obj[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// objectField exige que o campo, quando presente, seja um objeto JSON.
// Campo ausente vale objeto vazio (relatório sem achados não é erro).
func objectField(data map[string]interface{}, key string) (map[string]interface{}, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return map[string]interface{}{}, nil
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("campo '%s' inválido: esperado objeto, obtido %T", key, v)
	}
	return m, nil
}

// sortedKeys fixa a ordem de travessia (mapas Go não têm ordem estável).
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func appendAffected(message, affected string) string {
	if affected == "" {
		return message
	}
	return fmt.Sprintf("%s (affected: %s)", message, affected)
}
