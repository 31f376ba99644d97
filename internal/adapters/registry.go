package adapters

import (
	"fmt"

	"github.com/Sena-ops/auditbridge/internal/sarif"
)

// ConvertFunc decodifica um relatório já parseado em um Log SARIF.
type ConvertFunc func(data map[string]interface{}, opts Options) (*sarif.Log, error)

var converters = map[string]ConvertFunc{
	"composer": ConvertComposer,
	"npm":      ConvertNPM,
}

// Convert despacha para o decoder da ferramenta indicada.
func Convert(tool string, data map[string]interface{}, opts Options) (*sarif.Log, error) {
	fn, ok := converters[tool]
	if !ok {
		return nil, fmt.Errorf("ferramenta '%s' não suportada", tool)
	}
	return fn(data, opts)
}
