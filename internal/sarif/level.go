package sarif

import "strings"

// MapLevel converte a severidade textual do relatório de auditoria para o
// nível SARIF. Severidade vazia ou desconhecida vira "warning" — o achado
// nunca é descartado em silêncio.
func MapLevel(severity string) string {
	switch strings.ToLower(severity) {
	case "critical", "high":
		return "error"
	case "moderate", "medium":
		return "warning"
	case "low", "info":
		return "note"
	default:
		return "warning"
	}
}
