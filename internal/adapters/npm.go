package adapters

import (
	"fmt"

	"github.com/Sena-ops/auditbridge/internal/sarif"
)

const (
	npmToolName = "npm audit"
	npmInfoURI  = "https://docs.npmjs.com/cli/v9/commands/npm-audit"
)

// ConvertNPM escolhe a variante do relatório pelos marcadores presentes:
// `auditReportVersion` ou `vulnerabilities` indicam o formato do npm 7+,
// `advisories` o formato legado do npm 6. Nenhum dos três é erro.
func ConvertNPM(data map[string]interface{}, opts Options) (*sarif.Log, error) {
	if _, ok := data["auditReportVersion"]; ok {
		return convertNPMv7(data, opts)
	}
	if _, ok := data["vulnerabilities"]; ok {
		return convertNPMv7(data, opts)
	}
	if _, ok := data["advisories"]; ok {
		return convertNPMv6(data, opts)
	}
	return nil, fmt.Errorf("relatório npm não reconhecido: sem 'auditReportVersion', 'vulnerabilities' ou 'advisories'")
}

func convertNPMv7(data map[string]interface{}, opts Options) (*sarif.Log, error) {
	b := sarif.NewBuilder(npmToolName, npmInfoURI)

	vulnerabilities, err := objectField(data, "vulnerabilities")
	if err != nil {
		return nil, err
	}
	for _, pkg := range sortedKeys(vulnerabilities) {
		info, ok := vulnerabilities[pkg].(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("vulnerabilidade de '%s' inválida: esperado objeto, obtido %T", pkg, vulnerabilities[pkg])
		}
		for _, raw := range normalizeVia(info["via"]) {
			// strings em `via` referenciam outros pacotes, não advisories
			if _, isRef := raw.(string); isRef {
				continue
			}
			entry, ok := raw.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("entrada 'via' de '%s' inválida: esperado objeto ou string, obtido %T", pkg, raw)
			}

			title := stringField(entry, "title", "name")
			if title == "" {
				title = "npm advisory"
			}
			source := scalarField(entry, "source", "url")
			if source == "" {
				source = title
			}
			severity := stringField(entry, "severity")
			if severity == "" {
				severity = stringField(info, "severity")
			}
			affected := stringField(entry, "range")
			if affected == "" {
				affected = stringField(info, "range")
			}
			ruleID := fmt.Sprintf("npm:%s:%s", pkg, source)
			message := appendAffected(fmt.Sprintf("%s: %s", pkg, title), affected)

			b.EnsureRule(ruleID, title, stringField(entry, "url"))
			b.AddResult(ruleID, sarif.MapLevel(severity), message, opts.Location)
		}
	}
	return b.Log(), nil
}

// normalizeVia aceita objeto único ou lista (o npm emite os dois).
func normalizeVia(v interface{}) []interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return []interface{}{t}
	case []interface{}:
		return t
	}
	return nil
}

func convertNPMv6(data map[string]interface{}, opts Options) (*sarif.Log, error) {
	b := sarif.NewBuilder(npmToolName, npmInfoURI)

	advisories, err := objectField(data, "advisories")
	if err != nil {
		return nil, err
	}
	for _, advisoryID := range sortedKeys(advisories) {
		advisory, ok := advisories[advisoryID].(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("advisory '%s' inválido: esperado objeto, obtido %T", advisoryID, advisories[advisoryID])
		}

		pkg := stringField(advisory, "module_name", "name")
		if pkg == "" {
			pkg = "package"
		}
		title := stringField(advisory, "title")
		if title == "" {
			title = "npm advisory"
		}
		affected := stringField(advisory, "vulnerable_versions")
		ruleID := fmt.Sprintf("npm:%s:%s", pkg, advisoryID)
		message := appendAffected(fmt.Sprintf("%s: %s", pkg, title), affected)

		b.EnsureRule(ruleID, title, stringField(advisory, "url"))
		b.AddResult(ruleID, sarif.MapLevel(stringField(advisory, "severity")), message, opts.Location)
	}
	return b.Log(), nil
}
