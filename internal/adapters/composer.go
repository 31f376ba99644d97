package adapters

import (
	"fmt"
	"strconv"

	"github.com/Sena-ops/auditbridge/internal/sarif"
)

const (
	composerToolName = "Composer Audit"
	composerInfoURI  = "https://getcomposer.org/doc/03-cli.md#audit"
)

// ConvertComposer decodifica a saída de `composer audit --format=json`:
// um mapa pacote -> lista de advisories.
func ConvertComposer(data map[string]interface{}, opts Options) (*sarif.Log, error) {
	b := sarif.NewBuilder(composerToolName, composerInfoURI)

	advisories, err := objectField(data, "advisories")
	if err != nil {
		return nil, err
	}
	for _, pkg := range sortedKeys(advisories) {
		entries, ok := advisories[pkg].([]interface{})
		if !ok {
			return nil, fmt.Errorf("advisories de '%s' inválidos: esperada lista, obtido %T", pkg, advisories[pkg])
		}
		for index, raw := range entries {
			advisory, ok := raw.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("advisory %d de '%s' inválido: esperado objeto, obtido %T", index, pkg, raw)
			}

			title := stringField(advisory, "title", "advisory")
			if title == "" {
				title = "Composer advisory"
			}
			// sem CVE, o índice na lista mantém o id estável
			id := stringField(advisory, "cve")
			if id == "" {
				id = strconv.Itoa(index)
			}
			ruleID := fmt.Sprintf("composer:%s:%s", pkg, id)
			affected := stringField(advisory, "affectedVersions", "affected_versions")
			message := appendAffected(fmt.Sprintf("%s: %s", pkg, title), affected)

			b.EnsureRule(ruleID, title, stringField(advisory, "link", "url"))
			b.AddResult(ruleID, sarif.MapLevel(stringField(advisory, "severity")), message, opts.Location)
		}
	}
	return b.Log(), nil
}
