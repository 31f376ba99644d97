package sarif

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLogEsqueleto(t *testing.T) {
	log := NewLog("npm audit", "https://docs.npmjs.com/cli/v9/commands/npm-audit")

	if len(log.Runs) != 1 {
		t.Fatalf("esperado 1 run, obtido %d", len(log.Runs))
	}
	driver := log.Runs[0].Tool.Driver
	if driver.Name != "npm audit" {
		t.Errorf("esperado nome 'npm audit', obtido %q", driver.Name)
	}
	if driver.InformationURI != "https://docs.npmjs.com/cli/v9/commands/npm-audit" {
		t.Errorf("informationUri incorreto: %q", driver.InformationURI)
	}

	// vazio serializa como [], não como null
	encoded, err := json.Marshal(log)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(encoded), `"rules":null`) || strings.Contains(string(encoded), `"results":null`) {
		t.Errorf("rules/results devem serializar como listas vazias: %s", encoded)
	}
}

func TestEnsureRuleDedup(t *testing.T) {
	b := NewBuilder("npm audit", "https://example.com")
	b.EnsureRule("npm:lodash:1065", "Prototype Pollution", "https://npmjs.com/advisories/1065")
	b.EnsureRule("npm:lodash:1065", "outro título", "")
	b.EnsureRule("npm:ws:1748", "", "")

	rules := b.Log().Runs[0].Tool.Driver.Rules
	if len(rules) != 2 {
		t.Fatalf("esperadas 2 regras, obtidas %d", len(rules))
	}
	if rules[0].ShortDescription.Text != "Prototype Pollution" {
		t.Errorf("a primeira referência deve vencer, obtido %q", rules[0].ShortDescription.Text)
	}
	if rules[0].HelpURI != "https://npmjs.com/advisories/1065" {
		t.Errorf("helpUri incorreto: %q", rules[0].HelpURI)
	}
	if rules[0].Name != rules[0].ID {
		t.Errorf("name deve ser igual ao id, obtido %q", rules[0].Name)
	}
	// título vazio cai no próprio id
	if rules[1].ShortDescription.Text != "npm:ws:1748" {
		t.Errorf("esperado id como descrição, obtido %q", rules[1].ShortDescription.Text)
	}
}

func TestAddResultLocalizacao(t *testing.T) {
	b := NewBuilder("Composer Audit", "https://getcomposer.org/doc/03-cli.md#audit")
	b.EnsureRule("composer:acme/lib:CVE-2024-1", "RCE", "")
	b.AddResult("composer:acme/lib:CVE-2024-1", "error", "acme/lib: RCE", "composer.lock")
	b.AddResult("composer:acme/lib:CVE-2024-1", "note", "acme/lib: RCE", "")

	results := b.Log().Runs[0].Results
	if len(results) != 2 {
		t.Fatalf("esperados 2 resultados, obtidos %d", len(results))
	}
	if len(results[0].Locations) != 1 {
		t.Fatalf("esperada 1 localização, obtidas %d", len(results[0].Locations))
	}
	if uri := results[0].Locations[0].PhysicalLocation.ArtifactLocation.URI; uri != "composer.lock" {
		t.Errorf("esperado uri 'composer.lock', obtido %q", uri)
	}
	if results[1].Locations != nil {
		t.Errorf("sem localização não deve haver locations, obtido %v", results[1].Locations)
	}

	// locations omitido no JSON quando ausente
	encoded, err := json.Marshal(results[1])
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(encoded), "locations") {
		t.Errorf("locations não deveria aparecer: %s", encoded)
	}
}
