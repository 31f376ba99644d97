package sarif

// Estruturas SARIF 2.1.0 (subconjunto reconhecido por GitHub/VSCode)
type Log struct {
	Schema  string `json:"$schema"`
	Version string `json:"version"`
	Runs    []Run  `json:"runs"`
}

type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results"`
}

type Tool struct {
	Driver Driver `json:"driver"`
}

type Driver struct {
	Name           string `json:"name"`
	InformationURI string `json:"informationUri"`
	Rules          []Rule `json:"rules"`
}

type Rule struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	ShortDescription Message `json:"shortDescription"`
	HelpURI          string  `json:"helpUri,omitempty"`
}

type Result struct {
	RuleID    string     `json:"ruleId"`
	Level     string     `json:"level"` // error, warning, note
	Message   Message    `json:"message"`
	Locations []Location `json:"locations,omitempty"`
}

type Message struct {
	Text string `json:"text"`
}

type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
}

type ArtifactLocation struct {
	URI string `json:"uri"`
}

const (
	schemaURI    = "https://json.schemastore.org/sarif-2.1.0.json"
	sarifVersion = "2.1.0"
)

// NewLog monta o esqueleto do documento com a identidade da ferramenta e
// as coleções de regras/resultados vazias (mas não nulas, para serializar
// como []).
func NewLog(toolName, infoURI string) *Log {
	return &Log{
		Schema:  schemaURI,
		Version: sarifVersion,
		Runs: []Run{
			{
				Tool: Tool{
					Driver: Driver{
						Name:           toolName,
						InformationURI: infoURI,
						Rules:          []Rule{},
					},
				},
				Results: []Result{},
			},
		},
	}
}
