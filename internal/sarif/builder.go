package sarif

// Builder preenche um Log incrementalmente durante a decodificação.
// O estado é local a um documento; nada é compartilhado entre conversões.
type Builder struct {
	log  *Log
	seen map[string]bool
}

func NewBuilder(toolName, infoURI string) *Builder {
	return &Builder{
		log:  NewLog(toolName, infoURI),
		seen: map[string]bool{},
	}
}

// EnsureRule registra a regra na primeira referência ao id; chamadas
// seguintes com o mesmo id são no-op (a primeira referência vence).
func (b *Builder) EnsureRule(id, title, helpURI string) {
	if b.seen[id] {
		return
	}
	b.seen[id] = true

	if title == "" {
		title = id
	}
	driver := &b.log.Runs[0].Tool.Driver
	driver.Rules = append(driver.Rules, Rule{
		ID:               id,
		Name:             id,
		ShortDescription: Message{Text: title},
		HelpURI:          helpURI,
	})
}

// AddResult sempre acrescenta um resultado novo; dedup é só de regras.
// A localização, quando informada, vira a única physicalLocation.
func (b *Builder) AddResult(ruleID, level, message, location string) {
	result := Result{
		RuleID:  ruleID,
		Level:   level,
		Message: Message{Text: message},
	}
	if location != "" {
		result.Locations = []Location{
			{
				PhysicalLocation: PhysicalLocation{
					ArtifactLocation: ArtifactLocation{
						URI: location,
					},
				},
			},
		}
	}
	run := &b.log.Runs[0]
	run.Results = append(run.Results, result)
}

// Log devolve o documento montado até aqui.
func (b *Builder) Log() *Log {
	return b.log
}
