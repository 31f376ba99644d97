package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config guarda defaults opcionais do convert; flags têm precedência.
type Config struct {
	Tool     string `yaml:"tool"`
	Location string `yaml:"location"`
	Output   string `yaml:"output"`
}

// Load lê o arquivo YAML indicado. Caminho vazio vale configuração zerada.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo de configuração: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("erro ao fazer parse da configuração: %w", err)
	}
	return &cfg, nil
}
