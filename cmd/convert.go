package cmd

import (
	"encoding/json"
	"os"

	"github.com/Sena-ops/auditbridge/internal/adapters"
	"github.com/Sena-ops/auditbridge/internal/config"
	"github.com/Sena-ops/auditbridge/internal/logging"
	"github.com/spf13/cobra"
)

var (
	toolName   string
	inputPath  string
	outputPath string
	location   string
	configPath string
	debugMode  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Converte um relatório de auditoria (composer/npm) para SARIF 2.1.0",
	Run: func(cmd *cobra.Command, args []string) {
		logger := logging.InitLogger(debugMode)
		defer logger.Sync()

		cfg, err := config.Load(configPath)
		if err != nil {
			logger.Errorw("Erro ao carregar configuração", "erro", err)
			os.Exit(1)
		}
		if toolName == "" {
			toolName = cfg.Tool
		}
		if location == "" {
			location = cfg.Location
		}
		if outputPath == "" {
			outputPath = cfg.Output
		}
		if toolName == "" || inputPath == "" || outputPath == "" {
			logger.Error("Informe --tool, --input e --output (via flag ou configuração)")
			os.Exit(1)
		}

		// falha de leitura/parse da entrada é uma classe à parte (exit 2)
		raw, err := os.ReadFile(inputPath)
		if err != nil {
			logger.Errorw("Erro ao ler o JSON de auditoria", "erro", err)
			os.Exit(2)
		}
		var data map[string]interface{}
		if err := json.Unmarshal(raw, &data); err != nil {
			logger.Errorw("Erro ao fazer parse do JSON de auditoria", "erro", err)
			os.Exit(2)
		}

		logger.Infof("Convertendo %s (%s) para SARIF", inputPath, toolName)
		sarifLog, err := adapters.Convert(toolName, data, adapters.Options{Location: location})
		if err != nil {
			logger.Errorw("Erro ao converter relatório", "erro", err)
			os.Exit(1)
		}

		encoded, err := json.MarshalIndent(sarifLog, "", "  ")
		if err != nil {
			logger.Errorw("Erro ao gerar SARIF", "erro", err)
			os.Exit(1)
		}
		encoded = append(encoded, '\n')
		if err := os.WriteFile(outputPath, encoded, 0o644); err != nil {
			logger.Errorw("Erro ao escrever o arquivo SARIF", "erro", err)
			os.Exit(1)
		}
		logger.Infow("SARIF gerado com sucesso", "ferramenta", toolName, "arquivo", outputPath)
	},
}

func init() {
	convertCmd.Flags().StringVarP(&toolName, "tool", "t", "", "Ferramenta de origem (composer, npm)")
	convertCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Caminho do relatório JSON de entrada")
	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Caminho do arquivo SARIF de saída")
	convertCmd.Flags().StringVarP(&location, "location", "l", "", "URI do manifesto auditado, anexada a cada resultado")
	convertCmd.Flags().StringVarP(&configPath, "config", "c", "", "Arquivo YAML com defaults opcionais")
	convertCmd.Flags().BoolVar(&debugMode, "debug", false, "Habilita logs em nível debug")
	rootCmd.AddCommand(convertCmd)
}
