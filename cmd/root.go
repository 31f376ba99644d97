package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "auditbridge",
	Short: "AuditBridge - Conversor de auditorias de dependências para SARIF",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
