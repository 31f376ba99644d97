package logging

import (
	"go.uber.org/zap"
)

// InitLogger monta o logger da aplicação: desenvolvimento com --debug,
// produção (nível info) caso contrário, sempre com encoding console.
func InitLogger(debug bool) *zap.SugaredLogger {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.Encoding = "console"
	logger, err := cfg.Build()
	if err != nil {
		panic("erro ao inicializar logger: " + err.Error())
	}
	return logger.Sugar()
}
