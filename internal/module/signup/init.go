package signup

import (
	"camp-signup-system/internal/global/logger"
	"log/slog"
)

var log *slog.Logger

type ModuleSignup struct{}

func (p *ModuleSignup) GetName() string {
	return "Signup"
}

func (p *ModuleSignup) Init() {
	log = logger.New("Signup")
}
