package camper

import (
	"camp-signup-system/internal/global/logger"
	"log/slog"
)

var log *slog.Logger

type ModuleCamper struct{}

func (p *ModuleCamper) GetName() string {
	return "Camper"
}

func (p *ModuleCamper) Init() {
	log = logger.New("Camper")
}
