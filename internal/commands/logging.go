package commands

import (
	"strings"

	"github.com/goliatone/supermd/internal/logging"
	"github.com/goliatone/supermd/pkg/interfaces"
)

const commandModuleRoot = "supermd.commands"

// CommandLogger returns a module-scoped logger for command handlers, enriching it with
// consistent structured fields so command executions are traceable end to end.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.ModuleLogger(provider, commandModuleRoot+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
