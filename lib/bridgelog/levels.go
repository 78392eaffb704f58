package bridgelog

import (
	"os"

	logging "github.com/ipfs/go-log/v2"

	"github.com/filecoin-project/ledger-bridge/blockchain"
)

// subsystems are the loggers owned by this binary.
var subsystems = []string{blockchain.ActorName, "node", "modules", "main"}

func SetupLogLevels() {
	if _, set := os.LookupEnv("GOLOG_LOG_LEVEL"); !set {
		_ = logging.SetLogLevel("*", "INFO")
		_ = logging.SetLogLevel("actor", "WARN")
	}
}

// SetLevel sets the level of the bridge's own loggers, leaving everything
// else at its current level.
func SetLevel(level string) error {
	for _, sub := range subsystems {
		// SetLogLevel only knows loggers that already exist
		_ = logging.Logger(sub)
		if err := logging.SetLogLevel(sub, level); err != nil {
			return err
		}
	}
	return nil
}
