package bridgelog

import (
	"testing"

	logging "github.com/ipfs/go-log/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/filecoin-project/ledger-bridge/blockchain"
)

func TestSetLevel(t *testing.T) {
	require.NoError(t, SetLevel("debug"))
	require.True(t, logging.Logger(blockchain.ActorName).Desugar().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, SetLevel("error"))
	require.False(t, logging.Logger(blockchain.ActorName).Desugar().Core().Enabled(zapcore.WarnLevel))

	require.Error(t, SetLevel("loud"))
}
