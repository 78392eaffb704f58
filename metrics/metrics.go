package metrics

import (
	"context"
	"time"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

// Distributions
var defaultMillisecondsDistribution = view.Distribution(
	0.01, 0.05, 0.1, 0.3, 0.6, 0.8, 1, 2, 3, 4, 5, 6, 8, // Very short intervals for fast operations
	10, 20, 30, 40, 50, 60, 70, 80, 90, 100,
	150, 200, 250, 300, 350, 400, 450, 500,
	600, 700, 800, 900, 1000,
)

// Tags
var (
	Actor, _       = tag.NewKey("actor")
	MessageType, _ = tag.NewKey("message_type")
)

// Measures
var (
	BridgeMessagesReceived = stats.Int64("bridge/messages_received", "Counter for messages handled by the blockchain bridge", stats.UnitDimensionless)
	BridgeHandleDuration   = stats.Float64("bridge/handle_ms", "Duration of blockchain bridge message handling", stats.UnitMilliseconds)
	PayableAccountsCount   = stats.Int64("bridge/payable_accounts", "Number of accounts in the last payable report", stats.UnitDimensionless)
)

// Views
var (
	BridgeMessagesReceivedView = &view.View{
		Measure:     BridgeMessagesReceived,
		Aggregation: view.Count(),
		TagKeys:     []tag.Key{Actor, MessageType},
	}
	BridgeHandleDurationView = &view.View{
		Measure:     BridgeHandleDuration,
		Aggregation: defaultMillisecondsDistribution,
		TagKeys:     []tag.Key{Actor, MessageType},
	}
	PayableAccountsCountView = &view.View{
		Measure:     PayableAccountsCount,
		Aggregation: view.LastValue(),
		TagKeys:     []tag.Key{Actor},
	}
)

var views = []*view.View{
	BridgeMessagesReceivedView,
	BridgeHandleDurationView,
	PayableAccountsCountView,
}

// DefaultViews is an array of OpenCensus views for metric gathering purposes
var DefaultViews = func() []*view.View {
	return views
}()

// SinceInMilliseconds returns the duration of time since the provide time as a float64.
func SinceInMilliseconds(startTime time.Time) float64 {
	return float64(time.Since(startTime).Milliseconds())
}

// Timer is a function stopwatch, calling it starts the timer,
// calling the returned function will record the duration.
func Timer(ctx context.Context, m *stats.Float64Measure) func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		stats.Record(ctx, m.M(SinceInMilliseconds(start)))
		return time.Since(start)
	}
}
