package worker

import "time"

// DefaultPruneInterval is how often the cache prune worker runs.
const DefaultPruneInterval = 1 * time.Hour

// Log messages for cache prune worker operations
const (
	LogMsgCachePruneStarted      = "Cache prune worker started"
	LogMsgCachePruneTick         = "Daily challenge cache pruned"
	LogMsgCachePruneShutdown     = "Cache prune worker shutting down"
	LogMsgCachePruneEventFailed  = "Failed to publish cache prune event"
)
