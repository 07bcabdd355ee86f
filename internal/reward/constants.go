package reward

import "time"

// Cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 5 * time.Minute
)

// Operation names
const (
	OpAddReward    = "add_reward"
	OpUpdateReward = "update_reward"
	OpDeleteReward = "delete_reward"
	OpGetReward    = "get_reward"
	OpListRewards  = "list_rewards"
)

const (
	ErrMsgRewardIDFmt = "%w (reward %s)"
	ErrMsgClassIDFmt  = "%w (class %s)"

	lockPrefix = "rewards:"
)

// Log messages
const (
	LogMsgRewardAdded       = "Reward added"
	LogMsgRewardUpdated     = "Reward updated"
	LogMsgRewardDeleted     = "Reward deleted"
	LogMsgCacheHit          = "Reward catalog served from cache"
	LogMsgCacheStaleSkipped = "Catalog changed while loading, not cached"
	LogMsgOpFailed          = "Reward catalog operation failed"
)
