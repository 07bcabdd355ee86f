package domain

import "time"

// Reward is a catalog item students can redeem points for.
type Reward struct {
	ID          string    `json:"id"`
	ClassID     string    `json:"class_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Cost        int       `json:"cost"`
	Icon        string    `json:"icon"`
	OrderNumber int       `json:"order_number"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewReward holds the caller-supplied fields of a reward to create.
type NewReward struct {
	Name        string
	Description *string
	Cost        int
	Icon        string
}

// RewardUpdate is a partial update; nil fields are left unchanged.
type RewardUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Cost        *int    `json:"cost,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	OrderNumber *int    `json:"order_number,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// RewardRedemption is an immutable record of a redemption. PointsSpent and
// RewardName are captured at redemption time and survive reward deletion.
type RewardRedemption struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	RewardID    string    `json:"reward_id"`
	RewardName  string    `json:"reward_name"`
	PointsSpent int       `json:"points_spent"`
	CreatedAt   time.Time `json:"created_at"`
}
