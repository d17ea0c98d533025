package domain

import "time"

// Signup statuses. A signup is decided exactly once: pending_approval
// moves to approved or rejected and never changes again.
const (
	SignupPending  = "pending_approval"
	SignupApproved = "approved"
	SignupRejected = "rejected"
)

// Signup is a resident access request awaiting admin review.
type Signup struct {
	ID          string     `json:"id" db:"signup_id"`
	FullName    string     `json:"fullName" db:"full_name"`
	Mobile      string     `json:"mobile" db:"mobile"`
	StateID     string     `json:"stateId" db:"state_id"`
	CityID      string     `json:"cityId" db:"city_id"`
	CommunityID string     `json:"communityId" db:"community_id"`
	BlockID     string     `json:"blockId" db:"block_id"`
	FlatNumber  string     `json:"flatNumber" db:"flat_number"`
	Status      string     `json:"status" db:"status"`
	AdminNotes  string     `json:"adminNotes,omitempty" db:"admin_notes"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	DecidedBy   string     `json:"decidedBy,omitempty" db:"decided_by"`
	DecidedAt   *time.Time `json:"decidedAt,omitempty" db:"decided_at"`
}
