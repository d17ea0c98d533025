package domain

// Resident is the approved profile behind OTP login. One profile per
// mobile number; created only by signup approval.
type Resident struct {
	ID          string `json:"id" db:"resident_id"`
	FullName    string `json:"fullName" db:"full_name"`
	Mobile      string `json:"mobile" db:"mobile"`
	StateID     string `json:"stateId" db:"state_id"`
	CityID      string `json:"cityId" db:"city_id"`
	CommunityID string `json:"communityId" db:"community_id"`
	BlockID     string `json:"blockId" db:"block_id"`
	FlatNumber  string `json:"flatNumber" db:"flat_number"`
}
