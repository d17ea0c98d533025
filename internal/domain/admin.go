package domain

// Admin is a seeded community administrator account. CommunityIDs
// bounds which signups and print jobs the admin may act on.
//
// Passwords are stored and compared in plaintext, matching the demo
// deployment; hardening is out of scope.
type Admin struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	Password     string   `json:"-"`
	CommunityIDs []string `json:"communityIds"`
}

// OwnsCommunity reports whether the admin is assigned to communityID.
func (a Admin) OwnsCommunity(communityID string) bool {
	for _, id := range a.CommunityIDs {
		if id == communityID {
			return true
		}
	}
	return false
}
