package repository

import "docuprint/internal/domain"

// DirectoryRepo serves the static location hierarchy. Lookups go
// through id-indexed maps built once at load instead of scanning the
// nested tree per request.
type DirectoryRepo interface {
	// Tree returns the full nested directory for the public endpoint.
	Tree() []domain.State
	// ResolvePath checks that each id is a child of the previous one
	// and that the flat label exists in the block.
	ResolvePath(stateID, cityID, communityID, blockID, flatNumber string) bool
	// CommunityName resolves a community id for display; empty when
	// unknown.
	CommunityName(communityID string) string
	// BlockName resolves a block id for display; empty when unknown.
	BlockName(blockID string) string
}
