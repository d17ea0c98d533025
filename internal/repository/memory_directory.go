package repository

import "docuprint/internal/domain"

// MemoryDirectoryRepo indexes the seeded tree by id. The tree is
// immutable after construction so reads need no locking.
type MemoryDirectoryRepo struct {
	states []domain.State

	cityParent      map[string]string // cityID -> stateID
	communityParent map[string]string // communityID -> cityID
	blockParent     map[string]string // blockID -> communityID
	communities     map[string]domain.Community
	blocks          map[string]domain.Block
	blockFlats      map[string]map[string]struct{}
}

func NewMemoryDirectoryRepo(states []domain.State) *MemoryDirectoryRepo {
	r := &MemoryDirectoryRepo{
		states:          states,
		cityParent:      map[string]string{},
		communityParent: map[string]string{},
		blockParent:     map[string]string{},
		communities:     map[string]domain.Community{},
		blocks:          map[string]domain.Block{},
		blockFlats:      map[string]map[string]struct{}{},
	}
	for _, st := range states {
		for _, city := range st.Cities {
			r.cityParent[city.ID] = st.ID
			for _, cm := range city.Communities {
				r.communityParent[cm.ID] = city.ID
				r.communities[cm.ID] = cm
				for _, bl := range cm.Blocks {
					r.blockParent[bl.ID] = cm.ID
					r.blocks[bl.ID] = bl
					flats := make(map[string]struct{}, len(bl.Flats))
					for _, f := range bl.Flats {
						flats[f] = struct{}{}
					}
					r.blockFlats[bl.ID] = flats
				}
			}
		}
	}
	return r
}

func (r *MemoryDirectoryRepo) Tree() []domain.State { return r.states }

func (r *MemoryDirectoryRepo) ResolvePath(stateID, cityID, communityID, blockID, flatNumber string) bool {
	if r.cityParent[cityID] != stateID || cityID == "" {
		return false
	}
	if r.communityParent[communityID] != cityID {
		return false
	}
	if r.blockParent[blockID] != communityID {
		return false
	}
	_, ok := r.blockFlats[blockID][flatNumber]
	return ok
}

func (r *MemoryDirectoryRepo) CommunityName(communityID string) string {
	return r.communities[communityID].Name
}

func (r *MemoryDirectoryRepo) BlockName(blockID string) string {
	return r.blocks[blockID].Name
}
