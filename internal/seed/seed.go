// Package seed holds the static directory and admin accounts the
// portal boots with. The directory is immutable after load; admins are
// the demo credential set.
package seed

import "docuprint/internal/domain"

// Directory returns the State -> City -> Community -> Block -> Flat
// tree the signup form selects from.
func Directory() []domain.State {
	return []domain.State{
		{
			ID:   "st-ka",
			Name: "Karnataka",
			Cities: []domain.City{
				{
					ID:   "ct-blr",
					Name: "Bengaluru",
					Communities: []domain.Community{
						{
							ID:   "cm-lakeview",
							Name: "Lakeview Residency",
							Blocks: []domain.Block{
								{ID: "bl-lakeview-a", Name: "Block A", Flats: []string{"A-101", "A-102", "A-201", "A-202"}},
								{ID: "bl-lakeview-b", Name: "Block B", Flats: []string{"B-101", "B-102", "B-201", "B-202"}},
							},
						},
						{
							ID:   "cm-palmgrove",
							Name: "Palm Grove Enclave",
							Blocks: []domain.Block{
								{ID: "bl-palmgrove-1", Name: "Tower 1", Flats: []string{"101", "102", "201", "202", "301"}},
								{ID: "bl-palmgrove-2", Name: "Tower 2", Flats: []string{"101", "102", "201", "202"}},
							},
						},
					},
				},
				{
					ID:   "ct-mys",
					Name: "Mysuru",
					Communities: []domain.Community{
						{
							ID:   "cm-heritage",
							Name: "Heritage Meadows",
							Blocks: []domain.Block{
								{ID: "bl-heritage-main", Name: "Main Block", Flats: []string{"M-01", "M-02", "M-03", "M-04"}},
							},
						},
					},
				},
			},
		},
		{
			ID:   "st-ts",
			Name: "Telangana",
			Cities: []domain.City{
				{
					ID:   "ct-hyd",
					Name: "Hyderabad",
					Communities: []domain.Community{
						{
							ID:   "cm-cyberwoods",
							Name: "Cyber Woods",
							Blocks: []domain.Block{
								{ID: "bl-cyberwoods-e", Name: "East Wing", Flats: []string{"E-101", "E-102", "E-103"}},
								{ID: "bl-cyberwoods-w", Name: "West Wing", Flats: []string{"W-101", "W-102", "W-103"}},
							},
						},
					},
				},
			},
		},
	}
}

// Admins returns the seeded community admin accounts.
func Admins() []domain.Admin {
	return []domain.Admin{
		{
			ID:           "adm-anita",
			Email:        "anita@docuprint.local",
			Password:     "print@123",
			CommunityIDs: []string{"cm-lakeview", "cm-palmgrove"},
		},
		{
			ID:           "adm-ravi",
			Email:        "ravi@docuprint.local",
			Password:     "print@123",
			CommunityIDs: []string{"cm-lakeview"},
		},
		{
			ID:           "adm-meera",
			Email:        "meera@docuprint.local",
			Password:     "print@123",
			CommunityIDs: []string{"cm-heritage", "cm-cyberwoods"},
		},
	}
}
