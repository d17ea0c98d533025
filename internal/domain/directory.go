package domain

// State is the top level of the location directory. The directory is
// loaded once at startup and never mutated afterwards.
type State struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Cities []City `json:"cities"`
}

// City belongs to a State.
type City struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Communities []Community `json:"communities"`
}

// Community is a gated community inside a City. It owns an ordered
// sequence of Blocks and is the unit of admin assignment.
type Community struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Blocks []Block `json:"blocks"`
}

// Block owns the flat labels residents pick from during signup.
type Block struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Flats []string `json:"flats"`
}
