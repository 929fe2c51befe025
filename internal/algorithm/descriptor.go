package algorithm

// Descriptor holds the static metadata for a supported sorting
// algorithm. Descriptors are immutable and looked up by ID.
type Descriptor struct {
	// ID is the unique identifier (e.g. "bubble").
	// Used for CLI commands and result storage.
	ID string

	// Name is the human-readable display name.
	Name string

	// Description is a one-line summary shown in menus.
	Description string

	// Rules is the ordered list of rule strings shown to the player.
	Rules []string
}
