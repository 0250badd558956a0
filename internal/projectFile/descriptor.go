package projectFile

// Descriptor is the local record of a remote project. Alias, Version and Schema are provider
// data that is carried through unchanged.
type Descriptor struct {
	ProjectID string `json:"id"`
	Name      string `json:"name"`
	Alias     string `json:"alias"`
	Version   int    `json:"version"`
	Schema    string `json:"schema"`
}
