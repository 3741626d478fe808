package domain

// Thesaurus is a controlled vocabulary used to seed label definitions.
type Thesaurus struct {
	ID             string `json:"id"`
	DisplayName    string `json:"display_name"`
	Description    string `json:"description"`
	SupportsSearch bool   `json:"supports_search"`
	SupportsCreate bool   `json:"supports_create"`
}

// Thesauri lists the available vocabularies. AAT and Iconclass are external
// read-only systems; garnier and fabritius accept new labels.
var Thesauri = []Thesaurus{
	{
		ID:             "garnier",
		DisplayName:    "Garnier",
		Description:    "Garnier thesaurus for art historical terminology",
		SupportsSearch: true,
		SupportsCreate: true,
	},
	{
		ID:             "aat",
		DisplayName:    "AAT",
		Description:    "Getty Art & Architecture Thesaurus",
		SupportsSearch: true,
		SupportsCreate: false,
	},
	{
		ID:             "iconclass",
		DisplayName:    "Iconclass",
		Description:    "Iconclass iconographic classification system",
		SupportsSearch: true,
		SupportsCreate: false,
	},
	{
		ID:             "fabritius",
		DisplayName:    "Fabritius",
		Description:    "Fabritius internal label system",
		SupportsSearch: true,
		SupportsCreate: true,
	},
}

// ThesaurusByID returns the thesaurus configuration for an ID.
func ThesaurusByID(id string) (Thesaurus, error) {
	for _, t := range Thesauri {
		if t.ID == id {
			return t, nil
		}
	}
	return Thesaurus{}, ErrUnknownThesaurus
}
