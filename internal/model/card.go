package model

type CardKind string

const (
	CardKindAbout   CardKind = "about"
	CardKindProject CardKind = "project"
)

// FactCard is a hand-authored context record used when vector retrieval is
// unavailable.
type FactCard struct {
	Name     string   `json:"name"`
	Kind     CardKind `json:"kind"`
	OneLiner string   `json:"one_liner"`
	Features []string `json:"features,omitempty"`
	Stack    []string `json:"stack,omitempty"`
	URL      string   `json:"url,omitempty"`
}
