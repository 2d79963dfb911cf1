package data

import "fmt"

// Kind distinguishes the category of content an UnimplementedError names,
// used by callers that need to render spec §7 error-kind-4 diagnostics.
type Kind string

const (
	KindCard      Kind = "card"
	KindEnemy     Kind = "enemy"
	KindEncounter Kind = "encounter"
	KindRelic     Kind = "relic"
	KindPotion    Kind = "potion"
	KindEvent     Kind = "event"
	KindEffect    Kind = "effect"
)

// UnimplementedError is returned in place of a silent no-op whenever a named
// game entity or effect has no port in this engine. The reference
// implementation itself leaves most of its content table as todo!() (see
// enemy/party.rs), so surfacing this as a fatal, named error rather than
// skipping the content is the faithful behavior, not a shortcut.
type UnimplementedError struct {
	Kind Kind
	Name string
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("unimplemented %s: %s", e.Kind, e.Name)
}

func NewUnimplementedError(kind Kind, name string) error {
	return &UnimplementedError{Kind: kind, Name: name}
}
