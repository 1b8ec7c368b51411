package repository

// Kind identifies a logical record kind held by the store.
type Kind string

const (
	KindPlayer  Kind = "Player"
	KindInnings Kind = "Innings"
)

// collections is the explicit registry mapping each record kind to its
// collection (or table) name. Backends take every collection, table and
// key-prefix name from here; nothing derives names from Go types at runtime.
var collections = map[Kind]string{
	KindPlayer:  "player",
	KindInnings: "innings",
}

// Collection returns the store-side name for a kind. An unknown kind is a
// programming error: the registry is the single source of schema names.
func (k Kind) Collection() string {
	name, ok := collections[k]
	if !ok {
		panic("repository: unknown record kind " + string(k))
	}
	return name
}

// Backends splice these into their queries and key prefixes so the registry
// above stays the only place a schema name is spelled out.
var (
	playerCollection  = KindPlayer.Collection()
	inningsCollection = KindInnings.Collection()
)
