package domain

// Name identifies a configured subject area.
type Name string

// Known domains. Unknown is the router's "no decision" outcome, never a
// configured domain.
const (
	Car     Name = "car"
	Country Name = "country"
	Math    Name = "math"
	Unknown Name = "unknown"
)

func (n Name) String() string { return string(n) }
