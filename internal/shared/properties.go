package shared

// Property is a listing the dashboard tracks reviews for.
type Property struct {
	Name    string
	Address string
}

// Properties is the portfolio warmed up at startup. The places feed is
// queried per property; the property-management feed covers all of them in
// one batch.
var Properties = []Property{
	{Name: "2B N1 A - 29 Shoreditch Heights", Address: "29 Shoreditch Heights, London"},
	{Name: "1B S2 B - 15 Camden Lock", Address: "15 Camden Lock, London"},
	{Name: "3B W1 C - 42 Notting Hill Gate", Address: "42 Notting Hill Gate, London"},
}
