package fragment

//go:generate go run github.com/abice/go-enum@v0.9.2 --marshal --names --values

// Top level template element recognized by the parser. Regions are looked
// up in declaration order.
// ENUM(head, body, foot, attributes)
type Region string
