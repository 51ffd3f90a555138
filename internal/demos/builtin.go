package demos

import (
	"github.com/curioterm/curio/internal/schema"
	"github.com/curioterm/curio/internal/store"
	"github.com/curioterm/curio/internal/validate"
)

// Builtin returns a registry preloaded with the seven bundled demos.
func Builtin() *Registry {
	reg := NewRegistry()
	reg.MustRegister(Gallery())
	reg.MustRegister(Plants())
	reg.MustRegister(Orders())
	reg.MustRegister(Notes())
	reg.MustRegister(Bookstore())
	reg.MustRegister(Flowers())
	reg.MustRegister(Feed())
	return reg
}

// Gallery is the photo gallery demo. It is the only demo that mirrors its
// collection to disk on every change, and the only one with a file field.
func Gallery() schema.Definition {
	return schema.Definition{
		ID:          "gallery",
		Title:       "Photo Gallery",
		Description: "Upload, caption and curate local images",
		Noun:        "photo",
		Persistent:  true,
		Fields: []schema.FieldSpec{
			{Name: "title", Label: "Title", Rule: validate.Rule{Required: true, MinLen: 2, MaxLen: 80}},
			{Name: "caption", Label: "Caption", Kind: schema.KindMultiline, Rule: validate.Rule{MaxLen: 200}},
			{Name: "image", Label: "Image path", Kind: schema.KindFile, Placeholder: "~/pictures/cat.png", Rule: validate.Rule{Required: true}},
		},
	}
}

// Plants is the plant store demo; quantities render as bars scaled by the
// largest quantity in the collection.
func Plants() schema.Definition {
	return schema.Definition{
		ID:          "plants",
		Title:       "Plant Store",
		Description: "Track nursery stock levels",
		Noun:        "plant",
		BarField:    "quantity",
		Fields: []schema.FieldSpec{
			{Name: "name", Label: "Name", Rule: validate.Rule{Required: true, MinLen: 2, MaxLen: 60}},
			{Name: "species", Label: "Species", Rule: validate.Rule{MaxLen: 80}},
			{Name: "price", Label: "Price", Kind: schema.KindNumber, Rule: validate.Rule{Required: true, Positive: true}},
			{Name: "quantity", Label: "Quantity", Kind: schema.KindNumber, Rule: validate.Rule{Required: true, Positive: true}},
		},
		Seed: []store.Fields{
			{"name": "Monstera", "species": "Monstera deliciosa", "price": 24.5, "quantity": 8},
			{"name": "Snake Plant", "species": "Dracaena trifasciata", "price": 14.0, "quantity": 15},
			{"name": "Fiddle Leaf Fig", "species": "Ficus lyrata", "price": 39.0, "quantity": 3},
		},
	}
}

// Orders is the restaurant management mock.
func Orders() schema.Definition {
	return schema.Definition{
		ID:          "orders",
		Title:       "Restaurant Orders",
		Description: "Open orders by table, mark dishes served",
		Noun:        "order",
		Fields: []schema.FieldSpec{
			{Name: "table", Label: "Table", Kind: schema.KindNumber, Rule: validate.Rule{Required: true, Positive: true}},
			{Name: "dish", Label: "Dish", Rule: validate.Rule{Required: true, MinLen: 2, MaxLen: 80}},
			{Name: "quantity", Label: "Quantity", Kind: schema.KindNumber, Rule: validate.Rule{Required: true, Positive: true}},
			{Name: "served", Label: "Served", Kind: schema.KindBool},
		},
		Toggles: []schema.ToggleSpec{
			{Field: "served", Label: "served"},
		},
		Views: []schema.ViewSpec{
			{Name: "All", Op: schema.ViewAll},
			{Name: "Open", Op: schema.ViewWhereFalse, Field: "served"},
			{Name: "Served", Op: schema.ViewWhereTrue, Field: "served"},
		},
		Seed: []store.Fields{
			{"table": 4, "dish": "Margherita", "quantity": 2},
			{"table": 7, "dish": "Carbonara", "quantity": 1},
		},
	}
}

// Notes is the notes app demo.
func Notes() schema.Definition {
	return schema.Definition{
		ID:          "notes",
		Title:       "Notes",
		Description: "Quick notes with a done state",
		Noun:        "note",
		Fields: []schema.FieldSpec{
			{Name: "title", Label: "Title", Rule: validate.Rule{Required: true, MinLen: 3, MaxLen: 100}},
			{Name: "body", Label: "Body", Kind: schema.KindMultiline, Rule: validate.Rule{MaxLen: 500}},
			{Name: "completed", Label: "Completed", Kind: schema.KindBool},
		},
		Toggles: []schema.ToggleSpec{
			{Field: "completed", Label: "done"},
		},
		Views: []schema.ViewSpec{
			{Name: "All", Op: schema.ViewAll},
			{Name: "Active", Op: schema.ViewWhereFalse, Field: "completed"},
			{Name: "Done", Op: schema.ViewWhereTrue, Field: "completed"},
		},
		Seed: []store.Fields{
			{"title": "Water the plants", "body": "Monstera looks thirsty"},
			{"title": "Book dentist", "body": ""},
		},
	}
}

// Bookstore is the bookstore dashboard demo; stock renders as bars.
func Bookstore() schema.Definition {
	return schema.Definition{
		ID:          "bookstore",
		Title:       "Bookstore Dashboard",
		Description: "Inventory with price and stock",
		Noun:        "book",
		BarField:    "stock",
		Fields: []schema.FieldSpec{
			{Name: "title", Label: "Title", Rule: validate.Rule{Required: true, MinLen: 2, MaxLen: 120}},
			{Name: "author", Label: "Author", Rule: validate.Rule{Required: true, MinLen: 2, MaxLen: 80}},
			{Name: "price", Label: "Price", Kind: schema.KindNumber, Rule: validate.Rule{Required: true, Positive: true}},
			{Name: "stock", Label: "Stock", Kind: schema.KindNumber, Rule: validate.Rule{Required: true, Positive: true}},
		},
		Seed: []store.Fields{
			{"title": "The Left Hand of Darkness", "author": "Ursula K. Le Guin", "price": 12.99, "stock": 6},
			{"title": "Invisible Cities", "author": "Italo Calvino", "price": 10.5, "stock": 11},
			{"title": "Piranesi", "author": "Susanna Clarke", "price": 14.0, "stock": 2},
		},
	}
}

// Flowers is the flower store demo with a favorite toggle.
func Flowers() schema.Definition {
	return schema.Definition{
		ID:          "flowers",
		Title:       "Flower Store",
		Description: "A small catalogue with favorites",
		Noun:        "flower",
		Fields: []schema.FieldSpec{
			{Name: "name", Label: "Name", Rule: validate.Rule{Required: true, MinLen: 2, MaxLen: 60}},
			{Name: "price", Label: "Price", Kind: schema.KindNumber, Rule: validate.Rule{Required: true, Positive: true}},
			{Name: "favorite", Label: "Favorite", Kind: schema.KindBool},
		},
		Toggles: []schema.ToggleSpec{
			{Field: "favorite", Label: "favorite"},
		},
		Views: []schema.ViewSpec{
			{Name: "All", Op: schema.ViewAll},
			{Name: "Favorites", Op: schema.ViewWhereTrue, Field: "favorite"},
		},
		Seed: []store.Fields{
			{"name": "Tulip", "price": 3.5},
			{"name": "Peony", "price": 7.25},
		},
	}
}

// Feed is the social-feed mock. Posts arrive behind a simulated network
// delay, and liking a post flips the flag and bumps the counter in one
// transition.
func Feed() schema.Definition {
	return schema.Definition{
		ID:           "feed",
		Title:        "Social Feed",
		Description:  "Posts with likes behind a mock network delay",
		Noun:         "post",
		SimulateLoad: true,
		Fields: []schema.FieldSpec{
			{Name: "author", Label: "Author", Rule: validate.Rule{Required: true, MinLen: 2, MaxLen: 40}},
			{Name: "body", Label: "Post", Kind: schema.KindMultiline, Rule: validate.Rule{Required: true, MinLen: 1, MaxLen: 280}},
			{Name: "liked", Label: "Liked", Kind: schema.KindBool},
			{Name: "likes", Label: "Likes", Kind: schema.KindNumber, ReadOnly: true},
		},
		Toggles: []schema.ToggleSpec{
			{Field: "liked", Counter: "likes", Label: "like"},
		},
		Views: []schema.ViewSpec{
			{Name: "All", Op: schema.ViewAll},
			{Name: "Liked", Op: schema.ViewWhereTrue, Field: "liked"},
		},
		Seed: []store.Fields{
			{"author": "mira", "body": "shipping the gallery rewrite today 🚀", "likes": 3},
			{"author": "theo", "body": "does anyone actually water their desk plants", "likes": 1},
			{"author": "sol", "body": "bookstore dashboard now sorts by stock", "likes": 5},
		},
	}
}
