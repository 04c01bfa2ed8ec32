package entity

// Menu is the catalog document as loaded from disk. Immutable after load.
type Menu struct {
	Categories []Category `json:"categories"`
}

type Category struct {
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}

type Product struct {
	Id          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Calories    int      `json:"calories,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
}
