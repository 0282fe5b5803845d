package models

// CartItem is one requested-restock line. Cabin is nil for a general request
// not tied to a single cabin.
type CartItem struct {
	ID       string `bson:"id" json:"id"`
	Item     string `bson:"item" json:"item"`
	Quantity int    `bson:"quantity" json:"quantity"`
	Cabin    *int   `bson:"cabin" json:"cabin"`
}

// Cart is the shared supply-request list, keyed by the authenticated caller.
type Cart struct {
	UserID string     `bson:"userId" json:"userId"`
	Items  []CartItem `bson:"items" json:"items"`
}
