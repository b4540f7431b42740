package catalog

// User is a sample account record.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Product is a sample catalog item.
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Order links a user to a product. UserID and ProductID are not checked
// against the user and product tables.
type Order struct {
	ID        int `json:"id"`
	UserID    int `json:"userId"`
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// HealthStatus is the body of the health endpoint.
type HealthStatus struct {
	Status string `json:"status"`
}

// Greeting is the body of the greeting endpoints.
type Greeting struct {
	Message string `json:"message"`
}
