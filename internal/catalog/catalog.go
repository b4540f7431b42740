// Package catalog holds the sample records served by the API. The tables
// are built once at package init and never modified; accessors hand out
// copies.
package catalog

import "slices"

const (
	// RootMessage is returned by GET /.
	RootMessage = "Hello Express + TypeScript! 777"
	// HelloMessage is returned by GET /api/hello.
	HelloMessage = "Hello from Express API!"
	// StatusUp is the only health status the service reports.
	StatusUp = "UP"
)

var users = []User{
	{ID: 1, Name: "John Doe"},
	{ID: 2, Name: "Jane Doe"},
}

var products = []Product{
	{ID: 1, Name: "Product A", Price: 100},
	{ID: 2, Name: "Product B", Price: 150},
	{ID: 3, Name: "Product C", Price: 200},
	{ID: 4, Name: "Product D", Price: 250},
}

var orders = []Order{
	{ID: 1, UserID: 1, ProductID: 2, Quantity: 1},
	{ID: 2, UserID: 2, ProductID: 3, Quantity: 2},
	{ID: 3, UserID: 1, ProductID: 1, Quantity: 1},
	{ID: 4, UserID: 2, ProductID: 4, Quantity: 1},
}

// Users returns the user table in id order.
func Users() []User { return slices.Clone(users) }

// Products returns the product table in id order.
func Products() []Product { return slices.Clone(products) }

// Orders returns the order table in id order.
func Orders() []Order { return slices.Clone(orders) }

// Health returns the service health status.
func Health() HealthStatus { return HealthStatus{Status: StatusUp} }

// RootGreeting returns the greeting served at the site root.
func RootGreeting() Greeting { return Greeting{Message: RootMessage} }

// HelloGreeting returns the greeting served under /api/hello.
func HelloGreeting() Greeting { return Greeting{Message: HelloMessage} }
