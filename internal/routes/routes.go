// Package routes is the API's route table: six GET endpoints that each
// serve a fixed JSON document from the catalog.
package routes

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/sampleapi/internal/catalog"
)

// Route describes one entry of the table.
type Route struct {
	Method  string
	Path    string
	Summary string
	handler http.HandlerFunc
}

var table = []Route{
	{http.MethodGet, "/", "Root greeting", rootHandler},
	{http.MethodGet, "/api/hello", "API greeting", helloHandler},
	{http.MethodGet, "/api/health", "Health status", healthHandler},
	{http.MethodGet, "/api/users", "List users", listUsersHandler},
	{http.MethodGet, "/api/products", "List products", listProductsHandler},
	{http.MethodGet, "/api/orders", "List orders", listOrdersHandler},
}

// Table returns the registered routes in registration order.
func Table() []Route {
	out := make([]Route, len(table))
	copy(out, table)
	return out
}

// RegisterRoutes mounts every route in the table on the given router.
func RegisterRoutes(r chi.Router) {
	for _, rt := range table {
		r.Method(rt.Method, rt.Path, rt.handler)
	}
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.RootGreeting())
}

func helloHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.HelloGreeting())
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Health())
}

func listUsersHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Users())
}

func listProductsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Products())
}

func listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Orders())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
