package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Thiagom05/IceCore/internal/catalog"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != defaultBaseURL {
		t.Fatalf("default base = %q, want %q", u.String(), defaultBaseURL)
	}

	u, err = parseBaseURL("example.com:9000/api/")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Path != "/api" {
		t.Fatalf("path = %q, want /api (prefix preserved, trailing slash dropped)", u.Path)
	}

	u, err = parseBaseURL("https://shop.example.com/api?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("query/fragment not stripped: %q", u.String())
	}
}

func TestFetchProductTypes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tipos-producto" {
			t.Errorf("path = %q, want /api/tipos-producto", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q, want application/json", got)
		}
		_ = json.NewEncoder(w).Encode([]catalog.Product{
			{ID: 1, Nombre: "1 Kilo", Precio: 18000, MaxGustos: 4, EsPorPeso: true},
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL + "/api")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	products, err := client.FetchProductTypes(context.Background())
	if err != nil {
		t.Fatalf("FetchProductTypes: %v", err)
	}
	if len(products) != 1 || products[0].Nombre != "1 Kilo" || !products[0].EsPorPeso {
		t.Fatalf("products = %#v, want decoded 1 Kilo", products)
	}
}

func TestFetchActiveFlavors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/gustos/activos" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode([]catalog.Flavor{
			{ID: 101, Nombre: "Chocolate", Categoria: "Chocolates", HayStock: true},
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL + "/api")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	flavors, err := client.FetchActiveFlavors(context.Background())
	if err != nil {
		t.Fatalf("FetchActiveFlavors: %v", err)
	}
	if len(flavors) != 1 || flavors[0].Categoria != "Chocolates" {
		t.Fatalf("flavors = %#v, want decoded Chocolate", flavors)
	}
}

func TestFetch_ServerErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if _, err := client.FetchProductTypes(context.Background()); err == nil {
		t.Fatal("FetchProductTypes on 500 returned nil error")
	}
}

func TestFetch_MalformedBodySurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not an array"))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if _, err := client.FetchActiveFlavors(context.Background()); err == nil {
		t.Fatal("FetchActiveFlavors on malformed body returned nil error")
	}
}

func TestClient_NilSafe(t *testing.T) {
	var c *Client
	if _, err := c.FetchProductTypes(context.Background()); err == nil {
		t.Fatal("nil client FetchProductTypes returned nil error")
	}
	if _, err := c.FetchActiveFlavors(context.Background()); err == nil {
		t.Fatal("nil client FetchActiveFlavors returned nil error")
	}
}
