package router

import (
	"net/http"
	"strings"

	"github.com/GeraldTgit/magingwais/app/controller"
)

type Controllers struct {
	Auth *controller.AuthController
	List *controller.ListController
	Item *controller.ItemController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Google sign-in
	http.HandleFunc("/api/auth/google", controllers.Auth.GoogleAuth)

	// Shopping lists collection
	http.HandleFunc("/api/lists", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			controllers.List.BrowseLists(w, r)
		case http.MethodPost:
			controllers.List.CreateList(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Shopping list actions and line item collection
	http.HandleFunc("/api/lists/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/api/lists/")

		// Route sub-resources first
		if strings.HasSuffix(path, "/duplicate") && r.Method == http.MethodPost {
			controllers.List.DuplicateList(w, r)
			return
		}
		if strings.HasSuffix(path, "/budget") && r.Method == http.MethodPut {
			controllers.List.SetBudget(w, r)
			return
		}
		if strings.HasSuffix(path, "/items") && r.Method == http.MethodPost {
			controllers.List.AddItem(w, r)
			return
		}
		if strings.HasSuffix(path, "/export") && r.Method == http.MethodGet {
			controllers.List.ExportList(w, r)
			return
		}

		// Plain /api/lists/{id}
		if strings.Contains(path, "/") {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			controllers.List.GetList(w, r)
		case http.MethodPut:
			controllers.List.UpdateList(w, r)
		case http.MethodDelete:
			controllers.List.DeleteList(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Line item operations
	http.HandleFunc("/api/list-items/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/api/list-items/")

		if strings.HasSuffix(path, "/quantity") && r.Method == http.MethodPut {
			controllers.List.SetQuantity(w, r)
			return
		}
		if strings.HasSuffix(path, "/price") && r.Method == http.MethodPut {
			controllers.List.SetActualPrice(w, r)
			return
		}
		if strings.HasSuffix(path, "/bought") && r.Method == http.MethodPut {
			controllers.List.ToggleBought(w, r)
			return
		}

		if strings.Contains(path, "/") {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodPut:
			controllers.List.UpdateLineItem(w, r)
		case http.MethodDelete:
			controllers.List.RemoveLineItem(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Catalog items collection
	http.HandleFunc("/api/items", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			controllers.Item.BrowseItems(w, r)
		case http.MethodPost:
			controllers.Item.CreateItem(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Catalog item reads and image pipeline
	http.HandleFunc("/api/items/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/api/items/")

		if strings.HasSuffix(path, "/image") {
			switch r.Method {
			case http.MethodGet:
				controllers.Item.GetImage(w, r)
			case http.MethodPost:
				controllers.Item.LookupImage(w, r)
			default:
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		if strings.Contains(path, "/") {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		if r.Method == http.MethodGet {
			controllers.Item.GetItem(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
}
