// Package stubsrv implements the slice of the inventory service REST API
// the storefront client consumes. It exists so the client can be exercised
// locally; it is not the production backend.
package stubsrv

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/rmello/shopfront/internal/models"
	"github.com/rmello/shopfront/internal/store"
)

var (
	catalogStore  store.CatalogStore
	orderStore    store.OrderStore
	reviewStore   store.ReviewStore
	activityStore store.ActivityStore

	log = logrus.StandardLogger()
)

func SetCatalogStore(s store.CatalogStore)   { catalogStore = s }
func SetOrderStore(s store.OrderStore)       { orderStore = s }
func SetReviewStore(s store.ReviewStore)     { reviewStore = s }
func SetActivityStore(s store.ActivityStore) { activityStore = s }

func SetLogger(l *logrus.Logger) { log = l }

// GetProductsHandler serves the dashboard snapshot as {status, data}.
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := catalogStore.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, productsEnvelope{Status: "success", Data: products})
}

// GetStorefrontProductsHandler serves one page of the snapshot as {content}.
func GetStorefrontProductsHandler(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, err := strconv.Atoi(r.URL.Query().Get("size"))
	if err != nil || size < 1 {
		size = 20
	}
	if page < 0 {
		page = 0
	}

	products, err := catalogStore.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	start := min(page*size, len(products))
	end := min(start+size, len(products))
	writeJSON(w, http.StatusOK, pageResponse{
		Content:       products[start:end],
		Page:          page,
		Size:          size,
		TotalElements: len(products),
	})
}

// GetStorefrontProductHandler serves a single product.
func GetStorefrontProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}
	product, err := catalogStore.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "product not found"})
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// CreateOrderHandler validates stock for every item, decrements it and
// records the order. Order failures are JSON {message} bodies, which is
// what the storefront surfaces to the user.
func CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid order payload"})
		return
	}
	if req.CustomerEmail == "" || req.ShippingAddress == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "customer email and shipping address are required"})
		return
	}
	if len(req.Items) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "order has no items"})
		return
	}

	// Check the whole order before touching any stock so a rejected order
	// leaves the catalog untouched.
	var total float64
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity < 1 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "item quantity must be positive"})
			return
		}
		product, err := catalogStore.GetByID(item.ProductID)
		if err != nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: fmt.Sprintf("product %d not found", item.ProductID)})
			return
		}
		if product.Quantity < item.Quantity {
			writeJSON(w, http.StatusConflict, errorResponse{Message: "insufficient stock for " + product.Name})
			return
		}
		total += product.Price * float64(item.Quantity)
		items = append(items, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
		})
	}

	for _, item := range items {
		if _, err := catalogStore.DecrementStock(item.ProductID, item.Quantity); err != nil {
			if errors.Is(err, store.ErrInsufficientStock) {
				writeJSON(w, http.StatusConflict, errorResponse{Message: "insufficient stock for " + item.ProductName})
				return
			}
			http.Error(w, "could not update stock", http.StatusInternalServerError)
			return
		}
	}

	order, err := orderStore.Create(models.OrderSummary{
		TotalAmount: total,
		Items:       items,
	}, req.CustomerEmail)
	if err != nil {
		http.Error(w, "could not record order", http.StatusInternalServerError)
		return
	}

	log.WithFields(logrus.Fields{
		"order": order.ID,
		"items": len(order.Items),
		"total": order.TotalAmount,
	}).Info("order placed")
	writeJSON(w, http.StatusCreated, order)
}

// GetMyOrdersHandler serves the order history for a customer email.
func GetMyOrdersHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "email is required"})
		return
	}
	orders, err := orderStore.ByEmail(email)
	if err != nil {
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []models.OrderSummary{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetReviewsHandler serves the reviews of a product, newest first.
func GetReviewsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}
	reviews, err := reviewStore.ByProduct(id)
	if err != nil {
		http.Error(w, "could not fetch reviews", http.StatusInternalServerError)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	writeJSON(w, http.StatusOK, reviews)
}

// PostReviewHandler records a review for a product.
func PostReviewHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}
	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if review.Rating < 1 || review.Rating > 5 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "rating must be between 1 and 5"})
		return
	}
	review.ProductID = id
	review.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	if err := reviewStore.Add(review); err != nil {
		http.Error(w, "could not save review", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

// GetTrendingHandler serves the most viewed products, joined with their
// current names from the catalog.
func GetTrendingHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := activityStore.Trending(10)
	if err != nil {
		http.Error(w, "could not fetch trending", http.StatusInternalServerError)
		return
	}
	for i := range entries {
		if p, err := catalogStore.GetByID(entries[i].ProductID); err == nil {
			entries[i].ProductName = p.Name
		}
	}
	if entries == nil {
		entries = []models.TrendingEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// GetTopRatedHandler serves the best reviewed products.
func GetTopRatedHandler(w http.ResponseWriter, r *http.Request) {
	rated, err := reviewStore.TopRated(10)
	if err != nil {
		http.Error(w, "could not fetch top rated", http.StatusInternalServerError)
		return
	}
	for i := range rated {
		if rated[i].ProductName == "" {
			if p, err := catalogStore.GetByID(rated[i].ProductID); err == nil {
				rated[i].ProductName = p.Name
			}
		}
	}
	if rated == nil {
		rated = []models.RatedProduct{}
	}
	writeJSON(w, http.StatusOK, rated)
}

// PostActivityHandler records a user action. Only product views feed the
// trending counters; everything else is accepted and dropped.
func PostActivityHandler(w http.ResponseWriter, r *http.Request) {
	var event models.ActivityEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if event.Action == models.ActionProductView && event.ProductID != 0 {
		if err := activityStore.RecordView(event.ProductID); err != nil {
			log.WithError(err).Warn("could not record product view")
		}
	}
	w.WriteHeader(http.StatusAccepted)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.WithError(err).Error("failed to write JSON response")
	}
}
