package routes

import (
	"net/http"
	"testing"

	"github.com/MDAMANAHMAD/Roam-Heaven/models"
	"github.com/MDAMANAHMAD/Roam-Heaven/storage"
)

func TestListingMutationsRequireAdmin(t *testing.T) {
	setupTest(t)
	app := buildTestApp(t)

	listing := createTestListing(t, "Lake House", 1000)
	guest := createTestUser(t, "bob", "bob@example.com", "user")
	token := signTestToken(t, guest)

	payload := map[string]interface{}{
		"title":       "Hacked",
		"description": "should never land",
		"url":         "https://example.com/x.jpg",
		"price":       1,
	}

	if rec := doJSON(t, app, http.MethodPost, "/api/listings", token, payload); rec.Code != http.StatusForbidden {
		t.Fatalf("create status = %d, want 403", rec.Code)
	}
	if rec := doJSON(t, app, http.MethodPut, "/api/listings/1", token, payload); rec.Code != http.StatusForbidden {
		t.Fatalf("update status = %d, want 403", rec.Code)
	}
	if rec := doJSON(t, app, http.MethodDelete, "/api/listings/1", token, nil); rec.Code != http.StatusForbidden {
		t.Fatalf("delete status = %d, want 403", rec.Code)
	}

	var unchanged models.Listing
	if err := storage.DB.First(&unchanged, listing.ID).Error; err != nil || unchanged.Title != "Lake House" {
		t.Fatalf("listing mutated by non-admin: %+v (err %v)", unchanged, err)
	}
}

func TestListingCRUDAsAdmin(t *testing.T) {
	setupTest(t)
	app := buildTestApp(t)

	admin := createTestUser(t, "admin", "admin@example.com", "admin")
	token := signTestToken(t, admin)

	rec := doJSON(t, app, http.MethodPost, "/api/listings", token, map[string]interface{}{
		"title":       "Desert Camp",
		"description": "Sleep under the stars",
		"url":         "https://example.com/camp.jpg",
		"price":       750,
		"location":    "Jaisalmer",
		"country":     "India",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var created models.Listing
	decodeBody(t, rec, &created)
	if created.ID == 0 || created.Image.URL != "https://example.com/camp.jpg" {
		t.Fatalf("unexpected created listing: %+v", created)
	}

	rec = doJSON(t, app, http.MethodGet, "/api/listings", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var catalog []models.Listing
	decodeBody(t, rec, &catalog)
	if len(catalog) != 1 {
		t.Fatalf("catalog len = %d, want 1", len(catalog))
	}

	rec = doJSON(t, app, http.MethodPut, "/api/listings/1", token, map[string]interface{}{
		"title":       "Desert Camp Deluxe",
		"description": "Sleep under the stars",
		"url":         "https://example.com/camp.jpg",
		"price":       900,
		"location":    "Jaisalmer",
		"country":     "India",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var updated models.Listing
	decodeBody(t, rec, &updated)
	if updated.Title != "Desert Camp Deluxe" || updated.Price != 900 {
		t.Fatalf("unexpected updated listing: %+v", updated)
	}

	rec = doJSON(t, app, http.MethodDelete, "/api/listings/1", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	var deleted struct {
		Message string `json:"message"`
	}
	decodeBody(t, rec, &deleted)
	if deleted.Message != "Listing deleted successfully" {
		t.Fatalf("delete message = %q", deleted.Message)
	}
}

func TestDeleteUnknownListingIs404(t *testing.T) {
	setupTest(t)
	app := buildTestApp(t)

	admin := createTestUser(t, "admin", "admin@example.com", "admin")

	rec := doJSON(t, app, http.MethodDelete, "/api/listings/42", signTestToken(t, admin), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteListingCascades(t *testing.T) {
	setupTest(t)
	app := buildTestApp(t)

	listing := createTestListing(t, "Lake House", 1000)
	admin := createTestUser(t, "admin", "admin@example.com", "admin")
	guest := createTestUser(t, "bob", "bob@example.com", "user")

	rec := doJSON(t, app, http.MethodPost, "/api/bookings", signTestToken(t, guest), map[string]interface{}{
		"listingId": listing.ID,
		"checkIn":   "2025-01-10",
		"checkOut":  "2025-01-12",
		"guests":    1,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("booking status = %d", rec.Code)
	}
	rec = doJSON(t, app, http.MethodPost, "/api/listings/1/reviews", signTestToken(t, guest), map[string]interface{}{
		"reviews": map[string]interface{}{"rating": 5, "comment": "great stay"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("review status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, app, http.MethodDelete, "/api/listings/1", signTestToken(t, admin), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}

	// No booking or review referencing the deleted listing survives.
	var bookings, reviews int64
	storage.DB.Model(&models.Booking{}).Where("listing_id = ?", listing.ID).Count(&bookings)
	storage.DB.Model(&models.Review{}).Where("listing_id = ?", listing.ID).Count(&reviews)
	if bookings != 0 || reviews != 0 {
		t.Fatalf("cascade left %d bookings, %d reviews", bookings, reviews)
	}
}

func TestGetListingWithReviews(t *testing.T) {
	setupTest(t)
	app := buildTestApp(t)

	listing := createTestListing(t, "Lake House", 1000)
	guest := createTestUser(t, "bob", "bob@example.com", "user")

	rec := doJSON(t, app, http.MethodPost, "/api/listings/1/reviews", signTestToken(t, guest), map[string]interface{}{
		"reviews": map[string]interface{}{"rating": 4, "comment": "lovely view"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("review status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var review models.Review
	decodeBody(t, rec, &review)
	if review.Author != "bob" || review.Rating != 4 {
		t.Fatalf("unexpected review: %+v", review)
	}

	rec = doJSON(t, app, http.MethodGet, "/api/listings/1", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var got models.Listing
	decodeBody(t, rec, &got)
	if got.ID != listing.ID || len(got.Reviews) != 1 {
		t.Fatalf("listing %d has %d reviews, want 1", got.ID, len(got.Reviews))
	}

	rec = doJSON(t, app, http.MethodGet, "/api/listings/99", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown listing status = %d, want 404", rec.Code)
	}
}

func TestReviewRejectsOutOfRangeRating(t *testing.T) {
	setupTest(t)
	app := buildTestApp(t)

	createTestListing(t, "Lake House", 1000)
	guest := createTestUser(t, "bob", "bob@example.com", "user")

	for _, rating := range []int{0, 6} {
		rec := doJSON(t, app, http.MethodPost, "/api/listings/1/reviews", signTestToken(t, guest), map[string]interface{}{
			"reviews": map[string]interface{}{"rating": rating, "comment": "x"},
		})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("rating %d: status = %d, want 400", rating, rec.Code)
		}
	}
}
