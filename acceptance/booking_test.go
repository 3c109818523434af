package acceptance

import (
	"encoding/json"
	"net/http"
	"testing"
)

func bookingBody(email string, itemID int64) map[string]any {
	return map[string]any{
		"customerName":  "Jane Doe",
		"customerEmail": email,
		"customerPhone": "+254700000000",
		"customerId":    "12345678",
		"bookingType":   "bike",
		"itemId":        itemID,
		"startDate":     "2024-06-01",
		"endDate":       "2024-06-03",
		"totalPrice":    5000,
	}
}

func TestCreateBooking_ReturnsPendingBookingWithoutNotes(t *testing.T) {
	ts := NewTestServer(t)
	defer ts.Close()

	bikeID := ts.CreateTestBike(t, "Africa Twin", 2500, true)

	w := ts.POST("/bookings", bookingBody("jane@x.com", bikeID))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	resp := decode[bookingResponse](t, w)

	if resp.ID == 0 {
		t.Errorf("expected a server-assigned booking id")
	}
	if resp.CustomerID == 0 {
		t.Errorf("expected a newly minted customer id")
	}
	if resp.Status != "pending" {
		t.Errorf("expected status pending, got %q", resp.Status)
	}
	if resp.StartDate != "2024-06-01" || resp.EndDate != "2024-06-03" {
		t.Errorf("expected dates to round-trip, got %s..%s", resp.StartDate, resp.EndDate)
	}

	// notes must be an absent key, not null or "".
	var raw map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if _, present := raw["notes"]; present {
		t.Errorf("expected notes to be absent, got %v", raw["notes"])
	}
}

func TestCreateBooking_SameEmailResolvesToOneCustomer(t *testing.T) {
	ts := NewTestServer(t)
	defer ts.Close()

	firstBike := ts.CreateTestBike(t, "Africa Twin", 2500, true)
	secondBike := ts.CreateTestBike(t, "Tenere 700", 3000, true)

	w1 := ts.POST("/bookings", bookingBody("jane@x.com", firstBike))
	w2 := ts.POST("/bookings", bookingBody("jane@x.com", secondBike))

	if w1.Code != http.StatusCreated || w2.Code != http.StatusCreated {
		t.Fatalf("expected both bookings to be created, got %d and %d", w1.Code, w2.Code)
	}

	first := decode[bookingResponse](t, w1)
	second := decode[bookingResponse](t, w2)

	if first.CustomerID != second.CustomerID {
		t.Errorf("expected both bookings to share a customer id, got %d and %d", first.CustomerID, second.CustomerID)
	}

	var count int
	if err := ts.DB.Get(&count, "SELECT count(*) FROM customers WHERE email = $1", "jane@x.com"); err != nil {
		t.Fatalf("failed to count customers: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly one customer row per email, got %d", count)
	}
}

func TestCreateBooking_DifferentEmailsGetDifferentCustomers(t *testing.T) {
	ts := NewTestServer(t)
	defer ts.Close()

	bikeID := ts.CreateTestBike(t, "Africa Twin", 2500, true)

	first := decode[bookingResponse](t, ts.POST("/bookings", bookingBody("jane@x.com", bikeID)))
	second := decode[bookingResponse](t, ts.POST("/bookings", bookingBody("john@x.com", bikeID)))

	if first.CustomerID == second.CustomerID {
		t.Errorf("expected distinct customer ids for distinct emails")
	}
}

func TestCreateBooking_EmptyNotesStoredAsAbsent(t *testing.T) {
	ts := NewTestServer(t)
	defer ts.Close()

	bikeID := ts.CreateTestBike(t, "Africa Twin", 2500, true)

	body := bookingBody("jane@x.com", bikeID)
	body["notes"] = ""

	w := ts.POST("/bookings", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	var raw map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if _, present := raw["notes"]; present {
		t.Errorf("expected empty notes to be stored and surfaced as absent")
	}
}

func TestCreateBooking_NotesRoundTrip(t *testing.T) {
	ts := NewTestServer(t)
	defer ts.Close()

	bikeID := ts.CreateTestBike(t, "Africa Twin", 2500, true)

	body := bookingBody("jane@x.com", bikeID)
	body["notes"] = "please fit a top box"

	created := decode[bookingResponse](t, ts.POST("/bookings", body))
	if created.Notes == nil || *created.Notes != "please fit a top box" {
		t.Fatalf("expected notes to round-trip, got %v", created.Notes)
	}

	listed := decode[struct {
		Bookings []bookingResponse `json:"bookings"`
	}](t, ts.GET("/bookings"))

	if len(listed.Bookings) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(listed.Bookings))
	}
	if listed.Bookings[0].Notes == nil || *listed.Bookings[0].Notes != "please fit a top box" {
		t.Errorf("expected listed notes to match, got %v", listed.Bookings[0].Notes)
	}
}

func TestGetBookings_NewestFirst(t *testing.T) {
	ts := NewTestServer(t)
	defer ts.Close()

	firstBike := ts.CreateTestBike(t, "Africa Twin", 2500, true)
	secondBike := ts.CreateTestBike(t, "Tenere 700", 3000, true)

	ts.POST("/bookings", bookingBody("jane@x.com", firstBike))
	ts.POST("/bookings", bookingBody("jane@x.com", secondBike))

	resp := decode[struct {
		Bookings []bookingResponse `json:"bookings"`
	}](t, ts.GET("/bookings"))

	if len(resp.Bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(resp.Bookings))
	}
	if resp.Bookings[0].ItemID != secondBike {
		t.Errorf("expected the most recent booking first")
	}
}

func TestCreateBooking_TourBooking(t *testing.T) {
	ts := NewTestServer(t)
	defer ts.Close()

	tourID := ts.CreateTestTour(t, "Coast Run", 3, 40000)

	body := bookingBody("jane@x.com", tourID)
	body["bookingType"] = "tour"
	body["totalPrice"] = 40000

	w := ts.POST("/bookings", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	resp := decode[bookingResponse](t, w)
	if resp.BookingType != "tour" {
		t.Errorf("expected bookingType tour, got %s", resp.BookingType)
	}
}

func TestCreateBooking_AcceptsZeroTotalPrice(t *testing.T) {
	ts := NewTestServer(t)
	defer ts.Close()

	bikeID := ts.CreateTestBike(t, "Africa Twin", 2500, true)

	// A present zero is structurally valid and stored verbatim.
	body := bookingBody("jane@x.com", bikeID)
	body["totalPrice"] = 0

	w := ts.POST("/bookings", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	resp := decode[bookingResponse](t, w)
	if resp.TotalPrice != 0 {
		t.Errorf("expected totalPrice 0 to round-trip, got %v", resp.TotalPrice)
	}
}

func TestCreateBooking_DoesNotValidateDomainValues(t *testing.T) {
	ts := NewTestServer(t)
	defer ts.Close()

	// Unknown item, inverted date range, negative price: all accepted.
	body := bookingBody("jane@x.com", 999999)
	body["startDate"] = "2024-06-03"
	body["endDate"] = "2024-06-01"
	body["totalPrice"] = -100

	w := ts.POST("/bookings", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	resp := decode[bookingResponse](t, w)
	if resp.ItemID != 999999 {
		t.Errorf("expected itemId to be stored verbatim, got %d", resp.ItemID)
	}
	if resp.TotalPrice != -100 {
		t.Errorf("expected totalPrice to be stored verbatim, got %v", resp.TotalPrice)
	}
}

func TestCreateBooking_Returns400ForMissingFields(t *testing.T) {
	ts := NewTestServer(t)
	defer ts.Close()

	w := ts.POST("/bookings", map[string]any{"customerName": "Jane Doe"})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestCreateBooking_Returns400ForUnknownType(t *testing.T) {
	ts := NewTestServer(t)
	defer ts.Close()

	body := bookingBody("jane@x.com", 1)
	body["bookingType"] = "boat"

	w := ts.POST("/bookings", body)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestCreateBooking_Returns400ForBadDate(t *testing.T) {
	ts := NewTestServer(t)
	defer ts.Close()

	body := bookingBody("jane@x.com", 1)
	body["startDate"] = "June 1st 2024"

	w := ts.POST("/bookings", body)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}
