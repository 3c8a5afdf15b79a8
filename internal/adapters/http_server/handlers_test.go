package httpserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/time/rate"

	httpserver "hoteldesk/internal/adapters/http_server"
	"hoteldesk/internal/app"
	"hoteldesk/internal/domain"
)

var regularPhones = map[string]struct{}{"3001234567": {}}

func newTestServer(t *testing.T, limiter *rate.Limiter) *httptest.Server {
	t.Helper()
	hotel := domain.New("Hotel Cacique Toné", 4)
	hotel.AddRoom(domain.NewSingle(101, 150000, "foto101.jpg", true))
	hotel.AddRoom(domain.NewSingle(102, 145000, "foto102.jpg", false))
	hotel.AddRoom(domain.NewDouble(201, 240000, "foto201.jpg", domain.BedMatrimonial))

	q := app.NewQueryService(hotel, nil, 0, regularPhones, 12.0)
	b := app.NewBookingService(hotel, nil)

	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{Q: q, B: b, ReserveLimit: limiter})
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, url, body string, out any) int {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		_ = json.NewDecoder(resp.Body).Decode(out)
	}
	return resp.StatusCode
}

func TestListRooms(t *testing.T) {
	ts := newTestServer(t, nil)

	var out struct {
		Items []struct {
			Number int     `json:"number"`
			Kind   string  `json:"kind"`
			Price  float64 `json:"price"`
		} `json:"items"`
	}
	if code := getJSON(t, ts.URL+"/v1/rooms", &out); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if len(out.Items) != 3 || out.Items[0].Number != 101 || out.Items[2].Number != 201 {
		t.Fatalf("unexpected items: %+v", out.Items)
	}

	out.Items = nil
	if code := getJSON(t, ts.URL+"/v1/rooms?kind=single", &out); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if len(out.Items) != 2 {
		t.Fatalf("expected 2 singles, got %+v", out.Items)
	}

	if code := getJSON(t, ts.URL+"/v1/rooms?kind=penthouse", nil); code != http.StatusBadRequest {
		t.Fatalf("invalid kind should 400, got %d", code)
	}
}

func TestQuotePrice(t *testing.T) {
	ts := newTestServer(t, nil)

	var quote struct {
		CustomerKind    string  `json:"customerKind"`
		DiscountPercent float64 `json:"discountPercent"`
		BasePrice       float64 `json:"basePrice"`
		FinalPrice      float64 `json:"finalPrice"`
	}
	if code := getJSON(t, ts.URL+"/v1/rooms/price?kind=single&phone=3001234567", &quote); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if quote.CustomerKind != "regular" || quote.BasePrice != 150000 || quote.FinalPrice != 132000 {
		t.Fatalf("unexpected quote: %+v", quote)
	}

	if code := getJSON(t, ts.URL+"/v1/rooms/price?kind=single&phone=3159999999", &quote); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if quote.CustomerKind != "occasional" || quote.FinalPrice != 150000 {
		t.Fatalf("unexpected occasional quote: %+v", quote)
	}

	if code := getJSON(t, ts.URL+"/v1/rooms/price?kind=suite", nil); code != http.StatusNotFound {
		t.Fatalf("missing type should 404, got %d", code)
	}
	if code := getJSON(t, ts.URL+"/v1/rooms/price?kind=", nil); code != http.StatusBadRequest {
		t.Fatalf("missing kind should 400, got %d", code)
	}
}

func TestReserve_ConflictOnSecondAttempt(t *testing.T) {
	ts := newTestServer(t, nil)

	body := `{"roomNumber":101,"nights":2,"name":"Ana","address":"Calle 1","phone":"3009999999"}`
	var res struct {
		ID           string  `json:"id"`
		RoomNumber   int     `json:"roomNumber"`
		CustomerKind string  `json:"customerKind"`
		BasePrice    float64 `json:"basePrice"`
		FinalPrice   float64 `json:"finalPrice"`
	}
	if code := postJSON(t, ts.URL+"/v1/reservations", body, &res); code != http.StatusCreated {
		t.Fatalf("status %d", code)
	}
	if res.ID == "" || res.RoomNumber != 101 || res.CustomerKind != "occasional" || res.FinalPrice != 150000 {
		t.Fatalf("unexpected reservation: %+v", res)
	}

	if code := postJSON(t, ts.URL+"/v1/reservations", body, nil); code != http.StatusConflict {
		t.Fatalf("second reserve should 409, got %d", code)
	}

	// reserved room is gone from the listing
	var out struct {
		Items []struct {
			Number int `json:"number"`
		} `json:"items"`
	}
	getJSON(t, ts.URL+"/v1/rooms?kind=single", &out)
	if len(out.Items) != 1 || out.Items[0].Number != 102 {
		t.Fatalf("expected only #102 left, got %+v", out.Items)
	}
}

func TestReserve_RegularGetsDiscountedPrice(t *testing.T) {
	ts := newTestServer(t, nil)

	body := `{"roomNumber":201,"nights":1,"name":"Maria","address":"Calle 10","phone":"3001234567"}`
	var res struct {
		CustomerKind string  `json:"customerKind"`
		BasePrice    float64 `json:"basePrice"`
		FinalPrice   float64 `json:"finalPrice"`
	}
	if code := postJSON(t, ts.URL+"/v1/reservations", body, &res); code != http.StatusCreated {
		t.Fatalf("status %d", code)
	}
	if res.CustomerKind != "regular" || res.BasePrice != 240000 || res.FinalPrice != 211200 {
		t.Fatalf("unexpected regular reservation: %+v", res)
	}
}

func TestReserve_Validation(t *testing.T) {
	ts := newTestServer(t, nil)
	if code := postJSON(t, ts.URL+"/v1/reservations", `{"roomNumber":0,"nights":2}`, nil); code != http.StatusBadRequest {
		t.Fatalf("zero room should 400, got %d", code)
	}
	if code := postJSON(t, ts.URL+"/v1/reservations", `not json`, nil); code != http.StatusBadRequest {
		t.Fatalf("garbage body should 400, got %d", code)
	}
}

func TestReserve_RateLimited(t *testing.T) {
	// burst of one and no refill: the second request must be dropped
	ts := newTestServer(t, rate.NewLimiter(rate.Limit(0), 1))

	body := `{"roomNumber":101,"nights":1,"name":"A","address":"B","phone":"C"}`
	if code := postJSON(t, ts.URL+"/v1/reservations", body, nil); code != http.StatusCreated {
		t.Fatalf("first request should pass, got %d", code)
	}
	if code := postJSON(t, ts.URL+"/v1/reservations", body, nil); code != http.StatusTooManyRequests {
		t.Fatalf("second request should be limited, got %d", code)
	}
}

func TestChangePrice(t *testing.T) {
	ts := newTestServer(t, nil)

	req, _ := http.NewRequest(http.MethodPut, ts.URL+"/v1/rooms/price", strings.NewReader(`{"kind":"single","price":100000}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PUT: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var out struct {
		Updated int `json:"updated"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Updated != 2 {
		t.Fatalf("expected 2 singles updated, got %d", out.Updated)
	}

	// zero matches still succeeds
	req2, _ := http.NewRequest(http.MethodPut, ts.URL+"/v1/rooms/price", strings.NewReader(`{"kind":"suite","price":500000}`))
	resp2, err := http.DefaultClient.Do(req2)
	if err != nil {
		t.Fatalf("PUT: %v", err)
	}
	defer resp2.Body.Close()
	var out2 struct {
		Updated int `json:"updated"`
	}
	_ = json.NewDecoder(resp2.Body).Decode(&out2)
	if resp2.StatusCode != http.StatusOK || out2.Updated != 0 {
		t.Fatalf("zero-match change should be 200 with 0, got %d %d", resp2.StatusCode, out2.Updated)
	}

	// quote now reflects the new single price
	var quote struct {
		BasePrice float64 `json:"basePrice"`
	}
	getJSON(t, ts.URL+"/v1/rooms/price?kind=single", &quote)
	if quote.BasePrice != 100000 {
		t.Fatalf("quote did not follow price change: %+v", quote)
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
}
