package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"connect_payments/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const (
	testWebhookSecret = "whsec_router_test"
	testFrontendURL   = "https://app.example.com"
)

// fakeStripe records form posts made against the Stripe API.
type fakeStripe struct {
	mu       sync.Mutex
	requests []recordedRequest
}

type recordedRequest struct {
	method        string
	path          string
	form          map[string]string
	stripeAccount string
}

func (f *fakeStripe) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		form := map[string]string{}
		for k := range r.PostForm {
			form[k] = r.PostForm.Get(k)
		}
		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{method: r.Method, path: r.URL.Path, form: form, stripeAccount: r.Header.Get("Stripe-Account")})
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v1/accounts":
			_, _ = fmt.Fprintf(w, `{"id":"acct_created","object":"account","type":"express","country":"US","email":%q}`, form["email"])
		case r.Method == http.MethodPost && r.URL.Path == "/v1/account_links":
			_, _ = fmt.Fprintf(w, `{"object":"account_link","url":"https://connect.stripe.com/setup/%s","expires_at":1760000000}`, form["account"])
		case r.Method == http.MethodPost && r.URL.Path == "/v1/payment_intents":
			_, _ = fmt.Fprint(w, `{"id":"pi_1","object":"payment_intent","client_secret":"pi_1_secret_xyz","capture_method":"manual","status":"requires_payment_method"}`)
		case r.Method == http.MethodGet && r.URL.Path == "/v1/balance":
			_, _ = fmt.Fprint(w, `{"object":"balance","available":[{"amount":4200,"currency":"usd"}],"pending":[]}`)
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/v1/accounts/"):
			id := strings.TrimPrefix(r.URL.Path, "/v1/accounts/")
			if id == "acct_missing" {
				w.WriteHeader(http.StatusNotFound)
				_, _ = fmt.Fprint(w, `{"error":{"type":"invalid_request_error","code":"resource_missing","message":"No such account: 'acct_missing'"}}`)
				return
			}
			_, _ = fmt.Fprintf(w, `{"id":%q,"object":"account","deleted":true}`, id)
		default:
			t.Errorf("unexpected stripe call %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func (f *fakeStripe) calls() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func newTestRouter(t *testing.T) (*gin.Engine, *fakeStripe) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fake := &fakeStripe{}
	srv := httptest.NewServer(fake.handler(t))
	t.Cleanup(srv.Close)

	router, err := NewRouter(config.Config{
		Port:                "8080",
		StripeSecretKey:     "sk_test_router",
		StripeWebhookSecret: testWebhookSecret,
		StripeAPIURL:        srv.URL,
		FrontendURL:         testFrontendURL,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return router, fake
}

func serve(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewRouter_RequiresStripeConfig(t *testing.T) {
	if _, err := NewRouter(config.Config{FrontendURL: testFrontendURL}); err == nil {
		t.Fatalf("expected error for missing stripe credentials")
	}
}

func TestRouter_Ping(t *testing.T) {
	r, _ := newTestRouter(t)
	w := serve(r, http.MethodGet, "/ping", "", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "pong") {
		t.Fatalf("unexpected ping response: %d %s", w.Code, w.Body.String())
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}
}

func TestRouter_Swagger(t *testing.T) {
	r, _ := newTestRouter(t)
	w := serve(r, http.MethodGet, "/swagger/doc.json", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	for _, path := range []string{"/stripe/webhook", "/ping"} {
		if !strings.Contains(w.Body.String(), path) {
			t.Fatalf("expected swagger doc to list %s: %s", path, w.Body.String())
		}
	}
}

func TestRouter_CreateAccountThenAccountLink(t *testing.T) {
	r, fake := newTestRouter(t)

	w := serve(r, http.MethodPost, "/stripe/create-account", `{"email":"seller@example.com"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		Account        map[string]any `json:"account"`
		OnboardingLink string         `json:"onboardingLink"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if created.Account["id"] != "acct_created" || created.OnboardingLink != "https://connect.stripe.com/setup/acct_created" {
		t.Fatalf("unexpected create-account response: %s", w.Body.String())
	}

	w = serve(r, http.MethodPost, "/stripe/account-link", `{"accountId":"acct_created"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	calls := fake.calls()
	if len(calls) != 3 {
		t.Fatalf("expected 3 stripe calls, got %d", len(calls))
	}
	if calls[0].path != "/v1/accounts" || calls[0].form["type"] != "express" || calls[0].form["country"] != "US" {
		t.Fatalf("unexpected account call: %+v", calls[0])
	}
	first, second := calls[1], calls[2]
	if first.form["account"] != "acct_created" || second.form["account"] != "acct_created" {
		t.Fatalf("expected links for the created account: %+v %+v", first, second)
	}
	if first.form["refresh_url"] != testFrontendURL+"/reauth" || second.form["refresh_url"] != testFrontendURL+"/reauth" {
		t.Fatalf("unexpected refresh urls: %+v %+v", first, second)
	}
	if first.form["return_url"] != testFrontendURL+"/home/tab1" || second.form["return_url"] != testFrontendURL+"/home/tab3" {
		t.Fatalf("unexpected return urls: %q %q", first.form["return_url"], second.form["return_url"])
	}
}

func TestRouter_CreatePaymentIntent(t *testing.T) {
	r, fake := newTestRouter(t)

	w := serve(r, http.MethodPost, "/stripe/create-payment-intent", `{"amount":1999,"currency":"usd","ownerStripeAccountId":"acct_owner"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"clientSecret":"pi_1_secret_xyz"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	calls := fake.calls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 stripe call, got %d", len(calls))
	}
	call := calls[0]
	if call.form["capture_method"] != "manual" || call.form["payment_method_types[0]"] != "card" {
		t.Fatalf("unexpected intent params: %+v", call.form)
	}
	if call.form["application_fee_amount"] != "199" || call.form["transfer_data[destination]"] != "acct_owner" {
		t.Fatalf("unexpected fee/destination: %+v", call.form)
	}
	if call.stripeAccount != "acct_owner" {
		t.Fatalf("expected call scoped to owner account, got %q", call.stripeAccount)
	}
}

func TestRouter_BalanceAndDelete(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(r, http.MethodGet, "/stripe/balance/acct_owner", "", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"amount":4200`) {
		t.Fatalf("unexpected balance response: %d %s", w.Code, w.Body.String())
	}

	w = serve(r, http.MethodDelete, "/stripe/delete-account/acct_owner", "", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"deleted":true`) {
		t.Fatalf("unexpected delete response: %d %s", w.Code, w.Body.String())
	}

	w = serve(r, http.MethodDelete, "/stripe/delete-account/acct_missing", "", nil)
	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), "No such account") {
		t.Fatalf("unexpected provider error response: %d %s", w.Code, w.Body.String())
	}
}

func TestRouter_Webhook(t *testing.T) {
	r, fake := newTestRouter(t)

	payload := fmt.Sprintf(`{"id":"evt_1","object":"event","api_version":%q,"type":"payment_intent.succeeded","data":{"object":{"id":"pi_paid","object":"payment_intent"}}}`, stripe.APIVersion)
	sign := func(body, secret string) string {
		return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
			Payload:   []byte(body),
			Secret:    secret,
			Timestamp: time.Now(),
		}).Header
	}

	t.Run("valid signature", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/stripe/webhook", payload, map[string]string{"Stripe-Signature": sign(payload, testWebhookSecret)})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true || body["payment_intent_id"] != "pi_paid" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("signature from another secret", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/stripe/webhook", payload, map[string]string{"Stripe-Signature": sign(payload, "whsec_other")})
		if w.Code != http.StatusBadRequest || !strings.HasPrefix(w.Body.String(), "Webhook Error:") {
			t.Fatalf("expected 400 webhook error, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("body changed after signing", func(t *testing.T) {
		header := sign(payload, testWebhookSecret)
		changed := strings.Replace(payload, "pi_paid", "pi_other", 1)
		w := serve(r, http.MethodPost, "/stripe/webhook", changed, map[string]string{"Stripe-Signature": header})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
		if strings.Contains(w.Body.String(), "pi_other") {
			t.Fatalf("unverified payload must not be inspected: %s", w.Body.String())
		}
	})

	t.Run("other event kind", func(t *testing.T) {
		other := fmt.Sprintf(`{"id":"evt_2","object":"event","api_version":%q,"type":"charge.refunded","data":{"object":{"id":"ch_1","object":"charge"}}}`, stripe.APIVersion)
		w := serve(r, http.MethodPost, "/stripe/webhook", other, map[string]string{"Stripe-Signature": sign(other, testWebhookSecret)})
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"received":true`) {
			t.Fatalf("expected acknowledgement, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("oversized body", func(t *testing.T) {
		big := strings.Repeat("x", 8<<20)
		w := serve(r, http.MethodPost, "/stripe/webhook", big, map[string]string{"Stripe-Signature": "t=1,v1=junk"})
		if w.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("expected 413, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.HasPrefix(w.Body.String(), "Webhook Error:") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	if calls := fake.calls(); len(calls) != 0 {
		t.Fatalf("webhook handling must not call the Stripe API, got %d calls", len(calls))
	}
}
