package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// pathInt binds the named chi path parameter to an int the same way
// oapi-codegen generated servers do.
func pathInt(r *http.Request, name string) (int, error) {
	var v int
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &v,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, fmt.Errorf("invalid path parameter %s", name)
	}
	return v, nil
}

// paymentDateLayouts are tried in order when parsing a payment date.
var paymentDateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

var errPaymentDate = errors.New("paymentDate must be an RFC 3339 timestamp or a YYYY-MM-DD date")

// paymentDate reads the optional payment date from the query string, falling
// back to a JSON body {"paymentDate": "..."}. Absent everywhere means unpaid.
// A body over the size limit yields an error wrapping *http.MaxBytesError.
func paymentDate(r *http.Request) (*time.Time, error) {
	if raw := r.URL.Query().Get("paymentDate"); raw != "" {
		return parsePaymentDate(raw)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("request body could not be read: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var req struct {
		PaymentDate *string `json:"paymentDate"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, errors.New("request body must be a JSON object")
	}
	if req.PaymentDate == nil || strings.TrimSpace(*req.PaymentDate) == "" {
		return nil, nil
	}
	return parsePaymentDate(*req.PaymentDate)
}

func parsePaymentDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range paymentDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, errPaymentDate
}
