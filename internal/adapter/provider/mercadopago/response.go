package mercadopago

import "strconv"

// PaymentDetail is the processor's authoritative view of one payment.
// Status carries the processor's own vocabulary (approved, rejected,
// pending, in_process, in_mediation, cancelled, refunded, charged_back);
// mapping to internal payment status happens in the payment service.
type PaymentDetail struct {
	ID                string
	Status            string
	StatusDetail      string
	ExternalReference string
	TransactionAmount float64
	CurrencyID        string
}

// PreferenceRequest describes a hosted checkout session to create.
type PreferenceRequest struct {
	ExternalReference string
	Items             []PreferenceItem
	PayerEmail        string
	SuccessURL        string
	FailureURL        string
}

// PreferenceItem is one line of a checkout preference. UnitPrice is in major
// currency units, as the API expects.
type PreferenceItem struct {
	Title      string
	Quantity   int
	UnitPrice  float64
	CurrencyID string
}

// Preference is a created hosted checkout session.
type Preference struct {
	ID        string
	InitPoint string
}

// ---------------------------------------------------------------------------
// Wire types
// ---------------------------------------------------------------------------

type apiPayment struct {
	ID                int64   `json:"id"`
	Status            string  `json:"status"`
	StatusDetail      string  `json:"status_detail"`
	ExternalReference string  `json:"external_reference"`
	TransactionAmount float64 `json:"transaction_amount"`
	CurrencyID        string  `json:"currency_id"`
}

func (p apiPayment) toDetail() *PaymentDetail {
	return &PaymentDetail{
		ID:                formatID(p.ID),
		Status:            p.Status,
		StatusDetail:      p.StatusDetail,
		ExternalReference: p.ExternalReference,
		TransactionAmount: p.TransactionAmount,
		CurrencyID:        p.CurrencyID,
	}
}

type apiPreferenceItem struct {
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	CurrencyID string  `json:"currency_id,omitempty"`
}

type apiBackURLs struct {
	Success string `json:"success,omitempty"`
	Failure string `json:"failure,omitempty"`
}

type apiPayer struct {
	Email string `json:"email,omitempty"`
}

type apiPreferenceRequest struct {
	ExternalReference string              `json:"external_reference"`
	Items             []apiPreferenceItem `json:"items"`
	Payer             *apiPayer           `json:"payer,omitempty"`
	BackURLs          *apiBackURLs        `json:"back_urls,omitempty"`
}

type apiPreferenceResponse struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

func newAPIPreference(pref PreferenceRequest) apiPreferenceRequest {
	req := apiPreferenceRequest{ExternalReference: pref.ExternalReference}
	for _, it := range pref.Items {
		req.Items = append(req.Items, apiPreferenceItem{
			Title:      it.Title,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			CurrencyID: it.CurrencyID,
		})
	}
	if pref.PayerEmail != "" {
		req.Payer = &apiPayer{Email: pref.PayerEmail}
	}
	if pref.SuccessURL != "" || pref.FailureURL != "" {
		req.BackURLs = &apiBackURLs{Success: pref.SuccessURL, Failure: pref.FailureURL}
	}
	return req
}

func formatID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}
