package cacheapi

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aegis-cache/timedmap/pkg/apierrors"
	"github.com/aegis-cache/timedmap/pkg/validator"
)

// HTTPHandler 实现 `/get` `/put` `/delete` `/touch` `/stats` HTTP/JSON 接口。
type HTTPHandler struct {
	store  Store
	limits Limits
}

// NewHTTPHandler 构造 HTTP handler。
func NewHTTPHandler(store Store, limits Limits) *HTTPHandler {
	if store == nil {
		panic("cache store is required")
	}
	return &HTTPHandler{store: store, limits: limits}
}

// Register 将 handler 注册到 mux。
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/get", h.handleGet)
	mux.HandleFunc("/put", h.handlePut)
	mux.HandleFunc("/delete", h.handleDelete)
	mux.HandleFunc("/touch", h.handleTouch)
	mux.HandleFunc("/stats", h.handleStats)
}

type getRequestBody struct {
	Key string `json:"key"`
}

type getResponseBody struct {
	Found bool   `json:"found"`
	Value string `json:"value,omitempty"`
}

type putRequestBody struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	Encoding string `json:"encoding"`
	TTL      string `json:"ttl"`
}

type putResponseBody struct {
	TTL string `json:"ttl"`
}

type deleteRequestBody struct {
	Key string `json:"key"`
}

type deleteResponseBody struct {
	Found bool   `json:"found"`
	Value string `json:"value,omitempty"`
}

type touchRequestBody struct {
	Key    string `json:"key"`
	TTL    string `json:"ttl"`
	Extend bool   `json:"extend"`
}

type touchResponseBody struct {
	OK bool `json:"ok"`
}

type statsResponseBody struct {
	Live int `json:"live"`
	Raw  int `json:"raw"`
}

type errorResponse struct {
	Code           string `json:"code"`
	Message        string `json:"message"`
	RetryAfterHint string `json:"retryAfterHint,omitempty"`
}

func (h *HTTPHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	var body getRequestBody
	if !h.decodeBody(w, r, &body) {
		return
	}
	if err := validator.ValidateKey(body.Key); err != nil {
		h.writeAPIError(w, apierrors.New(apierrors.CodeInvalidArgument, err.Error()))
		return
	}
	value, found := h.store.Get(body.Key)
	payload := getResponseBody{Found: found}
	if found {
		payload.Value = base64.StdEncoding.EncodeToString(value)
	}
	h.writeJSON(w, http.StatusOK, payload)
}

func (h *HTTPHandler) handlePut(w http.ResponseWriter, r *http.Request) {
	var body putRequestBody
	if !h.decodeBody(w, r, &body) {
		return
	}
	if err := validator.ValidateKey(body.Key); err != nil {
		h.writeAPIError(w, apierrors.New(apierrors.CodeInvalidArgument, err.Error()))
		return
	}
	encoding, err := validator.NormalizeEncoding(body.Encoding)
	if err != nil {
		h.writeAPIError(w, apierrors.New(apierrors.CodeInvalidArgument, err.Error()))
		return
	}
	decoded, err := validator.DecodeValue(body.Value, encoding, h.limits.MaxValueBytes)
	if err != nil {
		code := apierrors.CodeInvalidArgument
		if errors.Is(err, validator.ErrValueTooLarge) {
			code = apierrors.CodeValueTooLarge
		}
		h.writeAPIError(w, apierrors.New(code, err.Error()))
		return
	}
	ttl := h.limits.DefaultTTL
	if body.TTL != "" {
		ttl, err = validator.ParseTTL(body.TTL)
		if err != nil {
			h.writeAPIError(w, apierrors.New(apierrors.CodeInvalidArgument, err.Error()))
			return
		}
	}
	h.store.Set(body.Key, decoded, ttl)
	h.writeJSON(w, http.StatusOK, putResponseBody{TTL: ttl.String()})
}

func (h *HTTPHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	var body deleteRequestBody
	if !h.decodeBody(w, r, &body) {
		return
	}
	if err := validator.ValidateKey(body.Key); err != nil {
		h.writeAPIError(w, apierrors.New(apierrors.CodeInvalidArgument, err.Error()))
		return
	}
	value, found := h.store.Remove(body.Key)
	payload := deleteResponseBody{Found: found}
	if found {
		payload.Value = base64.StdEncoding.EncodeToString(value)
	}
	h.writeJSON(w, http.StatusOK, payload)
}

func (h *HTTPHandler) handleTouch(w http.ResponseWriter, r *http.Request) {
	var body touchRequestBody
	if !h.decodeBody(w, r, &body) {
		return
	}
	if err := validator.ValidateKey(body.Key); err != nil {
		h.writeAPIError(w, apierrors.New(apierrors.CodeInvalidArgument, err.Error()))
		return
	}
	ttl, err := validator.ParseTTL(body.TTL)
	if err != nil {
		h.writeAPIError(w, apierrors.New(apierrors.CodeInvalidArgument, err.Error()))
		return
	}
	var ok bool
	if body.Extend {
		ok = h.store.Extend(body.Key, ttl)
	} else {
		ok = h.store.Refresh(body.Key, ttl)
	}
	h.writeJSON(w, http.StatusOK, touchResponseBody{OK: ok})
}

func (h *HTTPHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		h.writeAPIError(w, apierrors.New(apierrors.CodeInvalidArgument, "GET or POST required"))
		return
	}
	h.writeJSON(w, http.StatusOK, statsResponseBody{
		Live: h.store.Len(),
		Raw:  h.store.RawLen(),
	})
}

func (h *HTTPHandler) decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	if r.Method != http.MethodPost {
		h.writeAPIError(w, apierrors.New(apierrors.CodeInvalidArgument, "POST required"))
		return false
	}
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(out); err != nil {
		h.writeAPIError(w, apierrors.New(apierrors.CodeInvalidArgument, "invalid JSON body"))
		return false
	}
	return true
}

func (h *HTTPHandler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (h *HTTPHandler) writeAPIError(w http.ResponseWriter, apiErr *apierrors.Error) {
	if apiErr == nil {
		apiErr = apierrors.New(apierrors.Code("INTERNAL_ERROR"), "internal error")
	}
	status := apierrors.HTTPStatus(apiErr.Code)
	if status == 0 {
		status = http.StatusInternalServerError
	}
	if apierrors.RequiresRetryAfter(apiErr.Code) {
		if hint := apiErr.RetryAfterHint(); hint != "" {
			w.Header().Set("Retry-After", hint)
		}
	}
	resp := errorResponse{
		Code:    string(apiErr.Code),
		Message: apiErr.Error(),
	}
	if hint := apiErr.RetryAfterHint(); hint != "" {
		resp.RetryAfterHint = hint
	}
	h.writeJSON(w, status, resp)
}
