package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

func newTestHandler() *GeneratorHandler {
	return NewGeneratorHandler(service.NewGeneratorService(crypto.NewGenerator(), 0))
}

func TestHandleGenerate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantLen    int
	}{
		{name: "empty body uses medium", body: "", wantStatus: http.StatusOK, wantLen: 12},
		{name: "easy", body: `{"complexity":"easy"}`, wantStatus: http.StatusOK, wantLen: 8},
		{name: "hard with length", body: `{"complexity":"hard","length":20}`, wantStatus: http.StatusOK, wantLen: 20},
		{name: "custom", body: `{"complexity":"custom","length":16,"uppercase":false,"numbers":true,"special":true}`, wantStatus: http.StatusOK, wantLen: 16},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.HandleGenerate(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}

			var resp model.GenerateResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if !resp.Success {
				t.Error("expected success=true")
			}
			if len(resp.Password) != tt.wantLen || resp.Length != tt.wantLen {
				t.Errorf("password length = %d (reported %d), want %d", len(resp.Password), resp.Length, tt.wantLen)
			}
		})
	}
}

func TestHandleGenerateErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{name: "malformed json", body: `{"complexity":`, wantStatus: http.StatusBadRequest, wantError: "invalid request body"},
		{name: "unknown tier", body: `{"complexity":"extreme"}`, wantStatus: http.StatusBadRequest, wantError: "unknown complexity tier"},
		{name: "zero length", body: `{"complexity":"medium","length":0}`, wantStatus: http.StatusBadRequest, wantError: crypto.ErrInvalidLength.Error()},
		{name: "string length", body: `{"complexity":"medium","length":"abc"}`, wantStatus: http.StatusBadRequest, wantError: crypto.ErrInvalidLength.Error()},
		{name: "custom too long", body: `{"complexity":"custom","length":129}`, wantStatus: http.StatusBadRequest, wantError: crypto.ErrLengthTooLong.Error()},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.HandleGenerate(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var resp model.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Success {
				t.Error("expected success=false")
			}
			if !strings.Contains(resp.Error, tt.wantError) {
				t.Errorf("error = %q, want it to contain %q", resp.Error, tt.wantError)
			}
		})
	}
}

func TestHandleGenerateBodyTooLarge(t *testing.T) {
	body := `{"complexity":"` + strings.Repeat("a", 2<<20) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newTestHandler().HandleGenerate(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusRequestEntityTooLarge)
	}
}

func TestHandleBatchGenerate(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/batch-generate", strings.NewReader(`{"complexity":"easy","count":5}`))
	rec := httptest.NewRecorder()

	newTestHandler().HandleBatchGenerate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp model.BatchGenerateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if len(resp.Passwords) != 5 {
		t.Fatalf("got %d passwords, want 5", len(resp.Passwords))
	}
	for _, pw := range resp.Passwords {
		if len(pw) != 8 {
			t.Errorf("password %q length = %d, want 8", pw, len(pw))
		}
	}
}

func TestHandleBatchGenerateInvalidCount(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/batch-generate", strings.NewReader(`{"count":-1}`))
	rec := httptest.NewRecorder()

	newTestHandler().HandleBatchGenerate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rec.Body.String(), `"success":false`) {
		t.Errorf("body = %s, want success=false", rec.Body.String())
	}
}

func TestHandleTiers(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/complexities", nil)
	rec := httptest.NewRecorder()

	newTestHandler().HandleTiers(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp model.TiersResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Tiers) == 0 {
		t.Fatal("expected at least one tier")
	}
}

func TestHandleBatchGenerateWholeFloatCount(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/batch-generate", strings.NewReader(`{"complexity":"medium","count":5.0,"length":9.0}`))
	rec := httptest.NewRecorder()

	newTestHandler().HandleBatchGenerate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp model.BatchGenerateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Passwords) != 5 {
		t.Fatalf("got %d passwords, want 5", len(resp.Passwords))
	}
	for _, pw := range resp.Passwords {
		if len(pw) != 9 {
			t.Errorf("password %q length = %d, want 9", pw, len(pw))
		}
	}
}
