package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON(struct {
			A int `json:"a"`
		}{A: 1})
	})

	expected := "{\n  \"a\": 1\n}\n"
	if out != expected {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}

func TestTransferCmdPostsRequest(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/accounts/transfer" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"OK"}`))
	}))
	defer server.Close()

	baseURL = server.URL
	timeout = 5 * time.Second

	cmd := transferCmd()
	cmd.SetArgs([]string{"--from", "1", "--to", "2", "--amount", "100"})

	out := captureOutput(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Errorf("command failed: %v", err)
		}
	})

	if received["originAccountId"] != float64(1) || received["destinationAccountId"] != float64(2) {
		t.Fatalf("unexpected payload %+v", received)
	}
	if received["bankId"] != float64(1) {
		t.Fatalf("expected default bank 1, got %v", received["bankId"])
	}

	if !bytes.Contains([]byte(out), []byte(`"OK"`)) {
		t.Fatalf("expected OK in output, got %q", out)
	}
}

func TestDoRequestErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"not enough money in the account"}`))
	}))
	defer server.Close()

	baseURL = server.URL
	timeout = 5 * time.Second

	if err := doRequest(http.MethodPost, "/api/accounts/transfer", []byte(`{}`)); err == nil {
		t.Fatal("expected error for 400 response")
	}
}
