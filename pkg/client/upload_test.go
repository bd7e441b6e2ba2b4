package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUploadImage(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/upload" {
			t.Errorf("got %s %s, want POST /upload", r.Method, r.URL.Path)
		}
		file, header, err := r.FormFile("image")
		if err != nil {
			t.Fatalf("FormFile(image): %v", err)
		}
		defer file.Close()
		if header.Filename != "logo.png" {
			t.Errorf("filename = %q, want logo.png", header.Filename)
		}
		data, err := io.ReadAll(file)
		if err != nil {
			t.Fatalf("read part: %v", err)
		}
		if len(data) != len(payload) {
			t.Errorf("part size = %d, want %d", len(data), len(payload))
		}
		w.Write([]byte(`{"url":"https://cdn.example.com/logo.png"}`))
	}))
	defer srv.Close()

	url, err := newTestClient(srv, "tok").UploadImage(context.Background(), "logo.png", payload)
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}
	if url != "https://cdn.example.com/logo.png" {
		t.Errorf("url = %q, want https://cdn.example.com/logo.png", url)
	}
}

func TestUploadImageServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		w.Write([]byte(`{"error":"file too large"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv, "tok").UploadImage(context.Background(), "big.png", []byte("x"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsStatus(err, http.StatusRequestEntityTooLarge) {
		t.Errorf("IsStatus(err, 413) = false, err = %v", err)
	}
	if got := Message(err); got != "file too large" {
		t.Errorf("Message(err) = %q, want %q", got, "file too large")
	}
}

func TestUploadImageMissingURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv, "tok").UploadImage(context.Background(), "a.png", []byte("x")); err == nil {
		t.Fatal("expected error for response missing url, got nil")
	}
}
