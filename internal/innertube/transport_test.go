package innertube

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestTransport(handler http.HandlerFunc) (*Transport, *httptest.Server) {
	srv := httptest.NewServer(handler)
	tr := NewTransport(TransportConfig{
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL,
		RateLimit:  1000,
	})
	return tr, srv
}

func TestBrowseRejectsEmptyTarget(t *testing.T) {
	tr := NewTransport(TransportConfig{HTTPClient: http.DefaultClient})
	_, err := tr.Browse(context.Background(), WebClient, "", "")
	if !errors.Is(err, ErrNoBrowseTarget) {
		t.Fatalf("err = %v, want ErrNoBrowseTarget", err)
	}
}

func TestPlayerDecodesResponse(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	tr, srv := newTestTransport(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"videoDetails":{"videoId":"jNQXAC9IVRw","title":"Me at the zoo"}}`))
	})
	defer srv.Close()

	resp, err := tr.Player(context.Background(), AndroidClient, "jNQXAC9IVRw")
	if err != nil {
		t.Fatal(err)
	}
	if gotPath != "/youtubei/v1/player" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotBody["videoId"] != "jNQXAC9IVRw" {
		t.Fatalf("request videoId = %v", gotBody["videoId"])
	}
	if resp.VideoDetails.Title != "Me at the zoo" {
		t.Fatalf("title = %q", resp.VideoDetails.Title)
	}
}

func TestPostSurfacesTransportErrorOnStatus(t *testing.T) {
	tr, srv := newTestTransport(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	defer srv.Close()

	_, err := tr.Search(context.Background(), WebClient, "q")
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("err = %v, want TransportError", err)
	}
	if te.StatusCode != http.StatusServiceUnavailable || te.Endpoint != "search" {
		t.Fatalf("unexpected error detail: %+v", te)
	}
}

func TestPostSurfacesRemoteErrorPayload(t *testing.T) {
	tr, srv := newTestTransport(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"Request contains an invalid argument.","status":"INVALID_ARGUMENT"}}`))
	})
	defer srv.Close()

	_, err := tr.Browse(context.Background(), WebClient, "VLPLxyz", "")
	var re *RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("err = %v, want RemoteError", err)
	}
	if re.Code != 400 || re.Message == "" {
		t.Fatalf("unexpected remote error: %+v", re)
	}
}

func TestPostSurfacesDecodeError(t *testing.T) {
	tr, srv := newTestTransport(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})
	defer srv.Close()

	_, err := tr.Search(context.Background(), WebClient, "q")
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want DecodeError", err)
	}
}

func TestGetReturnsBody(t *testing.T) {
	tr, srv := newTestTransport(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("missing user agent")
		}
		w.Write([]byte("payload"))
	})
	defer srv.Close()

	body, err := tr.Get(context.Background(), srv.URL+"/doc", BrowserHeaders())
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != "payload" {
		t.Fatalf("body = %q", body)
	}
}

func TestGetStatusError(t *testing.T) {
	tr, srv := newTestTransport(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	defer srv.Close()

	_, err := tr.Get(context.Background(), srv.URL+"/doc", nil)
	var te *TransportError
	if !errors.As(err, &te) || te.StatusCode != http.StatusForbidden {
		t.Fatalf("err = %v, want 403 TransportError", err)
	}
}
