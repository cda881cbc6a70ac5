package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
)

// RecordedPost is a room notification received by the fake API.
type RecordedPost struct {
	RequestURI     string
	ConversationID string
	AuthToken      string
	ContentType    string
	Form           url.Values
}

// StrideServer is an in-memory Stride API covering token, conversation and room endpoints.
type StrideServer struct {
	*httptest.Server

	// Token is returned by the token endpoint; empty omits access_token.
	Token string
	// TokenStatus overrides the token endpoint status when non-zero.
	TokenStatus int
	// Conversations is served by the listing endpoint as {"values": [...]}.
	Conversations []map[string]string
	// ConversationStatus overrides the listing status when non-zero.
	ConversationStatus int
	// FailConversations answers posts to these ids with 500.
	FailConversations map[string]bool
	// DropConversations closes the connection of posts to these ids without answering.
	DropConversations map[string]bool

	mu          sync.Mutex
	tokenForms  []url.Values
	authHeaders []string
	posts       []RecordedPost
}

// NewStrideServer starts a fake API and closes it when the test ends.
func NewStrideServer(t *testing.T) *StrideServer {
	s := &StrideServer{
		Token:             "T",
		FailConversations: map[string]bool{},
		DropConversations: map[string]bool{},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// TokenURL is the token endpoint of the fake API.
func (s *StrideServer) TokenURL() string {
	return s.URL + "/oauth/token"
}

// TokenRequests returns the forms posted to the token endpoint.
func (s *StrideServer) TokenRequests() []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]url.Values(nil), s.tokenForms...)
}

// AuthorizationHeaders returns the authorization headers sent to the listing endpoint.
func (s *StrideServer) AuthorizationHeaders() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.authHeaders...)
}

// Posts returns the room notifications received so far.
func (s *StrideServer) Posts() []RecordedPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedPost(nil), s.posts...)
}

func (s *StrideServer) serve(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/oauth/token":
		s.serveToken(w, r)
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/site/") && strings.HasSuffix(r.URL.Path, "/conversation"):
		s.serveConversations(w, r)
	case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/v2/room/") && strings.HasSuffix(r.URL.Path, "/notification"):
		s.serveNotification(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (s *StrideServer) serveToken(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	s.mu.Lock()
	s.tokenForms = append(s.tokenForms, r.PostForm)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if s.TokenStatus != 0 {
		w.WriteHeader(s.TokenStatus)
		_, _ = w.Write([]byte(`{"error":"access_denied","error_description":"Unauthorized"}`))
		return
	}

	body := map[string]interface{}{"token_type": "Bearer", "expires_in": 3600}
	if s.Token != "" {
		body["access_token"] = s.Token
	}
	_ = json.NewEncoder(w).Encode(body)
}

func (s *StrideServer) serveConversations(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.authHeaders = append(s.authHeaders, r.Header.Get("Authorization"))
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if s.ConversationStatus != 0 {
		w.WriteHeader(s.ConversationStatus)
		_, _ = w.Write([]byte(`{"message":"forbidden"}`))
		return
	}
	values := s.Conversations
	if values == nil {
		values = []map[string]string{}
	}
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"values": values})
}

func (s *StrideServer) serveNotification(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/v2/room/"), "/notification")

	s.mu.Lock()
	s.posts = append(s.posts, RecordedPost{
		RequestURI:     r.RequestURI,
		ConversationID: id,
		AuthToken:      r.URL.Query().Get("auth_token"),
		ContentType:    r.Header.Get("Content-Type"),
		Form:           r.PostForm,
	})
	fail := s.FailConversations[id]
	drop := s.DropConversations[id]
	s.mu.Unlock()

	if drop {
		if hijacker, ok := w.(http.Hijacker); ok {
			if conn, _, err := hijacker.Hijack(); err == nil {
				_ = conn.Close()
				return
			}
		}
		panic(http.ErrAbortHandler)
	}

	if fail {
		http.Error(w, `{"error":"room unavailable"}`, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
