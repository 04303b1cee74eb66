package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lequochuy12012k4/ChillingCoffee/identity"
)

func TestDecodeList(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantLen int
		wantErr bool
	}{
		{"bare array", `[{"a":1},{"a":2}]`, 2, false},
		{"enveloped list", `{"result":[{"a":1}],"meta":{"total":1}}`, 1, false},
		{"empty bare array", `[]`, 0, false},
		{"empty envelope", `{"result":[]}`, 0, false},
		{"envelope without result", `{"meta":{}}`, 0, false},
		{"not a list at all", `"nope"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeList([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestListMenuItems_AcceptsBothShapes(t *testing.T) {
	for _, shape := range []string{
		`[{"item_id":"m1","title":"Matcha Latte","category":"drink"}]`,
		`{"result":[{"item_id":"m1","title":"Matcha Latte","category":"drink"}]}`,
	} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/menu.items", r.URL.Path)
			assert.Equal(t, "drink", r.URL.Query().Get("category"))
			w.Write([]byte(shape))
		}))

		items, err := New(srv.URL).ListMenuItems(context.Background(), "drink")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Matcha Latte", items[0].Title)

		srv.Close()
	}
}

func TestResolveUserID_DirectIdMakesNoLookup(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{"result":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	got := c.ResolveUserID(context.Background(),
		&identity.LocalSession{UserID: "u7"},
		&identity.ProviderSession{Email: "someone@example.com"})

	assert.Equal(t, "u7", got)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestResolveUserID_EmailLookup(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "alice@example.com", r.URL.Query().Get("email"))
		assert.Equal(t, "1", r.URL.Query().Get("current"))
		assert.Equal(t, "1", r.URL.Query().Get("pageSize"))
		w.Write([]byte(`{"result":[{"user_id":"u1","name":"Alice","email":"alice@example.com"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	got := c.ResolveUserID(context.Background(), nil,
		&identity.ProviderSession{Email: "alice@example.com"})

	assert.Equal(t, "u1", got)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "exactly one lookup call expected")
}

func TestResolveUserID_NoMatchStaysUnresolved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":[]}`))
	}))
	defer srv.Close()

	got := New(srv.URL).ResolveUserID(context.Background(), nil,
		&identity.ProviderSession{Email: "nobody@example.com"})

	assert.Equal(t, "", got)
}

func TestResolveUserID_ServerErrorIsSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	got := New(srv.URL).ResolveUserID(context.Background(), nil,
		&identity.ProviderSession{Email: "alice@example.com"})

	assert.Equal(t, "", got)
}

func TestReviewProductTitle(t *testing.T) {
	tests := []struct {
		name   string
		review Review
		want   string
	}{
		{"catalog item title wins", Review{MenuItem: &ReviewItem{ItemID: "m1", Title: "Tiramisu"}, ProductText: "ignored"}, "Tiramisu"},
		{"free text when no item", Review{ProductText: "Secret Menu Mocha"}, "Secret Menu Mocha"},
		{"dangling item with no text", Review{MenuItem: &ReviewItem{ItemID: "gone"}}, identity.GeneralFeedbackTitle},
		{"neither set", Review{}, identity.GeneralFeedbackTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.review.ProductTitle())
		})
	}
}

func TestReviewerName(t *testing.T) {
	assert.Equal(t, "Alice", Review{User: &ReviewUser{Name: "Alice"}}.ReviewerName())
	assert.Equal(t, "a@b.c", Review{User: &ReviewUser{Email: "a@b.c"}}.ReviewerName())
	assert.Equal(t, "Anonymous", Review{}.ReviewerName())
}

func TestCreateReview_SendsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/reviews", r.URL.Path)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "u1", payload["user"])
		assert.Equal(t, "m1", payload["menuItem"])
		assert.Equal(t, float64(4), payload["rating"])
		_, hasText := payload["productText"]
		assert.False(t, hasText, "empty productText must be omitted")

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	err := New(srv.URL).CreateReview(context.Background(), ReviewInput{
		User:     "u1",
		MenuItem: "m1",
		Rating:   4,
		Comment:  "great",
	})
	require.NoError(t, err)
}

func TestUploadImage_AbsolutizesRelativePath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "photo.png", header.Filename)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"url":"/uploads/abc123.png"}`))
	}))
	defer srv.Close()

	got, err := New(srv.URL).UploadImage(context.Background(), "photo.png", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/uploads/abc123.png", got)
}

func TestCharityInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/charity", r.URL.Path)
		w.Write([]byte(`{"bank":"970422","account":"123","qr_url":"https://img.vietqr.io/image/970422-123-compact2.png"}`))
	}))
	defer srv.Close()

	info, err := New(srv.URL).CharityInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "970422", info.Bank)
	assert.Contains(t, info.QRUrl, "img.vietqr.io")
}
