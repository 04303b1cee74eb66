package identity

import (
	"context"
	"errors"
	"testing"
)

func TestResolveUserID(t *testing.T) {
	directory := map[string]string{"alice@example.com": "u1"}

	tests := []struct {
		name        string
		local       *LocalSession
		provider    *ProviderSession
		want        string
		wantLookups int
	}{
		{"local id short-circuits", &LocalSession{UserID: "u9"}, &ProviderSession{Email: "alice@example.com"}, "u9", 0},
		{"email resolves via one lookup", nil, &ProviderSession{Email: "alice@example.com"}, "u1", 1},
		{"email with no match stays unresolved", nil, &ProviderSession{Email: "bob@example.com"}, "", 1},
		{"empty local falls through to email", &LocalSession{}, &ProviderSession{Email: "alice@example.com"}, "u1", 1},
		{"no session at all", nil, nil, "", 0},
		{"provider without email", nil, &ProviderSession{}, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookups := 0
			lookup := func(ctx context.Context, email string) (string, error) {
				lookups++
				id, ok := directory[email]
				if !ok {
					return "", errors.New("no user for email")
				}
				return id, nil
			}

			got := ResolveUserID(context.Background(), tt.local, tt.provider, lookup)
			if got != tt.want {
				t.Errorf("ResolveUserID() = %q, want %q", got, tt.want)
			}
			if lookups != tt.wantLookups {
				t.Errorf("lookup called %d times, want %d", lookups, tt.wantLookups)
			}
		})
	}
}

func TestResolveUserID_LookupErrorIsSwallowed(t *testing.T) {
	lookup := func(ctx context.Context, email string) (string, error) {
		return "", errors.New("network down")
	}
	got := ResolveUserID(context.Background(), nil, &ProviderSession{Email: "a@b.c"}, lookup)
	if got != "" {
		t.Errorf("ResolveUserID() = %q, want unresolved", got)
	}
}

func TestResolveUserID_NilLookup(t *testing.T) {
	got := ResolveUserID(context.Background(), nil, &ProviderSession{Email: "a@b.c"}, nil)
	if got != "" {
		t.Errorf("ResolveUserID() = %q, want unresolved", got)
	}
}

func TestNewProductRef(t *testing.T) {
	tests := []struct {
		name       string
		menuItemID string
		freeText   string
		want       ProductRef
	}{
		{"catalog id wins over free text", "m1", "ignored", ProductRef{Kind: ProductCatalog, ItemID: "m1"}},
		{"free text when no id", "", "Iced Latte", ProductRef{Kind: ProductFreeText, Text: "Iced Latte"}},
		{"neither means general feedback", "", "", ProductRef{Kind: ProductNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewProductRef(tt.menuItemID, tt.freeText); got != tt.want {
				t.Errorf("NewProductRef(%q, %q) = %+v, want %+v", tt.menuItemID, tt.freeText, got, tt.want)
			}
		})
	}
}

func TestProductRefDisplayTitle(t *testing.T) {
	titles := map[string]string{"m1": "Matcha Cake"}
	titleByID := func(id string) (string, bool) {
		title, ok := titles[id]
		return title, ok
	}

	tests := []struct {
		name string
		ref  ProductRef
		want string
	}{
		{"catalog ref resolves title", NewProductRef("m1", ""), "Matcha Cake"},
		{"dangling catalog ref degrades", NewProductRef("gone", ""), GeneralFeedbackTitle},
		{"free text shown as-is", NewProductRef("", "Honey Bread"), "Honey Bread"},
		{"none falls back", NewProductRef("", ""), GeneralFeedbackTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ref.DisplayTitle(titleByID); got != tt.want {
				t.Errorf("DisplayTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProductRefDisplayTitle_NilResolver(t *testing.T) {
	if got := NewProductRef("m1", "").DisplayTitle(nil); got != GeneralFeedbackTitle {
		t.Errorf("DisplayTitle(nil) = %q, want %q", got, GeneralFeedbackTitle)
	}
}
