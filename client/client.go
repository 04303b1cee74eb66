// Package client is the Go consumer of the REST API, mirroring what the
// storefront pages fetch: menu items, reviews, users, uploads, and the
// charity parameters. List responses are decoded defensively, accepting both
// a bare array and the {"result": [...]} envelope.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/lequochuy12012k4/ChillingCoffee/identity"
)

const apiPrefix = "/api/v1"

type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   http.DefaultClient,
	}
}

// NewWithHTTPClient allows injecting a custom transport.
func NewWithHTTPClient(baseURL string, httpc *http.Client) *Client {
	c := New(baseURL)
	c.httpc = httpc
	return c
}

// AbsoluteURL turns a server-relative path (such as an upload path) into an
// absolute URL against the configured base.
func (c *Client) AbsoluteURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.baseURL + path
}

type User struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type MenuItem struct {
	ItemID    string `json:"item_id"`
	Title     string `json:"title"`
	BasePrice string `json:"base_price"`
	Image     string `json:"image"`
	Category  string `json:"category"`
}

type ReviewUser struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type ReviewItem struct {
	ItemID string `json:"item_id"`
	Title  string `json:"title"`
}

type Review struct {
	ReviewID    string      `json:"review_id"`
	User        *ReviewUser `json:"user"`
	MenuItem    *ReviewItem `json:"menuItem"`
	ProductText string      `json:"productText"`
	Rating      int         `json:"rating"`
	Image       string      `json:"image"`
	Comment     string      `json:"comment"`
}

// ProductTitle is the display identity of the reviewed product, falling back
// to general feedback when no catalog title or free text survives.
func (r Review) ProductTitle() string {
	if r.MenuItem != nil && r.MenuItem.Title != "" {
		return r.MenuItem.Title
	}
	if r.ProductText != "" {
		return r.ProductText
	}
	return identity.GeneralFeedbackTitle
}

// ReviewerName is the display name of the submitter.
func (r Review) ReviewerName() string {
	if r.User != nil {
		if r.User.Name != "" {
			return r.User.Name
		}
		if r.User.Email != "" {
			return r.User.Email
		}
	}
	return "Anonymous"
}

type ReviewInput struct {
	User        string `json:"user"`
	MenuItem    string `json:"menuItem,omitempty"`
	ProductText string `json:"productText,omitempty"`
	Rating      int    `json:"rating"`
	Image       string `json:"image,omitempty"`
	Comment     string `json:"comment,omitempty"`
}

type CharityInfo struct {
	Bank        string `json:"bank"`
	Account     string `json:"account"`
	AccountName string `json:"account_name"`
	Template    string `json:"template"`
	Description string `json:"description"`
	QRUrl       string `json:"qr_url"`
}

// decodeList accepts either a bare JSON array or the {"result": [...]}
// envelope and returns the raw elements.
func decodeList(body []byte) ([]json.RawMessage, error) {
	var bare []json.RawMessage
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}

	var enveloped struct {
		Result []json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &enveloped); err != nil {
		return nil, fmt.Errorf("response is neither a list nor an envelope: %w", err)
	}
	return enveloped.Result, nil
}

func (c *Client) getList(ctx context.Context, path string, query url.Values) ([]json.RawMessage, error) {
	u := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return decodeList(body)
}

// ListUsers queries the user list, optionally filtered by exact email.
func (c *Client) ListUsers(ctx context.Context, email string, current, pageSize int) ([]User, error) {
	query := url.Values{}
	if email != "" {
		query.Set("email", email)
	}
	if current > 0 {
		query.Set("current", strconv.Itoa(current))
	}
	if pageSize > 0 {
		query.Set("pageSize", strconv.Itoa(pageSize))
	}

	raw, err := c.getList(ctx, "/users", query)
	if err != nil {
		return nil, err
	}

	users := make([]User, 0, len(raw))
	for _, msg := range raw {
		var user User
		if err := json.Unmarshal(msg, &user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// ListMenuItems fetches the product grid, optionally for one category.
func (c *Client) ListMenuItems(ctx context.Context, category string) ([]MenuItem, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}

	raw, err := c.getList(ctx, "/menu.items", query)
	if err != nil {
		return nil, err
	}

	items := make([]MenuItem, 0, len(raw))
	for _, msg := range raw {
		var item MenuItem
		if err := json.Unmarshal(msg, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// ListReviews fetches reviews, optionally for one menu item.
func (c *Client) ListReviews(ctx context.Context, menuItemID string) ([]Review, error) {
	query := url.Values{}
	if menuItemID != "" {
		query.Set("menuItem", menuItemID)
	}

	raw, err := c.getList(ctx, "/reviews", query)
	if err != nil {
		return nil, err
	}

	reviews := make([]Review, 0, len(raw))
	for _, msg := range raw {
		var review Review
		if err := json.Unmarshal(msg, &review); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}

// CreateReview submits feedback. The caller resolves the user id first, via
// ResolveUserID.
func (c *Client) CreateReview(ctx context.Context, input ReviewInput) error {
	payload, err := json.Marshal(input)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+apiPrefix+"/reviews", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("submit failed with status %d", resp.StatusCode)
	}
	return nil
}

// UploadImage sends one file to the uploads endpoint and returns the absolute
// URL of the stored image.
func (c *Client) UploadImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+apiPrefix+"/uploads", body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("upload failed with status %d", resp.StatusCode)
	}

	var result struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.URL == "" {
		return "", fmt.Errorf("upload response carried no url")
	}
	return c.AbsoluteURL(result.URL), nil
}

// CharityInfo fetches the donation QR parameters for the charity page.
func (c *Client) CharityInfo(ctx context.Context) (CharityInfo, error) {
	var info CharityInfo

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+apiPrefix+"/charity", nil)
	if err != nil {
		return info, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return info, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return info, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	err = json.NewDecoder(resp.Body).Decode(&info)
	return info, err
}

// ResolveUserID reconciles the two session shapes into a backend user id.
// The lookup hits the public user list filtered by email, requesting a single
// result; a failed lookup leaves the id unresolved rather than erroring, so
// submission simply stays disabled.
func (c *Client) ResolveUserID(ctx context.Context, local *identity.LocalSession, provider *identity.ProviderSession) string {
	return identity.ResolveUserID(ctx, local, provider, func(ctx context.Context, email string) (string, error) {
		users, err := c.ListUsers(ctx, email, 1, 1)
		if err != nil {
			return "", err
		}
		if len(users) == 0 || users[0].UserID == "" {
			return "", fmt.Errorf("no user for email")
		}
		return users[0].UserID, nil
	})
}
