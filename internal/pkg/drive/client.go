package drive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/FelixBrandt/Foliogram/internal/pkg/gallery"
)

const defaultBaseURL = "https://www.googleapis.com/drive/v3"

// listFields is the exact field set requested from the files API.
const listFields = "nextPageToken,files(id,name,mimeType,createdTime,modifiedTime,size,thumbnailLink,webContentLink,webViewLink)"

// Client is a read-only Google Drive files API client authenticated with an
// API key. It performs no retries; failures propagate to the caller.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// NewClient creates a Drive client. An empty API key yields a client whose
// queries fail; callers should not construct one without a key.
func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
	}
}

// WithBaseURL overrides the API endpoint. Used by tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

type listResponse struct {
	Files         []gallery.File `json:"files"`
	NextPageToken string         `json:"nextPageToken"`
}

// ListImages returns all child items of the folder whose content type marks
// them as images, ordered by creation time descending. Folders larger than
// one API page are followed through their page tokens.
func (c *Client) ListImages(ctx context.Context, folderID string) ([]gallery.File, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("google drive api key not provided")
	}

	query := fmt.Sprintf("'%s' in parents and mimeType contains 'image/'", folderID)

	var files []gallery.File
	pageToken := ""
	for {
		page, err := c.listPage(ctx, query, pageToken)
		if err != nil {
			return nil, err
		}
		files = append(files, page.Files...)
		if page.NextPageToken == "" {
			return files, nil
		}
		pageToken = page.NextPageToken
	}
}

// listPage fetches one page of the files listing.
func (c *Client) listPage(ctx context.Context, query, pageToken string) (*listResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("fields", listFields)
	params.Set("key", c.apiKey)
	params.Set("orderBy", "createdTime desc")
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	endpoint := fmt.Sprintf("%s/files?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build drive request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("drive request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google drive api error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var list listResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode drive response: %w", err)
	}

	return &list, nil
}
