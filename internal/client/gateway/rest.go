package gateway

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
	"time"

	"github.com/dmitrijs2005/mediavault/internal/client/models"
	"github.com/dmitrijs2005/mediavault/internal/common"
)

// REST talks to the flat-JSON REST backend.
type REST struct {
	base  *url.URL
	owner Owner
	httpc *http.Client
}

// NewREST builds a REST gateway rooted at baseURL. The timeout bounds every
// request; uploads are the only long-latency call and stay cancellable via
// the per-call context.
func NewREST(baseURL string, owner Owner, timeout time.Duration) (*REST, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	return &REST{
		base:  base,
		owner: owner,
		httpc: &http.Client{Timeout: timeout},
	}, nil
}

// restItem is the wire shape of the REST backend. Several fields exist in two
// historical spellings (liked vs isFavorite); normalization accepts both.
type restItem struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Type       string            `json:"type"`
	URL        string            `json:"url"`
	CoverURL   string            `json:"coverUrl"`
	Size       *int64            `json:"size"`
	MimeType   string            `json:"mimeType"`
	ParentID   string            `json:"parentId"`
	IsFavorite bool              `json:"isFavorite"`
	Liked      bool              `json:"liked"`
	IsDeleted  bool              `json:"isDeleted"`
	IsPublic   bool              `json:"isPublic"`
	IsShared   bool              `json:"isShared"`
	CreatedAt  string            `json:"createdAt"`
	UpdatedAt  string            `json:"updatedAt"`
	PhotoMeta  *models.PhotoMeta `json:"photoMeta"`
	VideoMeta  *models.VideoMeta `json:"videoMeta"`
}

// canonical converts one wire item into the canonical shape. This is the only
// place REST fields are interpreted; every gateway method goes through it.
// Missing optional fields default deterministically: size 0, mime type "".
func (g *REST) canonical(w restItem) models.StorageItem {
	item := models.StorageItem{
		ID:         w.ID,
		Name:       w.Name,
		Kind:       models.ItemKindMedia,
		MimeType:   w.MimeType,
		IsFavorite: w.IsFavorite || w.Liked,
		IsDeleted:  w.IsDeleted,
		IsPublic:   w.IsPublic,
		IsShared:   w.IsShared,
		ParentID:   w.ParentID,
		URI:        resolveRef(g.base, w.URL),
		CoverURL:   resolveRef(g.base, w.CoverURL),
		CreatedAt:  parseTimestamp(w.CreatedAt),
		UpdatedAt:  parseTimestamp(w.UpdatedAt),
		PhotoMeta:  w.PhotoMeta,
		VideoMeta:  w.VideoMeta,
	}

	// Negative sizes from a broken server clamp to 0.
	if w.Size != nil && *w.Size > 0 {
		item.Size = *w.Size
	}

	if w.Type == "folder" {
		item.Kind = models.ItemKindFolder
		item.Size = 0
		return item
	}

	if w.MimeType != "" {
		item.MimeCategory = models.ClassifyMime(w.MimeType)
	} else {
		// Older responses carry the category directly in "type".
		switch w.Type {
		case "image", "video", "document":
			item.MimeCategory = models.MimeCategory(w.Type)
		default:
			item.MimeCategory = models.MimeCategoryOther
		}
	}
	return item
}

// resolveRef rewrites a relative server path to an absolute URL.
func resolveRef(base *url.URL, raw string) string {
	if raw == "" {
		return ""
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return base.ResolveReference(ref).String()
}

// parseTimestamp accepts RFC 3339 timestamps and bare dates; anything else
// yields the zero time rather than an error.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts
	}
	if ts, err := time.Parse("2006-01-02", s); err == nil {
		return ts
	}
	return time.Time{}
}

// endpoint joins path segments onto the base URL, escaping each one so ids
// containing "/" or "?" cannot change the route.
func (g *REST) endpoint(segments ...string) string {
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = url.PathEscape(s)
	}
	return strings.TrimRight(g.base.String(), "/") + "/" + strings.Join(parts, "/")
}

func (g *REST) do(req *http.Request, op string) ([]byte, error) {
	if g.owner.Token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+g.owner.Token)
	}
	resp, err := g.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, common.ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, common.ErrNetwork, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s: %w: status %d: %s", op, common.ErrServer, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

func (g *REST) decodeItem(body []byte, op string) (*models.StorageItem, error) {
	var w restItem
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, common.ErrDecode, err)
	}
	item := g.canonical(w)
	return &item, nil
}

// ListItems fetches all items via GET {base}/all.
func (g *REST) ListItems(ctx context.Context) ([]models.StorageItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint("all"), nil)
	if err != nil {
		return nil, err
	}
	body, err := g.do(req, "list items")
	if err != nil {
		return nil, err
	}

	var wire []restItem
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("list items: %w: %w", common.ErrDecode, err)
	}
	items := make([]models.StorageItem, 0, len(wire))
	for _, w := range wire {
		items = append(items, g.canonical(w))
	}
	return items, nil
}

// ListUserMedia fetches only the owner's media via GET {base}/media/{userId}.
func (g *REST) ListUserMedia(ctx context.Context) ([]models.StorageItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint("media", g.owner.UserID), nil)
	if err != nil {
		return nil, err
	}
	body, err := g.do(req, "list media")
	if err != nil {
		return nil, err
	}

	var wire []restItem
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("list media: %w: %w", common.ErrDecode, err)
	}
	items := make([]models.StorageItem, 0, len(wire))
	for _, w := range wire {
		items = append(items, g.canonical(w))
	}
	return items, nil
}

// UploadMedia submits the payload as multipart form data via POST
// {base}/upload with fields file, userId and optional parentId.
func (g *REST) UploadMedia(ctx context.Context, r UploadRequest) (*models.StorageItem, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", r.Name)
	if err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}
	if _, err := part.Write(r.Data); err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}
	if err := mw.WriteField("userId", g.owner.UserID); err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}
	if r.ParentID != "" {
		if err := mw.WriteField("parentId", r.ParentID); err != nil {
			return nil, fmt.Errorf("upload: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint("upload"), &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	body, err := g.do(req, "upload")
	if err != nil {
		// An upload failure keeps the server detail but is matched as ErrUpload.
		return nil, fmt.Errorf("%w: %w", common.ErrUpload, err)
	}
	return g.decodeItem(body, "upload")
}

// CreateFolder creates an album via POST {base}/album.
func (g *REST) CreateFolder(ctx context.Context, name string, shared bool, parentID string) (*models.StorageItem, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("public", strconv.FormatBool(shared))
	if parentID != "" {
		q.Set("parentId", parentID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint("album")+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	body, err := g.do(req, "create folder")
	if err != nil {
		return nil, err
	}
	return g.decodeItem(body, "create folder")
}

// SetFlag flips favorite or trashed via PATCH {base}/favorite/{id} or
// PATCH {base}/trash/{id}.
func (g *REST) SetFlag(ctx context.Context, id string, flag Flag, value bool) (*models.StorageItem, error) {
	var target string
	switch flag {
	case FlagFavorite:
		target = g.endpoint("favorite", id) + "?favorite=" + strconv.FormatBool(value)
	case FlagTrashed:
		target = g.endpoint("trash", id) + "?trashed=" + strconv.FormatBool(value)
	default:
		return nil, fmt.Errorf("unknown flag %q", flag)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, target, nil)
	if err != nil {
		return nil, err
	}
	body, err := g.do(req, "set "+string(flag))
	if err != nil {
		return nil, err
	}
	return g.decodeItem(body, "set "+string(flag))
}
