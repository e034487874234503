package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/mediavault/internal/client/models"
	"github.com/dmitrijs2005/mediavault/internal/common"
)

// GraphQL talks to the GraphQL backend. Binary uploads bypass the query
// language and go through an embedded REST gateway as multipart form data.
type GraphQL struct {
	endpoint string
	base     *url.URL
	owner    Owner
	httpc    *http.Client
	rest     *REST
}

func NewGraphQL(endpoint, restBaseURL string, owner Owner, timeout time.Duration) (*GraphQL, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid GraphQL endpoint %q: %w", endpoint, err)
	}
	rest, err := NewREST(restBaseURL, owner, timeout)
	if err != nil {
		return nil, err
	}
	return &GraphQL{
		endpoint: endpoint,
		base:     u,
		owner:    owner,
		httpc:    &http.Client{Timeout: timeout},
		rest:     rest,
	}, nil
}

const rootItemsQuery = `query RootItems($userId: ID!) {
  rootItems(userId: $userId) {
    __typename
    ... on FolderDocument {
      id name path parentId coverUrl isShared isDeleted createdAt updatedAt
    }
    ... on MediaDocument {
      id filename url mimeType size isFavorite isDeleted createdAt updatedAt
      folder { id }
      photoMeta { width height cameraModel iso aperture }
      videoMeta { duration resolution frameRate }
    }
  }
}`

const createFolderMutation = `mutation CreateFolder($input: FolderInput!) {
  createFolder(input: $input) {
    __typename
    id name path parentId coverUrl isShared isDeleted createdAt updatedAt
  }
}`

const setFlagMutation = `mutation SetFlag($id: ID!, $flag: String!, $value: Boolean!) {
  setFlag(id: $id, flag: $flag, value: $value) {
    __typename
    id filename url mimeType size isFavorite isDeleted createdAt updatedAt
  }
}`

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// gqlDocument is the superset of both union members; Typename discriminates.
type gqlDocument struct {
	Typename   string               `json:"__typename"`
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Filename   string               `json:"filename"`
	Path       string               `json:"path"`
	URL        string               `json:"url"`
	MimeType   string               `json:"mimeType"`
	Size       *int64               `json:"size"`
	ParentID   *string              `json:"parentId"`
	CoverURL   *string              `json:"coverUrl"`
	Folder     *struct{ ID string } `json:"folder"`
	IsFavorite bool                 `json:"isFavorite"`
	IsShared   bool                 `json:"isShared"`
	IsDeleted  bool                 `json:"isDeleted"`
	CreatedAt  string               `json:"createdAt"`
	UpdatedAt  string               `json:"updatedAt"`
	PhotoMeta  *models.PhotoMeta    `json:"photoMeta"`
	VideoMeta  *models.VideoMeta    `json:"videoMeta"`
}

// canonical normalizes one tagged union member. The only place GraphQL
// shapes are interpreted.
func (g *GraphQL) canonical(d gqlDocument) models.StorageItem {
	item := models.StorageItem{
		ID:         d.ID,
		IsFavorite: d.IsFavorite,
		IsShared:   d.IsShared,
		IsDeleted:  d.IsDeleted,
		CreatedAt:  parseTimestamp(d.CreatedAt),
		UpdatedAt:  parseTimestamp(d.UpdatedAt),
	}

	if d.Typename == "FolderDocument" {
		item.Kind = models.ItemKindFolder
		item.Name = d.Name
		if d.ParentID != nil {
			item.ParentID = *d.ParentID
		}
		if d.CoverURL != nil {
			item.CoverURL = resolveRef(g.base, *d.CoverURL)
		}
		item.URI = resolveRef(g.base, d.Path)
		return item
	}

	item.Kind = models.ItemKindMedia
	item.Name = d.Filename
	item.MimeType = d.MimeType
	item.MimeCategory = models.ClassifyMime(d.MimeType)
	item.URI = resolveRef(g.base, d.URL)
	if d.Size != nil && *d.Size > 0 {
		item.Size = *d.Size
	}
	if d.Folder != nil {
		item.ParentID = d.Folder.ID
	}
	item.PhotoMeta = d.PhotoMeta
	item.VideoMeta = d.VideoMeta
	return item
}

// query posts one GraphQL operation and unmarshals the data payload into out.
func (g *GraphQL) query(ctx context.Context, op string, q string, vars map[string]any, out any) error {
	payload, err := json.Marshal(gqlRequest{Query: q, Variables: vars})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.owner.Token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+g.owner.Token)
	}

	resp, err := g.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, common.ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, common.ErrNetwork, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s: %w: status %d: %s", op, common.ErrServer, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var gr gqlResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return fmt.Errorf("%s: %w: %w", op, common.ErrDecode, err)
	}
	if len(gr.Errors) > 0 {
		return fmt.Errorf("%s: %w: %s", op, common.ErrServer, gr.Errors[0].Message)
	}
	if err := json.Unmarshal(gr.Data, out); err != nil {
		return fmt.Errorf("%s: %w: %w", op, common.ErrDecode, err)
	}
	return nil
}

func (g *GraphQL) ListItems(ctx context.Context) ([]models.StorageItem, error) {
	var data struct {
		RootItems []gqlDocument `json:"rootItems"`
	}
	vars := map[string]any{"userId": g.owner.UserID}
	if err := g.query(ctx, "list items", rootItemsQuery, vars, &data); err != nil {
		return nil, err
	}

	items := make([]models.StorageItem, 0, len(data.RootItems))
	for _, d := range data.RootItems {
		items = append(items, g.canonical(d))
	}
	return items, nil
}

// UploadMedia always goes over multipart REST; binary payloads bypass the
// query language.
func (g *GraphQL) UploadMedia(ctx context.Context, r UploadRequest) (*models.StorageItem, error) {
	return g.rest.UploadMedia(ctx, r)
}

func (g *GraphQL) CreateFolder(ctx context.Context, name string, shared bool, parentID string) (*models.StorageItem, error) {
	input := map[string]any{"name": name, "isShared": shared}
	if parentID != "" {
		input["parentId"] = parentID
	}
	var data struct {
		CreateFolder gqlDocument `json:"createFolder"`
	}
	if err := g.query(ctx, "create folder", createFolderMutation, map[string]any{"input": input}, &data); err != nil {
		return nil, err
	}
	item := g.canonical(data.CreateFolder)
	return &item, nil
}

func (g *GraphQL) SetFlag(ctx context.Context, id string, flag Flag, value bool) (*models.StorageItem, error) {
	var data struct {
		SetFlag gqlDocument `json:"setFlag"`
	}
	vars := map[string]any{"id": id, "flag": string(flag), "value": value}
	if err := g.query(ctx, "set "+string(flag), setFlagMutation, vars, &data); err != nil {
		return nil, err
	}
	item := g.canonical(data.SetFlag)
	return &item, nil
}
