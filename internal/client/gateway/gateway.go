// Package gateway implements the remote data gateway: a capability-abstracted
// client performing the four remote operations against either a REST backend
// or a GraphQL backend. All wire-shape normalization happens here; the rest
// of the client only ever sees canonical models.StorageItem values.
package gateway

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mediavault/internal/client/config"
	"github.com/dmitrijs2005/mediavault/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
)

// Flag names a mutable item flag on the remote side.
type Flag string

const (
	FlagFavorite Flag = "favorite"
	FlagTrashed  Flag = "trashed"
)

// UploadRequest carries one binary payload plus its metadata.
type UploadRequest struct {
	Name     string
	MimeType string
	Data     []byte
	ParentID string
}

// Gateway is the remote data gateway contract. The backend flavor (REST or
// GraphQL) is an injected strategy; call sites never know which one they got.
//
// Errors are matched with errors.Is against the common sentinels: ErrNetwork
// for transport failures, ErrServer for non-2xx responses, ErrDecode when a
// response cannot be normalized, ErrUpload for upload-specific failures.
type Gateway interface {
	// ListItems fetches all items visible to the session owner.
	ListItems(ctx context.Context) ([]models.StorageItem, error)

	// UploadMedia submits one binary payload. The server is the source of
	// truth for the assigned id, URL and derived metadata.
	UploadMedia(ctx context.Context, req UploadRequest) (*models.StorageItem, error)

	// CreateFolder creates an album/folder. Name validation and
	// duplicate-in-scope policy are owned by the server.
	CreateFolder(ctx context.Context, name string, shared bool, parentID string) (*models.StorageItem, error)

	// SetFlag sets favorite or trashed on an item. Idempotent: setting an
	// already-set flag to the same value succeeds without side effect.
	SetFlag(ctx context.Context, id string, flag Flag, value bool) (*models.StorageItem, error)
}

// Owner identifies the session on outbound requests.
type Owner struct {
	UserID string
	Token  string
}

// OwnerFromToken derives the owner from a session token's "sub" claim. The
// claim is read without signature verification; the server remains the
// authority. A malformed or empty token yields an owner with no user id.
func OwnerFromToken(token string) Owner {
	o := Owner{Token: token}
	if token == "" {
		return o
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return o
	}
	if sub, err := parsed.Claims.GetSubject(); err == nil {
		o.UserID = sub
	}
	return o
}

// New selects the gateway implementation configured in cfg.
func New(cfg *config.Config) (Gateway, error) {
	owner := OwnerFromToken(cfg.SessionToken)
	switch cfg.Backend {
	case config.BackendREST, "":
		return NewREST(cfg.RESTBaseURL, owner, cfg.RequestTimeout)
	case config.BackendGraphQL:
		return NewGraphQL(cfg.GraphQLEndpoint, cfg.RESTBaseURL, owner, cfg.RequestTimeout)
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
