// Package upload implements the upload pipeline: it classifies a file,
// inserts an optimistic placeholder into the mutation cache, submits the
// binary through the gateway and reconciles the placeholder with the
// server-confirmed item.
//
// Per-upload state machine: Pending -> Submitted -> Confirmed | Failed.
package upload

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/mediavault/internal/client/cache"
	"github.com/dmitrijs2005/mediavault/internal/client/gateway"
	"github.com/dmitrijs2005/mediavault/internal/client/models"
	"github.com/dmitrijs2005/mediavault/internal/logging"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusSubmitted Status = "submitted"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

// Request describes one file to upload. MimeType may be empty; the content
// is sniffed in that case.
type Request struct {
	Name     string
	MimeType string
	Data     []byte
	ParentID string
}

// Result reports where an upload ended up. Item is the placeholder until
// Confirmed, then the server item.
type Result struct {
	Status        Status
	PlaceholderID string
	Item          *models.StorageItem
}

type Pipeline struct {
	gw    gateway.Gateway
	cache cache.Cache
	log   logging.Logger
}

func New(gw gateway.Gateway, c cache.Cache, log logging.Logger) *Pipeline {
	return &Pipeline{gw: gw, cache: c, log: log}
}

// Run executes the whole state machine for one file.
//
// The placeholder enters the cache before the network call so the UI reflects
// the pending upload immediately. On failure the placeholder is removed; a
// failed upload never masquerades as a confirmed item. When ctx is cancelled
// while the server call was already in flight (the user navigated away), the
// Confirmed reconciliation is skipped: the stale result is not applied.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = models.SniffMime(req.Data)
	}

	now := time.Now().UTC()
	placeholder := models.StorageItem{
		ID:           models.NewPendingID(),
		Name:         req.Name,
		Kind:         models.ItemKindMedia,
		MimeType:     mimeType,
		MimeCategory: models.ClassifyMime(mimeType),
		Size:         int64(len(req.Data)),
		ParentID:     req.ParentID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := p.cache.Upsert(ctx, placeholder); err != nil {
		return nil, fmt.Errorf("cache placeholder for %q: %w", req.Name, err)
	}
	res := &Result{Status: StatusPending, PlaceholderID: placeholder.ID, Item: &placeholder}

	res.Status = StatusSubmitted
	item, err := p.gw.UploadMedia(ctx, gateway.UploadRequest{
		Name:     req.Name,
		MimeType: mimeType,
		Data:     req.Data,
		ParentID: req.ParentID,
	})
	if err != nil {
		// Cleanup must run even when the cause was ctx cancellation.
		cleanupCtx := context.WithoutCancel(ctx)
		if derr := p.cache.Delete(cleanupCtx, placeholder.ID); derr != nil {
			p.log.Error(ctx, "failed to remove placeholder of failed upload",
				"id", placeholder.ID, "error", derr)
		}
		res.Status = StatusFailed
		return res, err
	}

	if ctx.Err() != nil {
		p.log.Info(ctx, "upload confirmed after navigation, reconciliation skipped",
			"placeholder", placeholder.ID, "server_id", item.ID)
		return res, ctx.Err()
	}

	if err := p.cache.Delete(ctx, placeholder.ID); err != nil {
		p.log.Warn(ctx, "failed to drop upload placeholder", "id", placeholder.ID, "error", err)
	}
	if err := p.cache.Upsert(ctx, *item); err != nil {
		return res, fmt.Errorf("cache confirmed upload %s: %w", item.ID, err)
	}

	res.Status = StatusConfirmed
	res.Item = item
	return res, nil
}
