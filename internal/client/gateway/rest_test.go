package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/mediavault/internal/client/models"
	"github.com/dmitrijs2005/mediavault/internal/common"
	"github.com/stretchr/testify/require"
)

func newRESTGateway(t *testing.T, srv *httptest.Server, owner Owner) *REST {
	t.Helper()
	g, err := NewREST(srv.URL+"/api", owner, 5*time.Second)
	require.NoError(t, err)
	return g
}

func TestREST_ListItems_NormalizesWireShapes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/all", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"1","name":"img1","type":"image","url":"/files/img1.jpg","liked":true,"createdAt":"2025-09-28T11:42:40Z"},
			{"id":"a1","name":"album1","type":"folder","isPublic":true,"size":12345},
			{"id":"3","name":"clip","mimeType":"video/mp4","size":9000,"isDeleted":true}
		]`))
	}))
	defer srv.Close()

	g := newRESTGateway(t, srv, Owner{UserID: "u1", Token: "tok"})
	items, err := g.ListItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)

	img := items[0]
	require.Equal(t, models.ItemKindMedia, img.Kind)
	require.Equal(t, models.MimeCategoryImage, img.MimeCategory)
	require.True(t, img.IsFavorite, "legacy liked field maps to isFavorite")
	require.Equal(t, srv.URL+"/files/img1.jpg", img.URI, "relative paths become absolute")
	require.Equal(t, int64(0), img.Size, "missing size defaults to 0")
	require.Equal(t, 2025, img.CreatedAt.Year())

	folder := items[1]
	require.Equal(t, models.ItemKindFolder, folder.Kind)
	require.True(t, folder.IsPublic)
	require.Equal(t, int64(0), folder.Size, "folders have size 0")

	clip := items[2]
	require.Equal(t, models.MimeCategoryVideo, clip.MimeCategory)
	require.Equal(t, int64(9000), clip.Size)
	require.True(t, clip.IsDeleted)
}

func TestREST_ListItems_ClampsNegativeSize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1","name":"bad.jpg","mimeType":"image/jpeg","size":-7}]`))
	}))
	defer srv.Close()

	g := newRESTGateway(t, srv, Owner{})
	items, err := g.ListItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, int64(0), items[0].Size, "a negative wire size must not survive normalization")
	require.Equal(t, "—", models.FormatSize(items[0].Size))
}

func TestREST_SetFlag_EscapesItemID(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"a/b?c","name":"odd"}`))
	}))
	defer srv.Close()

	g := newRESTGateway(t, srv, Owner{})
	_, err := g.SetFlag(context.Background(), "a/b?c", FlagFavorite, true)
	require.NoError(t, err)
	require.Equal(t, "/api/favorite/a%2Fb%3Fc", gotPath, "id must stay a single path segment")
}

func TestREST_ListUserMedia_ScopesToOwner(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/media/u1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"m1","name":"mine.jpg","mimeType":"image/jpeg"}]`))
	}))
	defer srv.Close()

	g := newRESTGateway(t, srv, Owner{UserID: "u1", Token: "tok"})
	items, err := g.ListUserMedia(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "m1", items[0].ID)
	require.Equal(t, models.MimeCategoryImage, items[0].MimeCategory)
}

func TestREST_ListItems_ErrorTaxonomy(t *testing.T) {
	t.Run("server error on non-2xx", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		g := newRESTGateway(t, srv, Owner{})
		_, err := g.ListItems(context.Background())
		require.ErrorIs(t, err, common.ErrServer)
	})

	t.Run("decode error on malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"not":"an array"}`))
		}))
		defer srv.Close()

		g := newRESTGateway(t, srv, Owner{})
		_, err := g.ListItems(context.Background())
		require.ErrorIs(t, err, common.ErrDecode)
	})

	t.Run("network error when unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // immediately, so the port refuses connections

		g := newRESTGateway(t, srv, Owner{})
		_, err := g.ListItems(context.Background())
		require.ErrorIs(t, err, common.ErrNetwork)
	})
}

func TestREST_UploadMedia_SendsMultipartAndDecodesItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/upload", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "u1", r.FormValue("userId"))
		require.Equal(t, "a1", r.FormValue("parentId"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		require.Equal(t, "cat.jpg", hdr.Filename)

		_, _ = w.Write([]byte(`{"id":"srv-9","name":"cat.jpg","mimeType":"image/jpeg","size":3,"url":"/files/cat.jpg"}`))
	}))
	defer srv.Close()

	g := newRESTGateway(t, srv, Owner{UserID: "u1"})
	item, err := g.UploadMedia(context.Background(), UploadRequest{
		Name:     "cat.jpg",
		MimeType: "image/jpeg",
		Data:     []byte("abc"),
		ParentID: "a1",
	})
	require.NoError(t, err)
	require.Equal(t, "srv-9", item.ID)
	require.Equal(t, models.MimeCategoryImage, item.MimeCategory)
	require.False(t, models.IsPendingID(item.ID))
}

func TestREST_UploadMedia_FailureIsUploadError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer srv.Close()

	g := newRESTGateway(t, srv, Owner{UserID: "u1"})
	_, err := g.UploadMedia(context.Background(), UploadRequest{Name: "x", Data: []byte("x")})
	require.ErrorIs(t, err, common.ErrUpload)
	require.Contains(t, err.Error(), "quota exceeded", "server detail must be carried")
}

func TestREST_CreateFolder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/album", r.URL.Path)
		require.Equal(t, "Holidays", r.URL.Query().Get("name"))
		require.Equal(t, "true", r.URL.Query().Get("public"))
		_, _ = w.Write([]byte(`{"id":"srv-a2","name":"Holidays","type":"folder","isPublic":true}`))
	}))
	defer srv.Close()

	g := newRESTGateway(t, srv, Owner{})
	folder, err := g.CreateFolder(context.Background(), "Holidays", true, "")
	require.NoError(t, err)
	require.Equal(t, models.ItemKindFolder, folder.Kind)
	require.True(t, folder.IsPublic)
}

func TestREST_SetFlag_RoutesPerFlag(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"id":"1","name":"img1","isFavorite":true}`))
	}))
	defer srv.Close()

	g := newRESTGateway(t, srv, Owner{})

	item, err := g.SetFlag(context.Background(), "1", FlagFavorite, true)
	require.NoError(t, err)
	require.True(t, item.IsFavorite)
	require.Equal(t, "/api/favorite/1", gotPath)
	require.Equal(t, "favorite=true", gotQuery)

	_, err = g.SetFlag(context.Background(), "1", FlagTrashed, false)
	require.NoError(t, err)
	require.Equal(t, "/api/trash/1", gotPath)
	require.Equal(t, "trashed=false", gotQuery)

	_, err = g.SetFlag(context.Background(), "1", Flag("bogus"), true)
	require.Error(t, err)
	require.False(t, errors.Is(err, common.ErrServer))
}

func TestOwnerFromToken(t *testing.T) {
	// header {alg:none} + claims {sub:"user-42"}; unsigned token, claims only.
	token := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0." +
		"eyJzdWIiOiJ1c2VyLTQyIn0."

	o := OwnerFromToken(token)
	require.Equal(t, "user-42", o.UserID)
	require.Equal(t, token, o.Token)

	require.Empty(t, OwnerFromToken("garbage").UserID)
	require.Empty(t, OwnerFromToken("").UserID)
}
