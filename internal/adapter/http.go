package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-mirror-sync/internal/config"
	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/internal/utils"
	"github.com/MKhiriev/go-mirror-sync/models"
	"github.com/go-resty/resty/v2"
)

// listPageSize is the number of children requested per listing page.
const listPageSize = 1000

type httpRemoteAdapter struct {
	client *utils.HTTPClient

	baseURL string
	token   string

	logger *logger.Logger
}

// NewHTTPRemoteAdapter constructs an HTTP/REST implementation of
// [RemoteAdapter]. It normalises and validates the base URL from
// adapterCfg.APIURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.APIURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteAdapter(adapterCfg config.Adapter, logger *logger.Logger) (RemoteAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpRemoteAdapter{
		client:  client,
		baseURL: baseURL,
		token:   strings.TrimSpace(adapterCfg.Token),
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListFolder implements [RemoteAdapter]. It GETs /files/list for folderID and
// follows listing cursors via POST /files/list/continue until every child has
// been collected. Children keep the order the remote reports them in.
func (h *httpRemoteAdapter) ListFolder(ctx context.Context, folderID int64) (models.FolderListing, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(map[string]string{
			"parent_id": strconv.FormatInt(folderID, 10),
			"per_page":  strconv.Itoa(listPageSize),
		}).
		Get("/files/list")
	if err != nil {
		return models.FolderListing{}, fmt.Errorf("%w: list folder request: %w", ErrRemote, err)
	}

	page, err := decodeListResponse(resp)
	if err != nil {
		return models.FolderListing{}, fmt.Errorf("list folder %d: %w", folderID, err)
	}

	listing := models.FolderListing{Children: page.Files, Parent: page.Parent}
	for cursor := page.Cursor; cursor != ""; cursor = page.Cursor {
		h.logger.Debug().
			Str("func", "httpRemoteAdapter.ListFolder").
			Int64("folder_id", folderID).
			Int("children", len(listing.Children)).
			Msg("continuing folder listing")

		resp, err = h.authedRequest(ctx).
			SetFormData(map[string]string{
				"cursor":   cursor,
				"per_page": strconv.Itoa(listPageSize),
			}).
			Post("/files/list/continue")
		if err != nil {
			return models.FolderListing{}, fmt.Errorf("%w: continue listing request: %w", ErrRemote, err)
		}

		page, err = decodeListResponse(resp)
		if err != nil {
			return models.FolderListing{}, fmt.Errorf("continue listing %d: %w", folderID, err)
		}
		listing.Children = append(listing.Children, page.Files...)
	}

	return listing, nil
}

// ResolveDownloadLocation implements [RemoteAdapter]. The returned URL points
// at GET /files/{id}/download and carries the token as a query parameter,
// since the content request is issued without the Authorization header.
func (h *httpRemoteAdapter) ResolveDownloadLocation(_ context.Context, fileID int64) (string, error) {
	u, err := url.Parse(fmt.Sprintf("%s/files/%d/download", h.baseURL, fileID))
	if err != nil {
		return "", fmt.Errorf("%w: build download url: %w", ErrRemote, err)
	}

	query := u.Query()
	query.Set("oauth_token", h.token)
	u.RawQuery = query.Encode()

	return u.String(), nil
}

// Delete implements [RemoteAdapter]. It POSTs the comma-separated ids to
// /files/delete. A missing id is reported by the remote as 404 and mapped to
// [ErrNotFound]; any status other than "OK" in the body yields
// [ErrDeleteRejected].
func (h *httpRemoteAdapter) Delete(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}

	fileIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		fileIDs = append(fileIDs, strconv.FormatInt(id, 10))
	}

	resp, err := h.authedRequest(ctx).
		SetFormData(map[string]string{"file_ids": strings.Join(fileIDs, ",")}).
		Post("/files/delete")
	if err != nil {
		return fmt.Errorf("%w: delete request: %w", ErrRemote, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var status models.StatusResponse
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return fmt.Errorf("%w: decode delete response: %w", ErrRemote, err)
	}
	if status.Status != models.StatusOK {
		return fmt.Errorf("%w: status %q: %s", ErrDeleteRejected, status.Status, status.ErrorMessage)
	}

	return nil
}

func (h *httpRemoteAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json")
	if h.token != "" {
		req.SetHeader("Authorization", "Bearer "+h.token)
	}
	return req
}

func decodeListResponse(resp *resty.Response) (models.ListResponse, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.ListResponse{}, err
	}

	var page models.ListResponse
	if err := json.Unmarshal(resp.Body(), &page); err != nil {
		return models.ListResponse{}, fmt.Errorf("%w: decode listing: %w", ErrRemote, err)
	}
	if page.Status != "" && page.Status != models.StatusOK {
		return models.ListResponse{}, fmt.Errorf("%w: listing status %q", ErrRemote, page.Status)
	}

	return page, nil
}
