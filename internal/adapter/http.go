// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/odata"
	"github.com/MKhiriev/go-draft-keeper/internal/utils"
	"github.com/MKhiriev/go-draft-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpDocumentGateway struct {
	client *utils.HTTPClient

	serviceRoot     string
	actionNamespace string

	mu      sync.Mutex
	batches map[string][]models.BatchRequestPart

	logger *logger.Logger
}

// NewHTTPDocumentGateway constructs the HTTP implementation of
// [DocumentGateway]. The service root is adapterCfg.HTTPAddress (normalised,
// "http://" assumed without scheme) joined with adapterCfg.ServicePath.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPDocumentGateway(adapterCfg config.ClientAdapter, logger *logger.Logger) (DocumentGateway, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	serviceRoot := baseURL
	if path := strings.Trim(adapterCfg.ServicePath, "/"); path != "" {
		serviceRoot += "/" + path
	}

	return &httpDocumentGateway{
		client:          utils.NewHTTPClient(serviceRoot, adapterCfg.RequestTimeout),
		serviceRoot:     serviceRoot,
		actionNamespace: adapterCfg.ActionNamespace,
		batches:         make(map[string][]models.BatchRequestPart),
		logger:          logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
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

// ServiceRoot implements [DocumentGateway].
func (h *httpDocumentGateway) ServiceRoot() string {
	return h.serviceRoot
}

// ReadByKey implements [DocumentGateway]. GET <path>.
func (h *httpDocumentGateway) ReadByKey(ctx context.Context, path string) (models.Student, error) {
	var doc models.Student

	resp, err := h.request(ctx).
		SetResult(&doc).
		Get(path)
	if err != nil {
		return models.Student{}, fmt.Errorf("read by key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Student{}, err
	}

	return doc, nil
}

// ReadCollection implements [DocumentGateway]. GET <collection>?$filter=...
func (h *httpDocumentGateway) ReadCollection(ctx context.Context, collection string, q models.StudentQuery) ([]models.Student, error) {
	var page models.CollectionResponse[models.Student]

	req := h.request(ctx).SetResult(&page)
	if filter := odata.EncodeStudentFilter(q); filter != "" {
		req.SetQueryParam("$filter", filter)
	}

	resp, err := req.Get(odata.CollectionPath(collection))
	if err != nil {
		return nil, fmt.Errorf("read collection request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return page.Value, nil
}

// Create implements [DocumentGateway]. POST <collection> with the full
// document including attachments. The handle is derived from the key of the
// returned entity.
func (h *httpDocumentGateway) Create(ctx context.Context, collection string, doc models.Student) (models.DraftHandle, error) {
	var created models.Student

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(doc).
		SetResult(&created).
		Post(odata.CollectionPath(collection))
	if err != nil {
		return models.DraftHandle{}, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DraftHandle{}, err
	}

	if created.Id == "" {
		created.Id = doc.Id
	}
	key := models.EntityKey{Id: created.Id, IsActiveEntity: created.IsActiveEntity}

	h.logger.Debug().
		Str("func", "httpDocumentGateway.Create").
		Str("id", key.Id).
		Msg("draft created")

	return models.DraftHandle{Path: odata.EntityPath(collection, key), Key: key}, nil
}

// UpdateField implements [DocumentGateway]. PATCH <handle> {field: value}.
func (h *httpDocumentGateway) UpdateField(ctx context.Context, handle models.DraftHandle, field string, value any) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{field: value}).
		Patch(handle.Path)
	if err != nil {
		return fmt.Errorf("update field %s request: %w", field, err)
	}

	return mapHTTPError(resp)
}

// ReadChildCollection implements [DocumentGateway]. GET <handle>/<relation>.
// Media links are resolved against the service root into MediaURL.
func (h *httpDocumentGateway) ReadChildCollection(ctx context.Context, handle models.DraftHandle, relation string) ([]models.AttachmentEntry, error) {
	var page models.CollectionResponse[models.Attachment]

	resp, err := h.request(ctx).
		SetResult(&page).
		Get(odata.NavigationPath(handle.Path, relation))
	if err != nil {
		return nil, fmt.Errorf("read child collection request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	entries := make([]models.AttachmentEntry, 0, len(page.Value))
	for _, child := range page.Value {
		if child.MediaReadLink != "" {
			child.MediaURL = h.mediaURL(child.MediaReadLink)
		}
		entries = append(entries, models.AttachmentEntry{
			Path:       odata.ChildPath(handle.Path, relation, child.AttachId),
			Attachment: child,
		})
	}

	return entries, nil
}

// DeleteEntity implements [DocumentGateway]. DELETE <path>.
func (h *httpDocumentGateway) DeleteEntity(ctx context.Context, path string) error {
	resp, err := h.request(ctx).Delete(path)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

// CreateChild implements [DocumentGateway]. POST <handle>/<relation>.
func (h *httpDocumentGateway) CreateChild(ctx context.Context, handle models.DraftHandle, relation string, child models.Attachment) error {
	child.MediaReadLink, child.MediaContentType = "", ""

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(child).
		Post(odata.NavigationPath(handle.Path, relation))
	if err != nil {
		return fmt.Errorf("create child request: %w", err)
	}

	return mapHTTPError(resp)
}

// InvokeAction implements [DocumentGateway]. POST <path>/<namespace>.<action>
// with params as the JSON body.
func (h *httpDocumentGateway) InvokeAction(ctx context.Context, path, action string, params map[string]any) error {
	if params == nil {
		params = map[string]any{}
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(params).
		Post(odata.ActionPath(path, h.actionNamespace, action))
	if err != nil {
		return fmt.Errorf("invoke action %s request: %w", action, err)
	}

	return mapHTTPError(resp)
}

// QueueDelete implements [DocumentGateway].
func (h *httpDocumentGateway) QueueDelete(groupID, path string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	queue := h.batches[groupID]
	h.batches[groupID] = append(queue, models.BatchRequestPart{
		ID:             strconv.Itoa(len(queue) + 1),
		AtomicityGroup: groupID,
		Method:         http.MethodDelete,
		URL:            strings.TrimPrefix(path, "/"),
	})
}

// SubmitBatch implements [DocumentGateway]. POST /$batch with the JSON batch
// body; the response is normalised by odata.NormalizeBatchResponse whatever
// its shape.
func (h *httpDocumentGateway) SubmitBatch(ctx context.Context, groupID string) ([]models.OperationResult, error) {
	h.mu.Lock()
	parts := h.batches[groupID]
	delete(h.batches, groupID)
	h.mu.Unlock()

	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyBatch, groupID)
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.BatchRequest{Requests: parts}).
		Post("/$batch")
	if err != nil {
		return nil, fmt.Errorf("submit batch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	results, err := odata.NormalizeBatchResponse(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("decode batch response: %w", err)
	}

	h.logger.Debug().
		Str("func", "httpDocumentGateway.SubmitBatch").
		Str("group_id", groupID).
		Int("operations", len(parts)).
		Int("results", len(results)).
		Msg("batch submitted")

	return results, nil
}

func (h *httpDocumentGateway) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpDocumentGateway) mediaURL(link string) string {
	if strings.Contains(link, "://") {
		return link
	}
	return h.serviceRoot + "/" + strings.TrimPrefix(link, "/")
}

