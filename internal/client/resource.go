package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/gameadmin/internal/http"
	"github.com/fivetwenty-io/gameadmin/pkg/admin"
)

// ResourceClient provides the CRUD verbs shared by every admin resource.
// It holds no state besides the transport; each call is independent.
type ResourceClient[T any] struct {
	httpClient   *http.Client
	resourcePath string
	resourceName string
}

// NewResourceClient creates a generic client for resourcePath, e.g. "vouchers".
func NewResourceClient[T any](httpClient *http.Client, resourcePath, resourceName string) *ResourceClient[T] {
	return &ResourceClient[T]{
		httpClient:   httpClient,
		resourcePath: resourcePath,
		resourceName: resourceName,
	}
}

// Index implements admin.Indexer.
func (c *ResourceClient[T]) Index(ctx context.Context, query *admin.Query) (*admin.ListResponse[T], error) {
	resp, err := c.httpClient.Get(ctx, c.resourcePath, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.resourceName, err)
	}

	result, err := decodeList[T](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list response: %w", c.resourceName, err)
	}

	return result, nil
}

// Show implements admin.Shower.
func (c *ResourceClient[T]) Show(ctx context.Context, id int) (*T, error) {
	resp, err := c.httpClient.Get(ctx, c.memberPath(id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s %d: %w", c.resourceName, id, err)
	}

	result, err := decodeData[T](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", c.resourceName, err)
	}

	return result, nil
}

// Store implements admin.Storer.
func (c *ResourceClient[T]) Store(ctx context.Context, body any) (*T, error) {
	resp, err := c.httpClient.Post(ctx, c.resourcePath, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.resourceName, err)
	}

	result, err := decodeData[T](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", c.resourceName, err)
	}

	return result, nil
}

// Update implements admin.Updater.
func (c *ResourceClient[T]) Update(ctx context.Context, id int, body any) (*T, error) {
	resp, err := c.httpClient.Put(ctx, c.memberPath(id), body)
	if err != nil {
		return nil, fmt.Errorf("updating %s %d: %w", c.resourceName, id, err)
	}

	result, err := decodeData[T](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", c.resourceName, err)
	}

	return result, nil
}

// Delete implements admin.Deleter.
func (c *ResourceClient[T]) Delete(ctx context.Context, id int) error {
	_, err := c.httpClient.Delete(ctx, c.memberPath(id))
	if err != nil {
		return fmt.Errorf("deleting %s %d: %w", c.resourceName, id, err)
	}

	return nil
}

// PermanentDelete implements admin.PermanentDeleter.
func (c *ResourceClient[T]) PermanentDelete(ctx context.Context, id int) error {
	_, err := c.httpClient.Delete(ctx, c.resourcePath+"/permanentDestroy/"+strconv.Itoa(id))
	if err != nil {
		return fmt.Errorf("permanently deleting %s %d: %w", c.resourceName, id, err)
	}

	return nil
}

// Restore implements admin.Restorer.
func (c *ResourceClient[T]) Restore(ctx context.Context, id int) error {
	_, err := c.httpClient.Patch(ctx, c.resourcePath+"/restore/"+strconv.Itoa(id), nil)
	if err != nil {
		return fmt.Errorf("restoring %s %d: %w", c.resourceName, id, err)
	}

	return nil
}

func (c *ResourceClient[T]) memberPath(id int) string {
	return c.resourcePath + "/" + strconv.Itoa(id)
}

// decodeList parses a paginated list body.
func decodeList[T any](body []byte) (*admin.ListResponse[T], error) {
	var result admin.ListResponse[T]

	err := json.Unmarshal(body, &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// decodeData parses a single-resource body. The {"data": ...} envelope is
// unwrapped when present; an empty body yields the zero value.
func decodeData[T any](body []byte) (*T, error) {
	var result T

	if len(body) == 0 {
		return &result, nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}

	raw := json.RawMessage(body)

	err := json.Unmarshal(body, &envelope)
	if err == nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		raw = envelope.Data
	}

	err = json.Unmarshal(raw, &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}
