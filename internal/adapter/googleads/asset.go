package googleads

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"adpilot/internal/core/domain"
)

type assetMutateRequest struct {
	Operations []assetOperation `json:"operations"`
}

type assetOperation struct {
	Create imageAssetCreate `json:"create"`
}

type imageAssetCreate struct {
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	ImageAsset imageAsset `json:"imageAsset"`
}

type imageAsset struct {
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
}

// CreateImageAsset downloads the image at assetURL and registers it as an
// image asset, returning the asset resource name. Download failures surface
// as *domain.AssetFetchError so the publish workflow can degrade them to a
// warning; registration rejections surface as *domain.RemoteAPIError.
func (g *Gateway) CreateImageAsset(ctx context.Context, customerID, assetURL, assetName string) (string, error) {
	data, mimeType, err := g.fetchImage(ctx, assetURL)
	if err != nil {
		return "", err
	}

	payload := assetMutateRequest{Operations: []assetOperation{{
		Create: imageAssetCreate{
			Name: assetName,
			Type: "IMAGE",
			ImageAsset: imageAsset{
				Data:     base64.StdEncoding.EncodeToString(data),
				MimeType: mimeType,
			},
		},
	}}}

	var out mutateResponse
	if err = g.mutate(ctx, customerID, "assets", payload, &out); err != nil {
		return "", err
	}
	if len(out.Results) == 0 {
		return "", &domain.RemoteAPIError{Code: "EMPTY_MUTATE_RESPONSE", Message: "asset mutate returned no results"}
	}
	return out.Results[0].ResourceName, nil
}

// fetchImage downloads the asset bytes with the bounded asset client and
// returns them together with the inferred platform mime type.
func (g *Gateway) fetchImage(ctx context.Context, assetURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, assetURL, nil)
	if err != nil {
		return nil, "", &domain.AssetFetchError{URL: assetURL, Err: err}
	}
	resp, err := g.assetHTTP.Do(req)
	if err != nil {
		return nil, "", &domain.AssetFetchError{URL: assetURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", &domain.AssetFetchError{URL: assetURL, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &domain.AssetFetchError{URL: assetURL, Err: err}
	}
	return data, imageMimeType(resp.Header.Get("Content-Type")), nil
}

// imageMimeType maps a Content-Type header onto the platform mime enum. PNG
// and GIF are recognised by substring; everything else defaults to JPEG.
// This is a deliberate simplification, not a full mime sniffer.
func imageMimeType(contentType string) string {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "png"):
		return "IMAGE_PNG"
	case strings.Contains(ct, "gif"):
		return "IMAGE_GIF"
	default:
		return "IMAGE_JPEG"
	}
}
