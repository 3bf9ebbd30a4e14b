package client

import (
	"github.com/fivetwenty-io/gameadmin/internal/http"
	"github.com/fivetwenty-io/gameadmin/pkg/admin"
)

// AchievementsClient implements admin.AchievementsClient.
type AchievementsClient struct {
	*ResourceClient[admin.Achievement]
}

// NewAchievementsClient creates a new achievements client.
func NewAchievementsClient(httpClient *http.Client) *AchievementsClient {
	return &AchievementsClient{
		ResourceClient: NewResourceClient[admin.Achievement](httpClient, "achievements", "achievement"),
	}
}

// ItemsClient implements admin.ItemsClient.
type ItemsClient struct {
	*ResourceClient[admin.Item]
}

// NewItemsClient creates a new items client.
func NewItemsClient(httpClient *http.Client) *ItemsClient {
	return &ItemsClient{
		ResourceClient: NewResourceClient[admin.Item](httpClient, "items", "item"),
	}
}

// SkinsClient implements admin.SkinsClient.
type SkinsClient struct {
	*ResourceClient[admin.Skin]
}

// NewSkinsClient creates a new skins client.
func NewSkinsClient(httpClient *http.Client) *SkinsClient {
	return &SkinsClient{
		ResourceClient: NewResourceClient[admin.Skin](httpClient, "skins", "skin"),
	}
}

// VouchersClient implements admin.VouchersClient.
type VouchersClient struct {
	*ResourceClient[admin.Voucher]
}

// NewVouchersClient creates a new vouchers client.
func NewVouchersClient(httpClient *http.Client) *VouchersClient {
	return &VouchersClient{
		ResourceClient: NewResourceClient[admin.Voucher](httpClient, "vouchers", "voucher"),
	}
}

// TerrainsClient implements admin.TerrainsClient.
type TerrainsClient struct {
	*ResourceClient[admin.Terrain]
}

// NewTerrainsClient creates a new terrains client.
func NewTerrainsClient(httpClient *http.Client) *TerrainsClient {
	return &TerrainsClient{
		ResourceClient: NewResourceClient[admin.Terrain](httpClient, "terrains", "terrain"),
	}
}

// MissionsClient implements admin.MissionsClient.
type MissionsClient struct {
	*ResourceClient[admin.Mission]
}

// NewMissionsClient creates a new missions client.
func NewMissionsClient(httpClient *http.Client) *MissionsClient {
	return &MissionsClient{
		ResourceClient: NewResourceClient[admin.Mission](httpClient, "missions", "mission"),
	}
}

var (
	_ admin.AchievementsClient = (*AchievementsClient)(nil)
	_ admin.ItemsClient        = (*ItemsClient)(nil)
	_ admin.SkinsClient        = (*SkinsClient)(nil)
	_ admin.VouchersClient     = (*VouchersClient)(nil)
	_ admin.TerrainsClient     = (*TerrainsClient)(nil)
	_ admin.MissionsClient     = (*MissionsClient)(nil)
)
