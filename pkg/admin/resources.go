package admin

// Achievement represents a game achievement.
type Achievement struct {
	ID          int     `json:"id"                    yaml:"id"`
	Name        string  `json:"name"                  yaml:"name"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	MaxScore    int     `json:"max_score"             yaml:"max_score"`
	RewardType  *string `json:"reward_type,omitempty" yaml:"reward_type,omitempty"`
	RewardValue int     `json:"reward_value"          yaml:"reward_value"`
	IsActive    bool    `json:"is_active"             yaml:"is_active"`
}

// AchievementRequest is the payload to create an achievement.
type AchievementRequest struct {
	Name        string  `json:"name"                  yaml:"name"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	MaxScore    int     `json:"max_score"             yaml:"max_score"`
	RewardType  *string `json:"reward_type,omitempty" yaml:"reward_type,omitempty"`
	RewardValue int     `json:"reward_value"          yaml:"reward_value"`
	IsActive    bool    `json:"is_active"             yaml:"is_active"`
}

// Mission represents a game mission. It has the same shape as an achievement.
type Mission struct {
	ID          int     `json:"id"                    yaml:"id"`
	Name        string  `json:"name"                  yaml:"name"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	MaxScore    int     `json:"max_score"             yaml:"max_score"`
	RewardType  *string `json:"reward_type,omitempty" yaml:"reward_type,omitempty"`
	RewardValue int     `json:"reward_value"          yaml:"reward_value"`
	IsActive    bool    `json:"is_active"             yaml:"is_active"`
}

// MissionRequest is the payload to create a mission.
type MissionRequest = AchievementRequest

// Terrain represents a playable terrain.
type Terrain struct {
	ID          int     `json:"id"                    yaml:"id"`
	Name        string  `json:"name"                  yaml:"name"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	IsDefault   bool    `json:"is_default"            yaml:"is_default"`
	IsActive    bool    `json:"is_active"             yaml:"is_active"`
}

// TerrainRequest is the payload to create a terrain.
type TerrainRequest struct {
	Name        string  `json:"name"                  yaml:"name"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	IsDefault   bool    `json:"is_default"            yaml:"is_default"`
	IsActive    bool    `json:"is_active"             yaml:"is_active"`
}

// Voucher represents a discount voucher.
type Voucher struct {
	ID                    int        `json:"id"                      yaml:"id"`
	Name                  string     `json:"name"                    yaml:"name"`
	Description           *string    `json:"description,omitempty"   yaml:"description,omitempty"`
	MinPrice              *float64   `json:"min_price,omitempty"     yaml:"min_price,omitempty"`
	IsPercentageFlatPrice bool       `json:"is_percentage_flatprice" yaml:"is_percentage_flatprice"`
	DiscountValue         float64    `json:"discount_value"          yaml:"discount_value"`
	ExpiredTime           *int       `json:"expired_time,omitempty"  yaml:"expired_time,omitempty"`
	MaxClaim              *int       `json:"max_claim,omitempty"     yaml:"max_claim,omitempty"`
	StartDate             *Timestamp `json:"start_date,omitempty"    yaml:"start_date,omitempty"`
	EndDate               *Timestamp `json:"end_date,omitempty"      yaml:"end_date,omitempty"`
	IsActive              bool       `json:"is_active"               yaml:"is_active"`
	DeletedAt             *Timestamp `json:"deleted_at"              yaml:"deleted_at"`
}

// VoucherRequest is the payload to create a voucher.
type VoucherRequest struct {
	Name                  string   `json:"name"                    yaml:"name"`
	Description           *string  `json:"description,omitempty"   yaml:"description,omitempty"`
	MinPrice              *float64 `json:"min_price,omitempty"     yaml:"min_price,omitempty"`
	IsPercentageFlatPrice bool     `json:"is_percentage_flatprice" yaml:"is_percentage_flatprice"`
	DiscountValue         float64  `json:"discount_value"          yaml:"discount_value"`
	ExpiredTime           *int     `json:"expired_time,omitempty"  yaml:"expired_time,omitempty"`
	MaxClaim              *int     `json:"max_claim,omitempty"     yaml:"max_claim,omitempty"`
	StartDate             *string  `json:"start_date,omitempty"    yaml:"start_date,omitempty"`
	EndDate               *string  `json:"end_date,omitempty"      yaml:"end_date,omitempty"`
	IsActive              bool     `json:"is_active"               yaml:"is_active"`
}

// Product is a purchasable catalogue entry backing currencies, skins and items.
type Product struct {
	ID          int     `json:"id"           yaml:"id"`
	Code        string  `json:"code"         yaml:"code"`
	Name        string  `json:"name"         yaml:"name"`
	Price       float64 `json:"price"        yaml:"price"`
	Description string  `json:"description"  yaml:"description"`
	IsActive    bool    `json:"is_active"    yaml:"is_active"`
	ProductType string  `json:"product_type" yaml:"product_type"`
}

// ProductRequest is the payload to create or update a product.
type ProductRequest struct {
	Code        string  `json:"code"         yaml:"code"`
	Name        string  `json:"name"         yaml:"name"`
	Price       float64 `json:"price"        yaml:"price"`
	Description string  `json:"description"  yaml:"description"`
	IsActive    bool    `json:"is_active"    yaml:"is_active"`
	ProductType string  `json:"product_type" yaml:"product_type"`
}

// Currency is an in-game currency pack.
type Currency struct {
	ID            int      `json:"id"                yaml:"id"`
	CurrencyType  string   `json:"currency_type"     yaml:"currency_type"`
	CurrencyValue int      `json:"currency_value"    yaml:"currency_value"`
	Product       *Product `json:"product,omitempty" yaml:"product,omitempty"`
}

// CurrencyRequest is the payload to create or update a currency pack.
type CurrencyRequest struct {
	CurrencyType  string          `json:"currency_type"  yaml:"currency_type"`
	CurrencyValue int             `json:"currency_value" yaml:"currency_value"`
	Product       *ProductRequest `json:"product"        yaml:"product"`
}

// Skin is a cosmetic item.
type Skin struct {
	ID       int      `json:"id"                yaml:"id"`
	SkinType string   `json:"skin_type"         yaml:"skin_type"`
	SkinTier string   `json:"skin_tier"         yaml:"skin_tier"`
	Product  *Product `json:"product,omitempty" yaml:"product,omitempty"`
}

// SkinRequest is the payload to create a skin.
type SkinRequest struct {
	SkinType string          `json:"skin_type" yaml:"skin_type"`
	SkinTier string          `json:"skin_tier" yaml:"skin_tier"`
	Product  *ProductRequest `json:"product"   yaml:"product"`
}

// Item is a consumable game item.
type Item struct {
	ID          int      `json:"id"                    yaml:"id"`
	Name        string   `json:"name"                  yaml:"name"`
	Description *string  `json:"description,omitempty" yaml:"description,omitempty"`
	ItemType    string   `json:"item_type"             yaml:"item_type"`
	IsActive    bool     `json:"is_active"             yaml:"is_active"`
	Product     *Product `json:"product,omitempty"     yaml:"product,omitempty"`
}

// ItemRequest is the payload to create an item.
type ItemRequest struct {
	Name        string          `json:"name"                  yaml:"name"`
	Description *string         `json:"description,omitempty" yaml:"description,omitempty"`
	ItemType    string          `json:"item_type"             yaml:"item_type"`
	IsActive    bool            `json:"is_active"             yaml:"is_active"`
	Product     *ProductRequest `json:"product,omitempty"     yaml:"product,omitempty"`
}

// GameUser is a player account.
type GameUser struct {
	ID            int        `json:"id"              yaml:"id"`
	Email         string     `json:"email"           yaml:"email"`
	Username      string     `json:"username"        yaml:"username"`
	GemAmount     int        `json:"gem_amount"      yaml:"gem_amount"`
	GoldAmount    int        `json:"gold_amount"     yaml:"gold_amount"`
	DateOfBirth   *Timestamp `json:"date_of_birth"   yaml:"date_of_birth"`
	Country       string     `json:"country"         yaml:"country"`
	Platform      string     `json:"platform"        yaml:"platform"`
	RegisterDate  *Timestamp `json:"register_date"   yaml:"register_date"`
	TotalPlayTime int        `json:"total_play_time" yaml:"total_play_time"`
	IsActive      bool       `json:"is_active"       yaml:"is_active"`
	HighestScore  int        `json:"highest_score"   yaml:"highest_score"`
	LastLogin     *Timestamp `json:"last_login"      yaml:"last_login"`
	DeletedAt     *Timestamp `json:"deleted_at"      yaml:"deleted_at"`
}

// GameUserCreateRequest is the payload to register a player account.
type GameUserCreateRequest struct {
	Email       string `json:"email"                   yaml:"email"`
	Username    string `json:"username"                yaml:"username"`
	Password    string `json:"password"                yaml:"password"`
	DateOfBirth string `json:"date_of_birth,omitempty" yaml:"date_of_birth,omitempty"`
	Country     string `json:"country,omitempty"       yaml:"country,omitempty"`
	Platform    string `json:"platform,omitempty"      yaml:"platform,omitempty"`
}

// Profile holds the personal details of an admin user.
type Profile struct {
	ID       int    `json:"id,omitempty" yaml:"id,omitempty"`
	FullName string `json:"full_name"    yaml:"full_name"`
}

// User is an admin console account.
type User struct {
	ID      int      `json:"id"                yaml:"id"`
	Email   string   `json:"email"             yaml:"email"`
	Role    string   `json:"role"              yaml:"role"`
	Profile *Profile `json:"profile,omitempty" yaml:"profile,omitempty"`
}

// UserProfile converts the account into the locally cached profile.
func (u *User) UserProfile() UserProfile {
	profile := UserProfile{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
	}
	if u.Profile != nil {
		profile.FullName = u.Profile.FullName
	}

	return profile
}

// UserCreateRequest is the payload to create an admin account.
type UserCreateRequest struct {
	Email    string `json:"email"     yaml:"email"`
	Password string `json:"password"  yaml:"password"`
	Role     string `json:"role"      yaml:"role"`
	FullName string `json:"full_name" yaml:"full_name"`
}

// Ad is an advertisement placement. Ads are soft deleted.
type Ad struct {
	ID        int        `json:"id"                   yaml:"id"`
	Name      string     `json:"name"                 yaml:"name"`
	AdType    string     `json:"ad_type"              yaml:"ad_type"`
	URL       string     `json:"url"                  yaml:"url"`
	Reward    int        `json:"reward"               yaml:"reward"`
	IsActive  bool       `json:"is_active"            yaml:"is_active"`
	DeletedAt *Timestamp `json:"deleted_at"           yaml:"deleted_at"`
	CreatedAt *Timestamp `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// IsTrashed reports whether the ad has been soft deleted.
func (a *Ad) IsTrashed() bool {
	return a.DeletedAt != nil && a.DeletedAt.IsSet()
}

// AdRequest is the payload to create or update an ad.
type AdRequest struct {
	Name     string `json:"name"      yaml:"name"`
	AdType   string `json:"ad_type"   yaml:"ad_type"`
	URL      string `json:"url"       yaml:"url"`
	Reward   int    `json:"reward"    yaml:"reward"`
	IsActive bool   `json:"is_active" yaml:"is_active"`
}

// Address is a network address the backend has recorded for a player session.
type Address struct {
	ID        int        `json:"id"                   yaml:"id"`
	IPAddress string     `json:"ip_address"           yaml:"ip_address"`
	Country   string     `json:"country,omitempty"    yaml:"country,omitempty"`
	CreatedAt *Timestamp `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// TransactionHistory records a store purchase.
type TransactionHistory struct {
	ID              int        `json:"id"                        yaml:"id"`
	ProductID       int        `json:"product_id"                yaml:"product_id"`
	GameUserID      int        `json:"game_user_id"              yaml:"game_user_id"`
	VoucherEarnedID *int       `json:"voucher_earned_id"         yaml:"voucher_earned_id"`
	VoucherUsedID   *int       `json:"voucher_used_id"           yaml:"voucher_used_id"`
	BuyPrice        float64    `json:"buy_price"                 yaml:"buy_price"`
	Platform        string     `json:"platform"                  yaml:"platform"`
	TransactionDate *Timestamp `json:"transaction_date"          yaml:"transaction_date"`
	GameUser        *GameUser  `json:"game_user,omitempty"       yaml:"game_user,omitempty"`
	Product         *Product   `json:"product,omitempty"         yaml:"product,omitempty"`
	VoucherEarned   *Voucher   `json:"voucher_earned,omitempty"  yaml:"voucher_earned,omitempty"`
	VoucherUsed     *Voucher   `json:"voucher_used,omitempty"    yaml:"voucher_used,omitempty"`
}

// CurrencyHistory records a change to a player's currency balance.
type CurrencyHistory struct {
	ID           int       `json:"id"                  yaml:"id"`
	GameUserID   int       `json:"game_user_id"        yaml:"game_user_id"`
	Amount       int       `json:"amount"              yaml:"amount"`
	CurrencyType string    `json:"currency_type"       yaml:"currency_type"`
	Description  string    `json:"description"         yaml:"description"`
	GameUser     *GameUser `json:"game_user,omitempty" yaml:"game_user,omitempty"`
}

// LoginRequest carries the operator credentials.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
