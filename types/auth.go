package types

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=80"`
	Email    string `json:"email" binding:"required,email"`
	Nickname string `json:"nickname"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	// Identifier 用户名或邮箱
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type LoginResponse struct {
	UserID   uint64 `json:"user_id,string"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	IsAdmin  bool   `json:"is_admin"`
	TokenPair
}

type UpdateProfileRequest struct {
	Nickname string `json:"nickname"`
	Bio      string `json:"bio"`
	Email    string `json:"email"`
}

type UserProfile struct {
	UserID            uint64   `json:"user_id,string"`
	Username          string   `json:"username"`
	Nickname          string   `json:"nickname"`
	Bio               string   `json:"bio"`
	EmailVerified     bool     `json:"email_verified"`
	PostCount         int64    `json:"post_count"`
	AchievementPoints int64    `json:"achievement_points"`
	FollowerCount     int64    `json:"follower_count"`
	FollowingCount    int64    `json:"following_count"`
	Badges            []string `json:"badges"`
}
