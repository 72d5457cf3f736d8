package model

type Country struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID            string  `json:"id"`
	FullName      *string `json:"full_name"`
	Email         string  `json:"email"`
	UserName      *string `json:"user_name"`
	Phone         *string `json:"phone"`
	Bio           *string `json:"bio"`
	Notification  bool    `json:"notification"`
	CountryID     *int    `json:"country_id"`
	DOB           *string `json:"dob"`
	EmailVerified bool    `json:"email_verified"`
	ProfileImage  *string `json:"profile_image"`
	DeviceType    *string `json:"device_type"`
	FCMToken      *string `json:"fcm_token"`
	CreatedAt     string  `json:"created_at"`
}

// UserProfile is the detail view returned by the admin profile endpoint.
// It extends the list shape with counters and the resolved country.
type UserProfile struct {
	User

	FollowersCount  int      `json:"followers_count"`
	FollowingCount  int      `json:"following_count"`
	BondsCount      int      `json:"bonds_count"`
	ActivitiesCount int      `json:"activities_count"`
	Country         *Country `json:"country"`
	IsFollowing     bool     `json:"is_following"`
}

type UserListData struct {
	Users      []User     `json:"users"`
	Pagination Pagination `json:"pagination"`
}
