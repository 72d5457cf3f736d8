package model

type Participant struct {
	ID           string  `json:"id"`
	FullName     *string `json:"full_name"`
	UserName     *string `json:"user_name"`
	ProfileImage *string `json:"profile_image"`
}

type Creator struct {
	ID            string  `json:"id"`
	FullName      *string `json:"full_name"`
	UserName      *string `json:"user_name"`
	Email         string  `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	PhoneVerified bool    `json:"phone_verified,omitempty"`
	EmailVerified bool    `json:"email_verified,omitempty"`
	DOB           string  `json:"dob,omitempty"`
	CountryID     int     `json:"country_id,omitempty"`
	Bio           string  `json:"bio,omitempty"`
	ProfileImage  *string `json:"profile_image,omitempty"`
	Gender        *string `json:"gender,omitempty"`
	CreatedAt     string  `json:"created_at"`
	Role          string  `json:"role"`
}

type Activity struct {
	ID                int           `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Location          string        `json:"location"`
	Latitude          string        `json:"latitude"`
	Longitude         string        `json:"longitude"`
	StartDate         string        `json:"start_date"`
	EndDate           string        `json:"end_date"`
	MaxParticipants   int           `json:"max_participants"`
	RequestToJoin     bool          `json:"request_to_join"`
	IsPublic          bool          `json:"is_public"`
	PostToStory       bool          `json:"post_to_story"`
	CoverImage        *string       `json:"cover_image"`
	LikesCount        int           `json:"likes_count"`
	CreatorID         string        `json:"creator_id"`
	Visibility        string        `json:"visibility"`
	Participants      []Participant `json:"participants"`
	Bonds             []Bond        `json:"bonds"`
	TotalParticipants int           `json:"total_participants_count"`
	Creator           Creator       `json:"creator"`
	IsOrganiser       bool          `json:"is_organiser"`
	IsLiked           bool          `json:"is_liked"`
	HasJoined         bool          `json:"has_joined"`
}

// ActivityDetail is the admin detail endpoint's richer shape.
type ActivityDetail struct {
	Activity

	CoOrganizers []Creator `json:"co_organizers"`
}

type ActivityListData struct {
	Activities []Activity `json:"activities"`
	Total      int        `json:"total"`
}
