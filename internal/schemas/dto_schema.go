package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FieldError is a single itemized error message, matching the wire shape
// of the {"errors":[{"msg":...}]} responses.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// ErrorListDTO is a struct that represents an itemized error response
type ErrorListDTO struct {
	Errors []FieldError `json:"errors"`
}

// MessageDTO is a struct that represents a single-message response
type MessageDTO struct {
	Msg string `json:"msg"`
}

// TokenDTO is a struct that represents a token response
// Token is the JWT bearer token
type TokenDTO struct {
	Token string `json:"token"`
}

// UserDTO is a struct that represents an account response
// It never carries the password hash
type UserDTO struct {
	ID       primitive.ObjectID `json:"id"`
	Name     string             `json:"name"`
	Username string             `json:"username"`
	Email    string             `json:"email"`
	Avatar   string             `json:"avatar"`
	Date     time.Time          `json:"date"`
}

// UserListDTO is a struct that represents a list of account responses
type UserListDTO struct {
	Users []UserDTO `json:"users"`
}

// OwnerDTO is the populated owner summary embedded in profile responses
type OwnerDTO struct {
	ID       primitive.ObjectID `json:"id"`
	Name     string             `json:"name"`
	Username string             `json:"username"`
	Avatar   string             `json:"avatar"`
}

// ProfileDTO is a struct that represents a profile response with the owner
// summary populated in place of the raw owner id
type ProfileDTO struct {
	ID        primitive.ObjectID `json:"id"`
	User      OwnerDTO           `json:"user"`
	Website   string             `json:"website,omitempty"`
	Location  string             `json:"location"`
	Bio       string             `json:"bio"`
	Skills    []string           `json:"skills"`
	Hobbies   []string           `json:"hobbies"`
	BlogPosts []BlogPost         `json:"blogpost"`
	Social    Social             `json:"social"`
	Date      time.Time          `json:"date"`
}

// MetadataDTO is a struct that represents the root route response
type MetadataDTO struct {
	ApiName string `json:"apiName"`
	Status  string `json:"status"`
}

// SerializeUser maps an account to its safe response representation.
func SerializeUser(user *User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
		Avatar:   user.Avatar,
		Date:     user.CreatedAt,
	}
}

// SerializeProfile maps a profile and its owner to a profile response.
func SerializeProfile(profile *Profile, owner *User) ProfileDTO {
	return ProfileDTO{
		ID:        profile.ID,
		User:      OwnerDTO{ID: owner.ID, Name: owner.Name, Username: owner.Username, Avatar: owner.Avatar},
		Website:   profile.Website,
		Location:  profile.Location,
		Bio:       profile.Bio,
		Skills:    profile.Skills,
		Hobbies:   profile.Hobbies,
		BlogPosts: profile.BlogPosts,
		Social:    profile.Social,
		Date:      profile.CreatedAt,
	}
}
