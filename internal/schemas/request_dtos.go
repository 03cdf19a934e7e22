// Package schemas defines the request structures for various operations in the application.
package schemas

import "time"

// RegistrationRequest is a struct that represents a registration request
// Name is required
// Username is required and must be unique across accounts
// Email is required, must be a valid email and unique across accounts
// Password is required and must be at least 6 characters
type RegistrationRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ValidationMessage returns the user-facing message for a failed field.
func (r *RegistrationRequest) ValidationMessage(field string) string {
	switch field {
	case "Name":
		return "Name is required"
	case "Username":
		return "Please provide a username"
	case "Email":
		return "Please include a valid email address"
	case "Password":
		return "Please enter a password with 6 or more characters"
	}
	return "Invalid value"
}

// LoginRequest is a struct that represents a login request
// Username and Password are both required
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ValidationMessage returns the user-facing message for a failed field.
func (r *LoginRequest) ValidationMessage(field string) string {
	switch field {
	case "Username":
		return "Please enter your username"
	case "Password":
		return "Please enter your password"
	}
	return "Invalid value"
}

// UpsertProfileRequest is a struct that represents a profile create/update request
// Bio, Location, Skills and Hobbies are required
// Skills and Hobbies are comma-separated strings, split into lists on input
// Website and the social links are optional
type UpsertProfileRequest struct {
	Bio       string `json:"bio" validate:"required"`
	Location  string `json:"location" validate:"required"`
	Skills    string `json:"skills" validate:"required"`
	Hobbies   string `json:"hobbies" validate:"required"`
	Website   string `json:"website"`
	Youtube   string `json:"youtube"`
	Twitter   string `json:"twitter"`
	Facebook  string `json:"facebook"`
	Linkedin  string `json:"linkedin"`
	Instagram string `json:"instagram"`
}

// ValidationMessage returns the user-facing message for a failed field.
func (r *UpsertProfileRequest) ValidationMessage(field string) string {
	switch field {
	case "Bio":
		return "Bio field is required"
	case "Location":
		return "Please enter your location"
	case "Skills":
		return "Please list your skills"
	case "Hobbies":
		return "Please list your hobbies"
	}
	return "Invalid value"
}

// AddBlogPostRequest is a struct that represents a blog entry create request
// Title, Content, Published and Description are required
// Location and Updated are optional
type AddBlogPostRequest struct {
	Title       string     `json:"title" validate:"required"`
	Content     string     `json:"content" validate:"required"`
	Location    string     `json:"location"`
	Published   time.Time  `json:"published" validate:"required"`
	Updated     *time.Time `json:"updated"`
	Description string     `json:"description" validate:"required"`
}

// ValidationMessage returns the user-facing message for a failed field.
func (r *AddBlogPostRequest) ValidationMessage(field string) string {
	switch field {
	case "Title":
		return "Please enter the title of your post"
	case "Content":
		return "Content is required"
	case "Published":
		return "Published date is required"
	case "Description":
		return "Please enter a short description of the content of your post"
	}
	return "Invalid value"
}

// CreatePostRequest is a struct that represents a create post request
// Content is required
type CreatePostRequest struct {
	Content string `json:"content" validate:"required"`
}

// ValidationMessage returns the user-facing message for a failed field.
func (r *CreatePostRequest) ValidationMessage(field string) string {
	if field == "Content" {
		return "Please add the content to your post"
	}
	return "Invalid value"
}
