// Package schemas defines the data structures
package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents the data model for a registered account.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`         // Unique identifier for the account.
	Name      string             `bson:"name" json:"name"`                // Display name of the account holder.
	Username  string             `bson:"username" json:"username"`        // Username, unique across all accounts.
	Email     string             `bson:"email" json:"email"`              // Email address, unique across all accounts.
	Password  string             `bson:"password" json:"-"`               // Bcrypt hash of the password, never serialized.
	Avatar    string             `bson:"avatar,omitempty" json:"avatar"`  // Gravatar URL derived from the email.
	CreatedAt time.Time          `bson:"date" json:"date"`                // Timestamp when the account was created.
}

// Profile represents the biographical record attached 1:1 to an account.
// Owner is immutable after creation; all mutations are keyed by it.
type Profile struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Owner     primitive.ObjectID `bson:"user" json:"user"`
	Website   string             `bson:"website,omitempty" json:"website,omitempty"`
	Location  string             `bson:"location" json:"location"`
	Bio       string             `bson:"bio" json:"bio"`
	Skills    []string           `bson:"skills" json:"skills"`
	Hobbies   []string           `bson:"hobbies" json:"hobbies"`
	BlogPosts []BlogPost         `bson:"blogpost" json:"blogpost"`
	Social    Social             `bson:"social,omitempty" json:"social"`
	CreatedAt time.Time          `bson:"date" json:"date"`
}

// BlogPost is an entry embedded in a profile's blogpost list.
type BlogPost struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Content     string             `bson:"content" json:"content"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Published   time.Time          `bson:"published" json:"published"`
	Updated     *time.Time         `bson:"updated,omitempty" json:"updated,omitempty"`
	Description string             `bson:"description" json:"description"`
}

// Social holds the optional social links of a profile.
type Social struct {
	Youtube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Linkedin  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
}

// Post represents a short text entry owned by one account. Name, Username
// and Avatar are copied from the owning account at creation time and are
// not kept in sync with later account edits.
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Owner     primitive.ObjectID `bson:"user" json:"user"`
	Name      string             `bson:"name" json:"name"`
	Username  string             `bson:"username" json:"username"`
	Avatar    string             `bson:"avatar,omitempty" json:"avatar"`
	Content   string             `bson:"content" json:"content"`
	Likes     []Like             `bson:"likes" json:"likes"`
	CreatedAt time.Time          `bson:"date" json:"date"`
}

// Like records one account in a post's likes list. Each account appears
// at most once per post.
type Like struct {
	UserID primitive.ObjectID `bson:"user" json:"user"`
}

// OwnedBy reports whether the post belongs to the given account id,
// compared as opaque strings.
func (p *Post) OwnedBy(userID string) bool {
	return p.Owner.Hex() == userID
}

// LikedBy reports whether the given account id is present in the likes list.
func (p *Post) LikedBy(userID string) bool {
	for _, like := range p.Likes {
		if like.UserID.Hex() == userID {
			return true
		}
	}
	return false
}

// AddLike prepends the given account to the likes list.
func (p *Post) AddLike(userID primitive.ObjectID) {
	p.Likes = append([]Like{{UserID: userID}}, p.Likes...)
}

// RemoveLike removes the first like matching the given account id. Since
// each account appears at most once, this removes exactly that account's
// entry. It reports whether an entry was removed.
func (p *Post) RemoveLike(userID string) bool {
	for i, like := range p.Likes {
		if like.UserID.Hex() == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return true
		}
	}
	return false
}
