// Package policy holds the pure authorization decisions for the resource
// handlers. Decisions never touch the database; callers fetch the rows and
// hand them in, which keeps every rule testable without a store.
package policy

import "github.com/rarepublishers/rare/pkg/internal/models"

type Decision struct {
	Allowed bool
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Reason: reason}
}

// CanDeleteComment permits only the comment's author to remove it.
func CanDeleteComment(actor models.RareUser, comment models.Comment) Decision {
	if actor.ID != comment.AuthorID {
		return Deny("only the author of a comment can delete it")
	}
	return Allow()
}

// CanEditComment follows the same ownership rule as deletion.
func CanEditComment(actor models.RareUser, comment models.Comment) Decision {
	if actor.ID != comment.AuthorID {
		return Deny("only the author of a comment can edit it")
	}
	return Allow()
}

// CanManagePostApproval gates the moderation surface: listing unapproved
// posts and flipping the approved flag.
func CanManagePostApproval(actor models.Account) Decision {
	if !actor.IsAdmin {
		return Deny("post approval is limited to administrators")
	}
	return Allow()
}

// CanCreate permits any active profile to create posts, comments,
// categories and tags. There is deliberately no ownership restriction on
// category or tag mutation.
func CanCreate(actor models.RareUser) Decision {
	if !actor.Active {
		return Deny("profile is deactivated")
	}
	return Allow()
}
